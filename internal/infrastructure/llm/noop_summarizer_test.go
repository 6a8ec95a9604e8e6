package llm

import (
	"context"
	"testing"
)

func TestNoopSummarizer_Summarize(t *testing.T) {
	s := newNoopSummarizer()

	summary, err := s.Summarize(context.Background(), "content", "title")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary != "" {
		t.Errorf("expected empty summary, got '%s'", summary)
	}
}

func TestNoopSummarizer_IsEnabled(t *testing.T) {
	s := newNoopSummarizer()

	if s.IsEnabled() {
		t.Error("expected IsEnabled to return false for noop summarizer")
	}
}
