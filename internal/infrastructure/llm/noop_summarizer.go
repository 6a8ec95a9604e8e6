package llm

import (
	"context"

	"newsdigest/internal/domain/repository"
)

// noopSummarizer is used when summarization is disabled or unavailable.
type noopSummarizer struct{}

func newNoopSummarizer() repository.SummarizerRepository {
	return &noopSummarizer{}
}

func (s *noopSummarizer) Summarize(ctx context.Context, content, title string) (string, error) {
	return "", nil
}

func (s *noopSummarizer) IsEnabled() bool {
	return false
}
