package news

import (
	"strings"
	"testing"
)

func TestNewNewsRepository_Mediastack(t *testing.T) {
	testCases := []struct {
		name     string
		provider string
	}{
		{"empty provider", ""},
		{"mediastack provider", "mediastack"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, err := NewNewsRepository(Config{Provider: tc.provider, APIKey: "key", Countries: "in"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if _, ok := repo.(*mediastackRepository); !ok {
				t.Error("expected mediastackRepository type")
			}
		})
	}
}

func TestNewNewsRepository_RSS(t *testing.T) {
	repo, err := NewNewsRepository(Config{Provider: "rss", FeedURL: "https://example.tld/feed"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := repo.(*rssRepository); !ok {
		t.Error("expected rssRepository type")
	}
}

func TestNewNewsRepository_RSSWithoutURL(t *testing.T) {
	_, err := NewNewsRepository(Config{Provider: "rss"})
	if err == nil {
		t.Fatal("expected error when feed URL is missing, got nil")
	}
	if !strings.Contains(err.Error(), "RSS_URL") {
		t.Errorf("expected RSS_URL hint in error, got: %v", err)
	}
}

func TestNewNewsRepository_UnknownProvider(t *testing.T) {
	_, err := NewNewsRepository(Config{Provider: "carrier-pigeon"})
	if err == nil {
		t.Fatal("expected error for unknown provider, got nil")
	}
	if !strings.Contains(err.Error(), "unknown news provider") {
		t.Errorf("expected unknown provider error, got: %v", err)
	}
}
