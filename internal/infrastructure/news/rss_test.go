package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRSSRepository_FetchArticles_Success(t *testing.T) {
	rssXML := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
	<channel>
		<title>Test Feed</title>
		<item>
			<title>Article 1</title>
			<link>https://example.tld/article1</link>
			<description>Description 1</description>
			<pubDate>Mon, 02 Jan 2006 15:04:05 MST</pubDate>
		</item>
		<item>
			<title>Article 2</title>
			<link>https://example.tld/article2</link>
			<description>Description 2</description>
			<pubDate>Tue, 03 Jan 2006 15:04:05 MST</pubDate>
		</item>
	</channel>
</rss>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(rssXML))
	}))
	defer server.Close()

	repo := newRSSRepository(Config{FeedURL: server.URL})
	ctx := context.Background()

	articles, err := repo.FetchArticles(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(articles))
	}

	if articles[0].Title != "Article 1" {
		t.Errorf("expected title 'Article 1', got '%s'", articles[0].Title)
	}
	if articles[0].Source != "Test Feed" {
		t.Errorf("expected source 'Test Feed', got '%s'", articles[0].Source)
	}
	if articles[0].URL != "https://example.tld/article1" {
		t.Errorf("expected URL 'https://example.tld/article1', got '%s'", articles[0].URL)
	}
	if articles[0].PublishedAt == "" {
		t.Error("expected non-empty published date")
	}
}

func TestRSSRepository_FetchArticles_InvalidFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("not a feed"))
	}))
	defer server.Close()

	repo := newRSSRepository(Config{FeedURL: server.URL})
	ctx := context.Background()

	_, err := repo.FetchArticles(ctx)
	if err == nil {
		t.Fatal("expected error for invalid feed, got nil")
	}
}
