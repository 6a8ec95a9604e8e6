package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestContentFetcher_FetchContent_Success(t *testing.T) {
	html := `
	<!DOCTYPE html>
	<html>
	<head><title>Test Page</title></head>
	<body>
		<h1>Article Title</h1>
		<p>This is the main content of the article.</p>
		<p>It contains   important
		information.</p>
		<a href="/related">Related link text</a>
		<script>console.log('test');</script>
		<style>.hidden { display: none; }</style>
	</body>
	</html>
	`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(html))
	}))
	defer server.Close()

	fetcher := NewContentFetcher(5 * time.Second)
	ctx := context.Background()

	content, err := fetcher.FetchContent(ctx, server.URL)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !strings.Contains(content, "main content") {
		t.Error("expected content to contain article text")
	}

	if strings.Contains(content, "console.log") {
		t.Error("expected script content to be removed")
	}
	if strings.Contains(content, "display: none") {
		t.Error("expected style content to be removed")
	}
	if strings.Contains(content, "Related link text") {
		t.Error("expected anchor content to be removed")
	}
}

func TestContentFetcher_FetchContent_WhitespaceCollapsed(t *testing.T) {
	html := `<html><body>
		<p>First    paragraph.</p>

		<p>Second
		paragraph.</p>
	</body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(html))
	}))
	defer server.Close()

	fetcher := NewContentFetcher(5 * time.Second)
	ctx := context.Background()

	content, err := fetcher.FetchContent(ctx, server.URL)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	expected := "First paragraph. Second paragraph."
	if content != expected {
		t.Errorf("expected '%s', got '%s'", expected, content)
	}
}

func TestContentFetcher_FetchContent_UserAgent(t *testing.T) {
	var gotUserAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<html><body><p>Content</p></body></html>"))
	}))
	defer server.Close()

	fetcher := NewContentFetcher(5 * time.Second)
	ctx := context.Background()

	if _, err := fetcher.FetchContent(ctx, server.URL); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !strings.Contains(gotUserAgent, "Mozilla/5.0") {
		t.Errorf("expected browser-like user agent, got '%s'", gotUserAgent)
	}
}

func TestContentFetcher_FetchContent_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := NewContentFetcher(5 * time.Second)
	ctx := context.Background()

	_, err := fetcher.FetchContent(ctx, server.URL)
	if err == nil {
		t.Error("expected error for 404 status, got nil")
	}

	if !strings.Contains(err.Error(), "HTTP status 404") {
		t.Errorf("expected HTTP status error, got: %v", err)
	}
}

func TestContentFetcher_FetchContent_EmptyPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<html><body><script>only()</script></body></html>"))
	}))
	defer server.Close()

	fetcher := NewContentFetcher(5 * time.Second)
	ctx := context.Background()

	_, err := fetcher.FetchContent(ctx, server.URL)
	if err == nil {
		t.Error("expected error for empty page, got nil")
	}

	if !strings.Contains(err.Error(), "no content found") {
		t.Errorf("expected no content error, got: %v", err)
	}
}

func TestContentFetcher_FetchContent_InvalidURL(t *testing.T) {
	fetcher := NewContentFetcher(5 * time.Second)
	ctx := context.Background()

	_, err := fetcher.FetchContent(ctx, "http://invalid-url-that-does-not-exist-12345.test")
	if err == nil {
		t.Error("expected error for invalid URL, got nil")
	}
}
