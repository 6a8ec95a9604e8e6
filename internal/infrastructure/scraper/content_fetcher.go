package scraper

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Article pages frequently reject non-browser clients, so requests identify
// as a desktop browser.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// ContentFetcher retrieves the plain-text body of a web page.
type ContentFetcher interface {
	FetchContent(ctx context.Context, url string) (string, error)
}

type webScraper struct {
	client    *http.Client
	userAgent string
}

// NewContentFetcher creates a ContentFetcher with the given HTTP timeout.
func NewContentFetcher(timeout time.Duration) ContentFetcher {
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	return &webScraper{
		client:    &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
	}
}

// FetchContent fetches url and returns its normalized text content.
func (s *webScraper) FetchContent(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	content := extractText(doc)
	if content == "" {
		return "", fmt.Errorf("no content found")
	}

	return content, nil
}

// extractText strips scripts, styles and links from the document, then
// collapses all whitespace runs into single spaces.
func extractText(doc *goquery.Document) string {
	doc.Find("script, style, a").Remove()
	return strings.Join(strings.Fields(doc.Text()), " ")
}
