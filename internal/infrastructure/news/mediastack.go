package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"newsdigest/internal/domain/entity"
	"newsdigest/internal/domain/repository"
)

const defaultMediastackBaseURL = "http://api.mediastack.com/v1/news"

type mediastackRepository struct {
	client    *http.Client
	baseURL   string
	accessKey string
	countries string
}

type mediastackArticle struct {
	Title       string `json:"title"`
	Source      string `json:"source"`
	URL         string `json:"url"`
	PublishedAt string `json:"published_at"`
}

type mediastackResponse struct {
	Data []mediastackArticle `json:"data"`
}

func newMediastackRepository(cfg Config) repository.NewsRepository {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultMediastackBaseURL
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	return &mediastackRepository{
		client:    &http.Client{Timeout: timeout},
		baseURL:   baseURL,
		accessKey: cfg.APIKey,
		countries: cfg.Countries,
	}
}

func (r *mediastackRepository) FetchArticles(ctx context.Context) ([]*entity.Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	query := url.Values{}
	query.Set("access_key", r.accessKey)
	query.Set("countries", r.countries)
	req.URL.RawQuery = query.Encode()

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch news: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news API returned status %d", resp.StatusCode)
	}

	var apiResp mediastackResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode news response: %w", err)
	}

	articles := make([]*entity.Article, 0, len(apiResp.Data))
	for _, item := range apiResp.Data {
		articles = append(articles, entity.NewArticle(item.Title, item.Source, item.URL, item.PublishedAt))
	}

	return articles, nil
}
