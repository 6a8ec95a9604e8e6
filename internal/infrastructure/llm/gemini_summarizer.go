package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"newsdigest/internal/domain/repository"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

const defaultGeminiModel = "gemini-2.0-flash"

type geminiSummarizer struct {
	apiKey        string
	model         string
	maxTokens     int
	maxInputChars int
	baseURL       string
	client        *http.Client
}

func newGeminiSummarizer(cfg Config) (repository.SummarizerRepository, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	model := cfg.Model
	if model == "" {
		model = defaultGeminiModel
	}

	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}

	maxInputChars := cfg.MaxInputChars
	if maxInputChars == 0 {
		maxInputChars = defaultMaxInputChars
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &geminiSummarizer{
		apiKey:        cfg.APIKey,
		model:         model,
		maxTokens:     maxTokens,
		maxInputChars: maxInputChars,
		baseURL:       geminiBaseURL,
		client:        &http.Client{Timeout: timeout},
	}, nil
}

func (s *geminiSummarizer) Summarize(ctx context.Context, content, title string) (string, error) {
	content = truncateContent(content, s.maxInputChars)

	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"role": "user",
				"parts": []map[string]string{
					{"text": buildPrompt(content, title)},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"maxOutputTokens": s.maxTokens,
			"temperature":     0.3,
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call Gemini API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Gemini API returned status %d", resp.StatusCode)
	}

	var apiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(apiResp.Candidates) == 0 || len(apiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no summary returned from Gemini API")
	}

	summary := strings.TrimSpace(apiResp.Candidates[0].Content.Parts[0].Text)
	if summary == "" {
		return "", fmt.Errorf("empty summary from Gemini API")
	}

	return summary, nil
}

func (s *geminiSummarizer) IsEnabled() bool {
	return true
}
