package llm

import (
	"context"
	"fmt"
	"time"

	"newsdigest/internal/domain/repository"
)

// Config configures the summarizer provider.
type Config struct {
	Provider      string        // "gemini", "bedrock" or "noop" (empty defaults to "noop")
	APIKey        string        // API key / bearer token
	Model         string        // model name (bedrock: model ID)
	Region        string        // bedrock region
	MaxTokens     int           // max output tokens
	MaxInputChars int           // content truncation before prompting
	Timeout       time.Duration // API timeout
}

// PromptInstruction is the summary contract given to the model. The word
// budget is an instruction only; output is never truncated locally.
const PromptInstruction = "Summarize the following article in 60 words or less, maintaining key information."

const (
	defaultMaxTokens     = 500
	defaultMaxInputChars = 8000
)

// NewSummarizerRepository builds the configured summarizer.
func NewSummarizerRepository(ctx context.Context, cfg Config) (repository.SummarizerRepository, error) {
	switch cfg.Provider {
	case "gemini":
		return newGeminiSummarizer(cfg)
	case "bedrock":
		return newBedrockSummarizer(ctx, cfg)
	case "noop", "":
		return newNoopSummarizer(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.Provider)
	}
}

func buildPrompt(content, title string) string {
	return fmt.Sprintf("%s\n\nTitle: %s\n\n%s", PromptInstruction, title, content)
}

func truncateContent(content string, maxChars int) string {
	if maxChars <= 0 {
		maxChars = defaultMaxInputChars
	}
	runes := []rune(content)
	if len(runes) <= maxChars {
		return content
	}
	return string(runes[:maxChars]) + "..."
}
