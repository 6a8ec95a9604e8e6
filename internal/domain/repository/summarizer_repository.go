package repository

import "context"

// SummarizerRepository produces a short summary of article text.
type SummarizerRepository interface {
	// Summarize returns a summary of content. title is passed along as
	// context for the model. An empty model response is an error.
	Summarize(ctx context.Context, content, title string) (string, error)

	// IsEnabled reports whether summarization is actually available.
	IsEnabled() bool
}
