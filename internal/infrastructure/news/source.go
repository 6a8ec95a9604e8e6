package news

import (
	"fmt"
	"time"

	"newsdigest/internal/domain/repository"
)

// Config selects and configures a news source.
type Config struct {
	Provider  string        // "mediastack" or "rss" (empty defaults to "mediastack")
	APIKey    string        // mediastack access key
	BaseURL   string        // mediastack endpoint override
	Countries string        // mediastack country filter
	FeedURL   string        // rss feed URL
	Timeout   time.Duration // HTTP timeout
}

// NewNewsRepository builds the configured news source.
func NewNewsRepository(cfg Config) (repository.NewsRepository, error) {
	switch cfg.Provider {
	case "mediastack", "":
		return newMediastackRepository(cfg), nil
	case "rss":
		if cfg.FeedURL == "" {
			return nil, fmt.Errorf("rss news provider requires a feed URL (set RSS_URL)")
		}
		return newRSSRepository(cfg), nil
	default:
		return nil, fmt.Errorf("unknown news provider: %s", cfg.Provider)
	}
}
