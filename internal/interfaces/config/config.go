package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	NewsProvider      string `envconfig:"NEWS_PROVIDER" default:"mediastack"`
	MediastackAPIKey  string `envconfig:"MEDIASTACK_API_KEY"`
	MediastackBaseURL string `envconfig:"MEDIASTACK_BASE_URL"`
	NewsCountries     string `envconfig:"NEWS_COUNTRIES" default:"in"`
	RSSURL            string `envconfig:"RSS_URL"`
	NewsTimeout       int    `envconfig:"NEWS_TIMEOUT" default:"15"`

	ScrapeTimeout int `envconfig:"SCRAPE_TIMEOUT" default:"15"`

	CacheTTL int `envconfig:"CACHE_TTL" default:"300"`

	LLMProvider      string `envconfig:"LLM_PROVIDER" default:"gemini"`
	GeminiAPIKey     string `envconfig:"GEMINI_API_KEY"`
	LLMAPIKey        string `envconfig:"LLM_API_KEY"`
	LLMModel         string `envconfig:"LLM_MODEL"`
	LLMRegion        string `envconfig:"LLM_REGION"`
	LLMMaxTokens     int    `envconfig:"LLM_MAX_TOKENS" default:"500"`
	LLMMaxInputChars int    `envconfig:"LLM_MAX_INPUT_CHARS" default:"8000"`
	LLMTimeout       int    `envconfig:"LLM_TIMEOUT" default:"30"`
}

// LoadConfig reads .env (best effort) and the process environment. Missing
// API keys are not an error here: downstream calls fail and are logged
// instead of preventing startup.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LLMAPIKeyOrGemini prefers the provider-agnostic key and falls back to the
// gemini-specific one.
func (c *Config) LLMAPIKeyOrGemini() string {
	if c.LLMAPIKey != "" {
		return c.LLMAPIKey
	}
	return c.GeminiAPIKey
}

func (c *Config) NewsTimeoutDuration() time.Duration {
	return time.Duration(c.NewsTimeout) * time.Second
}

func (c *Config) ScrapeTimeoutDuration() time.Duration {
	return time.Duration(c.ScrapeTimeout) * time.Second
}

func (c *Config) CacheTTLDuration() time.Duration {
	return time.Duration(c.CacheTTL) * time.Second
}

func (c *Config) LLMTimeoutDuration() time.Duration {
	return time.Duration(c.LLMTimeout) * time.Second
}
