package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsdigest/internal/application"
	"newsdigest/internal/infrastructure/llm"
	"newsdigest/internal/infrastructure/news"
	"newsdigest/internal/infrastructure/scraper"
	"newsdigest/internal/infrastructure/storage"
	"newsdigest/internal/interfaces/config"
	"newsdigest/internal/interfaces/rest"
)

func main() {
	fmt.Println("Starting news digest service...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	newsRepo, err := news.NewNewsRepository(news.Config{
		Provider:  cfg.NewsProvider,
		APIKey:    cfg.MediastackAPIKey,
		BaseURL:   cfg.MediastackBaseURL,
		Countries: cfg.NewsCountries,
		FeedURL:   cfg.RSSURL,
		Timeout:   cfg.NewsTimeoutDuration(),
	})
	if err != nil {
		log.Fatal("Failed to set up news source:", err)
	}

	summarizerRepo, err := llm.NewSummarizerRepository(ctx, llm.Config{
		Provider:      cfg.LLMProvider,
		APIKey:        cfg.LLMAPIKeyOrGemini(),
		Model:         cfg.LLMModel,
		Region:        cfg.LLMRegion,
		MaxTokens:     cfg.LLMMaxTokens,
		MaxInputChars: cfg.LLMMaxInputChars,
		Timeout:       cfg.LLMTimeoutDuration(),
	})
	if err != nil {
		log.Printf("Warning: summarizer initialization failed: %v", err)
		log.Println("Continuing without summarization...")
		summarizerRepo, _ = llm.NewSummarizerRepository(ctx, llm.Config{Provider: "noop"})
	}

	cacheRepo := storage.NewMemoryCacheRepository(cfg.CacheTTLDuration())
	contentFetcher := scraper.NewContentFetcher(cfg.ScrapeTimeoutDuration())

	service := application.NewSummaryService(
		newsRepo,
		cacheRepo,
		summarizerRepo,
		contentFetcher,
	)

	router := rest.NewRouter(rest.NewHandlers(service))
	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Println("Shutdown signal received")
		cancel()
	}()

	go func() {
		log.Printf("Listening on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error:", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}
}
