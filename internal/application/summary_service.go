package application

import (
	"context"
	"errors"
	"log"

	"newsdigest/internal/domain/entity"
	"newsdigest/internal/domain/repository"
	"newsdigest/internal/infrastructure/scraper"
)

// ErrNoArticles is returned when the upstream fetch yields nothing; the
// cache is left untouched in that case.
var ErrNoArticles = errors.New("no articles found")

type SummaryService struct {
	newsRepo       repository.NewsRepository
	cacheRepo      repository.CacheRepository
	summarizerRepo repository.SummarizerRepository
	contentFetcher scraper.ContentFetcher
}

func NewSummaryService(
	newsRepo repository.NewsRepository,
	cacheRepo repository.CacheRepository,
	summarizerRepo repository.SummarizerRepository,
	contentFetcher scraper.ContentFetcher,
) *SummaryService {
	return &SummaryService{
		newsRepo:       newsRepo,
		cacheRepo:      cacheRepo,
		summarizerRepo: summarizerRepo,
		contentFetcher: contentFetcher,
	}
}

// Summaries returns the cached records when fresh, otherwise runs the full
// fetch-extract-summarize pass and stores the result.
func (s *SummaryService) Summaries(ctx context.Context) ([]*entity.SummaryRecord, error) {
	records, ok, err := s.cacheRepo.Load(ctx)
	if err != nil {
		log.Printf("Failed to read cache: %v", err)
	} else if ok {
		return records, nil
	}

	articles, err := s.newsRepo.FetchArticles(ctx)
	if err != nil {
		log.Printf("Failed to fetch news: %v", err)
		articles = nil
	}

	if len(articles) == 0 {
		return nil, ErrNoArticles
	}

	records = s.processArticles(ctx, articles)

	if err := s.cacheRepo.Store(ctx, records); err != nil {
		log.Printf("Failed to store cache: %v", err)
	}

	return records, nil
}

// processArticles produces one record per article in input order. Each
// article is fully processed before the next begins; a failure annotates the
// record and never aborts the batch.
func (s *SummaryService) processArticles(ctx context.Context, articles []*entity.Article) []*entity.SummaryRecord {
	records := make([]*entity.SummaryRecord, 0, len(articles))

	for _, article := range articles {
		record := entity.NewSummaryRecord(article)
		records = append(records, record)

		if !article.HasURL() {
			record.SetError(entity.ReasonNoURL)
			continue
		}

		content, err := s.contentFetcher.FetchContent(ctx, article.URL)
		if err != nil {
			log.Printf("Failed to extract content [%s]: %v", article.URL, err)
			record.SetError(entity.ReasonExtractFailed)
			continue
		}

		summary, err := s.summarizerRepo.Summarize(ctx, content, article.Title)
		if err != nil {
			log.Printf("Failed to summarize [%s]: %v", article.Title, err)
			record.SetError(entity.ReasonSummaryFailed)
			continue
		}
		if summary == "" {
			// Disabled summarizers report success with empty output.
			record.SetError(entity.ReasonSummaryFailed)
			continue
		}

		record.SetSummary(summary)
	}

	return records
}
