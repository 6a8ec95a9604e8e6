package news

import (
	"context"
	"fmt"
	"time"

	"newsdigest/internal/domain/entity"
	"newsdigest/internal/domain/repository"

	"github.com/mmcdole/gofeed"
)

type rssRepository struct {
	parser  *gofeed.Parser
	feedURL string
}

func newRSSRepository(cfg Config) repository.NewsRepository {
	return &rssRepository{
		parser:  gofeed.NewParser(),
		feedURL: cfg.FeedURL,
	}
}

func (r *rssRepository) FetchArticles(ctx context.Context) ([]*entity.Article, error) {
	feed, err := r.parser.ParseURLWithContext(r.feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RSS feed: %w", err)
	}

	articles := make([]*entity.Article, 0, len(feed.Items))

	for _, item := range feed.Items {
		published := item.Published
		if published == "" && item.PublishedParsed != nil {
			published = item.PublishedParsed.Format(time.RFC3339)
		}

		articles = append(articles, entity.NewArticle(item.Title, feed.Title, item.Link, published))
	}

	return articles, nil
}
