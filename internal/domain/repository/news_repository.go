package repository

import (
	"context"

	"newsdigest/internal/domain/entity"
)

type NewsRepository interface {
	FetchArticles(ctx context.Context) ([]*entity.Article, error)
}
