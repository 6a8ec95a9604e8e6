package repository

import (
	"context"

	"newsdigest/internal/domain/entity"
)

// CacheRepository holds the single cached aggregation result.
type CacheRepository interface {
	// Load returns the cached records and whether they are still fresh.
	// A stale or never-filled cache returns ok=false.
	Load(ctx context.Context) (records []*entity.SummaryRecord, ok bool, err error)

	// Store replaces the cached records wholesale and resets their age.
	Store(ctx context.Context, records []*entity.SummaryRecord) error
}
