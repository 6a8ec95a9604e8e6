package storage

import (
	"context"
	"sync"
	"time"

	"newsdigest/internal/domain/entity"
	"newsdigest/internal/domain/repository"
)

// memoryCache is the single-slot response cache. The slot is replaced
// wholesale on every store; staleness is evaluated lazily on load.
type memoryCache struct {
	mu       sync.RWMutex
	ttl      time.Duration
	storedAt time.Time
	records  []*entity.SummaryRecord
}

func NewMemoryCacheRepository(ttl time.Duration) repository.CacheRepository {
	return &memoryCache{ttl: ttl}
}

func (c *memoryCache) Load(ctx context.Context) ([]*entity.SummaryRecord, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.records == nil {
		return nil, false, nil
	}
	if time.Since(c.storedAt) >= c.ttl {
		return nil, false, nil
	}

	return c.records, true, nil
}

func (c *memoryCache) Store(ctx context.Context, records []*entity.SummaryRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.records = records
	c.storedAt = time.Now()
	return nil
}
