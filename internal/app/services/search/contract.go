package search

import (
	"context"
	"time"

	"github.com/soundshelf/soundshelf-api/internal/app/domain"
)

type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type GeniusClient interface {
	Search(ctx context.Context, query string) ([]domain.SearchHit, error)
}

type SavedSongs interface {
	SavedGeniusIDs(ctx context.Context, userID int64) (map[int64]struct{}, error)
}
