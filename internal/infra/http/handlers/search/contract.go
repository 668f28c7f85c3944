package search

import (
	"context"

	"github.com/soundshelf/soundshelf-api/internal/app/domain"
)

type SearchService interface {
	Search(ctx context.Context, userID int64, query string) ([]domain.SearchResult, error)
}
