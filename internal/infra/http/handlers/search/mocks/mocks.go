package mocks

import (
	"context"

	"github.com/soundshelf/soundshelf-api/internal/app/domain"
	"github.com/stretchr/testify/mock"
)

type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Search(ctx context.Context, userID int64, query string) ([]domain.SearchResult, error) {
	args := m.Called(ctx, userID, query)
	results, _ := args.Get(0).([]domain.SearchResult)
	return results, args.Error(1)
}
