package mocks

import (
	"context"
	"time"

	"github.com/soundshelf/soundshelf-api/internal/app/domain"
	"github.com/stretchr/testify/mock"
)

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

type MockGeniusClient struct {
	mock.Mock
}

func (m *MockGeniusClient) Search(ctx context.Context, query string) ([]domain.SearchHit, error) {
	args := m.Called(ctx, query)
	hits, _ := args.Get(0).([]domain.SearchHit)
	return hits, args.Error(1)
}

type MockSavedSongs struct {
	mock.Mock
}

func (m *MockSavedSongs) SavedGeniusIDs(ctx context.Context, userID int64) (map[int64]struct{}, error) {
	args := m.Called(ctx, userID)
	ids, _ := args.Get(0).(map[int64]struct{})
	return ids, args.Error(1)
}
