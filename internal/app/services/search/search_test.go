package search_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/soundshelf/soundshelf-api/internal/app/domain"
	"github.com/soundshelf/soundshelf-api/internal/app/services/search"
	"github.com/soundshelf/soundshelf-api/internal/app/services/search/mocks"
	"github.com/soundshelf/soundshelf-api/internal/infra/repository/cache/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"
)

const ttl = time.Hour

func adeleHits() []domain.SearchHit {
	ids := []int64{1001, 1002, 1003, 1004, 1005}
	hits := make([]domain.SearchHit, 0, len(ids))
	for _, id := range ids {
		hits = append(hits, domain.SearchHit{
			Type: "song",
			Result: domain.Track{
				ID:          id,
				Title:       "Song",
				ArtistNames: "Adele",
				APIPath:     fmt.Sprintf("/songs/%d", id),
			},
		})
	}
	return hits
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newService(t *testing.T, client search.GeniusClient, cache search.Cache, saved search.SavedSongs) search.SearchService {
	t.Helper()

	s, err := search.New(
		otel.Tracer("test"),
		noop.NewMeterProvider().Meter("test"),
		quietLogger(),
		client,
		cache,
		saved,
		ttl,
	)
	require.NoError(t, err)
	return s
}

func savedFlags(results []domain.SearchResult) map[int64]bool {
	flags := make(map[int64]bool, len(results))
	for _, r := range results {
		flags[r.ID] = r.IsSaved
	}
	return flags
}

func TestSearchService_Search(t *testing.T) {
	t.Run("empty query", func(t *testing.T) {
		mockedCache := &mocks.MockCache{}
		mockedClient := &mocks.MockGeniusClient{}
		mockedSaved := &mocks.MockSavedSongs{}
		s := newService(t, mockedClient, mockedCache, mockedSaved)

		_, err := s.Search(context.Background(), 1, "   ")
		assert.ErrorIs(t, err, domain.ErrValidation)

		mockedCache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
		mockedClient.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
		mockedSaved.AssertNotCalled(t, "SavedGeniusIDs", mock.Anything, mock.Anything)
	})

	t.Run("cache miss calls genius and caches hits", func(t *testing.T) {
		mockedCache := &mocks.MockCache{}
		mockedClient := &mocks.MockGeniusClient{}
		mockedSaved := &mocks.MockSavedSongs{}
		s := newService(t, mockedClient, mockedCache, mockedSaved)

		hits := adeleHits()
		encoded, err := json.Marshal(hits)
		require.NoError(t, err)

		mockedCache.On("Get", mock.Anything, "Adele").
			Return("", domain.ErrCacheMiss).
			Once()
		mockedClient.On("Search", mock.Anything, "Adele").
			Return(hits, nil).
			Once()
		mockedCache.On("Set", mock.Anything, "Adele", encoded, ttl).
			Return(nil).
			Once()
		mockedSaved.On("SavedGeniusIDs", mock.Anything, int64(7)).
			Return(map[int64]struct{}{1003: {}}, nil).
			Once()

		results, err := s.Search(context.Background(), 7, "Adele")
		require.NoError(t, err)
		require.Len(t, results, 5)

		for i, r := range results {
			assert.Equal(t, hits[i].Result.ID, r.ID, "order follows the catalog")
		}
		assert.Equal(t, map[int64]bool{1001: false, 1002: false, 1003: true, 1004: false, 1005: false}, savedFlags(results))

		mockedCache.AssertExpectations(t)
		mockedClient.AssertExpectations(t)
		mockedSaved.AssertExpectations(t)
	})

	t.Run("cache hit skips genius but reads current saved state", func(t *testing.T) {
		mockedCache := &mocks.MockCache{}
		mockedClient := &mocks.MockGeniusClient{}
		mockedSaved := &mocks.MockSavedSongs{}
		s := newService(t, mockedClient, mockedCache, mockedSaved)

		encoded, err := json.Marshal(adeleHits())
		require.NoError(t, err)

		mockedCache.On("Get", mock.Anything, "Adele").
			Return(string(encoded), nil).
			Once()
		mockedSaved.On("SavedGeniusIDs", mock.Anything, int64(7)).
			Return(map[int64]struct{}{1001: {}, 1005: {}}, nil).
			Once()

		results, err := s.Search(context.Background(), 7, "Adele")
		require.NoError(t, err)
		assert.Equal(t, map[int64]bool{1001: true, 1002: false, 1003: false, 1004: false, 1005: true}, savedFlags(results))

		mockedClient.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
		mockedCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cache unavailable falls through to genius", func(t *testing.T) {
		mockedCache := &mocks.MockCache{}
		mockedClient := &mocks.MockGeniusClient{}
		mockedSaved := &mocks.MockSavedSongs{}
		s := newService(t, mockedClient, mockedCache, mockedSaved)

		mockedCache.On("Get", mock.Anything, "Adele").
			Return("", domain.ErrCacheUnavailable).
			Once()
		mockedClient.On("Search", mock.Anything, "Adele").
			Return(adeleHits(), nil).
			Once()
		mockedCache.On("Set", mock.Anything, "Adele", mock.Anything, ttl).
			Return(domain.ErrCacheUnavailable).
			Once()
		mockedSaved.On("SavedGeniusIDs", mock.Anything, int64(7)).
			Return(map[int64]struct{}{}, nil).
			Once()

		results, err := s.Search(context.Background(), 7, "Adele")
		require.NoError(t, err)
		assert.Len(t, results, 5)
		mockedClient.AssertExpectations(t)
	})

	t.Run("undecodable cache entry is treated as a miss", func(t *testing.T) {
		mockedCache := &mocks.MockCache{}
		mockedClient := &mocks.MockGeniusClient{}
		mockedSaved := &mocks.MockSavedSongs{}
		s := newService(t, mockedClient, mockedCache, mockedSaved)

		mockedCache.On("Get", mock.Anything, "Adele").
			Return("{not json", nil).
			Once()
		mockedClient.On("Search", mock.Anything, "Adele").
			Return(adeleHits(), nil).
			Once()
		mockedCache.On("Set", mock.Anything, "Adele", mock.Anything, ttl).
			Return(nil).
			Once()
		mockedSaved.On("SavedGeniusIDs", mock.Anything, int64(7)).
			Return(map[int64]struct{}{}, nil).
			Once()

		_, err := s.Search(context.Background(), 7, "Adele")
		require.NoError(t, err)
		mockedClient.AssertExpectations(t)
	})

	t.Run("no results found", func(t *testing.T) {
		mockedCache := &mocks.MockCache{}
		mockedClient := &mocks.MockGeniusClient{}
		mockedSaved := &mocks.MockSavedSongs{}
		s := newService(t, mockedClient, mockedCache, mockedSaved)

		mockedCache.On("Get", mock.Anything, "zzzzqqq").
			Return("", domain.ErrCacheMiss).
			Once()
		mockedClient.On("Search", mock.Anything, "zzzzqqq").
			Return([]domain.SearchHit{}, nil).
			Once()

		_, err := s.Search(context.Background(), 7, "zzzzqqq")
		assert.ErrorIs(t, err, domain.ErrNoResults)
		assert.NotErrorIs(t, err, domain.ErrUpstream)
		mockedCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("genius client error", func(t *testing.T) {
		mockedCache := &mocks.MockCache{}
		mockedClient := &mocks.MockGeniusClient{}
		mockedSaved := &mocks.MockSavedSongs{}
		s := newService(t, mockedClient, mockedCache, mockedSaved)

		mockedCache.On("Get", mock.Anything, "Adele").
			Return("", domain.ErrCacheMiss).
			Once()
		mockedClient.On("Search", mock.Anything, "Adele").
			Return(nil, errors.New("connection reset")).
			Once()

		_, err := s.Search(context.Background(), 7, "Adele")
		assert.ErrorIs(t, err, domain.ErrUpstream)
		mockedSaved.AssertNotCalled(t, "SavedGeniusIDs", mock.Anything, mock.Anything)
	})

	t.Run("genius timeout keeps its kind", func(t *testing.T) {
		mockedCache := &mocks.MockCache{}
		mockedClient := &mocks.MockGeniusClient{}
		mockedSaved := &mocks.MockSavedSongs{}
		s := newService(t, mockedClient, mockedCache, mockedSaved)

		mockedCache.On("Get", mock.Anything, "Adele").
			Return("", domain.ErrCacheMiss).
			Once()
		mockedClient.On("Search", mock.Anything, "Adele").
			Return(nil, errors.Join(domain.ErrUpstream, domain.ErrUpstreamTimeout)).
			Once()

		_, err := s.Search(context.Background(), 7, "Adele")
		assert.ErrorIs(t, err, domain.ErrUpstreamTimeout)
		assert.ErrorIs(t, err, domain.ErrUpstream)
	})

	t.Run("store error", func(t *testing.T) {
		mockedCache := &mocks.MockCache{}
		mockedClient := &mocks.MockGeniusClient{}
		mockedSaved := &mocks.MockSavedSongs{}
		s := newService(t, mockedClient, mockedCache, mockedSaved)

		encoded, err := json.Marshal(adeleHits())
		require.NoError(t, err)

		mockedCache.On("Get", mock.Anything, "Adele").
			Return(string(encoded), nil).
			Once()
		mockedSaved.On("SavedGeniusIDs", mock.Anything, int64(7)).
			Return(nil, errors.New("pool closed")).
			Once()

		_, err = s.Search(context.Background(), 7, "Adele")
		assert.ErrorIs(t, err, domain.ErrStore)
	})
}

// countingGenius records how often the catalog is reached.
type countingGenius struct {
	calls int
	hits  []domain.SearchHit
}

func (g *countingGenius) Search(context.Context, string) ([]domain.SearchHit, error) {
	g.calls++
	return g.hits, nil
}

// memorySaved is a per-user saved set that tests mutate between searches.
type memorySaved map[int64]map[int64]struct{}

func (m memorySaved) SavedGeniusIDs(_ context.Context, userID int64) (map[int64]struct{}, error) {
	ids := make(map[int64]struct{}, len(m[userID]))
	for id := range m[userID] {
		ids[id] = struct{}{}
	}
	return ids, nil
}

func (m memorySaved) save(userID, geniusID int64) {
	if m[userID] == nil {
		m[userID] = map[int64]struct{}{}
	}
	m[userID][geniusID] = struct{}{}
}

func TestSearchService_WithRedisCache(t *testing.T) {
	ctx := context.Background()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	genius := &countingGenius{hits: adeleHits()}
	saved := memorySaved{}
	saved.save(1, 1003)

	s := newService(t, genius, redis.NewCache(client, ttl), saved)

	first, err := s.Search(ctx, 1, "Adele")
	require.NoError(t, err)
	assert.Equal(t, 1, genius.calls)
	assert.True(t, savedFlags(first)[1003])

	t.Run("second search within ttl is served from cache", func(t *testing.T) {
		second, err := s.Search(ctx, 1, "Adele")
		require.NoError(t, err)
		assert.Equal(t, 1, genius.calls)
		assert.Equal(t, first, second)
	})

	t.Run("flags reflect the store at response time", func(t *testing.T) {
		saved.save(1, 1005)

		results, err := s.Search(ctx, 1, "Adele")
		require.NoError(t, err)
		assert.Equal(t, 1, genius.calls)
		assert.True(t, savedFlags(results)[1005])
	})

	t.Run("saved for one user only", func(t *testing.T) {
		results, err := s.Search(ctx, 2, "Adele")
		require.NoError(t, err)
		for _, r := range results {
			assert.False(t, r.IsSaved)
		}
	})

	t.Run("key is case sensitive", func(t *testing.T) {
		_, err := s.Search(ctx, 1, "adele")
		require.NoError(t, err)
		assert.Equal(t, 2, genius.calls)
	})

	t.Run("expired entry reaches genius again", func(t *testing.T) {
		mr.FastForward(ttl + time.Second)

		_, err := s.Search(ctx, 1, "Adele")
		require.NoError(t, err)
		assert.Equal(t, 3, genius.calls)
	})
}
