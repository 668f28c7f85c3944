package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/soundshelf/soundshelf-api/internal/app/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Search returns the catalog hits for query, each flagged with whether userID
// already saved it. The cache key is the query exactly as received.
func (s SearchService) Search(ctx context.Context, userID int64, query string) ([]domain.SearchResult, error) {
	ctx, span := s.tracer.Start(ctx, "SearchService.Search")
	defer span.End()

	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: search query is required", domain.ErrValidation)
	}

	hits, hit := s.cachedHits(ctx, query)
	span.SetAttributes(attribute.Bool("cache.hit", hit))

	if !hit {
		var err error
		hits, err = s.geniusClient.Search(ctx, query)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			if errors.Is(err, domain.ErrUpstream) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %s", domain.ErrUpstream, err.Error())
		}
		if len(hits) == 0 {
			return nil, domain.ErrNoResults
		}

		s.storeHits(ctx, query, hits)
	}

	// Read after the hit list is settled so flags reflect the store now.
	saved, err := s.savedSongs.SavedGeniusIDs(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("%w: %s", domain.ErrStore, err.Error())
	}

	results := make([]domain.SearchResult, 0, len(hits))
	for _, h := range hits {
		_, isSaved := saved[h.Result.ID]
		results = append(results, domain.NewSearchResult(h.Result, isSaved))
	}

	return results, nil
}

func (s SearchService) cachedHits(ctx context.Context, query string) ([]domain.SearchHit, bool) {
	val, err := s.cache.Get(ctx, query)
	switch {
	case err == nil && val != "":
		var hits []domain.SearchHit
		if err := json.Unmarshal([]byte(val), &hits); err != nil {
			s.logger.WithError(err).Warn("Discarding undecodable cache entry")
			s.countLookup(ctx, "miss")
			return nil, false
		}
		s.countLookup(ctx, "hit")
		return hits, true
	case err == nil, errors.Is(err, domain.ErrCacheMiss):
		s.countLookup(ctx, "miss")
	default:
		s.logger.WithError(err).Warn("Cache unavailable, bypassing")
		s.countLookup(ctx, "unavailable")
	}

	return nil, false
}

func (s SearchService) storeHits(ctx context.Context, query string, hits []domain.SearchHit) {
	marshaledHits, err := json.Marshal(hits)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to encode search hits for cache")
		return
	}

	err = s.cache.Set(ctx, query, marshaledHits, s.ttl)
	if err != nil {
		trace.SpanFromContext(ctx).RecordError(err)
		s.logger.WithError(err).Warn("Failed to cache search hits")
	}
}

func (s SearchService) countLookup(ctx context.Context, result string) {
	s.lookups.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}
