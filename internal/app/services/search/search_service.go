package search

import (
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type SearchService struct {
	tracer       trace.Tracer
	logger       logrus.FieldLogger
	geniusClient GeniusClient
	cache        Cache
	savedSongs   SavedSongs
	ttl          time.Duration
	lookups      metric.Int64Counter
}

func New(
	tracer trace.Tracer,
	meter metric.Meter,
	logger logrus.FieldLogger,
	geniusClient GeniusClient,
	cache Cache,
	savedSongs SavedSongs,
	ttl time.Duration,
) (SearchService, error) {
	lookups, err := meter.Int64Counter("search.cache.lookups",
		metric.WithDescription("Search cache lookups by result"),
	)
	if err != nil {
		return SearchService{}, err
	}

	return SearchService{
		tracer:       tracer,
		logger:       logger,
		geniusClient: geniusClient,
		cache:        cache,
		savedSongs:   savedSongs,
		ttl:          ttl,
		lookups:      lookups,
	}, nil
}
