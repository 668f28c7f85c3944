package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/soundshelf/soundshelf-api/internal/app/domain"
)

type Config struct {
	URL          string
	MaxRetries   int
	RetryBackoff time.Duration
}

// Connect pings Redis until it answers, waiting attempt*RetryBackoff between
// tries. After MaxRetries failed retries it gives up with ErrCacheUnavailable.
func Connect(ctx context.Context, cfg Config, logger logrus.FieldLogger) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL: %w", err)
	}

	client := redis.NewClient(opts)

	for attempt := 1; ; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, opTimeout)
		err = client.Ping(pingCtx).Err()
		cancel()
		if err == nil {
			return client, nil
		}

		if attempt > cfg.MaxRetries {
			_ = client.Close()
			return nil, fmt.Errorf("%w: gave up after %d attempts: %s", domain.ErrCacheUnavailable, attempt, err.Error())
		}

		wait := time.Duration(attempt) * cfg.RetryBackoff
		logger.WithError(err).WithFields(logrus.Fields{
			"attempt": attempt,
			"wait":    wait.String(),
		}).Warn("Redis not reachable, retrying")

		select {
		case <-time.After(wait):
		case <-ctx.Done():
			_ = client.Close()
			return nil, ctx.Err()
		}
	}
}
