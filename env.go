package main

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Env struct {
	Port string `env:"PORT" env-default:"3000"`

	LogFormat string `env:"LOG_FORMAT" env-default:"json"`
	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`

	DatabaseURL string `env:"DATABASE_URL" env-required:"true"`

	RedisURL          string        `env:"REDIS_URL" env-default:"redis://localhost:6379/0"`
	RedisMaxRetries   int           `env:"REDIS_MAX_RETRIES" env-default:"20"`
	RedisRetryBackoff time.Duration `env:"REDIS_RETRY_BACKOFF" env-default:"500ms"`

	GeniusHost              string        `env:"GENIUS_HOST" env-default:"https://api.genius.com"`
	GeniusClientAccessToken string        `env:"GENIUS_CLIENT_ACCESS_TOKEN" env-required:"true"`
	GeniusTimeout           time.Duration `env:"GENIUS_TIMEOUT" env-default:"10s"`

	// Seconds a search result list stays cached.
	DefaultExpirationTime int `env:"DEFAULT_EXPIRATION_TIME" env-default:"3600"`

	JWTSecret  string        `env:"JWT_SECRET" env-required:"true"`
	JWTExpiry  time.Duration `env:"JWT_EXPIRY" env-default:"2h"`
	BcryptCost int           `env:"BCRYPT_COST" env-default:"10"`

	CorsAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" env-separator:"," env-default:"http://localhost:3001"`

	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

var env Env

func LoadEnv() error {
	err := godotenv.Load()
	if err != nil {
		logrus.WithError(err).Warn("Failed to load env variables from file")
	}

	return cleanenv.ReadEnv(&env)
}

func GetEnv() *Env {
	return &env
}

func (e *Env) CacheTTL() time.Duration {
	return time.Duration(e.DefaultExpirationTime) * time.Second
}

// configureLogger applies LOG_FORMAT and LOG_LEVEL to the standard logrus
// logger. An unknown level falls back to info.
func configureLogger(e *Env) *logrus.Logger {
	logger := logrus.StandardLogger()

	if e.LogFormat == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(e.LogLevel)
	if err != nil {
		logger.WithError(err).Warnf("Unknown log level %q, using info", e.LogLevel)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
