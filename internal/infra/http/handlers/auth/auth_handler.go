package auth

import (
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

type AuthHandler struct {
	tracer      trace.Tracer
	logger      logrus.FieldLogger
	authService AuthService
}

func New(
	tracer trace.Tracer,
	logger logrus.FieldLogger,
	authService AuthService,
) *AuthHandler {
	return &AuthHandler{
		tracer:      tracer,
		logger:      logger,
		authService: authService,
	}
}
