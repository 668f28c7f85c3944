package search

import (
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

type SearchHandler struct {
	tracer        trace.Tracer
	logger        logrus.FieldLogger
	searchService SearchService
}

func New(
	tracer trace.Tracer,
	logger logrus.FieldLogger,
	searchService SearchService,
) *SearchHandler {
	return &SearchHandler{
		tracer:        tracer,
		logger:        logger,
		searchService: searchService,
	}
}
