package library

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/soundshelf/soundshelf-api/internal/app/domain"
	"github.com/soundshelf/soundshelf-api/internal/infra/http/handlers/respond"
	"github.com/soundshelf/soundshelf-api/internal/infra/http/middleware"
	"go.opentelemetry.io/otel/trace"
)

type LibraryHandler struct {
	tracer         trace.Tracer
	logger         logrus.FieldLogger
	libraryService LibraryService
}

func New(
	tracer trace.Tracer,
	logger logrus.FieldLogger,
	libraryService LibraryService,
) *LibraryHandler {
	return &LibraryHandler{
		tracer:         tracer,
		logger:         logger,
		libraryService: libraryService,
	}
}

type idParam struct {
	ID int64 `uri:"id" binding:"required,gt=0"`
}

// currentUser answers 401 itself when the auth middleware did not run.
func (h *LibraryHandler) currentUser(c *gin.Context) (int64, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respond.Error(c, h.logger, domain.ErrUnauthorized)
	}
	return userID, ok
}
