package search

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/soundshelf/soundshelf-api/internal/app/domain"
	"github.com/soundshelf/soundshelf-api/internal/infra/http/handlers/respond"
	"github.com/soundshelf/soundshelf-api/internal/infra/http/middleware"
	"go.opentelemetry.io/otel/attribute"
)

type searchRequest struct {
	SearchQuery string `form:"searchQuery" binding:"required"`
}

func (h *SearchHandler) Search(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "SearchHandler.Search")
	defer span.End()

	userID, ok := middleware.UserID(c)
	if !ok {
		respond.Error(c, h.logger, domain.ErrUnauthorized)
		return
	}

	var req searchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respond.BindError(c, h.logger, err)
		return
	}
	span.SetAttributes(attribute.String("search.query", req.SearchQuery))

	results, err := h.searchService.Search(ctx, userID, req.SearchQuery)
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, results)
}
