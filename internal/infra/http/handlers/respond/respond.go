package respond

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/soundshelf/soundshelf-api/internal/app/domain"
	"github.com/soundshelf/soundshelf-api/internal/infra/http/middleware"
)

type mapping struct {
	err     error
	status  int
	kind    string
	message string
}

// Order matters: a timeout also wraps ErrUpstream.
var mappings = []mapping{
	{domain.ErrValidation, http.StatusBadRequest, "validation", "Invalid request"},
	{domain.ErrInvalidCredentials, http.StatusBadRequest, "auth", "Invalid credentials!"},
	{domain.ErrUnauthorized, http.StatusUnauthorized, "unauthorized", "Unauthorized"},
	{domain.ErrSongNotFound, http.StatusNotFound, "not_found", "Song not found"},
	{domain.ErrPlaylistNotFound, http.StatusNotFound, "not_found", "Playlist not found"},
	{domain.ErrNoResults, http.StatusNotFound, "no_results", "No results found"},
	{domain.ErrEmailTaken, http.StatusConflict, "conflict", "Email is already registered"},
	{domain.ErrUpstreamTimeout, http.StatusGatewayTimeout, "upstream_timeout", "Music catalog timed out"},
	{domain.ErrUpstream, http.StatusBadGateway, "upstream", "Music catalog is unavailable"},
	{domain.ErrStore, http.StatusInternalServerError, "store", "Something went wrong"},
}

// Error logs err with the request context and writes the matching status
// with a generic body. Unknown errors become a 500.
func Error(c *gin.Context, logger logrus.FieldLogger, err error) {
	status, kind, message := http.StatusInternalServerError, "internal", "Something went wrong"
	for _, m := range mappings {
		if errors.Is(err, m.err) {
			status, kind, message = m.status, m.kind, m.message
			break
		}
	}

	entry := logger.WithError(err).WithFields(logrus.Fields{
		"request_id": middleware.GetRequestID(c),
		"kind":       kind,
		"status":     status,
	})
	if userID, ok := middleware.UserID(c); ok {
		entry = entry.WithField("user_id", userID)
	}
	if status >= http.StatusInternalServerError {
		entry.Error("Request failed")
	} else {
		entry.Info("Request rejected")
	}

	c.AbortWithStatusJSON(status, gin.H{"message": message, "kind": kind})
}

// BindError answers a request whose body or query did not bind. Validator
// failures list the offending fields.
func BindError(c *gin.Context, logger logrus.FieldLogger, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
		}
		logger.WithField("request_id", middleware.GetRequestID(c)).
			WithField("fields", fields).
			Info("Request rejected")
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request: " + strings.Join(fields, ", "),
			"kind":    "validation",
		})
		return
	}

	Error(c, logger, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error()))
}
