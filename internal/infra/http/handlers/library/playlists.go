package library

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/soundshelf/soundshelf-api/internal/infra/http/handlers/respond"
)

type createPlaylistRequest struct {
	Name string `json:"playlist_name" binding:"required,max=100"`
}

func (h *LibraryHandler) ListPlaylists(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "LibraryHandler.ListPlaylists")
	defer span.End()

	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	playlists, err := h.libraryService.ListPlaylists(ctx, userID)
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"playlists": playlists})
}

// CreatePlaylist answers with the user's full list so clients can redraw it.
func (h *LibraryHandler) CreatePlaylist(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "LibraryHandler.CreatePlaylist")
	defer span.End()

	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req createPlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BindError(c, h.logger, err)
		return
	}

	if _, err := h.libraryService.CreatePlaylist(ctx, userID, req.Name); err != nil {
		respond.Error(c, h.logger, err)
		return
	}

	playlists, err := h.libraryService.ListPlaylists(ctx, userID)
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Playlist was created successfully!",
		"playlists": playlists,
	})
}
