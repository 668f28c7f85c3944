package library

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/soundshelf/soundshelf-api/internal/app/services/library"
	"github.com/soundshelf/soundshelf-api/internal/infra/http/handlers/respond"
	"go.opentelemetry.io/otel/attribute"
)

type saveSongRequest struct {
	Title       string `json:"title" binding:"required"`
	Singer      string `json:"singer"`
	Cover       string `json:"cover"`
	CreatedDate string `json:"created_date"`
	Description string `json:"description"`
	URL         string `json:"url"`
	ID          int64  `json:"id" binding:"required,gt=0"`
	PlaylistID  int64  `json:"playlistId" binding:"required,gt=0"`
}

func (h *LibraryHandler) SaveSong(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "LibraryHandler.SaveSong")
	defer span.End()

	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req saveSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BindError(c, h.logger, err)
		return
	}

	song, err := h.libraryService.SaveSong(ctx, userID, library.SaveSongInput{
		Title:       req.Title,
		Singer:      req.Singer,
		Cover:       req.Cover,
		CreatedDate: req.CreatedDate,
		Description: req.Description,
		URL:         req.URL,
		GeniusID:    req.ID,
		PlaylistID:  req.PlaylistID,
	})
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Song was saved successfully!",
		"song":    song,
	})
}

// DeleteSong takes the genius id in the path.
func (h *LibraryHandler) DeleteSong(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "LibraryHandler.DeleteSong")
	defer span.End()

	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	var p idParam
	if err := c.ShouldBindUri(&p); err != nil {
		respond.BindError(c, h.logger, err)
		return
	}
	span.SetAttributes(attribute.Int64("song.genius_id", p.ID))

	if err := h.libraryService.DeleteSong(ctx, userID, p.ID); err != nil {
		respond.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Song deleted successfully"})
}

// PlaylistSongs takes the playlist id in the path.
func (h *LibraryHandler) PlaylistSongs(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "LibraryHandler.PlaylistSongs")
	defer span.End()

	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	var p idParam
	if err := c.ShouldBindUri(&p); err != nil {
		respond.BindError(c, h.logger, err)
		return
	}
	span.SetAttributes(attribute.Int64("playlist.id", p.ID))

	songs, err := h.libraryService.ListPlaylistSongs(ctx, userID, p.ID)
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"songs": songs})
}
