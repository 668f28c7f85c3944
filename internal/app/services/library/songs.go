package library

import (
	"context"
	"fmt"
	"strings"

	"github.com/soundshelf/soundshelf-api/internal/app/domain"
	"go.opentelemetry.io/otel/attribute"
)

type SaveSongInput struct {
	Title       string `validate:"required"`
	Singer      string
	Cover       string
	CreatedDate string
	Description string
	URL         string
	GeniusID    int64 `validate:"required,gt=0"`
	PlaylistID  int64 `validate:"required,gt=0"`
}

// SaveSong stores the song in one of the user's playlists. Saving the same
// genius id twice stores it twice.
func (s LibraryService) SaveSong(ctx context.Context, userID int64, in SaveSongInput) (domain.Song, error) {
	ctx, span := s.tracer.Start(ctx, "LibraryService.SaveSong")
	defer span.End()

	in.Title = strings.TrimSpace(in.Title)
	if err := s.validate.Struct(in); err != nil {
		return domain.Song{}, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}

	span.SetAttributes(
		attribute.Int64("user.id", userID),
		attribute.Int64("song.genius_id", in.GeniusID),
		attribute.Int64("playlist.id", in.PlaylistID),
	)

	song, err := s.store.SaveSong(ctx, domain.Song{
		Name:        in.Title,
		Description: in.Description,
		Singer:      in.Singer,
		CoverImage:  in.Cover,
		UserID:      userID,
		SongURL:     in.URL,
		GeniusID:    in.GeniusID,
		PlaylistID:  in.PlaylistID,
		ReleaseDate: in.CreatedDate,
	})
	if err != nil {
		return domain.Song{}, storeErr(span, err)
	}

	return song, nil
}

// DeleteSong removes the user's saved rows for geniusID.
func (s LibraryService) DeleteSong(ctx context.Context, userID, geniusID int64) error {
	ctx, span := s.tracer.Start(ctx, "LibraryService.DeleteSong")
	defer span.End()

	if geniusID <= 0 {
		return fmt.Errorf("%w: song id must be positive", domain.ErrValidation)
	}

	deleted, err := s.store.DeleteSong(ctx, userID, geniusID)
	if err != nil {
		return storeErr(span, err)
	}

	span.SetAttributes(attribute.Int64("songs.deleted", deleted))
	return nil
}
