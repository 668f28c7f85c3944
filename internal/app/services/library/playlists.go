package library

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/soundshelf/soundshelf-api/internal/app/domain"
)

func (s LibraryService) ListPlaylists(ctx context.Context, userID int64) ([]domain.Playlist, error) {
	ctx, span := s.tracer.Start(ctx, "LibraryService.ListPlaylists")
	defer span.End()

	playlists, err := s.store.ListPlaylists(ctx, userID)
	if err != nil {
		return nil, storeErr(span, err)
	}

	return playlists, nil
}

func (s LibraryService) CreatePlaylist(ctx context.Context, userID int64, name string) (domain.Playlist, error) {
	ctx, span := s.tracer.Start(ctx, "LibraryService.CreatePlaylist")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Playlist{}, fmt.Errorf("%w: playlist name is required", domain.ErrValidation)
	}
	if utf8.RuneCountInString(name) > MaxPlaylistNameLength {
		return domain.Playlist{}, fmt.Errorf("%w: playlist name exceeds %d characters", domain.ErrValidation, MaxPlaylistNameLength)
	}

	playlist, err := s.store.CreatePlaylist(ctx, userID, name)
	if err != nil {
		return domain.Playlist{}, storeErr(span, err)
	}

	return playlist, nil
}

// ListPlaylistSongs returns the songs of playlistID, newest first. A playlist
// owned by someone else is reported as not found.
func (s LibraryService) ListPlaylistSongs(ctx context.Context, userID, playlistID int64) ([]domain.Song, error) {
	ctx, span := s.tracer.Start(ctx, "LibraryService.ListPlaylistSongs")
	defer span.End()

	if playlistID <= 0 {
		return nil, fmt.Errorf("%w: playlist id must be positive", domain.ErrValidation)
	}

	songs, err := s.store.ListPlaylistSongs(ctx, userID, playlistID)
	if err != nil {
		return nil, storeErr(span, err)
	}

	return songs, nil
}
