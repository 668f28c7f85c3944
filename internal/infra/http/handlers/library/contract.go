package library

import (
	"context"

	"github.com/soundshelf/soundshelf-api/internal/app/domain"
	"github.com/soundshelf/soundshelf-api/internal/app/services/library"
)

type LibraryService interface {
	SaveSong(ctx context.Context, userID int64, in library.SaveSongInput) (domain.Song, error)
	DeleteSong(ctx context.Context, userID, geniusID int64) error
	ListPlaylists(ctx context.Context, userID int64) ([]domain.Playlist, error)
	CreatePlaylist(ctx context.Context, userID int64, name string) (domain.Playlist, error)
	ListPlaylistSongs(ctx context.Context, userID, playlistID int64) ([]domain.Song, error)
}
