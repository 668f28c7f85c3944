package mocks

import (
	"context"

	"github.com/soundshelf/soundshelf-api/internal/app/domain"
	"github.com/soundshelf/soundshelf-api/internal/app/services/library"
	"github.com/stretchr/testify/mock"
)

type MockLibraryService struct {
	mock.Mock
}

func (m *MockLibraryService) SaveSong(ctx context.Context, userID int64, in library.SaveSongInput) (domain.Song, error) {
	args := m.Called(ctx, userID, in)
	return args.Get(0).(domain.Song), args.Error(1)
}

func (m *MockLibraryService) DeleteSong(ctx context.Context, userID, geniusID int64) error {
	args := m.Called(ctx, userID, geniusID)
	return args.Error(0)
}

func (m *MockLibraryService) ListPlaylists(ctx context.Context, userID int64) ([]domain.Playlist, error) {
	args := m.Called(ctx, userID)
	playlists, _ := args.Get(0).([]domain.Playlist)
	return playlists, args.Error(1)
}

func (m *MockLibraryService) CreatePlaylist(ctx context.Context, userID int64, name string) (domain.Playlist, error) {
	args := m.Called(ctx, userID, name)
	return args.Get(0).(domain.Playlist), args.Error(1)
}

func (m *MockLibraryService) ListPlaylistSongs(ctx context.Context, userID, playlistID int64) ([]domain.Song, error) {
	args := m.Called(ctx, userID, playlistID)
	songs, _ := args.Get(0).([]domain.Song)
	return songs, args.Error(1)
}
