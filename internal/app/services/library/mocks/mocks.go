package mocks

import (
	"context"

	"github.com/soundshelf/soundshelf-api/internal/app/domain"
	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) SaveSong(ctx context.Context, song domain.Song) (domain.Song, error) {
	args := m.Called(ctx, song)
	return args.Get(0).(domain.Song), args.Error(1)
}

func (m *MockStore) DeleteSong(ctx context.Context, userID, geniusID int64) (int64, error) {
	args := m.Called(ctx, userID, geniusID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) ListPlaylists(ctx context.Context, userID int64) ([]domain.Playlist, error) {
	args := m.Called(ctx, userID)
	playlists, _ := args.Get(0).([]domain.Playlist)
	return playlists, args.Error(1)
}

func (m *MockStore) CreatePlaylist(ctx context.Context, userID int64, name string) (domain.Playlist, error) {
	args := m.Called(ctx, userID, name)
	return args.Get(0).(domain.Playlist), args.Error(1)
}

func (m *MockStore) ListPlaylistSongs(ctx context.Context, userID, playlistID int64) ([]domain.Song, error) {
	args := m.Called(ctx, userID, playlistID)
	songs, _ := args.Get(0).([]domain.Song)
	return songs, args.Error(1)
}
