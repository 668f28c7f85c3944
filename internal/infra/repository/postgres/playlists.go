package postgres

import (
	"context"
	"fmt"

	"github.com/soundshelf/soundshelf-api/internal/app/domain"
)

func (s *Store) ListPlaylists(ctx context.Context, userID int64) ([]domain.Playlist, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, user_id, created_at FROM playlists WHERE user_id = $1 ORDER BY created_at, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("select playlists: %w", err)
	}
	defer rows.Close()

	playlists := []domain.Playlist{}
	for rows.Next() {
		var p domain.Playlist
		if err := rows.Scan(&p.ID, &p.Name, &p.UserID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan playlist: %w", err)
		}
		playlists = append(playlists, p)
	}

	return playlists, rows.Err()
}

func (s *Store) CreatePlaylist(ctx context.Context, userID int64, name string) (domain.Playlist, error) {
	p := domain.Playlist{Name: name, UserID: userID}
	err := s.db.QueryRow(ctx,
		`INSERT INTO playlists (name, user_id) VALUES ($1, $2) RETURNING id, created_at`,
		name, userID,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return domain.Playlist{}, fmt.Errorf("insert playlist: %w", err)
	}

	return p, nil
}

// ListPlaylistSongs returns the songs of a playlist owned by userID, newest first.
func (s *Store) ListPlaylistSongs(ctx context.Context, userID, playlistID int64) ([]domain.Song, error) {
	var owned bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM playlists WHERE id = $1 AND user_id = $2)`,
		playlistID, userID,
	).Scan(&owned)
	if err != nil {
		return nil, fmt.Errorf("check playlist owner: %w", err)
	}
	if !owned {
		return nil, domain.ErrPlaylistNotFound
	}

	rows, err := s.db.Query(ctx,
		`SELECT id, name, description, singer, cover_image, user_id, created_at, song_url, genius_id, playlist_id, release_date
		FROM songs
		WHERE playlist_id = $1 AND user_id = $2
		ORDER BY created_at DESC, id DESC`,
		playlistID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("select songs: %w", err)
	}
	defer rows.Close()

	songs := []domain.Song{}
	for rows.Next() {
		var song domain.Song
		err := rows.Scan(
			&song.ID,
			&song.Name,
			&song.Description,
			&song.Singer,
			&song.CoverImage,
			&song.UserID,
			&song.CreatedAt,
			&song.SongURL,
			&song.GeniusID,
			&song.PlaylistID,
			&song.ReleaseDate,
		)
		if err != nil {
			return nil, fmt.Errorf("scan song: %w", err)
		}
		songs = append(songs, song)
	}

	return songs, rows.Err()
}
