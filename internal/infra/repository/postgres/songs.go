package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/soundshelf/soundshelf-api/internal/app/domain"
)

// SaveSong inserts one row for the song. It does not look for an existing
// row with the same genius id: saving twice yields two rows. The insert only
// happens when the target playlist belongs to song.UserID.
func (s *Store) SaveSong(ctx context.Context, song domain.Song) (domain.Song, error) {
	err := s.db.QueryRow(ctx,
		`INSERT INTO songs (name, description, singer, cover_image, user_id, song_url, genius_id, playlist_id, release_date)
		SELECT $1::text, $2::text, $3::text, $4::text, $5::bigint, $6::text, $7::bigint, $8::bigint, $9::text
		WHERE EXISTS (SELECT 1 FROM playlists WHERE id = $8::bigint AND user_id = $5::bigint)
		RETURNING id, created_at`,
		song.Name,
		song.Description,
		song.Singer,
		song.CoverImage,
		song.UserID,
		song.SongURL,
		song.GeniusID,
		song.PlaylistID,
		song.ReleaseDate,
	).Scan(&song.ID, &song.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Song{}, domain.ErrPlaylistNotFound
		}
		return domain.Song{}, fmt.Errorf("insert song: %w", err)
	}

	return song, nil
}

// DeleteSong removes every row of geniusID saved by userID.
func (s *Store) DeleteSong(ctx context.Context, userID, geniusID int64) (int64, error) {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM songs WHERE user_id = $1 AND genius_id = $2`,
		userID, geniusID,
	)
	if err != nil {
		return 0, fmt.Errorf("delete song: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return 0, domain.ErrSongNotFound
	}

	return tag.RowsAffected(), nil
}

func (s *Store) SavedGeniusIDs(ctx context.Context, userID int64) (map[int64]struct{}, error) {
	rows, err := s.db.Query(ctx,
		`SELECT DISTINCT genius_id FROM songs WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("select saved genius ids: %w", err)
	}
	defer rows.Close()

	ids := make(map[int64]struct{})
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan genius id: %w", err)
		}
		ids[id] = struct{}{}
	}

	return ids, rows.Err()
}
