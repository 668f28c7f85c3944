package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/soundshelf/soundshelf-api/internal/app/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (pgxmock.PgxPoolIface, *Store) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})

	return mock, New(mock)
}

func TestStore_CreateUserWithDefaultPlaylist(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("commits user and favorites together", func(t *testing.T) {
		mock, store := setupMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (name, email, password)`)).
			WithArgs("Ada", "ada@example.com", "hash").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(42), now))
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO playlists (name, user_id)`)).
			WithArgs("Favorites", int64(42)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		user, err := store.CreateUserWithDefaultPlaylist(ctx, "Ada", "ada@example.com", "hash")
		require.NoError(t, err)
		assert.Equal(t, int64(42), user.ID)
		assert.Equal(t, "ada@example.com", user.Email)
	})

	t.Run("playlist failure rolls back the user", func(t *testing.T) {
		mock, store := setupMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (name, email, password)`)).
			WithArgs("Ada", "ada@example.com", "hash").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(42), now))
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO playlists (name, user_id)`)).
			WithArgs("Favorites", int64(42)).
			WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		_, err := store.CreateUserWithDefaultPlaylist(ctx, "Ada", "ada@example.com", "hash")
		assert.Error(t, err)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mock, store := setupMock(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (name, email, password)`)).
			WithArgs("Ada", "ada@example.com", "hash").
			WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectRollback()

		_, err := store.CreateUserWithDefaultPlaylist(ctx, "Ada", "ada@example.com", "hash")
		assert.ErrorIs(t, err, domain.ErrEmailTaken)
	})
}

func TestStore_GetUserByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock, store := setupMock(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, email, password, created_at FROM users WHERE email = $1`)).
			WithArgs("ada@example.com").
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "password", "created_at"}).
				AddRow(int64(42), "Ada", "ada@example.com", "hash", time.Now()))

		user, err := store.GetUserByEmail(ctx, "ada@example.com")
		require.NoError(t, err)
		assert.Equal(t, int64(42), user.ID)
		assert.Equal(t, "hash", user.PasswordHash)
	})

	t.Run("missing", func(t *testing.T) {
		mock, store := setupMock(t)

		mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE email = $1`)).
			WithArgs("nobody@example.com").
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "password", "created_at"}))

		_, err := store.GetUserByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestStore_Songs(t *testing.T) {
	ctx := context.Background()

	t.Run("save song into owned playlist", func(t *testing.T) {
		mock, store := setupMock(t)

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO songs`)).
			WithArgs("Hello", "desc", "Adele", "cover.jpg", int64(7), "https://genius.com/songs/1003/apple_music_player", int64(1003), int64(3), "October 23, 2015").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(11), time.Now()))

		song, err := store.SaveSong(ctx, domain.Song{
			Name:        "Hello",
			Description: "desc",
			Singer:      "Adele",
			CoverImage:  "cover.jpg",
			UserID:      7,
			SongURL:     "https://genius.com/songs/1003/apple_music_player",
			GeniusID:    1003,
			PlaylistID:  3,
			ReleaseDate: "October 23, 2015",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(11), song.ID)
	})

	t.Run("save song into foreign playlist", func(t *testing.T) {
		mock, store := setupMock(t)

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO songs`)).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), int64(7), pgxmock.AnyArg(), int64(1003), int64(99), pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}))

		_, err := store.SaveSong(ctx, domain.Song{Name: "Hello", UserID: 7, GeniusID: 1003, PlaylistID: 99})
		assert.ErrorIs(t, err, domain.ErrPlaylistNotFound)
	})

	t.Run("delete existing", func(t *testing.T) {
		mock, store := setupMock(t)

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM songs WHERE user_id = $1 AND genius_id = $2`)).
			WithArgs(int64(7), int64(1003)).
			WillReturnResult(pgxmock.NewResult("DELETE", 2))

		n, err := store.DeleteSong(ctx, 7, 1003)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("delete missing", func(t *testing.T) {
		mock, store := setupMock(t)

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM songs`)).
			WithArgs(int64(7), int64(404)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		_, err := store.DeleteSong(ctx, 7, 404)
		assert.ErrorIs(t, err, domain.ErrSongNotFound)
	})

	t.Run("saved genius ids", func(t *testing.T) {
		mock, store := setupMock(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT DISTINCT genius_id FROM songs WHERE user_id = $1`)).
			WithArgs(int64(7)).
			WillReturnRows(pgxmock.NewRows([]string{"genius_id"}).AddRow(int64(1003)).AddRow(int64(1005)))

		ids, err := store.SavedGeniusIDs(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, map[int64]struct{}{1003: {}, 1005: {}}, ids)
	})
}

func TestStore_Playlists(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("list", func(t *testing.T) {
		mock, store := setupMock(t)

		mock.ExpectQuery(regexp.QuoteMeta(`FROM playlists WHERE user_id = $1 ORDER BY created_at, id`)).
			WithArgs(int64(7)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "user_id", "created_at"}).
				AddRow(int64(1), "Favorites", int64(7), now).
				AddRow(int64(2), "Road trip", int64(7), now))

		playlists, err := store.ListPlaylists(ctx, 7)
		require.NoError(t, err)
		require.Len(t, playlists, 2)
		assert.Equal(t, "Favorites", playlists[0].Name)
	})

	t.Run("create", func(t *testing.T) {
		mock, store := setupMock(t)

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO playlists (name, user_id) VALUES ($1, $2) RETURNING id, created_at`)).
			WithArgs("Road trip", int64(7)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(2), now))

		p, err := store.CreatePlaylist(ctx, 7, "Road trip")
		require.NoError(t, err)
		assert.Equal(t, int64(2), p.ID)
		assert.Equal(t, int64(7), p.UserID)
	})

	t.Run("songs of foreign playlist", func(t *testing.T) {
		mock, store := setupMock(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS`)).
			WithArgs(int64(3), int64(7)).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

		_, err := store.ListPlaylistSongs(ctx, 7, 3)
		assert.ErrorIs(t, err, domain.ErrPlaylistNotFound)
	})

	t.Run("songs of owned playlist", func(t *testing.T) {
		mock, store := setupMock(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS`)).
			WithArgs(int64(3), int64(7)).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectQuery(regexp.QuoteMeta(`FROM songs`)).
			WithArgs(int64(3), int64(7)).
			WillReturnRows(pgxmock.NewRows([]string{
				"id", "name", "description", "singer", "cover_image", "user_id",
				"created_at", "song_url", "genius_id", "playlist_id", "release_date",
			}).AddRow(int64(11), "Hello", "", "Adele", "", int64(7), now, "", int64(1003), int64(3), ""))

		songs, err := store.ListPlaylistSongs(ctx, 7, 3)
		require.NoError(t, err)
		require.Len(t, songs, 1)
		assert.Equal(t, int64(1003), songs[0].GeniusID)
	})
}

func TestMigrateURL(t *testing.T) {
	tests := map[string]string{
		"postgres://u:p@db:5432/app?sslmode=disable":   "pgx5://u:p@db:5432/app?sslmode=disable",
		"postgresql://u:p@db:5432/app?sslmode=disable": "pgx5://u:p@db:5432/app?sslmode=disable",
		"pgx5://u:p@db:5432/app":                       "pgx5://u:p@db:5432/app",
	}

	for in, want := range tests {
		assert.Equal(t, want, migrateURL(in), in)
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Contains(t, names, "000001_init.up.sql")
	assert.Contains(t, names, "000001_init.down.sql")
}
