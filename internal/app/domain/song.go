package domain

import "time"

// Song is one user's saved copy of a search result inside one playlist.
type Song struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Singer      string    `json:"singer"`
	CoverImage  string    `json:"cover_image"`
	UserID      int64     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	SongURL     string    `json:"song_url"`
	GeniusID    int64     `json:"genius_id"`
	PlaylistID  int64     `json:"playlist_id"`
	ReleaseDate string    `json:"release_date"`
}
