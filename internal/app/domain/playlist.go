package domain

import "time"

// DefaultPlaylistName is the playlist every user gets on registration.
const DefaultPlaylistName = "Favorites"

type Playlist struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
