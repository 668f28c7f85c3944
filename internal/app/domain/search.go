package domain

import "strings"

const geniusWebHost = "https://genius.com"

type Artist struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SearchHit is one entry of the catalog's hit list, as cached.
type SearchHit struct {
	Index  string `json:"index"`
	Type   string `json:"type"`
	Result Track  `json:"result"`
}

type Track struct {
	ID                    int64  `json:"id"`
	Title                 string `json:"title"`
	TitleWithFeatured     string `json:"title_with_featured"`
	FullTitle             string `json:"full_title"`
	ArtistNames           string `json:"artist_names"`
	PrimaryArtist         Artist `json:"primary_artist"`
	ReleaseDateForDisplay string `json:"release_date_for_display"`
	HeaderImageURL        string `json:"header_image_url"`
	SongArtImageURL       string `json:"song_art_image_url"`
	APIPath               string `json:"api_path"`
	Path                  string `json:"path"`
	URL                   string `json:"url"`
}

// PlaybackURL builds the embeddable player URL from the track's relative API path.
func (t Track) PlaybackURL() string {
	if t.APIPath == "" {
		return ""
	}
	return geniusWebHost + "/" + strings.TrimPrefix(t.APIPath, "/") + "/apple_music_player"
}

// SearchResult is a track annotated with whether the requesting user saved it.
type SearchResult struct {
	Track
	PlaybackURL string `json:"playback_url"`
	IsSaved     bool   `json:"isSaved"`
}

func NewSearchResult(t Track, saved bool) SearchResult {
	return SearchResult{
		Track:       t,
		PlaybackURL: t.PlaybackURL(),
		IsSaved:     saved,
	}
}
