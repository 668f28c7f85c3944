package domain

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrSongNotFound       = errors.New("song not found")
	ErrPlaylistNotFound   = errors.New("playlist not found")
	ErrNoResults          = errors.New("no results found")
	ErrUpstream           = errors.New("genius client error")
	ErrUpstreamTimeout    = errors.New("genius client timeout")
	ErrStore              = errors.New("store error")

	// Cache errors never reach a client.
	ErrCacheMiss        = errors.New("cache: key not found")
	ErrCacheUnavailable = errors.New("cache: unavailable")
)
