package server

import (
	"github.com/gin-gonic/gin"
)

type SearchHandler interface {
	Search(ctx *gin.Context)
}

type AuthHandler interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
}

type LibraryHandler interface {
	SaveSong(ctx *gin.Context)
	DeleteSong(ctx *gin.Context)
	PlaylistSongs(ctx *gin.Context)
	ListPlaylists(ctx *gin.Context)
	CreatePlaylist(ctx *gin.Context)
}

type HealthHandler interface {
	Check(ctx *gin.Context)
}

type Handlers struct {
	Search  SearchHandler
	Auth    AuthHandler
	Library LibraryHandler
	Health  HealthHandler
}
