package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/soundshelf/soundshelf-api/internal/infra/http/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const serviceName = "soundshelf-api"

type Server struct {
	*http.Server
}

// New wires the routes. requireAuth guards every /api route except register
// and login. A nil metrics handler leaves /metrics unrouted.
func New(
	cfg Config,
	logger logrus.FieldLogger,
	h Handlers,
	requireAuth gin.HandlerFunc,
	metrics http.Handler,
) (*Server, error) {
	httpPort, err := strconv.Atoi(cfg.Port)
	if err != nil {
		return nil, fmt.Errorf("invalid port %q: %w", cfg.Port, err)
	}

	engine := gin.New()

	if !cfg.disableMiddleware {
		engine.Use(gin.Recovery())
		engine.Use(middleware.RequestID())
		engine.Use(middleware.AccessLog(logger))
		engine.Use(otelgin.Middleware(serviceName))
		engine.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.AllowOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
			ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	engine.GET("/healthz", h.Health.Check)
	if metrics != nil {
		engine.GET("/metrics", gin.WrapH(metrics))
	}

	api := engine.Group("/api")
	api.POST("/register", h.Auth.Register)
	api.POST("/login", h.Auth.Login)

	authed := api.Group("", requireAuth)
	authed.GET("/music", h.Search.Search)
	authed.POST("/save-song", h.Library.SaveSong)
	authed.DELETE("/songs/:id", h.Library.DeleteSong)
	authed.GET("/songs/:id", h.Library.PlaylistSongs)
	authed.GET("/playlists", h.Library.ListPlaylists)
	authed.POST("/playlists", h.Library.CreatePlaylist)

	internalServer := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", httpPort),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &Server{internalServer}, nil
}
