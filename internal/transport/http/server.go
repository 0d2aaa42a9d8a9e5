package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/advochat/advochat-server/internal/config"
	"github.com/advochat/advochat-server/internal/core"
	"github.com/advochat/advochat-server/internal/directory"
	"github.com/advochat/advochat-server/internal/scheduling"
)

// NewServer builds the HTTP server: REST endpoints plus the WebSocket bridge.
func NewServer(hub *core.Hub, dir *directory.Directory, scheduler *scheduling.Service, cfg *config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), LoggerMiddleware(logger))

	api := NewAPIHandlers(hub, dir, scheduler, logger)
	router.GET("/health", api.Health)
	router.GET("/api/advocates", api.ListAdvocates)
	router.GET("/api/advocates/:id", api.GetAdvocate)
	router.GET("/api/advocates/:id/meetings", api.ListMeetings)
	router.GET("/api/rooms/:room/history", api.RoomHistory)
	router.POST("/api/schedule", api.Schedule)
	router.GET("/ws", gin.WrapH(NewWSHandler(hub, cfg, logger)))

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}
