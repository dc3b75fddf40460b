package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cinewise-api/internal/config"
)

// Server holds the HTTP server serving the REST API
type Server struct {
	Config *config.Config
	Logger *zap.Logger
	HTTP   *http.Server
}

// New creates a new server instance wrapping the Gin engine
func New(cfg *config.Config, l *zap.Logger, engine *gin.Engine) *Server {
	addr := ":" + cfg.App.HTTPPort

	return &Server{
		Config: cfg,
		Logger: l,
		HTTP: &http.Server{
			Addr:              addr,
			Handler:           engine,
			ReadHeaderTimeout: 2 * time.Second,
			ReadTimeout:       10 * time.Second,
			// Long enough for a recommendation round-trip to complete
			WriteTimeout:      45 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
	}
}

// Start runs the HTTP server until it is shut down
func (s *Server) Start() error {
	s.Logger.Info("REST API running", zap.String("address", s.HTTP.Addr))

	if err := s.HTTP.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
