package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/yt-insights/mentions/internal/analyzer"
	"github.com/yt-insights/mentions/internal/config"
	"github.com/yt-insights/mentions/internal/middleware"
	"github.com/yt-insights/mentions/internal/models"
)

// Server represents the API server
type Server struct {
	router   *gin.Engine
	analyzer *analyzer.Analyzer
	store    models.Store
	timeout  time.Duration
	logger   zerolog.Logger
}

// NewServer creates a new API server. store may be nil to disable persistence.
func NewServer(cfg *config.Config, a *analyzer.Analyzer, store models.Store, logger zerolog.Logger) *Server {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.Metrics(),
		middleware.CORS(cfg.CORSOrigins),
	)

	server := &Server{
		router:   router,
		analyzer: a,
		store:    store,
		timeout:  cfg.RequestTimeout,
		logger:   logger,
	}

	// Setup routes
	server.setupRoutes()

	return server
}

// setupRoutes configures all the routes for the server
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.router.Group("/api")
	api.POST("/analyze-multi", s.analyzeMulti)
	api.POST("/analyze-channel", s.analyzeChannel)
}

// Handler exposes the router for tests and custom listeners
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the server on the specified port
func (s *Server) Start(port string) error {
	s.logger.Info().Str("port", port).Msg("server starting")
	return s.router.Run(":" + port)
}
