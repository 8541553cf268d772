package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/yt-insights/mentions/internal/analyzer"
	"github.com/yt-insights/mentions/internal/api"
	"github.com/yt-insights/mentions/internal/config"
	"github.com/yt-insights/mentions/internal/metrics"
	"github.com/yt-insights/mentions/internal/middleware"
	"github.com/yt-insights/mentions/internal/models"
)

func main() {
	// Load environment variables from .env file
	envErr := godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := middleware.InitLogger(cfg.LogLevel, "yt-mentions")
	if envErr != nil {
		logger.Debug().Msg(".env file not found")
	}
	if err := cfg.Validate(); err != nil {
		logger.Warn().Err(err).Msg("requests will fail until an API key is configured")
	}

	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		logger.Fatal().Err(err).Msg("failed to register metrics")
	}

	// Initialize database
	var store models.Store
	if cfg.DBPath != "" {
		db, err := models.NewDatabase(cfg.DBPath)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize database")
		}
		defer db.Close()
		store = db
	} else {
		logger.Info().Msg("DB_PATH not set, persistence disabled")
	}

	// Initialize YouTube API
	client, err := api.NewYouTubeClient(context.Background(), cfg.YouTubeAPIKey)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize YouTube API")
	}

	heuristics := analyzer.DefaultHeuristics()
	heuristics.ShortVideoSeconds = cfg.ShortVideoSeconds
	heuristics.LeadInSeconds = cfg.TimestampLeadInSeconds

	a := analyzer.New(client, analyzer.Options{
		RecentVideos: cfg.RecentVideos,
		MaxChannels:  cfg.MaxChannels,
		Heuristics:   &heuristics,
		Logger:       &logger,
	})

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	server := api.NewServer(cfg, a, store, logger)
	if err := server.Start(cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
