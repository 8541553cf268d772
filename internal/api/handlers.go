package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yt-insights/mentions/internal/models"
)

type analyzeMultiRequest struct {
	ChannelReferences []string `json:"channelReferences"`
	ChannelURLs       []string `json:"channelUrls"`
	Keyword           string   `json:"keyword"`
}

func (r analyzeMultiRequest) references() []string {
	if len(r.ChannelReferences) > 0 {
		return r.ChannelReferences
	}
	return r.ChannelURLs
}

type analyzeChannelRequest struct {
	ChannelReference string `json:"channelReference"`
	ChannelURL       string `json:"channelUrl"`
	Keyword          string `json:"keyword"`
}

func (r analyzeChannelRequest) reference() string {
	if r.ChannelReference != "" {
		return r.ChannelReference
	}
	return r.ChannelURL
}

// analyzeMulti handles keyword analysis across several channels
func (s *Server) analyzeMulti(c *gin.Context) {
	var req analyzeMultiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, fmt.Errorf("%w: %v", models.ErrInvalidRequest, err))
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	result, err := s.analyzer.AnalyzeMulti(ctx, req.references(), req.Keyword)
	if err != nil {
		s.respondError(c, err)
		return
	}

	s.persistAggregate(result)
	c.JSON(http.StatusOK, result)
}

// analyzeChannel handles the single-channel title and description search
func (s *Server) analyzeChannel(c *gin.Context) {
	var req analyzeChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, fmt.Errorf("%w: %v", models.ErrInvalidRequest, err))
		return
	}
	if req.reference() == "" {
		s.respondError(c, fmt.Errorf("%w: channel reference is required", models.ErrInvalidRequest))
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	result, channel, err := s.analyzer.AnalyzeSingle(ctx, req.reference(), req.Keyword)
	if err != nil {
		s.respondError(c, err)
		return
	}

	s.persistChannel(*channel, result.Results)
	c.JSON(http.StatusOK, result)
}

func (s *Server) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), s.timeout)
}

// respondError maps the error taxonomy onto HTTP statuses
func (s *Server) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Failed to analyze channels"
	switch {
	case errors.Is(err, models.ErrMissingAPIKey):
		message = "YouTube API key is not configured"
	case errors.Is(err, models.ErrInvalidRequest):
		status = http.StatusBadRequest
		message = "Channel references and keyword are required"
	case errors.Is(err, models.ErrChannelNotFound):
		status = http.StatusNotFound
		message = "Channel not found"
	case errors.Is(err, models.ErrUpstream):
		status = http.StatusBadGateway
		message = "YouTube API request failed"
	}

	_ = c.Error(err)
	c.JSON(status, gin.H{
		"error":   message,
		"details": err.Error(),
	})
}

func (s *Server) persistAggregate(result *models.AggregateResult) {
	if s.store == nil {
		return
	}
	for _, ch := range result.Channels {
		if ch.Failed() {
			continue
		}
		s.persistChannel(models.Channel{ID: ch.ChannelID, Title: ch.ChannelName}, ch.MatchedVideos)
	}
}

// persistChannel stores a channel and its matched videos. Failures are logged
// and never affect the response.
func (s *Server) persistChannel(channel models.Channel, matches []models.VideoMatch) {
	if s.store == nil {
		return
	}
	if err := s.store.UpsertChannel(channel); err != nil {
		s.logger.Error().Err(err).Str("channelId", channel.ID).Msg("failed to store channel")
		return
	}
	for _, m := range matches {
		video := models.VideoSummary{
			ID:          m.VideoID,
			Title:       m.Title,
			Description: m.Description,
			PublishedAt: m.PublishedAt,
		}
		if err := s.store.UpsertVideo(channel.ID, video); err != nil {
			s.logger.Error().Err(err).Str("videoId", m.VideoID).Msg("failed to store video")
		}
	}
}
