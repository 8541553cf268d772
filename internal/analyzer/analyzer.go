package analyzer

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/yt-insights/mentions/internal/metrics"
	"github.com/yt-insights/mentions/internal/models"
)

const (
	defaultRecentVideos = 20
	defaultMaxMatches   = 3
	defaultMaxChannels  = 10
	legacyRecentVideos  = 10
)

const (
	outcomeOK  = "ok"
	outcomeErr = "error"
)

// MetadataClient is the subset of the YouTube Data API the analyzer consumes
type MetadataClient interface {
	HasCredential() bool
	SearchChannels(ctx context.Context, query string) ([]models.ChannelSearchResult, error)
	GetChannel(ctx context.Context, channelID string) (*models.Channel, error)
	ListRecentVideos(ctx context.Context, channelID string, maxResults int64) ([]models.VideoSummary, error)
	GetVideoDetails(ctx context.Context, videoIDs []string) (map[string]models.VideoDetail, error)
}

// Options configures an Analyzer. Zero values fall back to defaults.
type Options struct {
	RecentVideos int64
	MaxMatches   int
	MaxChannels  int
	Heuristics   *Heuristics
	Logger       *zerolog.Logger
}

// Analyzer scores channels' recent videos for keyword mentions
type Analyzer struct {
	client       MetadataClient
	resolver     *Resolver
	heuristics   Heuristics
	recentVideos int64
	maxMatches   int
	maxChannels  int
	logger       zerolog.Logger
}

// New creates an Analyzer backed by client
func New(client MetadataClient, opts Options) *Analyzer {
	a := &Analyzer{
		client:       client,
		resolver:     NewResolver(client),
		heuristics:   DefaultHeuristics(),
		recentVideos: defaultRecentVideos,
		maxMatches:   defaultMaxMatches,
		maxChannels:  defaultMaxChannels,
		logger:       zerolog.Nop(),
	}
	if opts.RecentVideos > 0 {
		a.recentVideos = opts.RecentVideos
	}
	if opts.MaxMatches > 0 {
		a.maxMatches = opts.MaxMatches
	}
	if opts.MaxChannels > 0 {
		a.maxChannels = opts.MaxChannels
	}
	if opts.Heuristics != nil {
		a.heuristics = *opts.Heuristics
	}
	if opts.Logger != nil {
		a.logger = *opts.Logger
	}
	return a
}

// AnalyzeChannel analyzes one channel reference. It never fails: any error is
// reported in the returned result.
func (a *Analyzer) AnalyzeChannel(ctx context.Context, reference, keyword string) (result models.ChannelAnalysisResult) {
	defer func() {
		if p := recover(); p != nil {
			result = a.failed(reference, fmt.Errorf("internal error: %v", p))
		}
	}()

	result, err := a.analyzeChannel(ctx, reference, keyword)
	if err != nil {
		return a.failed(reference, err)
	}
	metrics.ChannelAnalyses.WithLabelValues(outcomeOK).Inc()
	return result
}

func (a *Analyzer) failed(reference string, err error) models.ChannelAnalysisResult {
	a.logger.Warn().Err(err).Str("reference", reference).Msg("channel analysis failed")
	metrics.ChannelAnalyses.WithLabelValues(outcomeErr).Inc()
	return models.FailedChannel(reference, err)
}

func (a *Analyzer) analyzeChannel(ctx context.Context, reference, keyword string) (models.ChannelAnalysisResult, error) {
	channelID, err := a.resolver.Resolve(ctx, reference)
	if err != nil {
		return models.ChannelAnalysisResult{}, err
	}

	channel, err := a.client.GetChannel(ctx, channelID)
	if err != nil {
		return models.ChannelAnalysisResult{}, err
	}
	a.logger.Info().Str("reference", reference).Str("channelId", channelID).Str("channel", channel.Title).Msg("analyzing channel")

	videos, err := a.client.ListRecentVideos(ctx, channelID, a.recentVideos)
	if err != nil {
		return models.ChannelAnalysisResult{}, err
	}

	details := map[string]models.VideoDetail{}
	if len(videos) > 0 {
		ids := make([]string, 0, len(videos))
		for _, v := range videos {
			ids = append(ids, v.ID)
		}
		if details, err = a.client.GetVideoDetails(ctx, ids); err != nil {
			return models.ChannelAnalysisResult{}, err
		}
	}

	matches := make([]models.VideoMatch, 0, a.maxMatches)
	scanned := 0
	for _, video := range videos {
		if len(matches) >= a.maxMatches {
			break
		}
		scanned++

		description := video.Description
		var tags []string
		duration := 0
		if detail, ok := details[video.ID]; ok {
			if detail.FullDescription != "" {
				description = detail.FullDescription
			}
			tags = detail.Tags
			duration = detail.DurationSeconds
		}

		mentions, err := ScoreVideo(video.Title, description, tags, keyword)
		if err != nil {
			return models.ChannelAnalysisResult{}, err
		}
		if mentions.Total == 0 {
			continue
		}

		matches = append(matches, models.VideoMatch{
			VideoID:     video.ID,
			Title:       video.Title,
			Description: video.Description,
			PublishedAt: video.PublishedAt,
			Mentions:    mentions,
			URL:         models.WatchURL(video.ID),
			Timestamps:  a.heuristics.EstimateTimestamps(description, keyword, duration, video.ID),
			Duration:    FormatDuration(duration),
		})
	}
	metrics.VideosScanned.Add(float64(scanned))

	sortByMentions(matches)

	return models.ChannelAnalysisResult{
		ChannelID:        channelID,
		ChannelName:      channel.Title,
		ChannelReference: reference,
		VideosAnalyzed:   scanned,
		MatchedVideos:    matches,
	}, nil
}

// sortByMentions orders matches by total mentions, keeping listing order on ties.
func sortByMentions(matches []models.VideoMatch) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Mentions.Total > matches[j].Mentions.Total
	})
}
