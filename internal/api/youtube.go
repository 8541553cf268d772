package api

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/yt-insights/mentions/internal/analyzer"
	"github.com/yt-insights/mentions/internal/models"
)

const channelSearchResults = 5

// YouTubeClient reads channel and video metadata from the YouTube Data API v3.
// A client created without an API key reports HasCredential() == false and
// fails every call with models.ErrMissingAPIKey.
type YouTubeClient struct {
	service *youtube.Service
}

var _ analyzer.MetadataClient = (*YouTubeClient)(nil)

// NewYouTubeClient creates a new YouTube client. Extra options are applied
// after the API key, so tests can point the client at a local server.
func NewYouTubeClient(ctx context.Context, apiKey string, opts ...option.ClientOption) (*YouTubeClient, error) {
	if apiKey == "" {
		return &YouTubeClient{}, nil
	}

	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}
	return &YouTubeClient{service: service}, nil
}

// HasCredential reports whether an API key was configured
func (c *YouTubeClient) HasCredential() bool {
	return c.service != nil
}

// SearchChannels runs a channel-type search for query
func (c *YouTubeClient) SearchChannels(ctx context.Context, query string) ([]models.ChannelSearchResult, error) {
	if !c.HasCredential() {
		return nil, models.ErrMissingAPIKey
	}

	response, err := c.service.Search.List([]string{"snippet"}).
		Q(query).
		Type("channel").
		MaxResults(channelSearchResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, upstreamError("search channels", err)
	}

	results := make([]models.ChannelSearchResult, 0, len(response.Items))
	for _, item := range response.Items {
		if item == nil {
			continue
		}
		var result models.ChannelSearchResult
		if item.Snippet != nil {
			result.ChannelID = item.Snippet.ChannelId
			result.ChannelTitle = item.Snippet.ChannelTitle
		}
		if result.ChannelID == "" && item.Id != nil {
			result.ChannelID = item.Id.ChannelId
		}
		results = append(results, result)
	}
	return results, nil
}

// GetChannel fetches the snippet of one channel
func (c *YouTubeClient) GetChannel(ctx context.Context, channelID string) (*models.Channel, error) {
	if !c.HasCredential() {
		return nil, models.ErrMissingAPIKey
	}

	response, err := c.service.Channels.List([]string{"snippet"}).
		Id(channelID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, upstreamError("get channel", err)
	}
	if len(response.Items) == 0 || response.Items[0] == nil {
		return nil, fmt.Errorf("%w: %s", models.ErrChannelNotFound, channelID)
	}

	item := response.Items[0]
	channel := &models.Channel{ID: item.Id}
	if channel.ID == "" {
		channel.ID = channelID
	}
	if item.Snippet != nil {
		channel.Title = item.Snippet.Title
		channel.Description = item.Snippet.Description
	}
	return channel, nil
}

// ListRecentVideos returns up to maxResults of the channel's videos, newest first
func (c *YouTubeClient) ListRecentVideos(ctx context.Context, channelID string, maxResults int64) ([]models.VideoSummary, error) {
	if !c.HasCredential() {
		return nil, models.ErrMissingAPIKey
	}

	response, err := c.service.Search.List([]string{"snippet"}).
		ChannelId(channelID).
		Type("video").
		Order("date").
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, upstreamError("list videos", err)
	}

	videos := make([]models.VideoSummary, 0, len(response.Items))
	for _, item := range response.Items {
		if item == nil || item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		video := models.VideoSummary{ID: item.Id.VideoId}
		if item.Snippet != nil {
			video.Title = item.Snippet.Title
			video.Description = item.Snippet.Description
			if published, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
				video.PublishedAt = published
			}
		}
		videos = append(videos, video)
	}
	return videos, nil
}

// GetVideoDetails fetches duration, tags and full description for videoIDs in
// one batch. Videos missing from the response are absent from the map.
func (c *YouTubeClient) GetVideoDetails(ctx context.Context, videoIDs []string) (map[string]models.VideoDetail, error) {
	if !c.HasCredential() {
		return nil, models.ErrMissingAPIKey
	}

	details := make(map[string]models.VideoDetail, len(videoIDs))
	if len(videoIDs) == 0 {
		return details, nil
	}

	response, err := c.service.Videos.List([]string{"contentDetails", "snippet"}).
		Id(videoIDs...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, upstreamError("get video details", err)
	}

	for _, item := range response.Items {
		if item == nil || item.Id == "" {
			continue
		}
		var detail models.VideoDetail
		if item.ContentDetails != nil {
			detail.DurationSeconds = analyzer.ParseDuration(item.ContentDetails.Duration)
		}
		if item.Snippet != nil {
			detail.Tags = item.Snippet.Tags
			detail.FullDescription = item.Snippet.Description
		}
		details[item.Id] = detail
	}
	return details, nil
}

// upstreamError tags err as an upstream failure, preferring the API's own message
func upstreamError(op string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return fmt.Errorf("%w: %s: %s", models.ErrUpstream, op, apiErr.Message)
	}
	return fmt.Errorf("%w: %s: %w", models.ErrUpstream, op, err)
}
