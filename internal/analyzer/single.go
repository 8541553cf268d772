package analyzer

import (
	"context"

	"github.com/yt-insights/mentions/internal/metrics"
	"github.com/yt-insights/mentions/internal/models"
)

// AnalyzeSingle is the lightweight single-channel search: titles and listing
// descriptions of the 10 most recent videos, no tags, no timestamps, every
// match returned. Unlike AnalyzeChannel, errors are returned to the caller.
func (a *Analyzer) AnalyzeSingle(ctx context.Context, reference, keyword string) (*models.SingleChannelResult, *models.Channel, error) {
	if err := a.checkRequest(keyword); err != nil {
		return nil, nil, err
	}

	channelID, err := a.resolver.Resolve(ctx, reference)
	if err != nil {
		return nil, nil, err
	}
	channel, err := a.client.GetChannel(ctx, channelID)
	if err != nil {
		return nil, nil, err
	}

	videos, err := a.client.ListRecentVideos(ctx, channelID, legacyRecentVideos)
	if err != nil {
		return nil, nil, err
	}
	metrics.VideosScanned.Add(float64(len(videos)))

	results := make([]models.VideoMatch, 0)
	for _, video := range videos {
		titleCount, err := CountOccurrences(video.Title, keyword)
		if err != nil {
			return nil, nil, err
		}
		descCount, _ := CountOccurrences(video.Description, keyword)
		if titleCount+descCount == 0 {
			continue
		}

		results = append(results, models.VideoMatch{
			VideoID:     video.ID,
			Title:       video.Title,
			Description: video.Description,
			PublishedAt: video.PublishedAt,
			Mentions: models.MentionCount{
				Title:       titleCount,
				Description: descCount,
				Total:       titleCount + descCount,
				Estimated:   true,
			},
			URL: models.WatchURL(video.ID),
		})
	}
	sortByMentions(results)

	if channel.ID == "" {
		channel.ID = channelID
	}
	return &models.SingleChannelResult{
		ChannelID:      channelID,
		ChannelName:    channel.Title,
		VideosAnalyzed: len(videos),
		KeywordFound:   len(results),
		Results:        results,
	}, channel, nil
}
