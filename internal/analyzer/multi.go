package analyzer

import (
	"context"
	"fmt"

	"github.com/yt-insights/mentions/internal/models"
)

// AnalyzeMulti analyzes up to MaxChannels references in input order.
// Request-level problems (missing credential, no references, empty keyword)
// fail before any network call; per-channel failures are embedded in the result.
func (a *Analyzer) AnalyzeMulti(ctx context.Context, references []string, keyword string) (*models.AggregateResult, error) {
	if err := a.checkRequest(keyword); err != nil {
		return nil, err
	}
	if len(references) == 0 {
		return nil, fmt.Errorf("%w: at least one channel reference is required", models.ErrInvalidRequest)
	}

	if len(references) > a.maxChannels {
		references = references[:a.maxChannels]
	}

	a.logger.Info().Str("keyword", keyword).Int("channels", len(references)).Msg("starting multi-channel search")

	result := &models.AggregateResult{
		Keyword:  keyword,
		Channels: make([]models.ChannelAnalysisResult, 0, len(references)),
	}
	for _, reference := range references {
		channel := a.AnalyzeChannel(ctx, reference, keyword)
		if !channel.Failed() {
			result.ChannelsAnalyzed++
			result.TotalVideosFound += len(channel.MatchedVideos)
		}
		result.Channels = append(result.Channels, channel)
	}

	return result, nil
}

func (a *Analyzer) checkRequest(keyword string) error {
	if !a.client.HasCredential() {
		return models.ErrMissingAPIKey
	}
	return ValidateKeyword(keyword)
}
