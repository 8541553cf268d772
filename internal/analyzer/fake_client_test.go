package analyzer

import (
	"context"
	"fmt"

	"github.com/yt-insights/mentions/internal/models"
)

// fakeClient is an in-memory MetadataClient that counts every call.
type fakeClient struct {
	noCredential bool

	searches map[string][]models.ChannelSearchResult
	channels map[string]*models.Channel
	videos   map[string][]models.VideoSummary
	details  map[string]models.VideoDetail

	listErr    map[string]error
	detailsErr error

	calls         int
	searchQueries []string
	detailBatches [][]string
	listLimits    []int64
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		searches: map[string][]models.ChannelSearchResult{},
		channels: map[string]*models.Channel{},
		videos:   map[string][]models.VideoSummary{},
		details:  map[string]models.VideoDetail{},
		listErr:  map[string]error{},
	}
}

func (f *fakeClient) addChannel(id, title string, videos ...models.VideoSummary) {
	f.channels[id] = &models.Channel{ID: id, Title: title}
	f.videos[id] = videos
}

func (f *fakeClient) HasCredential() bool { return !f.noCredential }

func (f *fakeClient) SearchChannels(_ context.Context, query string) ([]models.ChannelSearchResult, error) {
	f.calls++
	f.searchQueries = append(f.searchQueries, query)
	return f.searches[query], nil
}

func (f *fakeClient) GetChannel(_ context.Context, channelID string) (*models.Channel, error) {
	f.calls++
	ch, ok := f.channels[channelID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrChannelNotFound, channelID)
	}
	cp := *ch
	return &cp, nil
}

func (f *fakeClient) ListRecentVideos(_ context.Context, channelID string, maxResults int64) ([]models.VideoSummary, error) {
	f.calls++
	f.listLimits = append(f.listLimits, maxResults)
	if err := f.listErr[channelID]; err != nil {
		return nil, err
	}
	videos := f.videos[channelID]
	if int64(len(videos)) > maxResults {
		videos = videos[:maxResults]
	}
	return videos, nil
}

func (f *fakeClient) GetVideoDetails(_ context.Context, videoIDs []string) (map[string]models.VideoDetail, error) {
	f.calls++
	f.detailBatches = append(f.detailBatches, videoIDs)
	if f.detailsErr != nil {
		return nil, f.detailsErr
	}
	out := map[string]models.VideoDetail{}
	for _, id := range videoIDs {
		if d, ok := f.details[id]; ok {
			out[id] = d
		}
	}
	return out, nil
}

func video(id, title, description string) models.VideoSummary {
	return models.VideoSummary{ID: id, Title: title, Description: description}
}
