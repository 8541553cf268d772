package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

type fakeVideo struct {
	ID          string
	Title       string
	Summary     string
	Description string
	PublishedAt string
	Duration    string
	Tags        []string
	NoDetails   bool
}

type fakeChannel struct {
	ID          string
	Title       string
	Description string
	Videos      []fakeVideo
}

// fakeYouTube serves the subset of the YouTube Data API v3 the client uses
type fakeYouTube struct {
	mu       sync.Mutex
	handles  map[string]string
	channels map[string]fakeChannel
	failPath string
	requests []*http.Request
}

func newFakeYouTube() *fakeYouTube {
	return &fakeYouTube{
		handles:  map[string]string{},
		channels: map[string]fakeChannel{},
	}
}

func (f *fakeYouTube) addChannel(ch fakeChannel) {
	f.channels[ch.ID] = ch
}

func (f *fakeYouTube) count(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, r := range f.requests {
		if r.URL.Path == path {
			n++
		}
	}
	return n
}

func (f *fakeYouTube) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, r)
	f.mu.Unlock()

	if r.URL.Path == f.failPath {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"The request cannot be completed because you have exceeded your quota.","errors":[{"reason":"quotaExceeded"}]}}`))
		return
	}

	q := r.URL.Query()
	var body any
	switch r.URL.Path {
	case "/youtube/v3/search":
		if q.Get("type") == "channel" {
			body = f.searchChannels(q.Get("q"))
		} else {
			body = f.listVideos(q.Get("channelId"))
		}
	case "/youtube/v3/channels":
		body = f.getChannels(q.Get("id"))
	case "/youtube/v3/videos":
		body = f.getVideos(splitIDs(q["id"]))
	default:
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}

func (f *fakeYouTube) searchChannels(query string) map[string]any {
	items := []any{}
	if id, ok := f.handles[query]; ok {
		items = append(items, map[string]any{
			"id":      map[string]any{"kind": "youtube#channel", "channelId": id},
			"snippet": map[string]any{"channelId": id, "channelTitle": f.channels[id].Title},
		})
	}
	return map[string]any{"items": items}
}

func (f *fakeYouTube) listVideos(channelID string) map[string]any {
	items := []any{}
	for _, v := range f.channels[channelID].Videos {
		items = append(items, map[string]any{
			"id": map[string]any{"kind": "youtube#video", "videoId": v.ID},
			"snippet": map[string]any{
				"title":       v.Title,
				"description": v.Summary,
				"publishedAt": v.PublishedAt,
			},
		})
	}
	return map[string]any{"items": items}
}

func (f *fakeYouTube) getChannels(id string) map[string]any {
	items := []any{}
	if ch, ok := f.channels[id]; ok {
		items = append(items, map[string]any{
			"id":      ch.ID,
			"snippet": map[string]any{"title": ch.Title, "description": ch.Description},
		})
	}
	return map[string]any{"items": items}
}

func (f *fakeYouTube) getVideos(ids []string) map[string]any {
	wanted := map[string]bool{}
	for _, id := range ids {
		wanted[id] = true
	}
	items := []any{}
	for _, ch := range f.channels {
		for _, v := range ch.Videos {
			if !wanted[v.ID] || v.NoDetails {
				continue
			}
			items = append(items, map[string]any{
				"id":             v.ID,
				"contentDetails": map[string]any{"duration": v.Duration},
				"snippet": map[string]any{
					"title":       v.Title,
					"description": v.Description,
					"tags":        v.Tags,
				},
			})
		}
	}
	return map[string]any{"items": items}
}

func splitIDs(values []string) []string {
	var ids []string
	for _, v := range values {
		ids = append(ids, strings.Split(v, ",")...)
	}
	return ids
}

// newTestClient starts fake behind an httptest server and returns a client for it
func newTestClient(t *testing.T, fake *fakeYouTube) *YouTubeClient {
	t.Helper()
	ts := httptest.NewServer(fake)
	t.Cleanup(ts.Close)

	client, err := NewYouTubeClient(context.Background(), "test-key",
		option.WithEndpoint(ts.URL+"/"),
		option.WithHTTPClient(ts.Client()),
	)
	require.NoError(t, err)
	return client
}
