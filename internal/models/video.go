package models

import (
	"net/url"
	"strconv"
	"time"
)

const watchURLBase = "https://youtube.com/watch?v="

// VideoSummary is one item of a channel's recent-video listing
type VideoSummary struct {
	ID          string    `json:"videoId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	PublishedAt time.Time `json:"publishedAt"`
}

// VideoDetail holds the extended attributes returned by the batched video lookup
type VideoDetail struct {
	DurationSeconds int      `json:"durationSeconds"`
	Tags            []string `json:"tags"`
	FullDescription string   `json:"fullDescription"`
}

// MentionCount holds per-field keyword occurrence counts.
// Estimated is true when counts come from metadata text rather than a transcript.
type MentionCount struct {
	Title       int  `json:"title"`
	Description int  `json:"description"`
	Tags        int  `json:"tags"`
	Total       int  `json:"total"`
	Estimated   bool `json:"estimated"`
}

// TimestampHint is a likely moment of interest inside a video
type TimestampHint struct {
	OffsetSeconds  int    `json:"time"`
	Formatted      string `json:"formattedTime"`
	ContextSnippet string `json:"context"`
	LinkURL        string `json:"url"`
	Estimated      bool   `json:"estimated"`
}

// VideoMatch is a scanned video with at least one keyword mention
type VideoMatch struct {
	VideoID     string          `json:"videoId"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	PublishedAt time.Time       `json:"publishedAt"`
	Mentions    MentionCount    `json:"mentions"`
	URL         string          `json:"url"`
	Timestamps  []TimestampHint `json:"timestamps,omitempty"`
	Duration    string          `json:"duration,omitempty"`
}

// WatchURL builds the public watch link for a video
func WatchURL(videoID string) string {
	return watchURLBase + url.QueryEscape(videoID)
}

// WatchURLAt builds a watch link that starts playback at offsetSeconds
func WatchURLAt(videoID string, offsetSeconds int) string {
	return WatchURL(videoID) + "&t=" + strconv.Itoa(offsetSeconds) + "s"
}
