package models

// Channel represents a resolved YouTube channel
type Channel struct {
	ID          string `json:"channelId"`
	Title       string `json:"channelName"`
	Description string `json:"-"`
}

// ChannelSearchResult is one item of a channel-type search
type ChannelSearchResult struct {
	ChannelID    string `json:"channelId"`
	ChannelTitle string `json:"channelTitle"`
}
