package models

// UnknownChannelName is reported for channels that failed analysis
const UnknownChannelName = "Unknown"

// ChannelAnalysisResult represents the keyword analysis of one channel reference.
// A non-empty Error marks a failed channel; MatchedVideos is then empty.
type ChannelAnalysisResult struct {
	ChannelID        string       `json:"channelId,omitempty"`
	ChannelName      string       `json:"channelName"`
	ChannelReference string       `json:"channelReference"`
	VideosAnalyzed   int          `json:"videosAnalyzed"`
	MatchedVideos    []VideoMatch `json:"matchedVideos"`
	Error            string       `json:"error,omitempty"`
}

// Failed reports whether the channel could not be analyzed
func (r *ChannelAnalysisResult) Failed() bool {
	return r.Error != ""
}

// FailedChannel builds the error-shaped result for a channel reference
func FailedChannel(reference string, err error) ChannelAnalysisResult {
	return ChannelAnalysisResult{
		ChannelReference: reference,
		ChannelName:      UnknownChannelName,
		VideosAnalyzed:   0,
		MatchedVideos:    []VideoMatch{},
		Error:            err.Error(),
	}
}

// AggregateResult represents the analysis of several channels for one keyword
type AggregateResult struct {
	Keyword          string                  `json:"keyword"`
	ChannelsAnalyzed int                     `json:"channelsAnalyzed"`
	TotalVideosFound int                     `json:"totalVideosFound"`
	Channels         []ChannelAnalysisResult `json:"channels"`
}

// SingleChannelResult represents the title/description-only analysis of one channel
type SingleChannelResult struct {
	ChannelID      string       `json:"channelId"`
	ChannelName    string       `json:"channel"`
	VideosAnalyzed int          `json:"videosAnalyzed"`
	KeywordFound   int          `json:"keywordFound"`
	Results        []VideoMatch `json:"results"`
}
