package analyzer

import (
	"fmt"
	"math"
	"regexp"
	"unicode/utf8"

	"github.com/yt-insights/mentions/internal/models"
)

var clockPattern = regexp.MustCompile(`\d{1,2}:\d{2}(?::\d{2})?`)

// Checkpoint is a fractional position used when a description has no timestamps
type Checkpoint struct {
	Fraction float64
	Label    string
}

// Heuristics holds the tunable constants of timestamp estimation.
type Heuristics struct {
	// ShortVideoSeconds is the longest duration that gets a single hint at 0:00.
	ShortVideoSeconds int
	// LeadInSeconds is subtracted from explicit description timestamps.
	LeadInSeconds int
	// ContextRadius is the number of characters searched on each side of a timestamp.
	ContextRadius int
	SnippetLength int
	MaxHints      int
	Checkpoints   []Checkpoint
}

// DefaultHeuristics returns the stock estimation constants.
func DefaultHeuristics() Heuristics {
	return Heuristics{
		ShortVideoSeconds: 300,
		LeadInSeconds:     3,
		ContextRadius:     100,
		SnippetLength:     100,
		MaxHints:          3,
		Checkpoints: []Checkpoint{
			{Fraction: 0.25, Label: "quarter"},
			{Fraction: 0.5, Label: "halfway"},
			{Fraction: 0.75, Label: "three-quarters"},
		},
	}
}

// EstimateTimestamps infers where in a video the keyword is likely discussed.
// Clock timestamps written in the description win; when there are none, hints
// are synthesized from the duration. All hints are flagged as estimated.
func (h Heuristics) EstimateTimestamps(description, keyword string, durationSeconds int, videoID string) []models.TimestampHint {
	if keyword == "" || !containsFold(description, keyword) {
		return nil
	}

	var hints []models.TimestampHint
	locs := clockPattern.FindAllStringIndex(description, -1)
	if len(locs) > 0 {
		hints = h.explicitHints(description, keyword, locs, videoID)
	} else if durationSeconds > 0 {
		hints = h.syntheticHints(durationSeconds, videoID)
	}

	if len(hints) > h.MaxHints {
		hints = hints[:h.MaxHints]
	}
	return hints
}

func (h Heuristics) explicitHints(description, keyword string, locs [][]int, videoID string) []models.TimestampHint {
	runes := []rune(description)

	var hints []models.TimestampHint
	for _, loc := range locs {
		at := utf8.RuneCountInString(description[:loc[0]])
		start := max(0, at-h.ContextRadius)
		end := min(len(runes), at+h.ContextRadius)
		window := string(runes[start:end])
		if !containsFold(window, keyword) {
			continue
		}

		offset := max(0, parseClock(description[loc[0]:loc[1]])-h.LeadInSeconds)
		hints = append(hints, models.TimestampHint{
			OffsetSeconds:  offset,
			Formatted:      FormatDuration(offset),
			ContextSnippet: truncateRunes(window, h.SnippetLength) + "...",
			LinkURL:        models.WatchURLAt(videoID, offset),
			Estimated:      true,
		})
	}
	return hints
}

func (h Heuristics) syntheticHints(durationSeconds int, videoID string) []models.TimestampHint {
	if durationSeconds <= h.ShortVideoSeconds {
		return []models.TimestampHint{{
			OffsetSeconds:  0,
			Formatted:      FormatDuration(0),
			ContextSnippet: "Check video for keyword mentions",
			LinkURL:        models.WatchURL(videoID),
			Estimated:      true,
		}}
	}

	hints := make([]models.TimestampHint, 0, len(h.Checkpoints))
	for _, cp := range h.Checkpoints {
		offset := int(math.Floor(float64(durationSeconds) * cp.Fraction))
		hints = append(hints, models.TimestampHint{
			OffsetSeconds:  offset,
			Formatted:      FormatDuration(offset),
			ContextSnippet: fmt.Sprintf("Check around %s through video", cp.Label),
			LinkURL:        models.WatchURLAt(videoID, offset),
			Estimated:      true,
		})
	}
	return hints
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
