package analyzer

import (
	"strings"

	"github.com/yt-insights/mentions/internal/models"
)

// ValidateKeyword rejects empty and whitespace-only search terms.
func ValidateKeyword(keyword string) error {
	if strings.TrimSpace(keyword) == "" {
		return models.ErrInvalidKeyword
	}
	return nil
}

// CountOccurrences counts non-overlapping, case-insensitive occurrences of
// needle in haystack. The needle is matched literally.
func CountOccurrences(haystack, needle string) (int, error) {
	if needle == "" {
		return 0, models.ErrInvalidKeyword
	}
	return strings.Count(strings.ToLower(haystack), strings.ToLower(needle)), nil
}

// containsFold reports whether needle occurs in haystack, ignoring case.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// ScoreVideo counts keyword mentions across title, description and tags.
func ScoreVideo(title, description string, tags []string, keyword string) (models.MentionCount, error) {
	titleCount, err := CountOccurrences(title, keyword)
	if err != nil {
		return models.MentionCount{}, err
	}
	descCount, _ := CountOccurrences(description, keyword)
	tagCount, _ := CountOccurrences(strings.Join(tags, " "), keyword)

	return models.MentionCount{
		Title:       titleCount,
		Description: descCount,
		Tags:        tagCount,
		Total:       titleCount + descCount + tagCount,
		Estimated:   true,
	}, nil
}
