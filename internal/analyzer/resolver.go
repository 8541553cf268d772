package analyzer

import (
	"context"
	"fmt"
	"strings"

	"github.com/yt-insights/mentions/internal/models"
)

const channelIDPrefix = "UC"

// Resolver turns free-form channel references into canonical channel IDs
type Resolver struct {
	client MetadataClient
}

// NewResolver creates a resolver that searches through client when needed
func NewResolver(client MetadataClient) *Resolver {
	return &Resolver{client: client}
}

// Resolve maps a reference to a channel ID. The first matching rule wins:
//
//	@handle anywhere      -> channel search for the handle
//	.../channel/<id>      -> the path segment after channel/
//	UC...                 -> used verbatim
//	anything else         -> channel search for the whole text
func (r *Resolver) Resolve(ctx context.Context, reference string) (string, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return "", fmt.Errorf("%w: empty channel reference", models.ErrChannelNotFound)
	}

	switch {
	case strings.Contains(reference, "@"):
		_, rest, _ := strings.Cut(reference, "@")
		handle := cutAtAny(rest, "/?@")
		if handle == "" {
			return "", fmt.Errorf("%w: empty handle in %q", models.ErrChannelNotFound, reference)
		}
		return r.search(ctx, handle)

	case strings.Contains(reference, "channel/"):
		_, rest, _ := strings.Cut(reference, "channel/")
		id := cutAtAny(rest, "/?")
		if id == "" {
			return "", fmt.Errorf("%w: no channel id in %q", models.ErrChannelNotFound, reference)
		}
		return id, nil

	case strings.HasPrefix(reference, channelIDPrefix):
		return reference, nil

	default:
		return r.search(ctx, reference)
	}
}

func (r *Resolver) search(ctx context.Context, query string) (string, error) {
	results, err := r.client.SearchChannels(ctx, query)
	if err != nil {
		return "", err
	}
	if len(results) == 0 || results[0].ChannelID == "" {
		return "", fmt.Errorf("%w: no channel matches %q", models.ErrChannelNotFound, query)
	}
	return results[0].ChannelID, nil
}

// cutAtAny returns s up to the first byte found in chars.
func cutAtAny(s, chars string) string {
	if i := strings.IndexAny(s, chars); i >= 0 {
		return s[:i]
	}
	return s
}
