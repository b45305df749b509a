package youtube

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"

	"github.com/Taichi-iskw/cheta/internal/errors"
	"github.com/Taichi-iskw/cheta/internal/model"
)

// DefaultMaxResults is used when a non-positive result count is requested
const DefaultMaxResults = 5

// VideoLister is interface for listing the latest videos of a channel
type VideoLister interface {
	// ListVideos returns up to maxResults videos, most recent first
	ListVideos(ctx context.Context, channelID string, maxResults int) ([]*model.Video, error)
}

// apiLister implements VideoLister using the YouTube Data API v3 search endpoint
type apiLister struct {
	service *ytapi.Service
}

// NewAPILister creates a new VideoLister authenticated with apiKey.
// Extra client options are appended after the key (endpoint overrides in tests).
func NewAPILister(ctx context.Context, apiKey string, opts ...option.ClientOption) (VideoLister, error) {
	if apiKey == "" {
		return nil, errors.New(errors.CodeInvalidArg, "YouTube API key is required")
	}

	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	service, err := ytapi.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to create YouTube service")
	}

	return &apiLister{service: service}, nil
}

// ListVideos fetches the latest videos of a channel ordered by publish date
func (l *apiLister) ListVideos(ctx context.Context, channelID string, maxResults int) ([]*model.Video, error) {
	// Input validation
	if channelID == "" {
		return nil, errors.New(errors.CodeInvalidArg, "channel ID is required")
	}

	// Validate channel ID format (must start with UC)
	if !strings.HasPrefix(channelID, "UC") {
		return nil, errors.New(errors.CodeInvalidArg, "invalid channel ID format (must start with UC)")
	}

	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	resp, err := l.service.Search.List([]string{"snippet"}).
		ChannelId(channelID).
		Order("date").
		MaxResults(int64(maxResults)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeExternal, fmt.Sprintf("failed to fetch videos for channel %s", channelID))
	}

	videos := make([]*model.Video, 0, len(resp.Items))
	for _, item := range resp.Items {
		// Search also returns playlists and the channel itself
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}

		videos = append(videos, &model.Video{
			ID:          item.Id.VideoId,
			ChannelID:   channelID,
			Title:       item.Snippet.Title,
			Description: item.Snippet.Description,
			URL:         model.WatchURL(item.Id.VideoId),
		})
	}

	return videos, nil
}
