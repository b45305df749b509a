package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Taichi-iskw/cheta/internal/model"
)

// mockVideoLister is a mock implementation of VideoLister for testing
type mockVideoLister struct {
	mock.Mock
}

func (m *mockVideoLister) ListVideos(ctx context.Context, channelID string, maxResults int) ([]*model.Video, error) {
	args := m.Called(ctx, channelID, maxResults)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Video), args.Error(1)
}

// mockGenerator is a mock implementation of Generator for testing
type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) Generate(ctx context.Context, prompt string) (*model.Recommendation, error) {
	args := m.Called(ctx, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recommendation), args.Error(1)
}

// sleepRecorder replaces time.Sleep and remembers requested pauses
type sleepRecorder struct {
	pauses []time.Duration
}

func (s *sleepRecorder) sleep(d time.Duration) {
	s.pauses = append(s.pauses, d)
}

// videosFor builds n videos for a channel, most recent first
func videosFor(channel string, n int) []*model.Video {
	videos := make([]*model.Video, 0, n)
	for i := 1; i <= n; i++ {
		id := fmt.Sprintf("%s-v%d", channel, i)
		videos = append(videos, &model.Video{
			ID:          id,
			ChannelID:   channel,
			Title:       fmt.Sprintf("%s video %d", channel, i),
			Description: fmt.Sprintf("description of %s", id),
			URL:         model.WatchURL(id),
		})
	}
	return videos
}
