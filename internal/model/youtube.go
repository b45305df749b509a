package model

// Video represents a recently published YouTube video considered for recommendation
type Video struct {
	ID          string `json:"id"`
	ChannelID   string `json:"channel_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// Recommendation is the pick returned by the model and, after grounding, to the caller
type Recommendation struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Reason string `json:"reason"`
}

// WatchURL returns the canonical watch link for a video ID
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
