package domain

import "time"

// Video is an uploaded media entry owned by a single user.
type Video struct {
	ID          string    `json:"id"`
	VideoFile   string    `json:"video_file"`
	Thumbnail   string    `json:"thumbnail"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	// Duration is the media length in seconds.
	Duration float64 `json:"duration"`
	// Views is monotonic; it is incremented by watch events and summed at
	// read time for channel stats.
	Views       int64          `json:"views"`
	IsPublished bool           `json:"is_published"`
	OwnerID     string         `json:"owner_id"`
	Owner       *PublicProfile `json:"owner,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
