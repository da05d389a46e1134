package domain

import "time"

// Comment is a text body attached to a video.
type Comment struct {
	ID        string         `json:"id"`
	Content   string         `json:"content"`
	VideoID   string         `json:"video_id"`
	OwnerID   string         `json:"owner_id"`
	Owner     *PublicProfile `json:"owner,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
