package domain

import "time"

// Tweet is a short standalone post on a user's channel.
type Tweet struct {
	ID        string         `json:"id"`
	Content   string         `json:"content"`
	OwnerID   string         `json:"owner_id"`
	Owner     *PublicProfile `json:"owner,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
