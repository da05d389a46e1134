package domain

import "time"

// Playlist is an ordered set of video references. Adding a video that is
// already present is a no-op.
type Playlist struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	VideoIDs    []string       `json:"video_ids"`
	Videos      []Video        `json:"videos,omitempty"`
	OwnerID     string         `json:"owner_id"`
	Owner       *PublicProfile `json:"owner,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// ContainsVideo reports whether videoID is already in the playlist.
func (p *Playlist) ContainsVideo(videoID string) bool {
	for _, id := range p.VideoIDs {
		if SameID(id, videoID) {
			return true
		}
	}
	return false
}
