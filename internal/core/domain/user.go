package domain

import "time"

// User is a registered account; every user doubles as a channel that others
// can subscribe to.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	Avatar       string    `json:"avatar"`
	CoverImage   string    `json:"cover_image,omitempty"`
	PasswordHash string    `json:"-"`
	// RefreshToken is the single active session credential. Empty when the
	// user is logged out. Never serialized to clients.
	RefreshToken string `json:"-"`
	// WatchHistory holds video ids in watch order, most recent last.
	WatchHistory []string  `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicProfile is the subset of user fields safe to embed in other
// resources (video owners, subscribers, comment authors).
type PublicProfile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Avatar   string `json:"avatar"`
}

// Public strips everything but the embeddable profile fields.
func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Avatar:   u.Avatar,
	}
}

// ChannelProfile is a channel page enriched with social-graph counts relative
// to an optional viewer.
type ChannelProfile struct {
	ID                        string `json:"id"`
	Username                  string `json:"username"`
	FullName                  string `json:"full_name"`
	Email                     string `json:"email"`
	Avatar                    string `json:"avatar"`
	CoverImage                string `json:"cover_image,omitempty"`
	SubscribersCount          int64  `json:"subscribers_count"`
	ChannelsSubscribedToCount int64  `json:"channels_subscribed_to_count"`
	IsSubscribed              bool   `json:"is_subscribed"`
}
