package domain

import "time"

// Subscription links a subscriber to a channel. The (subscriber, channel)
// pair is unique, enforced at the storage level.
type Subscription struct {
	ID           string         `json:"id"`
	SubscriberID string         `json:"subscriber_id"`
	ChannelID    string         `json:"channel_id"`
	Subscriber   *PublicProfile `json:"subscriber,omitempty"`
	Channel      *PublicProfile `json:"channel,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// ChannelStats is the dashboard aggregate for a channel. All four counters
// are computed by read-time aggregation over the underlying rows.
type ChannelStats struct {
	TotalVideos      int64 `json:"total_videos"`
	TotalViews       int64 `json:"total_views"`
	TotalSubscribers int64 `json:"total_subscribers"`
	TotalLikes       int64 `json:"total_likes"`
}
