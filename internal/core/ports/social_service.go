package ports

import (
	"context"

	"github.com/vidtube/video-platform/internal/core/domain"
)

// CommentPage is one page of a per-video comment listing.
type CommentPage struct {
	Items []domain.Comment `json:"items"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}

// CommentService covers per-video comment CRUD with ownership enforcement.
type CommentService interface {
	ListByVideo(ctx context.Context, videoID string, page, limit int) (*CommentPage, error)
	Add(ctx context.Context, videoID, actorID, content string) (*domain.Comment, error)
	Update(ctx context.Context, commentID, actorID, content string) (*domain.Comment, error)
	Delete(ctx context.Context, commentID, actorID string) error
}

// TweetService covers tweet CRUD with ownership enforcement.
type TweetService interface {
	Create(ctx context.Context, actorID, content string) (*domain.Tweet, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Tweet, error)
	Update(ctx context.Context, tweetID, actorID, content string) (*domain.Tweet, error)
	Delete(ctx context.Context, tweetID, actorID string) error
}

// PlaylistService covers playlist CRUD and membership edits, all owner-gated.
type PlaylistService interface {
	Create(ctx context.Context, actorID, name, description string) (*domain.Playlist, error)
	Get(ctx context.Context, playlistID string) (*domain.Playlist, error)
	ListOwn(ctx context.Context, actorID string) ([]domain.Playlist, error)
	Update(ctx context.Context, playlistID, actorID, name, description string) (*domain.Playlist, error)
	Delete(ctx context.Context, playlistID, actorID string) error
	AddVideo(ctx context.Context, playlistID, videoID, actorID string) (*domain.Playlist, error)
	RemoveVideo(ctx context.Context, playlistID, videoID, actorID string) (*domain.Playlist, error)
}

// LikeService is the generic toggle-by-presence capability over a like-kind
// tag, shared by video, comment and tweet likes.
type LikeService interface {
	// Toggle creates the (kind, target, actor) like row if absent, deletes
	// it if present, and reports the resulting state. Toggling twice always
	// returns to the original state.
	Toggle(ctx context.Context, kind domain.LikeKind, targetID, actorID string) (domain.ToggleState, error)
	LikedVideos(ctx context.Context, actorID string) ([]domain.Like, error)
}

// SubscriptionService covers the subscription toggle and relationship
// listings.
type SubscriptionService interface {
	// Toggle subscribes or unsubscribes. Both identities must exist;
	// subscribing to one's own channel is rejected.
	Toggle(ctx context.Context, channelID, subscriberID string) (domain.ToggleState, error)
	Subscribers(ctx context.Context, channelID string) ([]domain.Subscription, error)
	SubscribedChannels(ctx context.Context, subscriberID string) ([]domain.Subscription, error)
}

// DashboardService aggregates channel-wide stats and listings for the
// authenticated channel owner.
type DashboardService interface {
	// Stats fans out the four independent sub-queries concurrently and
	// responds only once all four have completed.
	Stats(ctx context.Context, channelID string) (*domain.ChannelStats, error)
	Videos(ctx context.Context, channelID string, page, limit int) (*VideoPage, error)
}

// StatsCache is the read-time aggregation escape hatch: channel stats are
// cached behind this interface so the computation can later be swapped for
// maintained counters without touching callers.
type StatsCache interface {
	// Get returns the cached stats or nil on a miss.
	Get(ctx context.Context, channelID string) (*domain.ChannelStats, error)
	Set(ctx context.Context, channelID string, stats *domain.ChannelStats) error
}
