package ports

import (
	"context"

	"github.com/vidtube/video-platform/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Update* methods are targeted single-field writes: they never touch the
// password hash, so side-effecting saves (token rotation, history appends)
// cannot re-hash credentials.
type UserRepository interface {
	// Create inserts a new user. A duplicate username or email returns
	// domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindByUsernameOrEmail matches either field; used by login.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error)
	// UpdateRefreshToken stores the active refresh token; an empty token
	// clears the field (logout).
	UpdateRefreshToken(ctx context.Context, id, token string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdateAccount(ctx context.Context, id, fullName, email string) (*domain.User, error)
	UpdateAvatar(ctx context.Context, id, avatarURL string) (*domain.User, error)
	UpdateCoverImage(ctx context.Context, id, coverURL string) (*domain.User, error)
	// AppendWatchHistory appends videoID to the user's history, most recent
	// last. A video already present is moved to the end rather than duplicated.
	AppendWatchHistory(ctx context.Context, id, videoID string) error
}

// VideoListFilter carries the query parameters for video listings.
type VideoListFilter struct {
	// Query is a case-insensitive title substring filter.
	Query   string
	OwnerID string
	// SortBy defaults to created_at; SortDesc defaults to true.
	SortBy   string
	SortDesc bool
	Page     int
	Limit    int
}

// VideoRepository defines persistence operations for videos.
type VideoRepository interface {
	Create(ctx context.Context, video *domain.Video) (*domain.Video, error)
	// FindByID returns the video with its owner's public profile populated.
	FindByID(ctx context.Context, id string) (*domain.Video, error)
	Update(ctx context.Context, video *domain.Video) error
	Delete(ctx context.Context, id string) error
	// List returns one page of videos plus the independent total count for
	// the same filter.
	List(ctx context.Context, filter VideoListFilter) ([]domain.Video, int64, error)
	// FindByIDs resolves videos with owners populated; order of the result
	// follows the order of ids.
	FindByIDs(ctx context.Context, ids []string) ([]domain.Video, error)
	IncrementViews(ctx context.Context, id string) error
	IDsByOwner(ctx context.Context, ownerID string) ([]string, error)
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
	SumViewsByOwner(ctx context.Context, ownerID string) (int64, error)
}

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	UpdateContent(ctx context.Context, id, content string) (*domain.Comment, error)
	Delete(ctx context.Context, id string) error
	// ListByVideo returns one page of comments (newest first) and the
	// independent total count for the video.
	ListByVideo(ctx context.Context, videoID string, page, limit int) ([]domain.Comment, int64, error)
}

// TweetRepository defines persistence operations for tweets.
type TweetRepository interface {
	Create(ctx context.Context, tweet *domain.Tweet) (*domain.Tweet, error)
	FindByID(ctx context.Context, id string) (*domain.Tweet, error)
	UpdateContent(ctx context.Context, id, content string) (*domain.Tweet, error)
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Tweet, error)
}

// PlaylistRepository defines persistence operations for playlists.
type PlaylistRepository interface {
	Create(ctx context.Context, playlist *domain.Playlist) (*domain.Playlist, error)
	FindByID(ctx context.Context, id string) (*domain.Playlist, error)
	// FindByIDPopulated additionally resolves owner and video summaries.
	FindByIDPopulated(ctx context.Context, id string) (*domain.Playlist, error)
	// Update persists name, description and the video id list.
	Update(ctx context.Context, playlist *domain.Playlist) error
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Playlist, error)
}

// LikeRepository defines persistence operations for like rows. The
// (kind, target, likedBy) pair is unique at the storage level.
type LikeRepository interface {
	Find(ctx context.Context, kind domain.LikeKind, targetID, likedByID string) (*domain.Like, error)
	// Create inserts a like row. A racing duplicate insert returns
	// domain.ErrAlreadyExists instead of violating the pair invariant.
	Create(ctx context.Context, like *domain.Like) error
	Delete(ctx context.Context, id string) error
	// ListVideoLikesByUser returns the user's video likes, newest first,
	// with the liked videos populated.
	ListVideoLikesByUser(ctx context.Context, userID string) ([]domain.Like, error)
	// CountByVideoIDs counts like rows targeting any of the given videos.
	CountByVideoIDs(ctx context.Context, videoIDs []string) (int64, error)
}

// SubscriptionRepository defines persistence operations for subscriptions.
// The (subscriber, channel) pair is unique at the storage level.
type SubscriptionRepository interface {
	Find(ctx context.Context, subscriberID, channelID string) (*domain.Subscription, error)
	Create(ctx context.Context, sub *domain.Subscription) error
	Delete(ctx context.Context, id string) error
	CountByChannel(ctx context.Context, channelID string) (int64, error)
	CountBySubscriber(ctx context.Context, subscriberID string) (int64, error)
	Exists(ctx context.Context, subscriberID, channelID string) (bool, error)
	// ListSubscribers returns subscriptions to the channel with subscriber
	// profiles populated.
	ListSubscribers(ctx context.Context, channelID string) ([]domain.Subscription, error)
	// ListChannels returns the user's subscriptions with channel profiles
	// populated.
	ListChannels(ctx context.Context, subscriberID string) ([]domain.Subscription, error)
}
