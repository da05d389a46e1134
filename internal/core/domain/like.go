package domain

import "time"

// LikeKind tags which entity a like targets. Exactly one target reference is
// set on a Like row.
type LikeKind string

const (
	LikeVideo   LikeKind = "video"
	LikeComment LikeKind = "comment"
	LikeTweet   LikeKind = "tweet"
)

// Valid reports whether k is a known like target kind.
func (k LikeKind) Valid() bool {
	switch k {
	case LikeVideo, LikeComment, LikeTweet:
		return true
	}
	return false
}

// Like is a (target, liker) relationship row. The pair is unique: toggling
// twice returns to the absent state.
type Like struct {
	ID        string    `json:"id"`
	Kind      LikeKind  `json:"kind"`
	TargetID  string    `json:"target_id"`
	LikedByID string    `json:"liked_by_id"`
	Video     *Video    `json:"video,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToggleState is the resulting state of a toggle operation.
type ToggleState string

const (
	StateLiked        ToggleState = "liked"
	StateUnliked      ToggleState = "unliked"
	StateSubscribed   ToggleState = "subscribed"
	StateUnsubscribed ToggleState = "unsubscribed"
)
