package domain

import "errors"

// Sentinel errors returned by services and repositories. The HTTP layer maps
// each one to a deterministic status code in a single place.
var (
	ErrInvalidID          = errors.New("invalid identifier")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenMismatch      = errors.New("refresh token is expired or used")
	ErrUnauthorized       = errors.New("unauthorized request")
	ErrForbidden          = errors.New("access forbidden")
	ErrUserExists         = errors.New("user with email or username already exists")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrAlreadyExists      = errors.New("resource already exists")
	ErrSelfSubscription   = errors.New("cannot subscribe to own channel")
	ErrMissingField       = errors.New("required field missing")

	ErrUserNotFound     = errors.New("user not found")
	ErrChannelNotFound  = errors.New("channel not found")
	ErrVideoNotFound    = errors.New("video not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrTweetNotFound    = errors.New("tweet not found")
	ErrPlaylistNotFound = errors.New("playlist not found")

	// Absence of a relationship row is the normal half of a toggle, not a
	// client-visible failure.
	ErrLikeNotFound         = errors.New("like not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
)
