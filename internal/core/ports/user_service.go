package ports

import (
	"context"
	"io"

	"github.com/vidtube/video-platform/internal/core/domain"
)

// FileUpload carries one multipart file on its way to the object store.
type FileUpload struct {
	Reader      io.Reader
	Size        int64
	Filename    string
	ContentType string
}

// RegisterInput carries everything needed to create an account. Avatar is
// required; CoverImage may be nil.
type RegisterInput struct {
	Username   string
	Email      string
	FullName   string
	Password   string
	Avatar     *FileUpload
	CoverImage *FileUpload
}

// LoginInput identifies the account by username or email.
type LoginInput struct {
	Username string
	Email    string
	Password string
}

// TokenPair is an access/refresh credential pair for one session.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthResult is returned by login and refresh.
type AuthResult struct {
	User   *domain.User
	Tokens TokenPair
}

// UserService covers the account lifecycle and the social-graph reads that
// hang off a user profile.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
	// Logout clears the stored refresh token, invalidating the session.
	Logout(ctx context.Context, userID string) error
	// Refresh validates the presented refresh token against the stored one
	// and rotates both tokens.
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
	UpdateAccount(ctx context.Context, userID, fullName, email string) (*domain.User, error)
	UpdateAvatar(ctx context.Context, userID string, avatar *FileUpload) (*domain.User, error)
	UpdateCoverImage(ctx context.Context, userID string, cover *FileUpload) (*domain.User, error)
	// ChannelProfile aggregates subscriber counts and the viewer's
	// subscription flag for the channel behind username. viewerID may be
	// empty (unauthenticated): is_subscribed is then false, not an error.
	ChannelProfile(ctx context.Context, username, viewerID string) (*domain.ChannelProfile, error)
	// WatchHistory returns the viewer's history in stored order (most
	// recent last) with video owners' public fields resolved.
	WatchHistory(ctx context.Context, viewerID string) ([]domain.Video, error)
}

// TokenService issues and verifies the signed session credentials.
type TokenService interface {
	IssueAccessToken(user *domain.User) (string, error)
	IssueRefreshToken(user *domain.User) (string, error)
	// VerifyAccess returns the user id embedded in a valid access token.
	VerifyAccess(token string) (string, error)
	// VerifyRefresh returns the user id embedded in a valid refresh token.
	VerifyRefresh(token string) (string, error)
	// Rotate issues a fresh pair and persists the refresh token on the user
	// record. Persistence failures surface as domain.ErrTokenGeneration.
	Rotate(ctx context.Context, user *domain.User) (TokenPair, error)
}
