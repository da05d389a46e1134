package service

import (
	"context"
	"errors"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"

	"github.com/vidtube/video-platform/internal/core/domain"
	"github.com/vidtube/video-platform/internal/core/ports"
)

// UserService implements the account lifecycle and the profile-level
// social-graph reads.
type UserService struct {
	users  ports.UserRepository
	videos ports.VideoRepository
	subs   ports.SubscriptionRepository
	tokens ports.TokenService
	files  ports.FileStore
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, videos ports.VideoRepository, subs ports.SubscriptionRepository, tokens ports.TokenService, files ports.FileStore, logger zerolog.Logger) *UserService {
	return &UserService{
		users:  users,
		videos: videos,
		subs:   subs,
		tokens: tokens,
		files:  files,
		logger: logger,
	}
}

// Register creates an account. The avatar is mandatory even when all text
// fields validate; media blobs are uploaded before the insert, so a failed
// insert triggers a best-effort cleanup of the just-uploaded objects.
func (s *UserService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if strings.TrimSpace(input.Username) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.FullName) == "" ||
		strings.TrimSpace(input.Password) == "" {
		return nil, domain.ErrMissingField
	}
	if input.Avatar == nil {
		return nil, domain.ErrMissingField
	}

	username := strings.ToLower(strings.TrimSpace(input.Username))

	if _, err := s.users.FindByUsernameOrEmail(ctx, username, input.Email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	avatarKey := objectKey("avatars", input.Avatar.Filename)
	avatarURL, err := s.files.Put(ctx, avatarKey, input.Avatar.Reader, input.Avatar.Size, input.Avatar.ContentType)
	if err != nil {
		return nil, err
	}

	var coverKey, coverURL string
	if input.CoverImage != nil {
		coverKey = objectKey("covers", input.CoverImage.Filename)
		coverURL, err = s.files.Put(ctx, coverKey, input.CoverImage.Reader, input.CoverImage.Size, input.CoverImage.ContentType)
		if err != nil {
			s.discard(ctx, avatarKey)
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, &domain.User{
		Username:     username,
		Email:        input.Email,
		FullName:     input.FullName,
		Avatar:       avatarURL,
		CoverImage:   coverURL,
		PasswordHash: string(hash),
	})
	if err != nil {
		s.discard(ctx, avatarKey)
		if coverKey != "" {
			s.discard(ctx, coverKey)
		}
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Login authenticates by username or email.
func (s *UserService) Login(ctx context.Context, input ports.LoginInput) (*ports.AuthResult, error) {
	if input.Username == "" && input.Email == "" {
		return nil, domain.ErrMissingField
	}

	user, err := s.users.FindByUsernameOrEmail(ctx, strings.ToLower(input.Username), input.Email)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	tokens, err := s.tokens.Rotate(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return &ports.AuthResult{User: user, Tokens: tokens}, nil
}

// Logout invalidates the session by clearing the stored refresh token.
func (s *UserService) Logout(ctx context.Context, userID string) error {
	return s.users.UpdateRefreshToken(ctx, userID, "")
}

// Refresh rotates the token pair. A signature-valid token that does not match
// the user's currently stored refresh token is rejected: it belongs to an
// invalidated session (expired or already used).
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*ports.AuthResult, error) {
	if refreshToken == "" {
		return nil, domain.ErrUnauthorized
	}

	userID, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	if user.RefreshToken != refreshToken {
		return nil, domain.ErrTokenMismatch
	}

	tokens, err := s.tokens.Rotate(ctx, user)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{User: user, Tokens: tokens}, nil
}

func (s *UserService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if newPassword == "" {
		return domain.ErrMissingField
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)) != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, userID, string(hash))
}

func (s *UserService) UpdateAccount(ctx context.Context, userID, fullName, email string) (*domain.User, error) {
	if fullName == "" || email == "" {
		return nil, domain.ErrMissingField
	}
	return s.users.UpdateAccount(ctx, userID, fullName, email)
}

func (s *UserService) UpdateAvatar(ctx context.Context, userID string, avatar *ports.FileUpload) (*domain.User, error) {
	if avatar == nil {
		return nil, domain.ErrMissingField
	}
	url, err := s.files.Put(ctx, objectKey("avatars", avatar.Filename), avatar.Reader, avatar.Size, avatar.ContentType)
	if err != nil {
		return nil, err
	}
	return s.users.UpdateAvatar(ctx, userID, url)
}

func (s *UserService) UpdateCoverImage(ctx context.Context, userID string, cover *ports.FileUpload) (*domain.User, error) {
	if cover == nil {
		return nil, domain.ErrMissingField
	}
	url, err := s.files.Put(ctx, objectKey("covers", cover.Filename), cover.Reader, cover.Size, cover.ContentType)
	if err != nil {
		return nil, err
	}
	return s.users.UpdateCoverImage(ctx, userID, url)
}

// ChannelProfile aggregates the channel page counts. The three sub-queries
// are independent and run concurrently; the profile is returned only once all
// of them complete.
func (s *UserService) ChannelProfile(ctx context.Context, username, viewerID string) (*domain.ChannelProfile, error) {
	if strings.TrimSpace(username) == "" {
		return nil, domain.ErrMissingField
	}

	channel, err := s.users.FindByUsername(ctx, strings.ToLower(strings.TrimSpace(username)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrChannelNotFound
		}
		return nil, err
	}

	var (
		subscribers  int64
		subscribedTo int64
		isSubscribed bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		subscribers, err = s.subs.CountByChannel(gctx, channel.ID)
		return err
	})
	g.Go(func() error {
		var err error
		subscribedTo, err = s.subs.CountBySubscriber(gctx, channel.ID)
		return err
	})
	if viewerID != "" {
		g.Go(func() error {
			var err error
			isSubscribed, err = s.subs.Exists(gctx, viewerID, channel.ID)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.ChannelProfile{
		ID:                        channel.ID,
		Username:                  channel.Username,
		FullName:                  channel.FullName,
		Email:                     channel.Email,
		Avatar:                    channel.Avatar,
		CoverImage:                channel.CoverImage,
		SubscribersCount:          subscribers,
		ChannelsSubscribedToCount: subscribedTo,
		IsSubscribed:              isSubscribed,
	}, nil
}

// WatchHistory resolves the viewer's history in stored order (appends happen
// most-recent-last) with each video's owner reduced to public fields.
func (s *UserService) WatchHistory(ctx context.Context, viewerID string) ([]domain.Video, error) {
	user, err := s.users.FindByID(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if len(user.WatchHistory) == 0 {
		return []domain.Video{}, nil
	}

	videos, err := s.videos.FindByIDs(ctx, user.WatchHistory)
	if err != nil {
		return nil, err
	}

	// Restore stored history order; the repository does not guarantee it.
	byID := make(map[string]domain.Video, len(videos))
	for _, v := range videos {
		byID[domain.CanonicalID(v.ID)] = v
	}
	ordered := make([]domain.Video, 0, len(user.WatchHistory))
	for _, id := range user.WatchHistory {
		if v, ok := byID[domain.CanonicalID(id)]; ok {
			ordered = append(ordered, v)
		}
	}
	return ordered, nil
}

// discard removes an uploaded object after a failed insert. Failures are
// logged and accepted: the orphaned-object gap is documented, not compensated.
func (s *UserService) discard(ctx context.Context, key string) {
	if err := s.files.Delete(ctx, key); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("orphaned media object left in store")
	}
}

// objectKey builds a unique object-store key preserving the file extension.
func objectKey(prefix, filename string) string {
	return prefix + "/" + uuid.NewString() + strings.ToLower(path.Ext(filename))
}
