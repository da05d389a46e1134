package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/vidtube/video-platform/internal/core/domain"
	"github.com/vidtube/video-platform/internal/core/ports"
)

const (
	testUserID  = "65b0c2f1a9d4e8b3c6f7a1d2"
	testVideoID = "65b0c2f1a9d4e8b3c6f7a1d3"
)

func upload(name string) *ports.FileUpload {
	return &ports.FileUpload{
		Reader:      strings.NewReader("blob"),
		Size:        4,
		Filename:    name,
		ContentType: "image/png",
	}
}

func TestUserService_Register_AvatarRequired(t *testing.T) {
	svc := NewUserService(&stubUserRepo{}, &stubVideoRepo{}, &stubSubscriptionRepo{}, &stubTokenService{}, &stubFileStore{}, zerolog.Nop())

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		FullName: "Alice",
		Password: "secret",
		Avatar:   nil,
	})
	if !errors.Is(err, domain.ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
}

func TestUserService_Register_DuplicateUser(t *testing.T) {
	users := &stubUserRepo{
		findByUsernameOrEmailFn: func(ctx context.Context, username, email string) (*domain.User, error) {
			return &domain.User{ID: testUserID}, nil
		},
	}
	svc := NewUserService(users, &stubVideoRepo{}, &stubSubscriptionRepo{}, &stubTokenService{}, &stubFileStore{}, zerolog.Nop())

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		FullName: "Alice",
		Password: "secret",
		Avatar:   upload("a.png"),
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_Register_LowercasesUsernameAndCleansUpOnInsertFailure(t *testing.T) {
	var deleted []string
	users := &stubUserRepo{
		findByUsernameOrEmailFn: func(ctx context.Context, username, email string) (*domain.User, error) {
			if username != "alice" {
				t.Fatalf("expected lowercased username, got %q", username)
			}
			return nil, domain.ErrUserNotFound
		},
		createFn: func(ctx context.Context, user *domain.User) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	files := &stubFileStore{
		deleteFn: func(ctx context.Context, key string) error {
			deleted = append(deleted, key)
			return nil
		},
	}
	svc := NewUserService(users, &stubVideoRepo{}, &stubSubscriptionRepo{}, &stubTokenService{}, files, zerolog.Nop())

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "Alice",
		Email:    "alice@example.com",
		FullName: "Alice",
		Password: "secret",
		Avatar:   upload("a.png"),
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if len(deleted) != 1 {
		t.Fatalf("expected uploaded avatar discarded, got %v", deleted)
	}
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	users := &stubUserRepo{
		findByUsernameOrEmailFn: func(ctx context.Context, username, email string) (*domain.User, error) {
			return &domain.User{ID: testUserID, PasswordHash: string(hash)}, nil
		},
	}
	svc := NewUserService(users, &stubVideoRepo{}, &stubSubscriptionRepo{}, &stubTokenService{}, &stubFileStore{}, zerolog.Nop())

	_, err := svc.Login(context.Background(), ports.LoginInput{Username: "alice", Password: "wrong"})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserService_Login_Success(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	users := &stubUserRepo{
		findByUsernameOrEmailFn: func(ctx context.Context, username, email string) (*domain.User, error) {
			return &domain.User{ID: testUserID, Username: "alice", PasswordHash: string(hash)}, nil
		},
	}
	svc := NewUserService(users, &stubVideoRepo{}, &stubSubscriptionRepo{}, &stubTokenService{}, &stubFileStore{}, zerolog.Nop())

	result, err := svc.Login(context.Background(), ports.LoginInput{Username: "alice", Password: "secret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Tokens.AccessToken == "" || result.Tokens.RefreshToken == "" {
		t.Fatalf("expected token pair, got %+v", result.Tokens)
	}
}

func TestUserService_Refresh_StoredMismatch(t *testing.T) {
	users := &stubUserRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.User, error) {
			// A newer login already replaced the stored token.
			return &domain.User{ID: testUserID, RefreshToken: "newer-token"}, nil
		},
	}
	tokens := &stubTokenService{
		verifyRefreshFn: func(token string) (string, error) { return testUserID, nil },
	}
	svc := NewUserService(users, &stubVideoRepo{}, &stubSubscriptionRepo{}, tokens, &stubFileStore{}, zerolog.Nop())

	_, err := svc.Refresh(context.Background(), "older-token")
	if !errors.Is(err, domain.ErrTokenMismatch) {
		t.Fatalf("expected ErrTokenMismatch, got %v", err)
	}
}

func TestUserService_Refresh_InvalidSignature(t *testing.T) {
	tokens := &stubTokenService{
		verifyRefreshFn: func(token string) (string, error) { return "", domain.ErrInvalidToken },
	}
	svc := NewUserService(&stubUserRepo{}, &stubVideoRepo{}, &stubSubscriptionRepo{}, tokens, &stubFileStore{}, zerolog.Nop())

	_, err := svc.Refresh(context.Background(), "forged")
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestUserService_ChannelProfile_NotFound(t *testing.T) {
	users := &stubUserRepo{
		findByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	svc := NewUserService(users, &stubVideoRepo{}, &stubSubscriptionRepo{}, &stubTokenService{}, &stubFileStore{}, zerolog.Nop())

	_, err := svc.ChannelProfile(context.Background(), "ghost", "")
	if !errors.Is(err, domain.ErrChannelNotFound) {
		t.Fatalf("expected ErrChannelNotFound, got %v", err)
	}
}

func TestUserService_ChannelProfile_AnonymousViewerSkipsSubscriptionCheck(t *testing.T) {
	users := &stubUserRepo{
		findByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{ID: testUserID, Username: "alice"}, nil
		},
	}
	subs := &stubSubscriptionRepo{
		countByChannelFn:    func(ctx context.Context, channelID string) (int64, error) { return 7, nil },
		countBySubscriberFn: func(ctx context.Context, subscriberID string) (int64, error) { return 3, nil },
		existsFn: func(ctx context.Context, subscriberID, channelID string) (bool, error) {
			t.Fatalf("Exists must not run for anonymous viewers")
			return false, nil
		},
	}
	svc := NewUserService(users, &stubVideoRepo{}, subs, &stubTokenService{}, &stubFileStore{}, zerolog.Nop())

	profile, err := svc.ChannelProfile(context.Background(), "alice", "")
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile.SubscribersCount != 7 || profile.ChannelsSubscribedToCount != 3 {
		t.Fatalf("unexpected counts: %+v", profile)
	}
	if profile.IsSubscribed {
		t.Fatalf("anonymous viewer must never appear subscribed")
	}
}

func TestUserService_ChannelProfile_ViewerSubscribed(t *testing.T) {
	users := &stubUserRepo{
		findByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{ID: testUserID, Username: "alice"}, nil
		},
	}
	subs := &stubSubscriptionRepo{
		countByChannelFn:    func(ctx context.Context, channelID string) (int64, error) { return 1, nil },
		countBySubscriberFn: func(ctx context.Context, subscriberID string) (int64, error) { return 0, nil },
		existsFn:            func(ctx context.Context, subscriberID, channelID string) (bool, error) { return true, nil },
	}
	svc := NewUserService(users, &stubVideoRepo{}, subs, &stubTokenService{}, &stubFileStore{}, zerolog.Nop())

	profile, err := svc.ChannelProfile(context.Background(), "alice", testVideoID)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if !profile.IsSubscribed {
		t.Fatalf("expected is_subscribed true")
	}
}

func TestUserService_WatchHistory_PreservesStoredOrder(t *testing.T) {
	first := "65b0c2f1a9d4e8b3c6f7a111"
	second := "65b0c2f1a9d4e8b3c6f7a222"
	users := &stubUserRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: testUserID, WatchHistory: []string{first, second}}, nil
		},
	}
	videos := &stubVideoRepo{
		findByIDsFn: func(ctx context.Context, ids []string) ([]domain.Video, error) {
			// Repository returns them out of order.
			return []domain.Video{{ID: second}, {ID: first}}, nil
		},
	}
	svc := NewUserService(users, videos, &stubSubscriptionRepo{}, &stubTokenService{}, &stubFileStore{}, zerolog.Nop())

	history, err := svc.WatchHistory(context.Background(), testUserID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 || history[0].ID != first || history[1].ID != second {
		t.Fatalf("expected stored order [%s %s], got %+v", first, second, history)
	}
}

func TestUserService_WatchHistory_Empty(t *testing.T) {
	users := &stubUserRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: testUserID}, nil
		},
	}
	svc := NewUserService(users, &stubVideoRepo{}, &stubSubscriptionRepo{}, &stubTokenService{}, &stubFileStore{}, zerolog.Nop())

	history, err := svc.WatchHistory(context.Background(), testUserID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if history == nil || len(history) != 0 {
		t.Fatalf("expected empty slice, got %#v", history)
	}
}
