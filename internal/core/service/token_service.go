package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/vidtube/video-platform/internal/core/domain"
	"github.com/vidtube/video-platform/internal/core/ports"
)

// TokenService issues and verifies the dual access/refresh credentials.
// Access and refresh tokens are signed with independent secrets so a leaked
// refresh secret cannot mint access tokens and vice versa.
type TokenService struct {
	users         ports.UserRepository
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	logger        zerolog.Logger
}

func NewTokenService(users ports.UserRepository, accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration, logger zerolog.Logger) *TokenService {
	if accessTTL <= 0 {
		accessTTL = 24 * time.Hour
	}
	if refreshTTL <= 0 {
		refreshTTL = 10 * 24 * time.Hour
	}
	return &TokenService{
		users:         users,
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		logger:        logger,
	}
}

// IssueAccessToken signs a short-lived credential embedding the user id.
func (s *TokenService) IssueAccessToken(user *domain.User) (string, error) {
	return s.sign(user, s.accessSecret, s.accessTTL)
}

// IssueRefreshToken signs the long-lived session credential.
func (s *TokenService) IssueRefreshToken(user *domain.User) (string, error) {
	return s.sign(user, s.refreshSecret, s.refreshTTL)
}

// VerifyAccess validates signature and expiry and returns the embedded user id.
func (s *TokenService) VerifyAccess(token string) (string, error) {
	return verify(token, s.accessSecret)
}

// VerifyRefresh validates signature and expiry and returns the embedded user id.
func (s *TokenService) VerifyRefresh(token string) (string, error) {
	return verify(token, s.refreshSecret)
}

// Rotate issues a fresh token pair and persists the refresh token as the
// user's single active session credential, invalidating any prior one. The
// persistence write is a targeted field update, so it cannot re-hash the
// stored password.
func (s *TokenService) Rotate(ctx context.Context, user *domain.User) (ports.TokenPair, error) {
	access, err := s.IssueAccessToken(user)
	if err != nil {
		return ports.TokenPair{}, domain.ErrTokenGeneration
	}
	refresh, err := s.IssueRefreshToken(user)
	if err != nil {
		return ports.TokenPair{}, domain.ErrTokenGeneration
	}

	if err := s.users.UpdateRefreshToken(ctx, user.ID, refresh); err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to persist refresh token")
		return ports.TokenPair{}, domain.ErrTokenGeneration
	}

	return ports.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *TokenService) sign(user *domain.User, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

func verify(token string, secret []byte) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", domain.ErrInvalidToken
	}
	return sub, nil
}
