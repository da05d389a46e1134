package service

// Hand-written stubs for the repository and collaborator ports. Each test
// sets only the function fields it needs; an unexpected call panics on the
// nil field and fails the test loudly.

import (
	"context"
	"io"

	"github.com/vidtube/video-platform/internal/core/domain"
	"github.com/vidtube/video-platform/internal/core/ports"
)

type stubUserRepo struct {
	createFn                func(ctx context.Context, user *domain.User) (*domain.User, error)
	findByIDFn              func(ctx context.Context, id string) (*domain.User, error)
	findByUsernameFn        func(ctx context.Context, username string) (*domain.User, error)
	findByUsernameOrEmailFn func(ctx context.Context, username, email string) (*domain.User, error)
	updateRefreshTokenFn    func(ctx context.Context, id, token string) error
	updatePasswordFn        func(ctx context.Context, id, hash string) error
	updateAccountFn         func(ctx context.Context, id, fullName, email string) (*domain.User, error)
	updateAvatarFn          func(ctx context.Context, id, url string) (*domain.User, error)
	updateCoverImageFn      func(ctx context.Context, id, url string) (*domain.User, error)
	appendWatchHistoryFn    func(ctx context.Context, id, videoID string) error
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return s.createFn(ctx, user)
}
func (s *stubUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return s.findByIDFn(ctx, id)
}
func (s *stubUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.findByUsernameFn(ctx, username)
}
func (s *stubUserRepo) FindByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error) {
	return s.findByUsernameOrEmailFn(ctx, username, email)
}
func (s *stubUserRepo) UpdateRefreshToken(ctx context.Context, id, token string) error {
	return s.updateRefreshTokenFn(ctx, id, token)
}
func (s *stubUserRepo) UpdatePassword(ctx context.Context, id, hash string) error {
	return s.updatePasswordFn(ctx, id, hash)
}
func (s *stubUserRepo) UpdateAccount(ctx context.Context, id, fullName, email string) (*domain.User, error) {
	return s.updateAccountFn(ctx, id, fullName, email)
}
func (s *stubUserRepo) UpdateAvatar(ctx context.Context, id, url string) (*domain.User, error) {
	return s.updateAvatarFn(ctx, id, url)
}
func (s *stubUserRepo) UpdateCoverImage(ctx context.Context, id, url string) (*domain.User, error) {
	return s.updateCoverImageFn(ctx, id, url)
}
func (s *stubUserRepo) AppendWatchHistory(ctx context.Context, id, videoID string) error {
	return s.appendWatchHistoryFn(ctx, id, videoID)
}

type stubVideoRepo struct {
	createFn          func(ctx context.Context, video *domain.Video) (*domain.Video, error)
	findByIDFn        func(ctx context.Context, id string) (*domain.Video, error)
	updateFn          func(ctx context.Context, video *domain.Video) error
	deleteFn          func(ctx context.Context, id string) error
	listFn            func(ctx context.Context, filter ports.VideoListFilter) ([]domain.Video, int64, error)
	findByIDsFn       func(ctx context.Context, ids []string) ([]domain.Video, error)
	incrementViewsFn  func(ctx context.Context, id string) error
	idsByOwnerFn      func(ctx context.Context, ownerID string) ([]string, error)
	countByOwnerFn    func(ctx context.Context, ownerID string) (int64, error)
	sumViewsByOwnerFn func(ctx context.Context, ownerID string) (int64, error)
}

func (s *stubVideoRepo) Create(ctx context.Context, video *domain.Video) (*domain.Video, error) {
	return s.createFn(ctx, video)
}
func (s *stubVideoRepo) FindByID(ctx context.Context, id string) (*domain.Video, error) {
	return s.findByIDFn(ctx, id)
}
func (s *stubVideoRepo) Update(ctx context.Context, video *domain.Video) error {
	return s.updateFn(ctx, video)
}
func (s *stubVideoRepo) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}
func (s *stubVideoRepo) List(ctx context.Context, filter ports.VideoListFilter) ([]domain.Video, int64, error) {
	return s.listFn(ctx, filter)
}
func (s *stubVideoRepo) FindByIDs(ctx context.Context, ids []string) ([]domain.Video, error) {
	return s.findByIDsFn(ctx, ids)
}
func (s *stubVideoRepo) IncrementViews(ctx context.Context, id string) error {
	return s.incrementViewsFn(ctx, id)
}
func (s *stubVideoRepo) IDsByOwner(ctx context.Context, ownerID string) ([]string, error) {
	return s.idsByOwnerFn(ctx, ownerID)
}
func (s *stubVideoRepo) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	return s.countByOwnerFn(ctx, ownerID)
}
func (s *stubVideoRepo) SumViewsByOwner(ctx context.Context, ownerID string) (int64, error) {
	return s.sumViewsByOwnerFn(ctx, ownerID)
}

type stubCommentRepo struct {
	createFn        func(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	findByIDFn      func(ctx context.Context, id string) (*domain.Comment, error)
	updateContentFn func(ctx context.Context, id, content string) (*domain.Comment, error)
	deleteFn        func(ctx context.Context, id string) error
	listByVideoFn   func(ctx context.Context, videoID string, page, limit int) ([]domain.Comment, int64, error)
}

func (s *stubCommentRepo) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	return s.createFn(ctx, comment)
}
func (s *stubCommentRepo) FindByID(ctx context.Context, id string) (*domain.Comment, error) {
	return s.findByIDFn(ctx, id)
}
func (s *stubCommentRepo) UpdateContent(ctx context.Context, id, content string) (*domain.Comment, error) {
	return s.updateContentFn(ctx, id, content)
}
func (s *stubCommentRepo) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}
func (s *stubCommentRepo) ListByVideo(ctx context.Context, videoID string, page, limit int) ([]domain.Comment, int64, error) {
	return s.listByVideoFn(ctx, videoID, page, limit)
}

type stubTweetRepo struct {
	createFn        func(ctx context.Context, tweet *domain.Tweet) (*domain.Tweet, error)
	findByIDFn      func(ctx context.Context, id string) (*domain.Tweet, error)
	updateContentFn func(ctx context.Context, id, content string) (*domain.Tweet, error)
	deleteFn        func(ctx context.Context, id string) error
	listByOwnerFn   func(ctx context.Context, ownerID string) ([]domain.Tweet, error)
}

func (s *stubTweetRepo) Create(ctx context.Context, tweet *domain.Tweet) (*domain.Tweet, error) {
	return s.createFn(ctx, tweet)
}
func (s *stubTweetRepo) FindByID(ctx context.Context, id string) (*domain.Tweet, error) {
	return s.findByIDFn(ctx, id)
}
func (s *stubTweetRepo) UpdateContent(ctx context.Context, id, content string) (*domain.Tweet, error) {
	return s.updateContentFn(ctx, id, content)
}
func (s *stubTweetRepo) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}
func (s *stubTweetRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Tweet, error) {
	return s.listByOwnerFn(ctx, ownerID)
}

type stubPlaylistRepo struct {
	createFn            func(ctx context.Context, playlist *domain.Playlist) (*domain.Playlist, error)
	findByIDFn          func(ctx context.Context, id string) (*domain.Playlist, error)
	findByIDPopulatedFn func(ctx context.Context, id string) (*domain.Playlist, error)
	updateFn            func(ctx context.Context, playlist *domain.Playlist) error
	deleteFn            func(ctx context.Context, id string) error
	listByOwnerFn       func(ctx context.Context, ownerID string) ([]domain.Playlist, error)
}

func (s *stubPlaylistRepo) Create(ctx context.Context, playlist *domain.Playlist) (*domain.Playlist, error) {
	return s.createFn(ctx, playlist)
}
func (s *stubPlaylistRepo) FindByID(ctx context.Context, id string) (*domain.Playlist, error) {
	return s.findByIDFn(ctx, id)
}
func (s *stubPlaylistRepo) FindByIDPopulated(ctx context.Context, id string) (*domain.Playlist, error) {
	return s.findByIDPopulatedFn(ctx, id)
}
func (s *stubPlaylistRepo) Update(ctx context.Context, playlist *domain.Playlist) error {
	return s.updateFn(ctx, playlist)
}
func (s *stubPlaylistRepo) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}
func (s *stubPlaylistRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Playlist, error) {
	return s.listByOwnerFn(ctx, ownerID)
}

type stubLikeRepo struct {
	findFn                 func(ctx context.Context, kind domain.LikeKind, targetID, likedByID string) (*domain.Like, error)
	createFn               func(ctx context.Context, like *domain.Like) error
	deleteFn               func(ctx context.Context, id string) error
	listVideoLikesByUserFn func(ctx context.Context, userID string) ([]domain.Like, error)
	countByVideoIDsFn      func(ctx context.Context, videoIDs []string) (int64, error)
}

func (s *stubLikeRepo) Find(ctx context.Context, kind domain.LikeKind, targetID, likedByID string) (*domain.Like, error) {
	return s.findFn(ctx, kind, targetID, likedByID)
}
func (s *stubLikeRepo) Create(ctx context.Context, like *domain.Like) error {
	return s.createFn(ctx, like)
}
func (s *stubLikeRepo) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}
func (s *stubLikeRepo) ListVideoLikesByUser(ctx context.Context, userID string) ([]domain.Like, error) {
	return s.listVideoLikesByUserFn(ctx, userID)
}
func (s *stubLikeRepo) CountByVideoIDs(ctx context.Context, videoIDs []string) (int64, error) {
	return s.countByVideoIDsFn(ctx, videoIDs)
}

type stubSubscriptionRepo struct {
	findFn              func(ctx context.Context, subscriberID, channelID string) (*domain.Subscription, error)
	createFn            func(ctx context.Context, sub *domain.Subscription) error
	deleteFn            func(ctx context.Context, id string) error
	countByChannelFn    func(ctx context.Context, channelID string) (int64, error)
	countBySubscriberFn func(ctx context.Context, subscriberID string) (int64, error)
	existsFn            func(ctx context.Context, subscriberID, channelID string) (bool, error)
	listSubscribersFn   func(ctx context.Context, channelID string) ([]domain.Subscription, error)
	listChannelsFn      func(ctx context.Context, subscriberID string) ([]domain.Subscription, error)
}

func (s *stubSubscriptionRepo) Find(ctx context.Context, subscriberID, channelID string) (*domain.Subscription, error) {
	return s.findFn(ctx, subscriberID, channelID)
}
func (s *stubSubscriptionRepo) Create(ctx context.Context, sub *domain.Subscription) error {
	return s.createFn(ctx, sub)
}
func (s *stubSubscriptionRepo) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}
func (s *stubSubscriptionRepo) CountByChannel(ctx context.Context, channelID string) (int64, error) {
	return s.countByChannelFn(ctx, channelID)
}
func (s *stubSubscriptionRepo) CountBySubscriber(ctx context.Context, subscriberID string) (int64, error) {
	return s.countBySubscriberFn(ctx, subscriberID)
}
func (s *stubSubscriptionRepo) Exists(ctx context.Context, subscriberID, channelID string) (bool, error) {
	return s.existsFn(ctx, subscriberID, channelID)
}
func (s *stubSubscriptionRepo) ListSubscribers(ctx context.Context, channelID string) ([]domain.Subscription, error) {
	return s.listSubscribersFn(ctx, channelID)
}
func (s *stubSubscriptionRepo) ListChannels(ctx context.Context, subscriberID string) ([]domain.Subscription, error) {
	return s.listChannelsFn(ctx, subscriberID)
}

type stubFileStore struct {
	putFn    func(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	deleteFn func(ctx context.Context, key string) error
}

func (s *stubFileStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	if s.putFn == nil {
		return "https://cdn.example.com/" + key, nil
	}
	return s.putFn(ctx, key, r, size, contentType)
}
func (s *stubFileStore) Delete(ctx context.Context, key string) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, key)
}

type stubStatsCache struct {
	getFn func(ctx context.Context, channelID string) (*domain.ChannelStats, error)
	setFn func(ctx context.Context, channelID string, stats *domain.ChannelStats) error
}

func (s *stubStatsCache) Get(ctx context.Context, channelID string) (*domain.ChannelStats, error) {
	if s.getFn == nil {
		return nil, nil
	}
	return s.getFn(ctx, channelID)
}
func (s *stubStatsCache) Set(ctx context.Context, channelID string, stats *domain.ChannelStats) error {
	if s.setFn == nil {
		return nil
	}
	return s.setFn(ctx, channelID, stats)
}

type stubEnqueuer struct {
	events []ports.WatchEvent
}

func (s *stubEnqueuer) Enqueue(event ports.WatchEvent) {
	s.events = append(s.events, event)
}

type stubTokenService struct {
	rotateFn        func(ctx context.Context, user *domain.User) (ports.TokenPair, error)
	verifyRefreshFn func(token string) (string, error)
}

func (s *stubTokenService) IssueAccessToken(user *domain.User) (string, error)  { return "access", nil }
func (s *stubTokenService) IssueRefreshToken(user *domain.User) (string, error) { return "refresh", nil }
func (s *stubTokenService) VerifyAccess(token string) (string, error)           { return "", nil }
func (s *stubTokenService) VerifyRefresh(token string) (string, error) {
	return s.verifyRefreshFn(token)
}
func (s *stubTokenService) Rotate(ctx context.Context, user *domain.User) (ports.TokenPair, error) {
	if s.rotateFn == nil {
		return ports.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil
	}
	return s.rotateFn(ctx, user)
}
