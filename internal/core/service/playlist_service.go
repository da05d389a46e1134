package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/vidtube/video-platform/internal/core/domain"
	"github.com/vidtube/video-platform/internal/core/ports"
)

// PlaylistService implements playlist CRUD and membership edits. Every
// mutation is owner-gated; duplicate video adds are suppressed.
type PlaylistService struct {
	playlists ports.PlaylistRepository
	videos    ports.VideoRepository
	logger    zerolog.Logger
}

func NewPlaylistService(playlists ports.PlaylistRepository, videos ports.VideoRepository, logger zerolog.Logger) *PlaylistService {
	return &PlaylistService{playlists: playlists, videos: videos, logger: logger}
}

func (s *PlaylistService) Create(ctx context.Context, actorID, name, description string) (*domain.Playlist, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(description) == "" {
		return nil, domain.ErrMissingField
	}
	return s.playlists.Create(ctx, &domain.Playlist{
		Name:        name,
		Description: description,
		VideoIDs:    []string{},
		OwnerID:     actorID,
	})
}

func (s *PlaylistService) Get(ctx context.Context, playlistID string) (*domain.Playlist, error) {
	if !domain.ValidID(playlistID) {
		return nil, domain.ErrInvalidID
	}
	return s.playlists.FindByIDPopulated(ctx, playlistID)
}

func (s *PlaylistService) ListOwn(ctx context.Context, actorID string) ([]domain.Playlist, error) {
	playlists, err := s.playlists.ListByOwner(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if playlists == nil {
		playlists = []domain.Playlist{}
	}
	return playlists, nil
}

func (s *PlaylistService) Update(ctx context.Context, playlistID, actorID, name, description string) (*domain.Playlist, error) {
	if name == "" && description == "" {
		return nil, domain.ErrMissingField
	}

	playlist, err := s.ownedPlaylist(ctx, playlistID, actorID)
	if err != nil {
		return nil, err
	}

	if name != "" {
		playlist.Name = name
	}
	if description != "" {
		playlist.Description = description
	}
	if err := s.playlists.Update(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (s *PlaylistService) Delete(ctx context.Context, playlistID, actorID string) error {
	if _, err := s.ownedPlaylist(ctx, playlistID, actorID); err != nil {
		return err
	}
	return s.playlists.Delete(ctx, playlistID)
}

// AddVideo appends videoID to the playlist unless it is already present.
func (s *PlaylistService) AddVideo(ctx context.Context, playlistID, videoID, actorID string) (*domain.Playlist, error) {
	if !domain.ValidID(videoID) {
		return nil, domain.ErrInvalidID
	}

	playlist, err := s.ownedPlaylist(ctx, playlistID, actorID)
	if err != nil {
		return nil, err
	}

	video, err := s.videos.FindByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if !playlist.ContainsVideo(video.ID) {
		playlist.VideoIDs = append(playlist.VideoIDs, video.ID)
		if err := s.playlists.Update(ctx, playlist); err != nil {
			return nil, err
		}
	}
	return playlist, nil
}

func (s *PlaylistService) RemoveVideo(ctx context.Context, playlistID, videoID, actorID string) (*domain.Playlist, error) {
	if !domain.ValidID(videoID) {
		return nil, domain.ErrInvalidID
	}

	playlist, err := s.ownedPlaylist(ctx, playlistID, actorID)
	if err != nil {
		return nil, err
	}

	kept := playlist.VideoIDs[:0]
	for _, id := range playlist.VideoIDs {
		if !domain.SameID(id, videoID) {
			kept = append(kept, id)
		}
	}
	playlist.VideoIDs = kept

	if err := s.playlists.Update(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (s *PlaylistService) ownedPlaylist(ctx context.Context, playlistID, actorID string) (*domain.Playlist, error) {
	if !domain.ValidID(playlistID) {
		return nil, domain.ErrInvalidID
	}
	playlist, err := s.playlists.FindByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if err := domain.AssertOwner(playlist.OwnerID, actorID); err != nil {
		return nil, err
	}
	return playlist, nil
}
