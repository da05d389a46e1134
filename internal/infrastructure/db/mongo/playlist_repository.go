package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vidtube/video-platform/internal/core/domain"
)

// PlaylistRepository implements ports.PlaylistRepository on MongoDB.
type PlaylistRepository struct {
	coll *mongo.Collection
}

func NewPlaylistRepository(db *mongo.Database) *PlaylistRepository {
	return &PlaylistRepository{coll: db.Collection(playlistsCollection)}
}

type playlistDoc struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	Name        string               `bson:"name"`
	Description string               `bson:"description"`
	Videos      []primitive.ObjectID `bson:"videos"`
	Owner       primitive.ObjectID   `bson:"owner"`
	OwnerDoc    *profileDoc          `bson:"owner_profile,omitempty"`
	VideoDocs   []videoDoc           `bson:"video_docs,omitempty"`
	CreatedAt   time.Time            `bson:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at"`
}

func (d *playlistDoc) toDomain() domain.Playlist {
	ids := make([]string, 0, len(d.Videos))
	for _, oid := range d.Videos {
		ids = append(ids, oid.Hex())
	}
	var videos []domain.Video
	for i := range d.VideoDocs {
		videos = append(videos, d.VideoDocs[i].toDomain())
	}
	return domain.Playlist{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		VideoIDs:    ids,
		Videos:      videos,
		OwnerID:     d.Owner.Hex(),
		Owner:       d.OwnerDoc.toDomain(),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *PlaylistRepository) Create(ctx context.Context, playlist *domain.Playlist) (*domain.Playlist, error) {
	owner, err := parseID(playlist.OwnerID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc := playlistDoc{
		Name:        playlist.Name,
		Description: playlist.Description,
		Videos:      []primitive.ObjectID{},
		Owner:       owner,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert playlist: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	created := doc.toDomain()
	return &created, nil
}

func (r *PlaylistRepository) FindByID(ctx context.Context, id string) (*domain.Playlist, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var doc playlistDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPlaylistNotFound
		}
		return nil, fmt.Errorf("find playlist: %w", err)
	}
	playlist := doc.toDomain()
	return &playlist, nil
}

// FindByIDPopulated resolves the playlist with its owner's public profile and
// the referenced videos (each with its own owner resolved).
func (r *PlaylistRepository) FindByIDPopulated(ctx context.Context, id string) (*domain.Playlist, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	pipeline := []bson.M{{"$match": bson.M{"_id": oid}}}
	pipeline = append(pipeline, profileLookup("owner", "owner_profile")...)
	pipeline = append(pipeline, bson.M{"$lookup": bson.M{
		"from":         videosCollection,
		"localField":   "videos",
		"foreignField": "_id",
		"as":           "video_docs",
		"pipeline": append(
			[]bson.M{},
			profileLookup("owner", "owner_profile")...,
		),
	}})

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate playlist: %w", err)
	}
	defer cur.Close(ctx)

	var docs []playlistDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode playlist: %w", err)
	}
	if len(docs) == 0 {
		return nil, domain.ErrPlaylistNotFound
	}
	playlist := docs[0].toDomain()
	return &playlist, nil
}

func (r *PlaylistRepository) Update(ctx context.Context, playlist *domain.Playlist) error {
	oid, err := parseID(playlist.ID)
	if err != nil {
		return err
	}

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"name":        playlist.Name,
		"description": playlist.Description,
		"videos":      parseIDs(playlist.VideoIDs),
		"updated_at":  time.Now().UTC(),
	}})
	if err != nil {
		return fmt.Errorf("update playlist: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPlaylistNotFound
	}
	return nil
}

func (r *PlaylistRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete playlist: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPlaylistNotFound
	}
	return nil
}

func (r *PlaylistRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Playlist, error) {
	owner, err := parseID(ownerID)
	if err != nil {
		return nil, err
	}

	cur, err := r.coll.Find(ctx, bson.M{"owner": owner})
	if err != nil {
		return nil, fmt.Errorf("find playlists: %w", err)
	}
	defer cur.Close(ctx)

	var docs []playlistDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode playlists: %w", err)
	}

	playlists := make([]domain.Playlist, 0, len(docs))
	for i := range docs {
		playlists = append(playlists, docs[i].toDomain())
	}
	return playlists, nil
}
