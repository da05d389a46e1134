package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vidtube/video-platform/internal/core/domain"
	"github.com/vidtube/video-platform/internal/core/ports"
)

// VideoRepository implements ports.VideoRepository on MongoDB. Reads that
// expose the owner resolve it through a $lookup pipeline restricted to
// public profile fields.
type VideoRepository struct {
	coll *mongo.Collection
}

func NewVideoRepository(db *mongo.Database) *VideoRepository {
	return &VideoRepository{coll: db.Collection(videosCollection)}
}

type videoDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	VideoFile   string             `bson:"video_file"`
	Thumbnail   string             `bson:"thumbnail"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Duration    float64            `bson:"duration"`
	Views       int64              `bson:"views"`
	IsPublished bool               `bson:"is_published"`
	Owner       primitive.ObjectID `bson:"owner"`
	OwnerDoc    *profileDoc        `bson:"owner_profile,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d *videoDoc) toDomain() domain.Video {
	return domain.Video{
		ID:          d.ID.Hex(),
		VideoFile:   d.VideoFile,
		Thumbnail:   d.Thumbnail,
		Title:       d.Title,
		Description: d.Description,
		Duration:    d.Duration,
		Views:       d.Views,
		IsPublished: d.IsPublished,
		OwnerID:     d.Owner.Hex(),
		Owner:       d.OwnerDoc.toDomain(),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *VideoRepository) Create(ctx context.Context, video *domain.Video) (*domain.Video, error) {
	owner, err := parseID(video.OwnerID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc := videoDoc{
		VideoFile:   video.VideoFile,
		Thumbnail:   video.Thumbnail,
		Title:       video.Title,
		Description: video.Description,
		Duration:    video.Duration,
		IsPublished: video.IsPublished,
		Owner:       owner,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert video: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	created := doc.toDomain()
	return &created, nil
}

func (r *VideoRepository) FindByID(ctx context.Context, id string) (*domain.Video, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	pipeline := append([]bson.M{{"$match": bson.M{"_id": oid}}}, profileLookup("owner", "owner_profile")...)
	docs, err := r.aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, domain.ErrVideoNotFound
	}
	video := docs[0].toDomain()
	return &video, nil
}

func (r *VideoRepository) Update(ctx context.Context, video *domain.Video) error {
	oid, err := parseID(video.ID)
	if err != nil {
		return err
	}

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"title":        video.Title,
		"description":  video.Description,
		"thumbnail":    video.Thumbnail,
		"is_published": video.IsPublished,
		"updated_at":   time.Now().UTC(),
	}})
	if err != nil {
		return fmt.Errorf("update video: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrVideoNotFound
	}
	return nil
}

func (r *VideoRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete video: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrVideoNotFound
	}
	return nil
}

// List pages through videos matching the filter. The total comes from an
// independent count over the same filter; no cross-query snapshot isolation
// is guaranteed between the two.
func (r *VideoRepository) List(ctx context.Context, filter ports.VideoListFilter) ([]domain.Video, int64, error) {
	match := bson.M{}
	if filter.Query != "" {
		match["title"] = bson.M{"$regex": filter.Query, "$options": "i"}
	}
	if filter.OwnerID != "" {
		owner, err := parseID(filter.OwnerID)
		if err != nil {
			return nil, 0, err
		}
		match["owner"] = owner
	}

	total, err := r.coll.CountDocuments(ctx, match)
	if err != nil {
		return nil, 0, fmt.Errorf("count videos: %w", err)
	}

	sortKey := filter.SortBy
	switch sortKey {
	case "views", "duration", "title", "created_at":
	default:
		sortKey = "created_at"
	}
	order := 1
	if filter.SortDesc {
		order = -1
	}

	pipeline := []bson.M{
		{"$match": match},
		{"$sort": bson.M{sortKey: order, "_id": order}},
		{"$skip": int64((filter.Page - 1) * filter.Limit)},
		{"$limit": int64(filter.Limit)},
	}
	pipeline = append(pipeline, profileLookup("owner", "owner_profile")...)

	docs, err := r.aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, err
	}

	videos := make([]domain.Video, 0, len(docs))
	for i := range docs {
		videos = append(videos, docs[i].toDomain())
	}
	return videos, total, nil
}

func (r *VideoRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Video, error) {
	oids := parseIDs(ids)
	if len(oids) == 0 {
		return []domain.Video{}, nil
	}

	pipeline := append(
		[]bson.M{{"$match": bson.M{"_id": bson.M{"$in": oids}}}},
		profileLookup("owner", "owner_profile")...,
	)
	docs, err := r.aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	videos := make([]domain.Video, 0, len(docs))
	for i := range docs {
		videos = append(videos, docs[i].toDomain())
	}
	return videos, nil
}

func (r *VideoRepository) IncrementViews(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$inc": bson.M{"views": 1}})
	if err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrVideoNotFound
	}
	return nil
}

func (r *VideoRepository) IDsByOwner(ctx context.Context, ownerID string) ([]string, error) {
	owner, err := parseID(ownerID)
	if err != nil {
		return nil, err
	}

	cur, err := r.coll.Find(ctx, bson.M{"owner": owner},
		options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("find video ids: %w", err)
	}
	defer cur.Close(ctx)

	var ids []string
	for cur.Next(ctx) {
		var doc struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode video id: %w", err)
		}
		ids = append(ids, doc.ID.Hex())
	}
	return ids, cur.Err()
}

func (r *VideoRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	owner, err := parseID(ownerID)
	if err != nil {
		return 0, err
	}
	return r.coll.CountDocuments(ctx, bson.M{"owner": owner})
}

// SumViewsByOwner aggregates the view total across the owner's videos;
// an owner with no videos sums to zero, not an error.
func (r *VideoRepository) SumViewsByOwner(ctx context.Context, ownerID string) (int64, error) {
	owner, err := parseID(ownerID)
	if err != nil {
		return 0, err
	}

	cur, err := r.coll.Aggregate(ctx, []bson.M{
		{"$match": bson.M{"owner": owner}},
		{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$views"}}},
	})
	if err != nil {
		return 0, fmt.Errorf("sum views: %w", err)
	}
	defer cur.Close(ctx)

	var result struct {
		Total int64 `bson:"total"`
	}
	if cur.Next(ctx) {
		if err := cur.Decode(&result); err != nil {
			return 0, fmt.Errorf("decode view total: %w", err)
		}
	}
	return result.Total, cur.Err()
}

func (r *VideoRepository) aggregate(ctx context.Context, pipeline []bson.M) ([]videoDoc, error) {
	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate videos: %w", err)
	}
	defer cur.Close(ctx)

	var docs []videoDoc
	if err := cur.All(ctx, &docs); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVideoNotFound
		}
		return nil, fmt.Errorf("decode videos: %w", err)
	}
	return docs, nil
}
