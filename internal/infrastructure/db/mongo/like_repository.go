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

// LikeRepository implements ports.LikeRepository on MongoDB. Each like row
// sets exactly one of the video/comment/tweet references; partial unique
// indexes on (kind, liked_by) enforce the pair invariant at the storage
// level.
type LikeRepository struct {
	coll *mongo.Collection
}

func NewLikeRepository(db *mongo.Database) *LikeRepository {
	return &LikeRepository{coll: db.Collection(likesCollection)}
}

type likeDoc struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty"`
	Video     *primitive.ObjectID `bson:"video,omitempty"`
	Comment   *primitive.ObjectID `bson:"comment,omitempty"`
	Tweet     *primitive.ObjectID `bson:"tweet,omitempty"`
	LikedBy   primitive.ObjectID  `bson:"liked_by"`
	VideoDoc  *videoDoc           `bson:"video_doc,omitempty"`
	CreatedAt time.Time           `bson:"created_at"`
}

func (d *likeDoc) toDomain() domain.Like {
	like := domain.Like{
		ID:        d.ID.Hex(),
		LikedByID: d.LikedBy.Hex(),
		CreatedAt: d.CreatedAt,
	}
	switch {
	case d.Video != nil:
		like.Kind = domain.LikeVideo
		like.TargetID = d.Video.Hex()
	case d.Comment != nil:
		like.Kind = domain.LikeComment
		like.TargetID = d.Comment.Hex()
	case d.Tweet != nil:
		like.Kind = domain.LikeTweet
		like.TargetID = d.Tweet.Hex()
	}
	if d.VideoDoc != nil {
		v := d.VideoDoc.toDomain()
		like.Video = &v
	}
	return like
}

// kindField maps a like kind to its document field. The kind tag is the only
// thing that varies between video, comment and tweet likes.
func kindField(kind domain.LikeKind) string {
	return string(kind)
}

func (r *LikeRepository) Find(ctx context.Context, kind domain.LikeKind, targetID, likedByID string) (*domain.Like, error) {
	target, err := parseID(targetID)
	if err != nil {
		return nil, err
	}
	actor, err := parseID(likedByID)
	if err != nil {
		return nil, err
	}

	var doc likeDoc
	err = r.coll.FindOne(ctx, bson.M{kindField(kind): target, "liked_by": actor}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLikeNotFound
		}
		return nil, fmt.Errorf("find like: %w", err)
	}
	like := doc.toDomain()
	return &like, nil
}

func (r *LikeRepository) Create(ctx context.Context, like *domain.Like) error {
	target, err := parseID(like.TargetID)
	if err != nil {
		return err
	}
	actor, err := parseID(like.LikedByID)
	if err != nil {
		return err
	}

	doc := bson.M{
		kindField(like.Kind): target,
		"liked_by":           actor,
		"created_at":         time.Now().UTC(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("insert like: %w", err)
	}
	return nil
}

func (r *LikeRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete like: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrLikeNotFound
	}
	return nil
}

// ListVideoLikesByUser returns the user's video likes, newest first, with the
// liked videos and their owners resolved.
func (r *LikeRepository) ListVideoLikesByUser(ctx context.Context, userID string) ([]domain.Like, error) {
	actor, err := parseID(userID)
	if err != nil {
		return nil, err
	}

	pipeline := []bson.M{
		{"$match": bson.M{"liked_by": actor, "video": bson.M{"$exists": true}}},
		{"$sort": bson.M{"created_at": -1}},
		{"$lookup": bson.M{
			"from":         videosCollection,
			"localField":   "video",
			"foreignField": "_id",
			"as":           "video_doc",
			"pipeline":     profileLookup("owner", "owner_profile"),
		}},
		{"$unwind": bson.M{"path": "$video_doc", "preserveNullAndEmptyArrays": true}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate likes: %w", err)
	}
	defer cur.Close(ctx)

	var docs []likeDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode likes: %w", err)
	}

	likes := make([]domain.Like, 0, len(docs))
	for i := range docs {
		likes = append(likes, docs[i].toDomain())
	}
	return likes, nil
}

// CountByVideoIDs counts like rows targeting any of the given videos; an
// empty id set counts zero without querying.
func (r *LikeRepository) CountByVideoIDs(ctx context.Context, videoIDs []string) (int64, error) {
	oids := parseIDs(videoIDs)
	if len(oids) == 0 {
		return 0, nil
	}
	return r.coll.CountDocuments(ctx, bson.M{"video": bson.M{"$in": oids}})
}
