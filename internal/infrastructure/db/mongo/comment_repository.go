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
)

// CommentRepository implements ports.CommentRepository on MongoDB.
type CommentRepository struct {
	coll *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{coll: db.Collection(commentsCollection)}
}

type commentDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Content   string             `bson:"content"`
	Video     primitive.ObjectID `bson:"video"`
	Owner     primitive.ObjectID `bson:"owner"`
	OwnerDoc  *profileDoc        `bson:"owner_profile,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d *commentDoc) toDomain() domain.Comment {
	return domain.Comment{
		ID:        d.ID.Hex(),
		Content:   d.Content,
		VideoID:   d.Video.Hex(),
		OwnerID:   d.Owner.Hex(),
		Owner:     d.OwnerDoc.toDomain(),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	video, err := parseID(comment.VideoID)
	if err != nil {
		return nil, err
	}
	owner, err := parseID(comment.OwnerID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc := commentDoc{
		Content:   comment.Content,
		Video:     video,
		Owner:     owner,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	created := doc.toDomain()
	return &created, nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id string) (*domain.Comment, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var doc commentDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("find comment: %w", err)
	}
	comment := doc.toDomain()
	return &comment, nil
}

func (r *CommentRepository) UpdateContent(ctx context.Context, id, content string) (*domain.Comment, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var doc commentDoc
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"content": content, "updated_at": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("update comment: %w", err)
	}
	comment := doc.toDomain()
	return &comment, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

// ListByVideo pages through a video's comments, newest first, with authors
// resolved to public profiles. The total is an independent count.
func (r *CommentRepository) ListByVideo(ctx context.Context, videoID string, page, limit int) ([]domain.Comment, int64, error) {
	video, err := parseID(videoID)
	if err != nil {
		return nil, 0, err
	}

	filter := bson.M{"video": video}
	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count comments: %w", err)
	}

	pipeline := []bson.M{
		{"$match": filter},
		{"$sort": bson.M{"created_at": -1, "_id": -1}},
		{"$skip": int64((page - 1) * limit)},
		{"$limit": int64(limit)},
	}
	pipeline = append(pipeline, profileLookup("owner", "owner_profile")...)

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("aggregate comments: %w", err)
	}
	defer cur.Close(ctx)

	var docs []commentDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode comments: %w", err)
	}

	comments := make([]domain.Comment, 0, len(docs))
	for i := range docs {
		comments = append(comments, docs[i].toDomain())
	}
	return comments, total, nil
}
