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

// TweetRepository implements ports.TweetRepository on MongoDB.
type TweetRepository struct {
	coll *mongo.Collection
}

func NewTweetRepository(db *mongo.Database) *TweetRepository {
	return &TweetRepository{coll: db.Collection(tweetsCollection)}
}

type tweetDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Content   string             `bson:"content"`
	Owner     primitive.ObjectID `bson:"owner"`
	OwnerDoc  *profileDoc        `bson:"owner_profile,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d *tweetDoc) toDomain() domain.Tweet {
	return domain.Tweet{
		ID:        d.ID.Hex(),
		Content:   d.Content,
		OwnerID:   d.Owner.Hex(),
		Owner:     d.OwnerDoc.toDomain(),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *TweetRepository) Create(ctx context.Context, tweet *domain.Tweet) (*domain.Tweet, error) {
	owner, err := parseID(tweet.OwnerID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc := tweetDoc{Content: tweet.Content, Owner: owner, CreatedAt: now, UpdatedAt: now}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert tweet: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	created := doc.toDomain()
	return &created, nil
}

func (r *TweetRepository) FindByID(ctx context.Context, id string) (*domain.Tweet, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var doc tweetDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTweetNotFound
		}
		return nil, fmt.Errorf("find tweet: %w", err)
	}
	tweet := doc.toDomain()
	return &tweet, nil
}

func (r *TweetRepository) UpdateContent(ctx context.Context, id, content string) (*domain.Tweet, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var doc tweetDoc
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"content": content, "updated_at": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTweetNotFound
		}
		return nil, fmt.Errorf("update tweet: %w", err)
	}
	tweet := doc.toDomain()
	return &tweet, nil
}

func (r *TweetRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete tweet: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTweetNotFound
	}
	return nil
}

func (r *TweetRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Tweet, error) {
	owner, err := parseID(ownerID)
	if err != nil {
		return nil, err
	}

	pipeline := []bson.M{
		{"$match": bson.M{"owner": owner}},
		{"$sort": bson.M{"created_at": -1}},
	}
	pipeline = append(pipeline, profileLookup("owner", "owner_profile")...)

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate tweets: %w", err)
	}
	defer cur.Close(ctx)

	var docs []tweetDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode tweets: %w", err)
	}

	tweets := make([]domain.Tweet, 0, len(docs))
	for i := range docs {
		tweets = append(tweets, docs[i].toDomain())
	}
	return tweets, nil
}
