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

// SubscriptionRepository implements ports.SubscriptionRepository on MongoDB.
// The unique (subscriber, channel) index enforces the pair invariant.
type SubscriptionRepository struct {
	coll *mongo.Collection
}

func NewSubscriptionRepository(db *mongo.Database) *SubscriptionRepository {
	return &SubscriptionRepository{coll: db.Collection(subscriptionsCollection)}
}

type subscriptionDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Subscriber    primitive.ObjectID `bson:"subscriber"`
	Channel       primitive.ObjectID `bson:"channel"`
	SubscriberDoc *profileDoc        `bson:"subscriber_profile,omitempty"`
	ChannelDoc    *profileDoc        `bson:"channel_profile,omitempty"`
	CreatedAt     time.Time          `bson:"created_at"`
}

func (d *subscriptionDoc) toDomain() domain.Subscription {
	return domain.Subscription{
		ID:           d.ID.Hex(),
		SubscriberID: d.Subscriber.Hex(),
		ChannelID:    d.Channel.Hex(),
		Subscriber:   d.SubscriberDoc.toDomain(),
		Channel:      d.ChannelDoc.toDomain(),
		CreatedAt:    d.CreatedAt,
	}
}

func (r *SubscriptionRepository) Find(ctx context.Context, subscriberID, channelID string) (*domain.Subscription, error) {
	subscriber, err := parseID(subscriberID)
	if err != nil {
		return nil, err
	}
	channel, err := parseID(channelID)
	if err != nil {
		return nil, err
	}

	var doc subscriptionDoc
	err = r.coll.FindOne(ctx, bson.M{"subscriber": subscriber, "channel": channel}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("find subscription: %w", err)
	}
	sub := doc.toDomain()
	return &sub, nil
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *domain.Subscription) error {
	subscriber, err := parseID(sub.SubscriberID)
	if err != nil {
		return err
	}
	channel, err := parseID(sub.ChannelID)
	if err != nil {
		return err
	}

	doc := subscriptionDoc{Subscriber: subscriber, Channel: channel, CreatedAt: time.Now().UTC()}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("insert subscription: %w", err)
	}
	return nil
}

func (r *SubscriptionRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete subscription: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSubscriptionNotFound
	}
	return nil
}

func (r *SubscriptionRepository) CountByChannel(ctx context.Context, channelID string) (int64, error) {
	channel, err := parseID(channelID)
	if err != nil {
		return 0, err
	}
	return r.coll.CountDocuments(ctx, bson.M{"channel": channel})
}

func (r *SubscriptionRepository) CountBySubscriber(ctx context.Context, subscriberID string) (int64, error) {
	subscriber, err := parseID(subscriberID)
	if err != nil {
		return 0, err
	}
	return r.coll.CountDocuments(ctx, bson.M{"subscriber": subscriber})
}

// Exists reports whether the (subscriber, channel) pair is present. An
// unparseable id on either side means the pair cannot exist (e.g. an
// anonymous viewer), so it answers false rather than erroring.
func (r *SubscriptionRepository) Exists(ctx context.Context, subscriberID, channelID string) (bool, error) {
	subscriber, err := parseID(subscriberID)
	if err != nil {
		return false, nil
	}
	channel, err := parseID(channelID)
	if err != nil {
		return false, nil
	}

	n, err := r.coll.CountDocuments(ctx, bson.M{"subscriber": subscriber, "channel": channel},
		options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("check subscription: %w", err)
	}
	return n > 0, nil
}

func (r *SubscriptionRepository) ListSubscribers(ctx context.Context, channelID string) ([]domain.Subscription, error) {
	channel, err := parseID(channelID)
	if err != nil {
		return nil, err
	}
	return r.list(ctx, bson.M{"channel": channel}, "subscriber", "subscriber_profile")
}

func (r *SubscriptionRepository) ListChannels(ctx context.Context, subscriberID string) ([]domain.Subscription, error) {
	subscriber, err := parseID(subscriberID)
	if err != nil {
		return nil, err
	}
	return r.list(ctx, bson.M{"subscriber": subscriber}, "channel", "channel_profile")
}

func (r *SubscriptionRepository) list(ctx context.Context, match bson.M, localField, as string) ([]domain.Subscription, error) {
	pipeline := []bson.M{
		{"$match": match},
		{"$sort": bson.M{"created_at": -1}},
	}
	pipeline = append(pipeline, profileLookup(localField, as)...)

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate subscriptions: %w", err)
	}
	defer cur.Close(ctx)

	var docs []subscriptionDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode subscriptions: %w", err)
	}

	subs := make([]domain.Subscription, 0, len(docs))
	for i := range docs {
		subs = append(subs, docs[i].toDomain())
	}
	return subs, nil
}
