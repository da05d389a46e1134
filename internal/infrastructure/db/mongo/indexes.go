package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes every repository depends on. The UNIQUE
// indexes are load-bearing: toggle operations rely on the storage layer
// rejecting duplicate (target, actor) pairs, so concurrent duplicate toggles
// cannot both insert.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	unique := func(keys bson.D) mongo.IndexModel {
		return mongo.IndexModel{Keys: keys, Options: options.Index().SetUnique(true)}
	}
	// Partial unique index: the pair is unique only among rows where the
	// kind field is set, since a Like row carries exactly one target kind.
	uniquePair := func(kind string) mongo.IndexModel {
		return mongo.IndexModel{
			Keys: bson.D{{Key: kind, Value: 1}, {Key: "liked_by", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{kind: bson.M{"$exists": true}}),
		}
	}

	plans := map[string][]mongo.IndexModel{
		usersCollection: {
			unique(bson.D{{Key: "username", Value: 1}}),
			unique(bson.D{{Key: "email", Value: 1}}),
		},
		videosCollection: {
			{Keys: bson.D{{Key: "owner", Value: 1}}},
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
		},
		commentsCollection: {
			{Keys: bson.D{{Key: "video", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		tweetsCollection: {
			{Keys: bson.D{{Key: "owner", Value: 1}}},
		},
		playlistsCollection: {
			{Keys: bson.D{{Key: "owner", Value: 1}}},
		},
		likesCollection: {
			uniquePair("video"),
			uniquePair("comment"),
			uniquePair("tweet"),
			{Keys: bson.D{{Key: "liked_by", Value: 1}}},
		},
		subscriptionsCollection: {
			unique(bson.D{{Key: "subscriber", Value: 1}, {Key: "channel", Value: 1}}),
			{Keys: bson.D{{Key: "channel", Value: 1}}},
		},
	}

	for coll, models := range plans {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes for %s: %w", coll, err)
		}
	}
	return nil
}
