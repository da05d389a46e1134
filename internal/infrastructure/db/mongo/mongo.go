package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vidtube/video-platform/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// Collection names. Single source of truth for every repository and index.
const (
	usersCollection         = "users"
	videosCollection        = "videos"
	commentsCollection      = "comments"
	tweetsCollection        = "tweets"
	playlistsCollection     = "playlists"
	likesCollection         = "likes"
	subscriptionsCollection = "subscriptions"
)

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}

// parseID converts a canonical 24-hex identifier into a driver ObjectID.
// Malformed input fails validation before any query runs.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	return oid, nil
}

// parseIDs converts a slice of identifiers, skipping malformed entries.
func parseIDs(ids []string) []primitive.ObjectID {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	return oids
}

// profileDoc is the public projection of a user embedded by $lookup stages.
// Credential and email fields are excluded at the pipeline level, so they
// never leave the database.
type profileDoc struct {
	ID       primitive.ObjectID `bson:"_id"`
	Username string             `bson:"username"`
	FullName string             `bson:"full_name"`
	Avatar   string             `bson:"avatar"`
}

func (d *profileDoc) toDomain() *domain.PublicProfile {
	if d == nil || d.ID.IsZero() {
		return nil
	}
	return &domain.PublicProfile{
		ID:       d.ID.Hex(),
		Username: d.Username,
		FullName: d.FullName,
		Avatar:   d.Avatar,
	}
}

// profileLookup produces the $lookup + $unwind stages that resolve a user
// reference into its public projection.
func profileLookup(localField, as string) []bson.M {
	return []bson.M{
		{"$lookup": bson.M{
			"from":         usersCollection,
			"localField":   localField,
			"foreignField": "_id",
			"as":           as,
			"pipeline": []bson.M{
				{"$project": bson.M{"username": 1, "full_name": 1, "avatar": 1}},
			},
		}},
		{"$unwind": bson.M{"path": "$" + as, "preserveNullAndEmptyArrays": true}},
	}
}
