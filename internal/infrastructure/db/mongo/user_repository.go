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

// UserRepository implements ports.UserRepository on MongoDB.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

type userDoc struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	Username     string               `bson:"username"`
	Email        string               `bson:"email"`
	FullName     string               `bson:"full_name"`
	Avatar       string               `bson:"avatar"`
	CoverImage   string               `bson:"cover_image,omitempty"`
	PasswordHash string               `bson:"password_hash"`
	RefreshToken string               `bson:"refresh_token,omitempty"`
	WatchHistory []primitive.ObjectID `bson:"watch_history,omitempty"`
	CreatedAt    time.Time            `bson:"created_at"`
	UpdatedAt    time.Time            `bson:"updated_at"`
}

func (d *userDoc) toDomain() *domain.User {
	history := make([]string, 0, len(d.WatchHistory))
	for _, oid := range d.WatchHistory {
		history = append(history, oid.Hex())
	}
	return &domain.User{
		ID:           d.ID.Hex(),
		Username:     d.Username,
		Email:        d.Email,
		FullName:     d.FullName,
		Avatar:       d.Avatar,
		CoverImage:   d.CoverImage,
		PasswordHash: d.PasswordHash,
		RefreshToken: d.RefreshToken,
		WatchHistory: history,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	now := time.Now().UTC()
	doc := userDoc{
		Username:     user.Username,
		Email:        user.Email,
		FullName:     user.FullName,
		Avatar:       user.Avatar,
		CoverImage:   user.CoverImage,
		PasswordHash: user.PasswordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *UserRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"$or": bson.A{
		bson.M{"username": username},
		bson.M{"email": email},
	}})
}

// UpdateRefreshToken sets or clears the session credential with a targeted
// write; no other field, in particular the password hash, is touched.
func (r *UserRepository) UpdateRefreshToken(ctx context.Context, id, token string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{"refresh_token": token, "updated_at": time.Now().UTC()}}
	if token == "" {
		update = bson.M{
			"$unset": bson.M{"refresh_token": 1},
			"$set":   bson.M{"updated_at": time.Now().UTC()},
		}
	}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update refresh token: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{
		"$set": bson.M{"password_hash": passwordHash, "updated_at": time.Now().UTC()},
	})
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdateAccount(ctx context.Context, id, fullName, email string) (*domain.User, error) {
	return r.findAndSet(ctx, id, bson.M{"full_name": fullName, "email": email})
}

func (r *UserRepository) UpdateAvatar(ctx context.Context, id, avatarURL string) (*domain.User, error) {
	return r.findAndSet(ctx, id, bson.M{"avatar": avatarURL})
}

func (r *UserRepository) UpdateCoverImage(ctx context.Context, id, coverURL string) (*domain.User, error) {
	return r.findAndSet(ctx, id, bson.M{"cover_image": coverURL})
}

// AppendWatchHistory moves videoID to the end of the history (most recent
// last). The pull and push cannot target the same field in one update, so
// this is two writes; losing the pull to a crash only leaves a duplicate
// entry one watch older.
func (r *UserRepository) AppendWatchHistory(ctx context.Context, id, videoID string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	vid, err := parseID(videoID)
	if err != nil {
		return err
	}

	if _, err := r.coll.UpdateByID(ctx, oid, bson.M{"$pull": bson.M{"watch_history": vid}}); err != nil {
		return fmt.Errorf("trim watch history: %w", err)
	}
	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$push": bson.M{"watch_history": vid}})
	if err != nil {
		return fmt.Errorf("append watch history: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) findAndSet(ctx context.Context, id string, fields bson.M) (*domain.User, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	fields["updated_at"] = time.Now().UTC()

	var doc userDoc
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return doc.toDomain(), nil
}
