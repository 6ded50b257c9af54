package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-lattice/domain"
	"github.com/beka-birhanu/vinom-lattice/identity"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	userWriteTimeout = time.Second
	userReadTimeout  = 2 * time.Second
)

// UserRepo handles the persistence of users.
type UserRepo struct {
	collection *mongo.Collection
}

// NewUserRepo creates a new UserRepo with the given MongoDB client, database name, and collection name.
func NewUserRepo(client *mongo.Client, dbName, collectionName string) *UserRepo {
	return &UserRepo{
		collection: client.Database(dbName).Collection(collectionName),
	}
}

// EnsureIndexes makes usernames unique.
func (u *UserRepo) EnsureIndexes(ctx context.Context) error {
	_, err := u.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Save inserts or updates a user.
func (u *UserRepo) Save(user *identity.User) error {
	ctx, cancel := context.WithTimeout(context.Background(), userWriteTimeout)
	defer cancel()

	filter := bson.M{"_id": user.ID}
	update := bson.M{
		"$set": bson.M{
			"username":     user.Username,
			"passwordHash": user.PasswordHash,
			"updatedAt":    time.Now().UTC(),
		},
		"$setOnInsert": bson.M{
			"createdAt": user.CreatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := u.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return dmn.ErrUsernameConflict
		}
		return fmt.Errorf("saving user %s: %w", user.ID, err)
	}
	return nil
}

// ByID retrieves a user by their ID.
func (u *UserRepo) ByID(id uuid.UUID) (*identity.User, error) {
	return u.findOne(bson.M{"_id": id})
}

// ByUsername retrieves a user by their username.
func (u *UserRepo) ByUsername(username string) (*identity.User, error) {
	return u.findOne(bson.M{"username": username})
}

func (u *UserRepo) findOne(filter bson.M) (*identity.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), userReadTimeout)
	defer cancel()

	var user identity.User
	if err := u.collection.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dmn.ErrUserNotFound
		}
		return nil, fmt.Errorf("finding user: %w", err)
	}
	return &user, nil
}
