package repo

import (
	"context"
	"errors"
	"fmt"

	dmn "github.com/beka-birhanu/vinom-lattice/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MazeRepo stores maze records, one document per maze.
type MazeRepo struct {
	collection *mongo.Collection
}

// NewMazeRepo creates a MazeRepo over the named database and collection.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string) *MazeRepo {
	return &MazeRepo{
		collection: client.Database(dbName).Collection(collectionName),
	}
}

// EnsureIndexes indexes mazes by owner and creation time.
func (r *MazeRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "ownerId", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})
	return err
}

// Save implements i.MazeRepo.
func (r *MazeRepo) Save(ctx context.Context, record *dmn.MazeRecord) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": record.ID}, record, opts); err != nil {
		return fmt.Errorf("saving maze %s: %w", record.ID, err)
	}
	return nil
}

// ByID implements i.MazeRepo.
func (r *MazeRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	var record dmn.MazeRecord
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dmn.ErrMazeNotFound
		}
		return nil, fmt.Errorf("finding maze %s: %w", id, err)
	}
	return &record, nil
}

// Delete implements i.MazeRepo.
func (r *MazeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("deleting maze %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return dmn.ErrMazeNotFound
	}
	return nil
}
