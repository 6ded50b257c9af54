package repo

import (
	"context"
	"math/rand"
	"testing"

	dmn "github.com/beka-birhanu/vinom-lattice/domain"
	"github.com/beka-birhanu/vinom-lattice/maze"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func toDoc(t *testing.T, v any) bson.D {
	raw, err := bson.Marshal(v)
	require.NoError(t, err)
	var doc bson.D
	require.NoError(t, bson.Unmarshal(raw, &doc))
	return doc
}

func newRecord(t *testing.T) *dmn.MazeRecord {
	m, err := maze.New(2, maze.WithRand(rand.New(rand.NewSource(4))))
	require.NoError(t, err)
	return dmn.NewMazeRecord(uuid.New(), m)
}

func TestMazeRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()
	ns := "lattice.mazes"

	mt.Run("Save upserts", func(mt *mtest.T) {
		repo := NewMazeRepo(mt.Client, "lattice", "mazes")
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		assert.NoError(mt, repo.Save(ctx, newRecord(mt.T)))
	})

	mt.Run("Save reports server errors", func(mt *mtest.T) {
		repo := NewMazeRepo(mt.Client, "lattice", "mazes")
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "bad value"}))

		assert.Error(mt, repo.Save(ctx, newRecord(mt.T)))
	})

	mt.Run("ByID decodes the record", func(mt *mtest.T) {
		repo := NewMazeRepo(mt.Client, "lattice", "mazes")
		record := newRecord(mt.T)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, toDoc(mt.T, record)))

		got, err := repo.ByID(ctx, record.ID)
		require.NoError(mt, err)
		assert.Equal(mt, record.ID, got.ID)
		assert.Equal(mt, record.OwnerID, got.OwnerID)
		assert.Equal(mt, record.Cells, got.Cells)

		m, err := got.Maze()
		require.NoError(mt, err)
		assert.Equal(mt, 8, m.Len())
	})

	mt.Run("ByID of a missing maze", func(mt *mtest.T) {
		repo := NewMazeRepo(mt.Client, "lattice", "mazes")
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.ByID(ctx, uuid.New())
		assert.ErrorIs(mt, err, dmn.ErrMazeNotFound)
	})

	mt.Run("Delete", func(mt *mtest.T) {
		repo := NewMazeRepo(mt.Client, "lattice", "mazes")
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)

		assert.NoError(mt, repo.Delete(ctx, uuid.New()))
		assert.ErrorIs(mt, repo.Delete(ctx, uuid.New()), dmn.ErrMazeNotFound)
	})
}
