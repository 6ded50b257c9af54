package repo

import (
	"testing"
	"time"

	dmn "github.com/beka-birhanu/vinom-lattice/domain"
	"github.com/beka-birhanu/vinom-lattice/identity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestUserRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ns := "lattice.users"
	user := &identity.User{
		ID:           uuid.New(),
		Username:     "maze_runner",
		PasswordHash: "hash",
		CreatedAt:    time.Date(2026, time.October, 1, 12, 0, 0, 0, time.UTC),
	}

	mt.Run("Save", func(mt *mtest.T) {
		repo := NewUserRepo(mt.Client, "lattice", "users")
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		assert.NoError(mt, repo.Save(user))
	})

	mt.Run("Save with a taken username", func(mt *mtest.T) {
		repo := NewUserRepo(mt.Client, "lattice", "users")
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		assert.ErrorIs(mt, repo.Save(user), dmn.ErrUsernameConflict)
	})

	mt.Run("ByUsername", func(mt *mtest.T) {
		repo := NewUserRepo(mt.Client, "lattice", "users")
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, toDoc(mt.T, user)))

		got, err := repo.ByUsername("maze_runner")
		require.NoError(mt, err)
		assert.Equal(mt, user.ID, got.ID)
		assert.Equal(mt, user.PasswordHash, got.PasswordHash)
		assert.True(mt, user.CreatedAt.Equal(got.CreatedAt))
	})

	mt.Run("ByID of an unknown user", func(mt *mtest.T) {
		repo := NewUserRepo(mt.Client, "lattice", "users")
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.ByID(uuid.New())
		assert.ErrorIs(mt, err, dmn.ErrUserNotFound)
	})
}
