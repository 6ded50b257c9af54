package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-lattice/domain"
	"github.com/beka-birhanu/vinom-lattice/identity"
	"github.com/google/uuid"
)

// UserRepo defines the interface for user persistence operations.
type UserRepo interface {
	// Save inserts or updates a user in the repository.
	// Returns dmn.ErrUsernameConflict when another user holds the username.
	Save(user *identity.User) error

	// ByID retrieves a user by their unique ID.
	// Returns dmn.ErrUserNotFound if there is no such user.
	ByID(id uuid.UUID) (*identity.User, error)

	// ByUsername retrieves a user by their username.
	// Returns dmn.ErrUserNotFound if there is no such user.
	ByUsername(username string) (*identity.User, error)
}

// MazeRepo defines the interface for maze persistence operations.
type MazeRepo interface {
	// Save stores a maze record. Records are immutable, so saving an existing ID replaces it.
	Save(ctx context.Context, record *dmn.MazeRecord) error

	// ByID retrieves a maze record. Returns dmn.ErrMazeNotFound if there is no such maze.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)

	// Delete removes a maze record. Returns dmn.ErrMazeNotFound if there is no such maze.
	Delete(ctx context.Context, id uuid.UUID) error
}
