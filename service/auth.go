package service

import (
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-lattice/domain"
	"github.com/beka-birhanu/vinom-lattice/identity"
	"github.com/beka-birhanu/vinom-lattice/service/i"
	"github.com/google/uuid"
)

const tokenTTL = 24 * time.Hour

// Claim names carried by access tokens.
const (
	ClaimUserID   = "userID"
	ClaimUsername = "username"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// Auth registers users and issues access tokens.
type Auth struct {
	userRepo  i.UserRepo
	tokenizer i.Tokenizer
	logger    i.Logger
}

// NewAuthService creates an Auth service.
func NewAuthService(ur i.UserRepo, t i.Tokenizer, logger i.Logger) (*Auth, error) {
	if ur == nil || t == nil || logger == nil {
		return nil, errors.New("auth service requires a user repo, tokenizer and logger")
	}
	return &Auth{userRepo: ur, tokenizer: t, logger: logger}, nil
}

// Register creates a user. The username must be free.
func (a *Auth) Register(username, password string) (*identity.User, error) {
	if _, err := a.userRepo.ByUsername(username); err == nil {
		return nil, dmn.ErrUsernameConflict
	} else if !errors.Is(err, dmn.ErrUserNotFound) {
		return nil, err
	}

	user, err := identity.NewUser(identity.UserConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	})
	if err != nil {
		return nil, err
	}

	if err := a.userRepo.Save(user); err != nil {
		return nil, err
	}

	a.logger.Info(fmt.Sprintf("registered user %s", user.ID))
	return user, nil
}

// SignIn checks the credentials and returns the user with a fresh access token.
func (a *Auth) SignIn(username, password string) (*identity.User, string, error) {
	user, err := a.userRepo.ByUsername(username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !user.VerifyPassword(password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := a.tokenizer.Generate(map[string]any{
		ClaimUserID:   user.ID.String(),
		ClaimUsername: user.Username,
	}, tokenTTL)
	if err != nil {
		a.logger.Error(fmt.Sprintf("signing token for %s: %s", user.ID, err))
		return nil, "", err
	}

	return user, token, nil
}
