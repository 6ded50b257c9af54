// Package identity holds the account model of maze owners.
package identity

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/nbutton23/zxcvbn-go"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordStrengthScore = 3
	passwordHashCost         = bcrypt.DefaultCost

	usernamePattern   = `^[a-zA-Z0-9_]+$` // Alphanumeric with underscores
	minUsernameLength = 3
	maxUsernameLength = 20
)

var (
	usernameRegex = regexp.MustCompile(usernamePattern)

	ErrUsernameTooShort = errors.New("username too short")
	ErrUsernameTooLong  = errors.New("username too long")
	ErrUsernameFormat   = errors.New("invalid username format")
	ErrWeakPassword     = errors.New("weak password")
)

// User is an account that can generate and delete mazes.
type User struct {
	ID           uuid.UUID `bson:"_id"`
	Username     string    `bson:"username"`
	PasswordHash string    `bson:"passwordHash"`
	CreatedAt    time.Time `bson:"createdAt"`
}

// UserConfig holds the parameters for creating a User from a plain password.
type UserConfig struct {
	ID            uuid.UUID
	Username      string
	PlainPassword string
}

// NewUser validates the configuration and returns a User with a hashed password.
func NewUser(config UserConfig) (*User, error) {
	if err := validateUsername(config.Username); err != nil {
		return nil, err
	}

	if err := validatePassword(config.PlainPassword, config.Username); err != nil {
		return nil, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(config.PlainPassword), passwordHashCost)
	if err != nil {
		return nil, err
	}

	return &User{
		ID:           config.ID,
		Username:     config.Username,
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// VerifyPassword reports whether password matches the stored hash.
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

func validateUsername(username string) error {
	switch {
	case len(username) < minUsernameLength:
		return ErrUsernameTooShort
	case len(username) > maxUsernameLength:
		return ErrUsernameTooLong
	case !usernameRegex.MatchString(username):
		return ErrUsernameFormat
	}
	return nil
}

// validatePassword rejects passwords zxcvbn scores below the minimum.
// The username is passed as user input so passwords derived from it score low.
func validatePassword(password, username string) error {
	result := zxcvbn.PasswordStrength(password, []string{username})
	if result.Score < minPasswordStrengthScore {
		return ErrWeakPassword
	}
	return nil
}
