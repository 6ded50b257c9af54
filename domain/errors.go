package domain

import "errors"

var (
	ErrMazeNotFound     = errors.New("maze not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrUsernameConflict = errors.New("username conflict")
	ErrForbidden        = errors.New("not the owner of the maze")
	ErrInvalidRecord    = errors.New("invalid maze record")
)
