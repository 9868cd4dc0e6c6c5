package user

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a user id or username does not resolve.
var ErrNotFound = errors.New("user not found")

// ErrDuplicateUsername is returned when a registration reuses a taken name.
var ErrDuplicateUsername = errors.New("username already taken")

type Repository interface {
	CreateUser(ctx context.Context, u *User) error
	GetUser(ctx context.Context, id int64) (*User, error)
	// GetUserByUsername does a linear scan; fine at this scale.
	GetUserByUsername(ctx context.Context, username string) (*User, error)
}
