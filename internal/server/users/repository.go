package users

import (
	"context"
)

type Repository interface {
	// GetByUsername returns the user with the given username, or
	// common.ErrNotFound.
	GetByUsername(ctx context.Context, username string) (*User, error)

	// CreateIfAbsent inserts a user unless the username already exists.
	// The unique constraint on username makes the call idempotent.
	CreateIfAbsent(ctx context.Context, username string, passwordHash string) error
}
