// Package db owns the lifecycle of the relational store: opening the
// connection pool, applying migrations, seeding demo data, and handing out
// repositories.
package db

import (
	"context"

	"github.com/dmitrijs2005/secureapi/internal/server/items"
	"github.com/dmitrijs2005/secureapi/internal/server/users"
)

type RepositoryManager interface {
	Users() users.Repository
	Items() items.Repository

	// Seed inserts the initial demo data. Safe to call on every startup.
	Seed(ctx context.Context, data SeedData) error

	Close() error
}
