package db

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/secureapi/internal/dbx"
	"github.com/dmitrijs2005/secureapi/internal/server/items"
	"github.com/dmitrijs2005/secureapi/internal/server/users"
)

// ItemSeed is one demo row with a fixed id so re-seeding is a no-op.
type ItemSeed struct {
	ID      int64
	Title   string
	Content string
}

// SeedData describes the demo account and its items. The password hash is
// computed by the caller so this package stays free of hashing policy.
type SeedData struct {
	UserName     string
	PasswordHash string
	Items        []ItemSeed
}

// Seed creates the demo user and its items inside one transaction. Every
// insert is conflict-tolerant, so running it on each startup leaves
// existing rows untouched.
func (m *SQLiteRepositoryManager) Seed(ctx context.Context, data SeedData) error {
	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		userRepo := users.NewSQLiteRepository(tx)
		itemRepo := items.NewSQLiteRepository(tx)

		if err := userRepo.CreateIfAbsent(ctx, data.UserName, data.PasswordHash); err != nil {
			return fmt.Errorf("seed user: %w", err)
		}

		user, err := userRepo.GetByUsername(ctx, data.UserName)
		if err != nil {
			return fmt.Errorf("seed user lookup: %w", err)
		}

		for _, it := range data.Items {
			item := &items.Item{ID: it.ID, Title: it.Title, Content: it.Content, UserID: user.ID}
			if err := itemRepo.CreateIfAbsent(ctx, item); err != nil {
				return fmt.Errorf("seed item %d: %w", it.ID, err)
			}
		}

		return nil
	})
}
