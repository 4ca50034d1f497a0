package items

import (
	"context"
)

type Repository interface {
	// ListByUser returns all items owned by userID, ordered by id.
	ListByUser(ctx context.Context, userID int64) ([]*Item, error)

	// Create inserts the item and fills in its generated id.
	Create(ctx context.Context, item *Item) (*Item, error)

	// CreateIfAbsent inserts a row with an explicit id unless that id
	// already exists. Used for idempotent seeding.
	CreateIfAbsent(ctx context.Context, item *Item) error
}
