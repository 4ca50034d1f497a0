package items

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/secureapi/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) ListByUser(ctx context.Context, userID int64) ([]*Item, error) {
	query :=
		`SELECT id, title, content, user_id FROM data_items
		 WHERE user_id = ?
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*Item, 0)
	for rows.Next() {
		item := &Item{}
		if err := rows.Scan(&item.ID, &item.Title, &item.Content, &item.UserID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, item *Item) (*Item, error) {
	query :=
		`INSERT INTO data_items (title, content, user_id)
		 VALUES (?, ?, ?)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query, item.Title, item.Content, item.UserID).Scan(&item.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

func (r *SQLiteRepository) CreateIfAbsent(ctx context.Context, item *Item) error {
	query :=
		`INSERT OR IGNORE INTO data_items (id, title, content, user_id)
		 VALUES (?, ?, ?, ?)
		 `

	_, err := r.db.ExecContext(ctx, query, item.ID, item.Title, item.Content, item.UserID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
