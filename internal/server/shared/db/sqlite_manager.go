package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/secureapi/internal/server/items"
	"github.com/dmitrijs2005/secureapi/internal/server/migrations"
	"github.com/dmitrijs2005/secureapi/internal/server/users"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

type SQLiteRepositoryManager struct {
	db    *sql.DB
	users users.Repository
	items items.Repository
}

func (m *SQLiteRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *SQLiteRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *SQLiteRepositoryManager) Items() items.Repository {
	return m.items
}

func (m *SQLiteRepositoryManager) Close() error {
	return m.db.Close()
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func NewSQLiteRepositoryManager(dsn string) (RepositoryManager, error) {

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	// sqlite allows one writer; a larger pool would also break :memory:
	// databases, which exist per connection
	db.SetMaxOpenConns(1)

	m := &SQLiteRepositoryManager{
		db:    db,
		users: users.NewSQLiteRepository(db),
		items: items.NewSQLiteRepository(db),
	}

	err = m.RunMigrations(context.Background())
	if err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
