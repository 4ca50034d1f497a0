// Package server initializes and runs the application: it opens the store,
// applies migrations and seed data, wires the services, and starts the HTTP
// server with graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/secureapi/internal/logging"
	"github.com/dmitrijs2005/secureapi/internal/server/auth"
	"github.com/dmitrijs2005/secureapi/internal/server/config"
	"github.com/dmitrijs2005/secureapi/internal/server/httpapi"
	"github.com/dmitrijs2005/secureapi/internal/server/items"
	"github.com/dmitrijs2005/secureapi/internal/server/shared/db"
	"github.com/dmitrijs2005/secureapi/internal/server/users"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	storeManager db.RepositoryManager
	userService  *users.Service
	itemService  *items.Service
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	m, err := db.NewSQLiteRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := users.NewService(m.Users(), c)
	is := items.NewService(m.Items())

	app := &App{config: c, logger: logger, storeManager: m, userService: us, itemService: is}

	if err := app.seed(context.Background()); err != nil {
		return nil, fmt.Errorf("seed error: %w", err)
	}

	return app, nil
}

// seed creates the demo account and its two items on first startup; on
// later startups every insert is a no-op.
func (app *App) seed(ctx context.Context) error {

	hash, err := auth.HashPassword(app.config.SeedPassword, app.config.BcryptCost)
	if err != nil {
		return err
	}

	return app.storeManager.Seed(ctx, db.SeedData{
		UserName:     app.config.SeedUserName,
		PasswordHash: hash,
		Items: []db.ItemSeed{
			{ID: 1, Title: "Test Item 1", Content: "This is a test content"},
			{ID: 2, Title: "Test Item 2", Content: "Another test content"},
		},
	})
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config.EndpointAddr, app.logger, app.userService, app.itemService, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.storeManager.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
