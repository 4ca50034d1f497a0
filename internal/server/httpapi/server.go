// Package httpapi exposes the service over HTTP/JSON: a public login and
// health endpoint, and a bearer-token protected data surface.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/secureapi/internal/logging"
	"github.com/dmitrijs2005/secureapi/internal/server/items"
	"github.com/dmitrijs2005/secureapi/internal/server/users"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// UserService is the part of the user service the transport needs.
type UserService interface {
	Login(ctx context.Context, userName string, password string) (*users.LoginResult, error)
}

// ItemService is the part of the item service the transport needs.
type ItemService interface {
	List(ctx context.Context, userID int64) ([]*items.Item, error)
	Add(ctx context.Context, userID int64, title string, content string) (*items.Item, error)
}

type Server struct {
	address   string
	logger    logging.Logger
	users     UserService
	items     ItemService
	jwtSecret []byte
}

func NewServer(a string, l logging.Logger, us UserService, is ItemService, secretKey string) *Server {
	return &Server{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		items:     is,
		jwtSecret: []byte(secretKey),
	}
}

func (s *Server) newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(s.requestLogger())
	e.Use(middleware.Recover())

	e.POST("/auth/login", s.login)
	e.GET("/health", s.health)

	api := e.Group("/api", s.requireAuth)
	api.GET("/data", s.listData)
	api.POST("/data", s.createData)

	return e
}

func (s *Server) Run(ctx context.Context) error {

	e := s.newEcho()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := e.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
