package users

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/secureapi/internal/common"
	"github.com/dmitrijs2005/secureapi/internal/server/auth"
	"github.com/dmitrijs2005/secureapi/internal/server/config"
)

// LoginResult is what a successful credential check produces: a bearer
// token bound to the user identity.
type LoginResult struct {
	AccessToken string
	UserID      int64
	UserName    string
}

type Service struct {
	repo                        Repository
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                        repo,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Login verifies the username/password pair and, on success, issues an
// access token whose subject is the user id. An unknown username and a
// wrong password both collapse into common.ErrUnauthorized so the caller
// cannot enumerate accounts.
func (s *Service) Login(ctx context.Context, userName string, password string) (*LoginResult, error) {

	user, err := s.repo.GetByUsername(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, fmt.Errorf("%w: %v", common.ErrInternal, err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, common.ErrUnauthorized
	}

	token, err := auth.GenerateToken(strconv.FormatInt(user.ID, 10), s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInternal, err)
	}

	return &LoginResult{AccessToken: token, UserID: user.ID, UserName: user.UserName}, nil
}
