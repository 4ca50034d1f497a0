package httpapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/secureapi/internal/common"
	"github.com/dmitrijs2005/secureapi/internal/server/auth"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const subjectContextKey = "auth_subject"

// authenticate checks the bearer token on the request and returns the
// authenticated subject. It is independent of the routing mechanism so the
// capability check can be exercised and reused without an Echo context.
func (s *Server) authenticate(r *http.Request) (int64, error) {

	header := r.Header.Get("Authorization")
	if header == "" {
		return 0, common.ErrUnauthorized
	}

	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || tokenString == "" {
		return 0, common.ErrInvalidToken
	}

	subject, err := auth.SubjectFromToken(tokenString, s.jwtSecret)
	if err != nil {
		return 0, err
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, common.ErrInvalidToken
	}

	return userID, nil
}

// requireAuth gates protected routes: it runs authenticate before the
// handler body and stores the subject in the request scope. The 401 body
// never says whether the token was missing, expired, or tampered.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := s.authenticate(c.Request())
		if err != nil {
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "missing or invalid token"})
		}
		c.Set(subjectContextKey, userID)
		return next(c)
	}
}

func subjectFromContext(c echo.Context) int64 {
	userID, _ := c.Get(subjectContextKey).(int64)
	return userID
}

// requestLogger assigns every request a fresh id, echoes it back in the
// X-Request-ID header, and logs the outcome.
func (s *Server) requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			requestID := uuid.NewString()
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			s.logger.Info(req.Context(), "request",
				"request_id", requestID,
				"method", req.Method,
				"path", req.URL.Path,
				"status", c.Response().Status,
				"duration_ms", time.Since(start).Milliseconds(),
			)

			return err
		}
	}
}
