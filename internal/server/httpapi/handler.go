package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/secureapi/internal/common"
	"github.com/labstack/echo/v4"
)

func (s *Server) login(c echo.Context) error {

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "request body must be valid JSON"})
	}

	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "username and password are required"})
	}

	ctx := c.Request().Context()
	result, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		// one undifferentiated answer for unknown user and wrong password
		if errors.Is(err, common.ErrUnauthorized) {
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
		}
		s.logger.Error(ctx, "login failed", "error", err.Error())
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}

	s.logger.Info(ctx, "login", "username", result.UserName)

	return c.JSON(http.StatusOK, loginResponse{
		AccessToken: result.AccessToken,
		TokenType:   "Bearer",
		UserID:      result.UserID,
		Username:    result.UserName,
	})
}

func (s *Server) listData(c echo.Context) error {

	ctx := c.Request().Context()
	userID := subjectFromContext(c)

	list, err := s.items.List(ctx, userID)
	if err != nil {
		s.logger.Error(ctx, "list data failed", "error", err.Error())
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}

	data := make([]itemResponse, 0, len(list))
	for _, item := range list {
		data = append(data, itemResponse{ID: item.ID, Title: item.Title, Content: item.Content})
	}

	return c.JSON(http.StatusOK, listDataResponse{Data: data, Count: len(data)})
}

func (s *Server) createData(c echo.Context) error {

	var req createItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "request body must be valid JSON"})
	}

	if req.Title == "" || req.Content == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "title and content are required"})
	}

	ctx := c.Request().Context()
	userID := subjectFromContext(c)

	item, err := s.items.Add(ctx, userID, req.Title, req.Content)
	if err != nil {
		s.logger.Error(ctx, "create data failed", "error", err.Error())
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusCreated, createItemResponse{
		ID:      item.ID,
		Title:   item.Title,
		Content: item.Content,
		Message: "Data item created successfully",
	})
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{Status: "healthy"})
}
