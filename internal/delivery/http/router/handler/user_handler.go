package handler

import (
	"net/http"

	"messagely/internal/domain/entity"
	"messagely/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type usersResponse struct {
	Users []*entity.UserSummary `json:"users"`
}

type userResponse struct {
	User *entity.UserProfile `json:"user"`
}

type messagesResponse[T any] struct {
	Messages []T `json:"messages"`
}

// UserHandler serves the user directory.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// ListUsers handles GET /users.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, usersResponse{Users: users})
}

// GetUser handles GET /users/:username.
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.uc.GetUser(c.Request().Context(), c.Param("username"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, userResponse{User: user})
}

// ListMessagesFrom handles GET /users/:username/from.
func (h *UserHandler) ListMessagesFrom(c echo.Context) error {
	messages, err := h.uc.ListMessagesFrom(c.Request().Context(), c.Param("username"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, messagesResponse[*entity.SentMessage]{Messages: messages})
}

// ListMessagesTo handles GET /users/:username/to.
func (h *UserHandler) ListMessagesTo(c echo.Context) error {
	messages, err := h.uc.ListMessagesTo(c.Request().Context(), c.Param("username"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, messagesResponse[*entity.ReceivedMessage]{Messages: messages})
}
