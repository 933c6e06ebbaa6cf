// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"messagely/internal/delivery/http/response"
	"messagely/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// registerRequest only requires each field to be present; empty strings are
// accepted like the NOT NULL columns accept them.
type registerRequest struct {
	Username  *string `json:"username" validate:"required"`
	Password  *string `json:"password" validate:"required"`
	FirstName *string `json:"first_name" validate:"required"`
	LastName  *string `json:"last_name" validate:"required"`
	Phone     *string `json:"phone" validate:"required"`
}

func (r *registerRequest) toInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Username:  *r.Username,
		Password:  *r.Password,
		FirstName: *r.FirstName,
		LastName:  *r.LastName,
		Phone:     *r.Phone,
	}
}

// AuthHandler serves login and registration.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login handles POST /login and responds with {token}.
func (h *AuthHandler) Login(c echo.Context) error {
	input := new(usecase.LoginInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}

// Register handles POST /register and responds with {token}.
func (h *AuthHandler) Register(c echo.Context) error {
	req := new(registerRequest)
	if err := c.Bind(req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
