// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"messagely/internal/delivery/http/middleware"
	"messagely/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// Router holds all the handlers that need to be registered.
type Router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *Router {
	return &Router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *Router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	e.POST("/login", r.authHandler.Login)
	e.POST("/register", r.authHandler.Register)

	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("", r.userHandler.ListUsers)
		userGroup.GET("/:username", r.userHandler.GetUser)
		userGroup.GET("/:username/from", r.userHandler.ListMessagesFrom)
		userGroup.GET("/:username/to", r.userHandler.ListMessagesTo)
	}
}
