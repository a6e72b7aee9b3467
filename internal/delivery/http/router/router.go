// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"helppro/internal/delivery/http/middleware"
	"helppro/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	VendorHandler  *handler.VendorHandler
	SearchHandler  *handler.SearchHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	vendorHandler  *handler.VendorHandler
	searchHandler  *handler.SearchHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		vendorHandler:  params.VendorHandler,
		searchHandler:  params.SearchHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/token", r.authHandler.Token)

		meGroup := authGroup.Group("/users")
		meGroup.Use(r.authMiddleware.Authenticate)
		meGroup.GET("/me", r.authHandler.Me)
	}

	// Vendor routes
	vendorGroup := e.Group("/vendors")
	{
		vendorGroup.POST("", r.vendorHandler.Register)
		vendorGroup.POST("/accounts/bulk-upload", r.vendorHandler.BulkUploadAccounts)
		vendorGroup.POST("/bulk-upload", r.vendorHandler.BulkUploadProfiles)
		vendorGroup.GET("/search", r.searchHandler.Search)
	}
}
