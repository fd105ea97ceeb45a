// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"scanbox/config"
	"scanbox/internal/delivery/http/middleware"
	"scanbox/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	StorageHandler *handler.StorageHandler
	BoxHandler     *handler.BoxHandler
	LabelHandler   *handler.LabelHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	storageHandler *handler.StorageHandler
	boxHandler     *handler.BoxHandler
	labelHandler   *handler.LabelHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:            params.Config,
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		storageHandler: params.StorageHandler,
		boxHandler:     params.BoxHandler,
		labelHandler:   params.LabelHandler,
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
		authGroup.POST("/login", r.authHandler.Login, middleware.NewLoginRateLimiter(r.cfg))
		authGroup.POST("/google-login", r.authHandler.GoogleLogin)
		authGroup.GET("/google-redirect", r.authHandler.GoogleRedirect)
		authGroup.GET("/google-callback", r.authHandler.GoogleCallback)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// User management: session required, self-service first, the rest behind
	// the admin gate.
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.PATCH("/me", r.userHandler.UpdateMe)

		adminGroup := userGroup.Group("")
		adminGroup.Use(r.authMiddleware.RequireAdmin)
		{
			adminGroup.GET("", r.userHandler.List)
			adminGroup.GET("/:id", r.userHandler.GetByID)
			adminGroup.GET("/by-email/:email", r.userHandler.GetByEmail)
			adminGroup.POST("", r.userHandler.Create)
			adminGroup.PATCH("/:id", r.userHandler.Update)
			adminGroup.DELETE("/:id", r.userHandler.Delete)
		}
	}

	// Inventory: any authenticated session.
	storageGroup := e.Group("/storages")
	storageGroup.Use(r.authMiddleware.Authenticate)
	{
		storageGroup.GET("", r.storageHandler.List)
		storageGroup.GET("/:id", r.storageHandler.Get)
		storageGroup.POST("", r.storageHandler.Create)
		storageGroup.PATCH("/:id", r.storageHandler.Update)
		storageGroup.DELETE("/:id", r.storageHandler.Delete)
		storageGroup.GET("/:id/label", r.labelHandler.StorageLabel)
	}

	boxGroup := e.Group("/boxes")
	boxGroup.Use(r.authMiddleware.Authenticate)
	{
		boxGroup.GET("", r.boxHandler.List)
		boxGroup.GET("/:id", r.boxHandler.Get)
		boxGroup.GET("/by-label/:code", r.boxHandler.GetByLabel)
		boxGroup.POST("", r.boxHandler.Create)
		boxGroup.PATCH("/:id", r.boxHandler.Update)
		boxGroup.DELETE("/:id", r.boxHandler.Delete)
		boxGroup.GET("/:id/label", r.labelHandler.BoxLabel)
	}
}
