// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"scubakeep/internal/delivery/http/middleware"
	"scubakeep/internal/delivery/http/router/handler"
	"scubakeep/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	DiverHandler   *handler.DiverHandler
	DiveLogHandler *handler.DiveLogHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	diverHandler   *handler.DiverHandler
	diveLogHandler *handler.DiveLogHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		diverHandler:   params.DiverHandler,
		diveLogHandler: params.DiveLogHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Authenticate runs on every /api route so a valid bearer token always yields
// a principal; the write routes then gate on it while reads stay public.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/token", r.authHandler.Token)
	}

	apiGroup := e.Group("/api")
	apiGroup.Use(r.authMiddleware.Authenticate)

	// Diver routes: public reads, authenticated writes
	diverGroup := apiGroup.Group("/divers")
	{
		diverGroup.GET("", r.diverHandler.ListDivers)
		diverGroup.GET("/:id", r.diverHandler.GetDiver)
		diverGroup.GET("/:id/qrcode", r.diverHandler.GetDiverQRCode)
		diverGroup.POST("", r.diverHandler.CreateDiver, r.authMiddleware.RequireAuth)
		diverGroup.PUT("/:id", r.diverHandler.UpdateDiver, r.authMiddleware.RequireAuth)
		diverGroup.DELETE("/:id", r.diverHandler.DeleteDiver, r.authMiddleware.RequireAuth, r.authMiddleware.RequireRole(entity.RoleAdmin))
	}

	// Dive log routes: public reads, authenticated writes
	diveLogGroup := apiGroup.Group("/divelogs")
	{
		diveLogGroup.GET("", r.diveLogHandler.ListDiveLogs)
		diveLogGroup.GET("/:id", r.diveLogHandler.GetDiveLog)
		diveLogGroup.POST("", r.diveLogHandler.CreateDiveLog, r.authMiddleware.RequireAuth)
		diveLogGroup.PUT("/:id", r.diveLogHandler.UpdateDiveLog, r.authMiddleware.RequireAuth)
		diveLogGroup.DELETE("/:id", r.diveLogHandler.DeleteDiveLog, r.authMiddleware.RequireAuth)
	}
}
