// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cafemap/internal/delivery/api/middleware"
	"cafemap/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CafeHandler    *handler.CafeHandler
	ReportHandler  *handler.ReportHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cafeHandler    *handler.CafeHandler
	reportHandler  *handler.ReportHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cafeHandler:    params.CafeHandler,
		reportHandler:  params.ReportHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Reading the map is public
	cafesGroup := apiV1.Group("/cafes")
	{
		cafesGroup.GET("", r.cafeHandler.QueryCafes)
		cafesGroup.GET("/:id", r.cafeHandler.GetCafe)
	}

	reportsGroup := apiV1.Group("/reports")
	{
		reportsGroup.GET("", r.reportHandler.ListReports)
		reportsGroup.POST("", r.reportHandler.SubmitReport, r.authMiddleware.Authenticate)
	}
}
