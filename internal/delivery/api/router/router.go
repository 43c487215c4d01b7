// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"healthhub/internal/delivery/api/middleware"
	"healthhub/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler          *handler.AuthHandler
	MedicineHandler      *handler.MedicineHandler
	HealthRecordHandler  *handler.HealthRecordHandler
	FamilyHandler        *handler.FamilyHandler
	AnalyticsHandler     *handler.AnalyticsHandler
	EmergencyCardHandler *handler.EmergencyCardHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler          *handler.AuthHandler
	medicineHandler      *handler.MedicineHandler
	healthRecordHandler  *handler.HealthRecordHandler
	familyHandler        *handler.FamilyHandler
	analyticsHandler     *handler.AnalyticsHandler
	emergencyCardHandler *handler.EmergencyCardHandler
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:          params.AuthHandler,
		medicineHandler:      params.MedicineHandler,
		healthRecordHandler:  params.HealthRecordHandler,
		familyHandler:        params.FamilyHandler,
		analyticsHandler:     params.AnalyticsHandler,
		emergencyCardHandler: params.EmergencyCardHandler,
		authMiddleware:       params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Authentication is attached per group rather than on /api so that unknown
// paths under /api still answer 404 instead of 401.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	api.GET("/", handler.APIRoot)

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
		authGroup.PUT("/me", r.authHandler.UpdateMe, r.authMiddleware.Authenticate)
	}

	medicinesGroup := api.Group("/medicines", r.authMiddleware.Authenticate)
	{
		medicinesGroup.GET("", r.medicineHandler.List)
		medicinesGroup.POST("", r.medicineHandler.Create)
		medicinesGroup.GET("/:id", r.medicineHandler.Get)
		medicinesGroup.PUT("/:id", r.medicineHandler.Update)
		medicinesGroup.DELETE("/:id", r.medicineHandler.Delete)
	}

	healthRecordsGroup := api.Group("/health-records", r.authMiddleware.Authenticate)
	{
		healthRecordsGroup.GET("", r.healthRecordHandler.List)
		healthRecordsGroup.POST("", r.healthRecordHandler.Create)
	}

	familyGroup := api.Group("/family", r.authMiddleware.Authenticate)
	{
		familyGroup.POST("/invite", r.familyHandler.Invite)
		familyGroup.GET("/members", r.familyHandler.Members)
		familyGroup.GET("/invites", r.familyHandler.Invites)
	}

	analyticsGroup := api.Group("/analytics", r.authMiddleware.Authenticate)
	{
		analyticsGroup.GET("/adherence", r.analyticsHandler.Adherence)
		analyticsGroup.GET("/upcoming-expiries", r.analyticsHandler.UpcomingExpiries)
	}

	emergencyGroup := api.Group("/emergency-card", r.authMiddleware.Authenticate)
	{
		emergencyGroup.GET("", r.emergencyCardHandler.Card)
		emergencyGroup.GET("/qr", r.emergencyCardHandler.QRCode)
	}
}
