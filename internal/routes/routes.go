package routes

import (
	"database/sql"

	"github.com/labstack/echo/v4"

	auditControllers "github.com/janakpur-hospital/census-backend/internal/audit/controllers"
	auditServices "github.com/janakpur-hospital/census-backend/internal/audit/services"
	authControllers "github.com/janakpur-hospital/census-backend/internal/auth/controllers"
	authModels "github.com/janakpur-hospital/census-backend/internal/auth/models"
	authServices "github.com/janakpur-hospital/census-backend/internal/auth/services"
	censusControllers "github.com/janakpur-hospital/census-backend/internal/census/controllers"
	censusServices "github.com/janakpur-hospital/census-backend/internal/census/services"
	"github.com/janakpur-hospital/census-backend/internal/common/middlewares"
	dashboardControllers "github.com/janakpur-hospital/census-backend/internal/dashboard/controllers"
	dashboardServices "github.com/janakpur-hospital/census-backend/internal/dashboard/services"
	"github.com/janakpur-hospital/census-backend/internal/departments"
	departmentControllers "github.com/janakpur-hospital/census-backend/internal/departments/controllers"
	"github.com/janakpur-hospital/census-backend/ws"
)

// Init wires services, controllers and routes onto the Echo instance.
func Init(e *echo.Echo, db *sql.DB) {
	registry := departments.Default()

	authService := authServices.NewAuthService(db)
	censusService := censusServices.NewCensusService(db, registry)
	dashboardService := dashboardServices.NewDashboardService(censusService, registry)
	auditService := auditServices.NewAuditService(db)

	authController := authControllers.NewAuthController(authService)
	censusController := censusControllers.NewCensusController(censusService, registry)
	dashboardController := dashboardControllers.NewDashboardController(dashboardService)
	departmentController := departmentControllers.NewDepartmentController(registry)
	auditController := auditControllers.NewAuditController(auditService)

	writers := []string{authModels.RoleNurse, authModels.RoleAdmin, authModels.RoleSuperAdmin}
	admins := []string{authModels.RoleAdmin, authModels.RoleSuperAdmin}

	api := e.Group("/api")

	// Auth
	auth := api.Group("/auth")
	auth.POST("/login", authController.Login) // no JWT

	// Department registry
	api.GET("/departments", departmentController.List, middlewares.JWTMiddleware())

	// Census entries
	census := api.Group("/census", middlewares.JWTMiddleware())
	census.POST("", censusController.SubmitCensus, middlewares.RequireRole(writers...))
	census.POST("/message", censusController.GenerateMessage)
	census.GET("", censusController.GetByDate)
	census.GET("/latest", censusController.GetLatest)
	census.PUT("/lock", censusController.LockEntry, middlewares.RequireRole(admins...))

	// Dashboard aggregations
	dashboard := api.Group("/dashboard", middlewares.JWTMiddleware())
	dashboard.GET("/stats", dashboardController.GetStats)
	dashboard.GET("/occupancy", dashboardController.GetOccupancy)
	dashboard.GET("/historical", dashboardController.GetHistorical)
	dashboard.GET("/discharges", dashboardController.GetDischarges)

	// Audit trail
	api.GET("/audit", auditController.List, middlewares.JWTMiddleware(), middlewares.RequireRole(admins...))

	// Live dashboard feed
	e.GET("/ws/dashboard", ws.ServeWS(ws.HubInstance))
}
