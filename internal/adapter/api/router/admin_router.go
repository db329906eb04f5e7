package router

import (
	"github.com/labstack/echo/v4"

	"foreign/internal/adapter/api/handler"
	"foreign/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminHandler := handler.GetAdminHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("/stats", adminHandler.GetDashboardStats)
	admin.GET("/users", adminHandler.ListUsers)
}
