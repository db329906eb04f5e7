package router

import (
	"github.com/labstack/echo/v4"

	"foreign/internal/adapter/api/handler"
	"foreign/internal/adapter/api/middleware"
)

func SetupLocationRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	locationHandler := handler.GetLocationHandler()

	locations := e.Group("/v1/locations")
	locations.Use(authMiddleware.Authenticate)

	locations.GET("", locationHandler.ListLocations)
	locations.POST("", locationHandler.CreateLocation)
	locations.POST("/:id/rating", locationHandler.RateLocation)
	locations.DELETE("/:id", locationHandler.DeleteLocation)
}
