package router

import (
	"github.com/labstack/echo/v4"

	"foreign/internal/adapter/api/handler"
	"foreign/internal/adapter/api/middleware"
)

func SetupProfileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	profileHandler := handler.GetProfileHandler()

	profile := e.Group("/v1/profile")
	profile.Use(authMiddleware.Authenticate)

	profile.GET("/me", profileHandler.Me)
	profile.PUT("", profileHandler.UpdateProfile)
	profile.POST("/refresh", profileHandler.Refresh)
	profile.PUT("/notifications", profileHandler.SetNotifications)
	profile.DELETE("", profileHandler.DeleteAccount)

	users := e.Group("/v1/users")
	users.Use(authMiddleware.Authenticate)

	users.GET("/:id", profileHandler.GetUser)

	mentors := e.Group("/v1/mentors")
	mentors.Use(authMiddleware.Authenticate)

	mentors.GET("", profileHandler.ListMentors)
}
