package router

import (
	"github.com/labstack/echo/v4"

	"foreign/internal/adapter/api/handler"
	"foreign/internal/adapter/api/middleware"
)

func SetupFriendRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	friendHandler := handler.GetFriendHandler()

	friends := e.Group("/v1/friends")
	friends.Use(authMiddleware.Authenticate)

	friends.GET("", friendHandler.ListFriends)
	friends.DELETE("/:id", friendHandler.RemoveFriend)

	friends.GET("/requests", friendHandler.ListRequests)
	friends.POST("/requests", friendHandler.SendRequest)
	friends.POST("/requests/:id/accept", friendHandler.AcceptRequest)
	friends.POST("/requests/:id/reject", friendHandler.RejectRequest)
	friends.DELETE("/requests/:id", friendHandler.CancelRequest)
}
