package router

import (
	"github.com/labstack/echo/v4"

	"foreign/internal/adapter/api/handler"
	"foreign/internal/adapter/api/middleware"
)

func SetupPostRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	postHandler := handler.GetPostHandler()

	posts := e.Group("/v1/posts")
	posts.Use(authMiddleware.Authenticate)

	posts.GET("", postHandler.ListPosts)
	posts.POST("", postHandler.CreatePost)
	posts.DELETE("/:id", postHandler.DeletePost)

	posts.POST("/:id/like", postHandler.ToggleLike)

	posts.GET("/:id/comments", postHandler.ListComments)
	posts.POST("/:id/comments", postHandler.AddComment)
	posts.DELETE("/:id/comments/:commentId", postHandler.DeleteComment)
}
