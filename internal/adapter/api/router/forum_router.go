package router

import (
	"github.com/labstack/echo/v4"

	"foreign/internal/adapter/api/handler"
	"foreign/internal/adapter/api/middleware"
)

func SetupForumRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	forumHandler := handler.GetForumHandler()

	forum := e.Group("/v1/forum/questions")
	forum.Use(authMiddleware.Authenticate)

	forum.GET("", forumHandler.ListQuestions)
	forum.POST("", forumHandler.CreateQuestion)
	forum.GET("/:id", forumHandler.GetQuestion)
	forum.DELETE("/:id", forumHandler.DeleteQuestion)

	forum.GET("/:id/answers", forumHandler.ListAnswers)
	forum.POST("/:id/answers", forumHandler.AddAnswer)
	forum.POST("/:id/answers/:answerId/like", forumHandler.LikeAnswer)

	forum.GET("/:id/answers/:answerId/comments", forumHandler.ListAnswerComments)
	forum.POST("/:id/answers/:answerId/comments", forumHandler.AddAnswerComment)
}
