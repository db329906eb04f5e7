package router

import (
	"github.com/labstack/echo/v4"

	"foreign/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupHealthRouter(e)
	SetupProfileRouter(e, authMiddleware)
	SetupPostRouter(e, authMiddleware)
	SetupLocationRouter(e, authMiddleware)
	SetupForumRouter(e, authMiddleware)
	SetupFriendRouter(e, authMiddleware)
	SetupNotificationRouter(e, authMiddleware)
	SetupFileRouter(e, authMiddleware)
	SetupAdminRouter(e, authMiddleware, adminMiddleware)
}
