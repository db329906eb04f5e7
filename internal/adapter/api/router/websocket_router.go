package router

import (
	"github.com/labstack/echo/v4"

	"foreign/internal/adapter/api/handler"
)

func SetupWebSocketRouter(e *echo.Echo, wsHandler *handler.WebSocketHandler) {
	// Auth happens inside the handler via the token query param; the upgrade
	// request cannot carry an Authorization header from browsers.
	e.GET("/v1/ws", wsHandler.Connect)
}
