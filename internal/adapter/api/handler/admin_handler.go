package handler

import (
	"github.com/labstack/echo/v4"

	"foreign/internal/usecase"
	"foreign/pkg/response"
)

type AdminHandler struct {
	adminUseCase *usecase.AdminUseCase
}

func NewAdminHandler(adminUseCase *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
	}
}

// GetDashboardStats returns whatever collection counts could be fetched; a
// failed count is simply absent from the map.
func (h *AdminHandler) GetDashboardStats(c echo.Context) error {
	stats := h.adminUseCase.DashboardStats(c.Request().Context())
	return response.Success(c, stats)
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.adminUseCase.ListUsers(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, users)
}
