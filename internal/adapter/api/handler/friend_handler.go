package handler

import (
	"github.com/labstack/echo/v4"

	"foreign/internal/usecase"
	"foreign/pkg/response"
)

type FriendHandler struct {
	friendUseCase *usecase.FriendUseCase
}

func NewFriendHandler(friendUseCase *usecase.FriendUseCase) *FriendHandler {
	return &FriendHandler{
		friendUseCase: friendUseCase,
	}
}

type sendRequestRequest struct {
	TargetID string `json:"target_id" validate:"required"`
}

func (h *FriendHandler) ListFriends(c echo.Context) error {
	uid := c.Get("uid").(string)

	friends, err := h.friendUseCase.ListFriends(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, friends)
}

func (h *FriendHandler) ListRequests(c echo.Context) error {
	uid := c.Get("uid").(string)

	requests, err := h.friendUseCase.ListIncomingRequests(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, requests)
}

func (h *FriendHandler) SendRequest(c echo.Context) error {
	var req sendRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	if err := h.friendUseCase.SendRequest(c.Request().Context(), uid, req.TargetID); err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, map[string]string{"status": "requested"})
}

func (h *FriendHandler) AcceptRequest(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.friendUseCase.AcceptRequest(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "friends"})
}

func (h *FriendHandler) RejectRequest(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.friendUseCase.RejectRequest(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "rejected"})
}

func (h *FriendHandler) CancelRequest(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.friendUseCase.CancelRequest(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "cancelled"})
}

func (h *FriendHandler) RemoveFriend(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.friendUseCase.RemoveFriend(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "removed"})
}
