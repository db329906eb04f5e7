package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"foreign/internal/infrastructure/ratelimit"
	"foreign/internal/usecase"
	"foreign/pkg/response"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
	limiter     *ratelimit.RateLimiter
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase, limiter *ratelimit.RateLimiter) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
		limiter:     limiter,
	}
}

type startChatRequest struct {
	MentorID string `json:"mentor_id" validate:"required"`
}

type sendMessageRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

func (h *ChatHandler) StartChat(c echo.Context) error {
	var req startChatRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	chat, err := h.chatUseCase.StartChat(c.Request().Context(), uid, req.MentorID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, chat)
}

func (h *ChatHandler) ListChats(c echo.Context) error {
	uid := c.Get("uid").(string)

	chats, err := h.chatUseCase.ListChats(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, chats)
}

func (h *ChatHandler) ListMessages(c echo.Context) error {
	uid := c.Get("uid").(string)

	messages, err := h.chatUseCase.ListMessages(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, messages)
}

func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	if allowed, wait := h.limiter.Allow(uid, "send_message"); !allowed {
		return echo.NewHTTPError(http.StatusTooManyRequests,
			"Message limit reached, retry in "+wait.String())
	}

	message, err := h.chatUseCase.SendMessage(c.Request().Context(), uid, c.Param("id"), req.Content)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, message)
}
