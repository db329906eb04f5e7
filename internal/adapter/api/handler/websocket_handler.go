package handler

import (
	"encoding/json"
	"net/http"

	gorilla "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"foreign/internal/domain/entity"
	"foreign/internal/domain/repository"
	"foreign/internal/infrastructure/websocket"
	"foreign/internal/usecase"
	"foreign/pkg/logger"
)

var upgrader = gorilla.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketHandler struct {
	manager      *websocket.Manager
	authClient   usecase.FirebaseAuthClient
	chatUseCase  *usecase.ChatUseCase
	forumUseCase *usecase.ForumUseCase
}

func NewWebSocketHandler(
	manager *websocket.Manager,
	authClient usecase.FirebaseAuthClient,
	chatUseCase *usecase.ChatUseCase,
	forumUseCase *usecase.ForumUseCase,
) *WebSocketHandler {
	return &WebSocketHandler{
		manager:      manager,
		authClient:   authClient,
		chatUseCase:  chatUseCase,
		forumUseCase: forumUseCase,
	}
}

// Connect upgrades the request and keeps the connection registered until the
// client goes away. Query params attach live queries to the connection:
// chat_id streams that chat's messages, subscribe=forum streams the question
// list. Every attached subscription is released when the socket closes.
func (h *WebSocketHandler) Connect(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Token is required")
	}

	uid, err := h.authClient.VerifyToken(c.Request().Context(), token)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Error("WebSocket upgrade failed for %s: %v", uid, err)
		return err
	}

	client := &websocket.Client{
		UserID: uid,
		Conn:   conn,
		Send:   make(chan []byte, 256),
	}
	h.manager.Register <- client

	var subscriptions []repository.Subscription

	if chatID := c.QueryParam("chat_id"); chatID != "" {
		sub, err := h.chatUseCase.SubscribeMessages(c.Request().Context(), uid, chatID,
			func(messages []*entity.ChatMessage) {
				h.push(client, "chat_messages", messages)
			})
		if err != nil {
			logger.Warn("Chat subscription refused for %s: %v", uid, err)
		} else {
			subscriptions = append(subscriptions, sub)
		}
	}

	if c.QueryParam("subscribe") == "forum" {
		sub, err := h.forumUseCase.SubscribeQuestions(c.Request().Context(),
			func(questions []*entity.ForumQuestion) {
				h.push(client, "forum_questions", questions)
			})
		if err != nil {
			logger.Warn("Forum subscription refused for %s: %v", uid, err)
		} else {
			subscriptions = append(subscriptions, sub)
		}
	}

	go client.WritePump()
	client.ReadPump()

	// Release every live query before the manager closes the send channel,
	// so a late snapshot callback cannot write to a dead client.
	for _, sub := range subscriptions {
		sub.Unsubscribe()
	}
	h.manager.Unregister <- client
	return nil
}

func (h *WebSocketHandler) push(client *websocket.Client, kind string, payload interface{}) {
	data, err := json.Marshal(map[string]interface{}{
		"type": kind,
		"data": payload,
	})
	if err != nil {
		logger.Warn("Failed to encode %s update: %v", kind, err)
		return
	}

	// Delivery goes through the manager: once the client is unregistered
	// this is a no-op instead of a send on a closed channel.
	h.manager.SendToUser(client.UserID, data)
}
