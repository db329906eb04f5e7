package repository

import (
	"context"

	"foreign/internal/domain/entity"
)

type ChatRepository interface {
	Create(ctx context.Context, chat *entity.MentorChat) error
	GetByID(ctx context.Context, id string) (*entity.MentorChat, error)
	GetByParticipants(ctx context.Context, mentorID, studentID string) (*entity.MentorChat, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.MentorChat, error)

	CreateMessage(ctx context.Context, message *entity.ChatMessage) error
	ListMessages(ctx context.Context, chatID string) ([]*entity.ChatMessage, error)
	UpdateLastMessage(ctx context.Context, chatID, preview string) error

	// SubscribeMessages delivers the ordered message list on every change
	// until the returned subscription is released.
	SubscribeMessages(ctx context.Context, chatID string, onUpdate func([]*entity.ChatMessage)) (Subscription, error)
}
