package usecase

import (
	"context"
	"encoding/json"

	"foreign/internal/domain/entity"
	"foreign/internal/domain/repository"
	"foreign/pkg/errors"
	"foreign/pkg/logger"
)

type ChatUseCase struct {
	chatRepo         repository.ChatRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	resolver         *AuthorResolver
	publisher        LivePublisher
}

func NewChatUseCase(
	chatRepo repository.ChatRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
	resolver *AuthorResolver,
	publisher LivePublisher,
) *ChatUseCase {
	return &ChatUseCase{
		chatRepo:         chatRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		resolver:         resolver,
		publisher:        publisher,
	}
}

// StartChat opens (or returns the existing) chat between a student and a
// mentor.
func (uc *ChatUseCase) StartChat(ctx context.Context, studentID, mentorID string) (*entity.MentorChat, error) {
	if studentID == mentorID {
		return nil, errors.BadRequest("Cannot start a chat with yourself", nil)
	}

	mentor, err := uc.userRepo.GetByID(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if !mentor.IsMentor {
		return nil, errors.BadRequest("User is not a mentor", nil)
	}

	existing, err := uc.chatRepo.GetByParticipants(ctx, mentorID, studentID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	chat := &entity.MentorChat{
		Participants: []string{studentID, mentorID},
		MentorID:     mentorID,
		StudentID:    studentID,
	}

	if err := uc.chatRepo.Create(ctx, chat); err != nil {
		return nil, err
	}
	return chat, nil
}

func (uc *ChatUseCase) ListChats(ctx context.Context, userID string) ([]*entity.MentorChat, error) {
	return uc.chatRepo.ListByUser(ctx, userID)
}

func (uc *ChatUseCase) SendMessage(ctx context.Context, actorID, chatID, content string) (*entity.ChatMessage, error) {
	chat, err := uc.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if !chat.HasParticipant(actorID) {
		return nil, errors.Forbidden("Not a participant of this chat", nil)
	}

	message := &entity.ChatMessage{
		ChatID:   chatID,
		SenderID: actorID,
		Content:  content,
		User:     uc.resolver.Snapshot(ctx, actorID),
	}

	if err := uc.chatRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	// Preview update and delivery are secondary effects; neither blocks the
	// message write.
	if err := uc.chatRepo.UpdateLastMessage(ctx, chatID, content); err != nil {
		logger.Warn("Message %s saved but chat preview not updated: %v", message.ID, err)
	}

	for _, participant := range chat.Participants {
		if participant == actorID {
			continue
		}
		uc.deliver(participant, message)
		uc.notify(ctx, &entity.Notification{
			RecipientID: participant,
			Type:        entity.NotificationTypeChatMessage,
			FromUserID:  actorID,
			TargetID:    chatID,
			TargetType:  "mentor_chat",
		})
	}

	return message, nil
}

func (uc *ChatUseCase) ListMessages(ctx context.Context, actorID, chatID string) ([]*entity.ChatMessage, error) {
	chat, err := uc.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if !chat.HasParticipant(actorID) {
		return nil, errors.Forbidden("Not a participant of this chat", nil)
	}

	return uc.chatRepo.ListMessages(ctx, chatID)
}

// SubscribeMessages attaches a live listener for the chat. The caller owns
// the returned handle and must release it when the screen goes away.
func (uc *ChatUseCase) SubscribeMessages(ctx context.Context, actorID, chatID string, onUpdate func([]*entity.ChatMessage)) (repository.Subscription, error) {
	chat, err := uc.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if !chat.HasParticipant(actorID) {
		return nil, errors.Forbidden("Not a participant of this chat", nil)
	}

	return uc.chatRepo.SubscribeMessages(ctx, chatID, onUpdate)
}

func (uc *ChatUseCase) deliver(userID string, message *entity.ChatMessage) {
	payload, err := json.Marshal(map[string]interface{}{
		"type":    "chat_message",
		"message": message,
	})
	if err != nil {
		logger.Warn("Failed to encode chat message %s: %v", message.ID, err)
		return
	}
	uc.publisher.SendToUser(userID, payload)
}

func (uc *ChatUseCase) notify(ctx context.Context, notification *entity.Notification) {
	notification.FromName = uc.resolver.Resolve(ctx, notification.FromUserID).Name

	if err := uc.notificationRepo.Create(ctx, notification); err != nil {
		logger.Warn("Dropping %s notification for %s: %v",
			notification.Type, notification.RecipientID, err)
	}
}
