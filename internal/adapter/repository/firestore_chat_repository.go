package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"foreign/internal/domain/entity"
	"foreign/internal/domain/repository"
	"foreign/internal/infrastructure/realtime"
	"foreign/pkg/errors"
	"foreign/pkg/logger"
)

type firestoreChatRepository struct {
	client *firestore.Client
}

func NewFirestoreChatRepository(client *firestore.Client) repository.ChatRepository {
	return &firestoreChatRepository{
		client: client,
	}
}

func (r *firestoreChatRepository) Create(ctx context.Context, chat *entity.MentorChat) error {
	if chat.ID == "" {
		chat.ID = uuid.New().String()
	}

	now := time.Now()
	chat.CreatedAt = now
	chat.UpdatedAt = now

	_, err := r.client.Collection("mentor_chats").Doc(chat.ID).Set(ctx, chat)
	if err != nil {
		return errors.Internal("Failed to create chat", err)
	}
	return nil
}

func (r *firestoreChatRepository) GetByID(ctx context.Context, id string) (*entity.MentorChat, error) {
	doc, err := r.client.Collection("mentor_chats").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Chat", err)
		}
		return nil, errors.Internal("Failed to get chat", err)
	}

	var chat entity.MentorChat
	if err := doc.DataTo(&chat); err != nil {
		return nil, errors.Internal("Failed to parse chat data", err)
	}
	return &chat, nil
}

func (r *firestoreChatRepository) GetByParticipants(ctx context.Context, mentorID, studentID string) (*entity.MentorChat, error) {
	query := r.client.Collection("mentor_chats").
		Where("mentorId", "==", mentorID).
		Where("studentId", "==", studentID).
		Limit(1)

	iter := query.Documents(ctx)
	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Chat", err)
	}
	if err != nil {
		return nil, errors.Internal("Failed to query chat", err)
	}

	var chat entity.MentorChat
	if err := doc.DataTo(&chat); err != nil {
		return nil, errors.Internal("Failed to parse chat data", err)
	}
	return &chat, nil
}

func (r *firestoreChatRepository) ListByUser(ctx context.Context, userID string) ([]*entity.MentorChat, error) {
	iter := r.client.Collection("mentor_chats").
		Where("participants", "array-contains", userID).
		OrderBy("lastMessageAt", firestore.Desc).
		Documents(ctx)

	var chats []*entity.MentorChat
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list chats", err)
		}

		var chat entity.MentorChat
		if err := doc.DataTo(&chat); err != nil {
			return nil, errors.Internal("Failed to parse chat data", err)
		}
		chats = append(chats, &chat)
	}

	return chats, nil
}

func (r *firestoreChatRepository) CreateMessage(ctx context.Context, message *entity.ChatMessage) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	message.CreatedAt = time.Now()

	_, err := r.client.Collection("mentor_chats").Doc(message.ChatID).
		Collection("messages").Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.Internal("Failed to create message", err)
	}
	return nil
}

func (r *firestoreChatRepository) ListMessages(ctx context.Context, chatID string) ([]*entity.ChatMessage, error) {
	iter := r.client.Collection("mentor_chats").Doc(chatID).
		Collection("messages").OrderBy("createdAt", firestore.Asc).Documents(ctx)

	var messages []*entity.ChatMessage
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list messages", err)
		}

		var message entity.ChatMessage
		if err := doc.DataTo(&message); err != nil {
			return nil, errors.Internal("Failed to parse message data", err)
		}
		messages = append(messages, &message)
	}

	return messages, nil
}

func (r *firestoreChatRepository) UpdateLastMessage(ctx context.Context, chatID, preview string) error {
	_, err := r.client.Collection("mentor_chats").Doc(chatID).Update(ctx, []firestore.Update{
		{Path: "lastMessage", Value: preview},
		{Path: "lastMessageAt", Value: time.Now()},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return errors.Internal("Failed to update chat", err)
	}
	return nil
}

func (r *firestoreChatRepository) SubscribeMessages(ctx context.Context, chatID string, onUpdate func([]*entity.ChatMessage)) (repository.Subscription, error) {
	subCtx, cancel := context.WithCancel(ctx)

	snapshots := r.client.Collection("mentor_chats").Doc(chatID).
		Collection("messages").OrderBy("createdAt", firestore.Asc).Snapshots(subCtx)

	go func() {
		for {
			snap, err := snapshots.Next()
			if err != nil {
				if subCtx.Err() == nil {
					logger.Error("Chat message listener stopped for %s: %v", chatID, err)
				}
				return
			}

			var messages []*entity.ChatMessage
			for {
				doc, err := snap.Documents.Next()
				if err == iterator.Done {
					break
				}
				if err != nil {
					logger.Warn("Chat message snapshot read error: %v", err)
					break
				}

				var message entity.ChatMessage
				if err := doc.DataTo(&message); err != nil {
					logger.Warn("Skipping unreadable message %s: %v", doc.Ref.ID, err)
					continue
				}
				messages = append(messages, &message)
			}
			onUpdate(messages)
		}
	}()

	return realtime.NewHandle(func() {
		cancel()
		snapshots.Stop()
	}), nil
}
