package usecase

import (
	"context"

	"foreign/internal/domain/entity"
	"foreign/internal/domain/repository"
	"foreign/pkg/errors"
)

type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationUseCase(notificationRepo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
	}
}

func (uc *NotificationUseCase) List(ctx context.Context, recipientID string) ([]*entity.Notification, error) {
	return uc.notificationRepo.ListByRecipient(ctx, recipientID)
}

func (uc *NotificationUseCase) UnreadCount(ctx context.Context, recipientID string) (int, error) {
	notifications, err := uc.notificationRepo.ListByRecipient(ctx, recipientID)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, n := range notifications {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

// MarkRead flips the read flag. Only the recipient may flip it.
func (uc *NotificationUseCase) MarkRead(ctx context.Context, actorID, notificationID string) error {
	notifications, err := uc.notificationRepo.ListByRecipient(ctx, actorID)
	if err != nil {
		return err
	}

	for _, n := range notifications {
		if n.ID == notificationID {
			return uc.notificationRepo.MarkRead(ctx, notificationID)
		}
	}
	return errors.NotFound("Notification", nil)
}
