package usecase

import (
	"context"

	"foreign/internal/domain/entity"
	"foreign/internal/domain/repository"
	"foreign/pkg/errors"
	"foreign/pkg/logger"
)

// Friend-graph array fields on the user document.
const (
	fieldFriends         = "friends"
	fieldPendingRequests = "pendingRequests"
	fieldFriendRequests  = "friendRequests"
)

// FriendUseCase drives the request lifecycle between an ordered pair (A,B):
//
//	NONE --send(A,B)--> REQUESTED --accept(B)--> FRIENDS
//	                    REQUESTED --reject(B)--> NONE
//	                    REQUESTED --cancel(A)--> NONE
//	FRIENDS --remove(either)--> NONE
//
// Every transition is a pair of independent array updates, one per profile
// document. There is no transaction: a crash between the two writes leaves
// the pair half-applied and nothing reconciles it.
type FriendUseCase struct {
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	resolver         *AuthorResolver
}

func NewFriendUseCase(
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
	resolver *AuthorResolver,
) *FriendUseCase {
	return &FriendUseCase{
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		resolver:         resolver,
	}
}

func (uc *FriendUseCase) SendRequest(ctx context.Context, actorID, targetID string) error {
	if actorID == targetID {
		return errors.BadRequest("Cannot send a friend request to yourself", nil)
	}

	actor, err := uc.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	if _, err := uc.userRepo.GetByID(ctx, targetID); err != nil {
		return err
	}

	if actor.IsFriendOf(targetID) {
		return errors.Conflict("Already friends")
	}
	for _, id := range actor.PendingRequests {
		if id == targetID {
			return errors.Conflict("Request already sent")
		}
	}
	for _, id := range actor.FriendRequests {
		if id == targetID {
			return errors.Conflict("This user already sent you a request")
		}
	}

	if err := uc.userRepo.ArrayUnion(ctx, actorID, fieldPendingRequests, targetID); err != nil {
		return err
	}
	if err := uc.userRepo.ArrayUnion(ctx, targetID, fieldFriendRequests, actorID); err != nil {
		return err
	}

	uc.notify(ctx, &entity.Notification{
		RecipientID: targetID,
		Type:        entity.NotificationTypeFriendRequest,
		FromUserID:  actorID,
	})

	return nil
}

// AcceptRequest is called by the receiver of a pending request.
func (uc *FriendUseCase) AcceptRequest(ctx context.Context, actorID, requesterID string) error {
	actor, err := uc.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return err
	}

	if !contains(actor.FriendRequests, requesterID) {
		return errors.NotFound("Friend request", nil)
	}

	if err := uc.userRepo.ArrayUnion(ctx, actorID, fieldFriends, requesterID); err != nil {
		return err
	}
	if err := uc.userRepo.ArrayUnion(ctx, requesterID, fieldFriends, actorID); err != nil {
		return err
	}
	if err := uc.userRepo.ArrayRemove(ctx, actorID, fieldFriendRequests, requesterID); err != nil {
		return err
	}
	if err := uc.userRepo.ArrayRemove(ctx, requesterID, fieldPendingRequests, actorID); err != nil {
		return err
	}

	uc.notify(ctx, &entity.Notification{
		RecipientID: requesterID,
		Type:        entity.NotificationTypeFriendAccept,
		FromUserID:  actorID,
	})

	return nil
}

// RejectRequest is called by the receiver; both sides' arrays return to the
// NONE state.
func (uc *FriendUseCase) RejectRequest(ctx context.Context, actorID, requesterID string) error {
	if err := uc.userRepo.ArrayRemove(ctx, actorID, fieldFriendRequests, requesterID); err != nil {
		return err
	}
	return uc.userRepo.ArrayRemove(ctx, requesterID, fieldPendingRequests, actorID)
}

// CancelRequest is called by the sender of a still-pending request.
func (uc *FriendUseCase) CancelRequest(ctx context.Context, actorID, targetID string) error {
	if err := uc.userRepo.ArrayRemove(ctx, actorID, fieldPendingRequests, targetID); err != nil {
		return err
	}
	return uc.userRepo.ArrayRemove(ctx, targetID, fieldFriendRequests, actorID)
}

// RemoveFriend is symmetric; either side can call it.
func (uc *FriendUseCase) RemoveFriend(ctx context.Context, actorID, friendID string) error {
	if err := uc.userRepo.ArrayRemove(ctx, actorID, fieldFriends, friendID); err != nil {
		return err
	}
	return uc.userRepo.ArrayRemove(ctx, friendID, fieldFriends, actorID)
}

// ListFriends resolves the viewer's friend ids to profiles. Dangling ids
// (deleted accounts) resolve to the placeholder instead of being dropped.
func (uc *FriendUseCase) ListFriends(ctx context.Context, viewerID string) ([]entity.Author, error) {
	viewer, err := uc.userRepo.GetByID(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	friends := make([]entity.Author, 0, len(viewer.Friends))
	for _, id := range viewer.Friends {
		friends = append(friends, uc.resolver.Resolve(ctx, id))
	}
	return friends, nil
}

// ListIncomingRequests resolves the profiles that have requested the viewer.
func (uc *FriendUseCase) ListIncomingRequests(ctx context.Context, viewerID string) ([]entity.Author, error) {
	viewer, err := uc.userRepo.GetByID(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	requests := make([]entity.Author, 0, len(viewer.FriendRequests))
	for _, id := range viewer.FriendRequests {
		requests = append(requests, uc.resolver.Resolve(ctx, id))
	}
	return requests, nil
}

func (uc *FriendUseCase) notify(ctx context.Context, notification *entity.Notification) {
	notification.FromName = uc.resolver.Resolve(ctx, notification.FromUserID).Name

	if err := uc.notificationRepo.Create(ctx, notification); err != nil {
		logger.Warn("Dropping %s notification for %s: %v",
			notification.Type, notification.RecipientID, err)
	}
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
