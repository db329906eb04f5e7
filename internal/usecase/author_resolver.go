package usecase

import (
	"context"

	"foreign/internal/domain/entity"
	"foreign/internal/domain/repository"
	"foreign/pkg/logger"
)

// AuthorResolver turns a user id into the Author projection attached to
// content items. Resolution never fails: a missing or unreadable profile
// degrades to the placeholder author so the item is kept.
type AuthorResolver struct {
	userRepo repository.UserRepository
}

func NewAuthorResolver(userRepo repository.UserRepository) *AuthorResolver {
	return &AuthorResolver{
		userRepo: userRepo,
	}
}

func (r *AuthorResolver) Resolve(ctx context.Context, userID string) entity.Author {
	user, err := r.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Debug("Author %s unresolved, using placeholder: %v", userID, err)
		return entity.PlaceholderAuthor(userID)
	}
	return user.AuthorProjection()
}

// Snapshot returns the frozen author copy embedded in comments and forum
// documents at write time.
func (r *AuthorResolver) Snapshot(ctx context.Context, userID string) entity.AuthorSnapshot {
	user, err := r.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Debug("Author %s unresolved, using placeholder snapshot: %v", userID, err)
		return entity.AuthorSnapshot{
			ID:    userID,
			Name:  entity.UnknownUserName,
			Image: entity.DefaultAvatarURL,
		}
	}
	return user.Snapshot()
}
