package usecase

import (
	"context"
	"time"

	"foreign/internal/domain/entity"
	"foreign/internal/domain/repository"
	"foreign/pkg/errors"
	"foreign/pkg/logger"
)

type ProfileUseCase struct {
	userRepo     repository.UserRepository
	firebaseAuth FirebaseAuthClient
}

func NewProfileUseCase(userRepo repository.UserRepository, firebaseAuth FirebaseAuthClient) *ProfileUseCase {
	return &ProfileUseCase{
		userRepo:     userRepo,
		firebaseAuth: firebaseAuth,
	}
}

type UpdateProfileInput struct {
	Name       string
	University string
	Origin     string
	Photo      string
	Interests  []string
	Areas      []string
	IsMentor   *bool
}

// EnsureProfile returns the profile for uid, creating it on first sign-in
// from the auth record's email and display name.
func (uc *ProfileUseCase) EnsureProfile(ctx context.Context, uid string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	email, name, err := uc.firebaseAuth.GetUserEmail(ctx, uid)
	if err != nil {
		return nil, errors.Internal("Failed to read auth record", err)
	}

	now := time.Now()
	user = &entity.User{
		ID:                   uid,
		Email:                email,
		Name:                 name,
		Interests:            []string{},
		Friends:              []string{},
		PendingRequests:      []string{},
		FriendRequests:       []string{},
		NotificationsEnabled: true,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Internal("Failed to create profile", err)
	}

	logger.Info("Created profile for new user %s", uid)
	return user, nil
}

func (uc *ProfileUseCase) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

// UpdateProfile applies a partial edit: empty inputs mean "unchanged", so a
// set string field cannot be cleared here. Clearing would need a dedicated
// sentinel; no screen sends one.
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.University != "" {
		user.University = input.University
	}
	if input.Origin != "" {
		user.Origin = input.Origin
	}
	if input.Photo != "" {
		user.Photo = input.Photo
	}
	if input.Interests != nil {
		user.Interests = input.Interests
	}
	if input.Areas != nil {
		user.Areas = input.Areas
	}
	if input.IsMentor != nil {
		user.IsMentor = *input.IsMentor
	}

	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Internal("Failed to update profile", err)
	}

	return user, nil
}

func (uc *ProfileUseCase) SetNotificationsEnabled(ctx context.Context, userID string, enabled bool) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.NotificationsEnabled = enabled
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Internal("Failed to update profile", err)
	}
	return user, nil
}

// DeleteAccount removes the auth user and the profile document. Posts,
// comments and likes referencing the user stay behind; their author fields
// resolve to the placeholder from then on.
func (uc *ProfileUseCase) DeleteAccount(ctx context.Context, userID string) error {
	if err := uc.firebaseAuth.DeleteUser(ctx, userID); err != nil {
		return errors.Internal("Failed to delete auth user", err)
	}

	if err := uc.userRepo.Delete(ctx, userID); err != nil {
		return err
	}

	logger.Info("Deleted account %s", userID)
	return nil
}

// ListMentors returns mentors visible to the viewer: same-institution policy,
// both universities non-empty.
func (uc *ProfileUseCase) ListMentors(ctx context.Context, viewer *entity.User) ([]*entity.User, error) {
	users, err := uc.userRepo.List(ctx, "name", false)
	if err != nil {
		return nil, err
	}

	var mentors []*entity.User
	for _, u := range users {
		if !u.IsMentor || u.ID == viewer.ID {
			continue
		}
		if u.University == "" || viewer.University == "" || u.University != viewer.University {
			continue
		}
		mentors = append(mentors, u)
	}

	return mentors, nil
}
