package usecase

import (
	"context"

	"foreign/internal/domain/entity"
	"foreign/internal/domain/repository"
	"foreign/pkg/errors"
)

type LocationUseCase struct {
	locationRepo repository.LocationRepository
	userRepo     repository.UserRepository
}

func NewLocationUseCase(locationRepo repository.LocationRepository, userRepo repository.UserRepository) *LocationUseCase {
	return &LocationUseCase{
		locationRepo: locationRepo,
		userRepo:     userRepo,
	}
}

type CreateLocationInput struct {
	Title       string
	Description string
	Lat         float64
	Lng         float64
	Types       []string
	ImageURLs   []string
}

func (uc *LocationUseCase) CreateLocation(ctx context.Context, actorID string, input CreateLocationInput) (*entity.Location, error) {
	location := &entity.Location{
		Title:       input.Title,
		Description: input.Description,
		Coordinates: entity.Coordinates{Lat: input.Lat, Lng: input.Lng},
		Types:       input.Types,
		ImageURLs:   input.ImageURLs,
		CreatedBy:   actorID,
		Ratings:     map[string]float64{},
	}

	if err := uc.locationRepo.Create(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

func (uc *LocationUseCase) GetLocation(ctx context.Context, id string) (*entity.Location, error) {
	return uc.locationRepo.GetByID(ctx, id)
}

func (uc *LocationUseCase) Rate(ctx context.Context, actorID, locationID string, value float64) (*entity.Location, error) {
	if value < 1 || value > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}

	location, err := uc.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		return nil, err
	}

	if err := uc.locationRepo.Rate(ctx, locationID, actorID, value); err != nil {
		return nil, err
	}

	if location.Ratings == nil {
		location.Ratings = map[string]float64{}
	}
	location.Ratings[actorID] = value
	return location, nil
}

func (uc *LocationUseCase) DeleteLocation(ctx context.Context, actorID, locationID string) error {
	location, err := uc.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		return err
	}

	if location.CreatedBy != actorID {
		actor, err := uc.userRepo.GetByID(ctx, actorID)
		if err != nil || !actor.IsAdmin {
			return errors.Forbidden("Only the creator or an admin can delete this location", nil)
		}
	}

	return uc.locationRepo.Delete(ctx, locationID)
}
