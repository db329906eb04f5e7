package repository

import (
	"context"

	"foreign/internal/domain/entity"
)

type LocationRepository interface {
	Create(ctx context.Context, location *entity.Location) error
	GetByID(ctx context.Context, id string) (*entity.Location, error)
	List(ctx context.Context, orderBy string, descending bool) ([]*entity.Location, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)

	// Rate writes the ratings.<userID> map key on the location.
	Rate(ctx context.Context, locationID, userID string, value float64) error
}
