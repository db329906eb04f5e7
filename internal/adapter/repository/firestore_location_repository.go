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
	"foreign/pkg/errors"
)

type firestoreLocationRepository struct {
	client *firestore.Client
}

func NewFirestoreLocationRepository(client *firestore.Client) repository.LocationRepository {
	return &firestoreLocationRepository{
		client: client,
	}
}

func (r *firestoreLocationRepository) Create(ctx context.Context, location *entity.Location) error {
	if location.ID == "" {
		location.ID = uuid.New().String()
	}
	if location.Ratings == nil {
		location.Ratings = map[string]float64{}
	}
	location.CreatedAt = time.Now()

	_, err := r.client.Collection("locations").Doc(location.ID).Set(ctx, location)
	if err != nil {
		return errors.Internal("Failed to create location", err)
	}
	return nil
}

func (r *firestoreLocationRepository) GetByID(ctx context.Context, id string) (*entity.Location, error) {
	doc, err := r.client.Collection("locations").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Location", err)
		}
		return nil, errors.Internal("Failed to get location", err)
	}

	var location entity.Location
	if err := doc.DataTo(&location); err != nil {
		return nil, errors.Internal("Failed to parse location data", err)
	}
	return &location, nil
}

func (r *firestoreLocationRepository) List(ctx context.Context, orderBy string, descending bool) ([]*entity.Location, error) {
	dir := firestore.Asc
	if descending {
		dir = firestore.Desc
	}

	iter := r.client.Collection("locations").OrderBy(orderBy, dir).Documents(ctx)
	var locations []*entity.Location

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list locations", err)
		}

		var location entity.Location
		if err := doc.DataTo(&location); err != nil {
			return nil, errors.Internal("Failed to parse location data", err)
		}
		locations = append(locations, &location)
	}

	return locations, nil
}

func (r *firestoreLocationRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("locations").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete location", err)
	}
	return nil
}

func (r *firestoreLocationRepository) Count(ctx context.Context) (int64, error) {
	docs, err := r.client.Collection("locations").Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count locations", err)
	}
	return int64(len(docs)), nil
}

// Rate touches only the ratings.<userID> map key; re-rating overwrites the
// caller's previous value.
func (r *firestoreLocationRepository) Rate(ctx context.Context, locationID, userID string, value float64) error {
	_, err := r.client.Collection("locations").Doc(locationID).Update(ctx, []firestore.Update{
		{FieldPath: firestore.FieldPath{"ratings", userID}, Value: value},
	})
	if err != nil {
		return errors.Internal("Failed to rate location", err)
	}
	return nil
}
