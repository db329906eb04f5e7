package repository

import (
	"context"

	"foreign/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, orderBy string, descending bool) ([]*entity.User, error)
	Count(ctx context.Context) (int64, error)

	// ArrayUnion and ArrayRemove apply a single-element add/remove to one of
	// the friend-graph arrays on one document. The friend lifecycle issues
	// these pairwise across two documents with no transaction.
	ArrayUnion(ctx context.Context, id, field, value string) error
	ArrayRemove(ctx context.Context, id, field, value string) error
}
