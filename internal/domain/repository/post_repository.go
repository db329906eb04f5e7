package repository

import (
	"context"

	"foreign/internal/domain/entity"
)

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	List(ctx context.Context, orderBy string, descending bool) ([]*entity.Post, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)

	// SetLike writes or deletes the likes.<userID> map key on the post.
	SetLike(ctx context.Context, postID, userID string, liked bool) error

	AddComment(ctx context.Context, postID string, comment *entity.Comment) error
	ListComments(ctx context.Context, postID string) ([]*entity.Comment, error)
	DeleteComment(ctx context.Context, postID, commentID string) error
}
