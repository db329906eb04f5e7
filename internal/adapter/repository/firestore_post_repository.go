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

type firestorePostRepository struct {
	client *firestore.Client
}

func NewFirestorePostRepository(client *firestore.Client) repository.PostRepository {
	return &firestorePostRepository{
		client: client,
	}
}

func (r *firestorePostRepository) Create(ctx context.Context, post *entity.Post) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	if post.Likes == nil {
		post.Likes = map[string]bool{}
	}
	post.CreatedAt = time.Now()

	_, err := r.client.Collection("posts").Doc(post.ID).Set(ctx, post)
	if err != nil {
		return errors.Internal("Failed to create post", err)
	}
	return nil
}

func (r *firestorePostRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	doc, err := r.client.Collection("posts").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Post", err)
		}
		return nil, errors.Internal("Failed to get post", err)
	}

	var post entity.Post
	if err := doc.DataTo(&post); err != nil {
		return nil, errors.Internal("Failed to parse post data", err)
	}
	return &post, nil
}

func (r *firestorePostRepository) List(ctx context.Context, orderBy string, descending bool) ([]*entity.Post, error) {
	dir := firestore.Asc
	if descending {
		dir = firestore.Desc
	}

	iter := r.client.Collection("posts").OrderBy(orderBy, dir).Documents(ctx)
	var posts []*entity.Post

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list posts", err)
		}

		var post entity.Post
		if err := doc.DataTo(&post); err != nil {
			return nil, errors.Internal("Failed to parse post data", err)
		}
		posts = append(posts, &post)
	}

	return posts, nil
}

func (r *firestorePostRepository) Delete(ctx context.Context, id string) error {
	// Comments under the post are left in place; nothing cascades.
	_, err := r.client.Collection("posts").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete post", err)
	}
	return nil
}

func (r *firestorePostRepository) Count(ctx context.Context) (int64, error) {
	docs, err := r.client.Collection("posts").Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count posts", err)
	}
	return int64(len(docs)), nil
}

// SetLike touches only the likes.<userID> map key, so concurrent likers on
// the same post never conflict. No read-before-write.
func (r *firestorePostRepository) SetLike(ctx context.Context, postID, userID string, liked bool) error {
	var value interface{} = true
	if !liked {
		value = firestore.Delete
	}

	_, err := r.client.Collection("posts").Doc(postID).Update(ctx, []firestore.Update{
		{FieldPath: firestore.FieldPath{"likes", userID}, Value: value},
	})
	if err != nil {
		return errors.Internal("Failed to update like", err)
	}
	return nil
}

func (r *firestorePostRepository) AddComment(ctx context.Context, postID string, comment *entity.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	comment.CreatedAt = time.Now()

	_, err := r.client.Collection("posts").Doc(postID).Collection("comments").Doc(comment.ID).Set(ctx, comment)
	if err != nil {
		return errors.Internal("Failed to create comment", err)
	}
	return nil
}

func (r *firestorePostRepository) ListComments(ctx context.Context, postID string) ([]*entity.Comment, error) {
	iter := r.client.Collection("posts").Doc(postID).Collection("comments").
		OrderBy("createdAt", firestore.Asc).Documents(ctx)

	var comments []*entity.Comment
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list comments", err)
		}

		var comment entity.Comment
		if err := doc.DataTo(&comment); err != nil {
			return nil, errors.Internal("Failed to parse comment data", err)
		}
		comments = append(comments, &comment)
	}

	return comments, nil
}

func (r *firestorePostRepository) DeleteComment(ctx context.Context, postID, commentID string) error {
	_, err := r.client.Collection("posts").Doc(postID).Collection("comments").Doc(commentID).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete comment", err)
	}
	return nil
}
