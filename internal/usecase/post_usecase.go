package usecase

import (
	"context"

	"foreign/internal/domain/entity"
	"foreign/internal/domain/repository"
	"foreign/pkg/errors"
	"foreign/pkg/logger"
)

type PostUseCase struct {
	postRepo         repository.PostRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	resolver         *AuthorResolver
}

func NewPostUseCase(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
	resolver *AuthorResolver,
) *PostUseCase {
	return &PostUseCase{
		postRepo:         postRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		resolver:         resolver,
	}
}

type CreatePostInput struct {
	Image    string
	Caption  string
	Location string
}

// CreatePost writes the post with the author's name and photo denormalized
// onto it. Older documents in the collection predate this and lack the two
// fields; readers must not rely on them.
func (uc *PostUseCase) CreatePost(ctx context.Context, actorID string, input CreatePostInput) (*entity.Post, error) {
	actor, err := uc.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	post := &entity.Post{
		Image:     input.Image,
		Caption:   input.Caption,
		Location:  input.Location,
		UserID:    actor.ID,
		UserName:  actor.Name,
		UserPhoto: actor.Photo,
		Likes:     map[string]bool{},
	}

	if err := uc.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	author := actor.AuthorProjection()
	post.Author = &author
	return post, nil
}

// ToggleLike flips the actor's like on the post: a single field write on
// likes.<actorID>, no read-modify-write transaction. A notification is
// enqueued only when a like is added on someone else's post; notification
// failures are logged and swallowed so they never block the like.
func (uc *PostUseCase) ToggleLike(ctx context.Context, actorID, postID string) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	liked := !post.LikedBy(actorID)
	if err := uc.postRepo.SetLike(ctx, postID, actorID, liked); err != nil {
		return nil, err
	}

	// Mirror the write into the already-fetched document.
	if liked {
		if post.Likes == nil {
			post.Likes = map[string]bool{}
		}
		post.Likes[actorID] = true
	} else {
		delete(post.Likes, actorID)
	}

	if liked && post.UserID != actorID {
		uc.notify(ctx, &entity.Notification{
			RecipientID: post.UserID,
			Type:        entity.NotificationTypeLike,
			FromUserID:  actorID,
			TargetID:    post.ID,
			TargetType:  "post",
		})
	}

	return post, nil
}

// AddComment appends the comment with a frozen author snapshot. If the
// commenter later renames themself the historical comment keeps the old name.
func (uc *PostUseCase) AddComment(ctx context.Context, actorID, postID, text string) (*entity.Comment, error) {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		Text: text,
		User: uc.resolver.Snapshot(ctx, actorID),
	}

	if err := uc.postRepo.AddComment(ctx, postID, comment); err != nil {
		return nil, err
	}

	if post.UserID != actorID {
		uc.notify(ctx, &entity.Notification{
			RecipientID: post.UserID,
			Type:        entity.NotificationTypeComment,
			FromUserID:  actorID,
			TargetID:    post.ID,
			TargetType:  "post",
		})
	}

	return comment, nil
}

func (uc *PostUseCase) ListComments(ctx context.Context, postID string) ([]*entity.Comment, error) {
	return uc.postRepo.ListComments(ctx, postID)
}

// DeletePost removes the post document only. Its comment subcollection and
// any notifications pointing at it are orphaned.
func (uc *PostUseCase) DeletePost(ctx context.Context, actorID, postID string) error {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.UserID != actorID {
		actor, err := uc.userRepo.GetByID(ctx, actorID)
		if err != nil || !actor.IsAdmin {
			return errors.Forbidden("Only the author or an admin can delete this post", nil)
		}
	}

	return uc.postRepo.Delete(ctx, postID)
}

func (uc *PostUseCase) DeleteComment(ctx context.Context, actorID, postID, commentID string) error {
	comments, err := uc.postRepo.ListComments(ctx, postID)
	if err != nil {
		return err
	}

	for _, comment := range comments {
		if comment.ID != commentID {
			continue
		}
		if comment.User.ID != actorID {
			actor, err := uc.userRepo.GetByID(ctx, actorID)
			if err != nil || !actor.IsAdmin {
				return errors.Forbidden("Only the author or an admin can delete this comment", nil)
			}
		}
		return uc.postRepo.DeleteComment(ctx, postID, commentID)
	}

	return errors.NotFound("Comment", nil)
}

func (uc *PostUseCase) notify(ctx context.Context, notification *entity.Notification) {
	notification.FromName = uc.resolver.Resolve(ctx, notification.FromUserID).Name

	if err := uc.notificationRepo.Create(ctx, notification); err != nil {
		logger.Warn("Dropping %s notification for %s: %v",
			notification.Type, notification.RecipientID, err)
	}
}
