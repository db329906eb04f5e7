package usecase

import (
	"context"
	"strings"

	"foreign/internal/domain/entity"
	"foreign/internal/domain/repository"
	"foreign/pkg/errors"
	"foreign/pkg/logger"
)

type ForumUseCase struct {
	forumRepo        repository.ForumRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	resolver         *AuthorResolver
}

func NewForumUseCase(
	forumRepo repository.ForumRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
	resolver *AuthorResolver,
) *ForumUseCase {
	return &ForumUseCase{
		forumRepo:        forumRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		resolver:         resolver,
	}
}

func (uc *ForumUseCase) CreateQuestion(ctx context.Context, actorID, title string) (*entity.ForumQuestion, error) {
	question := &entity.ForumQuestion{
		Title: title,
		User:  uc.resolver.Snapshot(ctx, actorID),
	}

	if err := uc.forumRepo.CreateQuestion(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

func (uc *ForumUseCase) ListQuestions(ctx context.Context, orderBy string, descending bool, search string) ([]*entity.ForumQuestion, error) {
	if orderBy == "" {
		orderBy = "timestamp"
		descending = true
	}

	questions, err := uc.forumRepo.ListQuestions(ctx, orderBy, descending)
	if err != nil {
		return nil, errors.Internal("Could not load questions", err)
	}

	if search == "" {
		return questions, nil
	}

	needle := strings.ToLower(search)
	filtered := make([]*entity.ForumQuestion, 0, len(questions))
	for _, q := range questions {
		if strings.Contains(strings.ToLower(q.Title), needle) {
			filtered = append(filtered, q)
		}
	}
	return filtered, nil
}

func (uc *ForumUseCase) GetQuestion(ctx context.Context, id string) (*entity.ForumQuestion, error) {
	return uc.forumRepo.GetQuestion(ctx, id)
}

// AddAnswer appends the answer, then increments the question's answerCount
// with a second independent write. A crash between the two leaves the counter
// understated; the answer itself is never lost.
func (uc *ForumUseCase) AddAnswer(ctx context.Context, actorID, questionID, content string) (*entity.ForumAnswer, error) {
	question, err := uc.forumRepo.GetQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}

	answer := &entity.ForumAnswer{
		Content: content,
		User:    uc.resolver.Snapshot(ctx, actorID),
	}

	if err := uc.forumRepo.CreateAnswer(ctx, questionID, answer); err != nil {
		return nil, err
	}

	if err := uc.forumRepo.IncrementAnswerCount(ctx, questionID, 1); err != nil {
		logger.Warn("Answer %s saved but answerCount on %s not incremented: %v",
			answer.ID, questionID, err)
	}

	if question.User.ID != actorID {
		uc.notify(ctx, &entity.Notification{
			RecipientID: question.User.ID,
			Type:        entity.NotificationTypeAnswer,
			FromUserID:  actorID,
			TargetID:    questionID,
			TargetType:  "forum_question",
		})
	}

	return answer, nil
}

func (uc *ForumUseCase) ListAnswers(ctx context.Context, questionID string) ([]*entity.ForumAnswer, error) {
	return uc.forumRepo.ListAnswers(ctx, questionID)
}

func (uc *ForumUseCase) LikeAnswer(ctx context.Context, questionID, answerID string) error {
	return uc.forumRepo.LikeAnswer(ctx, questionID, answerID, 1)
}

// AddAnswerComment mirrors AddAnswer: subdocument first, counter second,
// not atomic.
func (uc *ForumUseCase) AddAnswerComment(ctx context.Context, actorID, questionID, answerID, content string) (*entity.ForumComment, error) {
	comment := &entity.ForumComment{
		Content: content,
		User:    uc.resolver.Snapshot(ctx, actorID),
	}

	if err := uc.forumRepo.CreateAnswerComment(ctx, questionID, answerID, comment); err != nil {
		return nil, err
	}

	if err := uc.forumRepo.IncrementCommentCount(ctx, questionID, answerID, 1); err != nil {
		logger.Warn("Comment %s saved but commentCount on %s/%s not incremented: %v",
			comment.ID, questionID, answerID, err)
	}

	return comment, nil
}

func (uc *ForumUseCase) ListAnswerComments(ctx context.Context, questionID, answerID string) ([]*entity.ForumComment, error) {
	return uc.forumRepo.ListAnswerComments(ctx, questionID, answerID)
}

func (uc *ForumUseCase) DeleteQuestion(ctx context.Context, actorID, questionID string) error {
	question, err := uc.forumRepo.GetQuestion(ctx, questionID)
	if err != nil {
		return err
	}

	if question.User.ID != actorID {
		actor, err := uc.userRepo.GetByID(ctx, actorID)
		if err != nil || !actor.IsAdmin {
			return errors.Forbidden("Only the author or an admin can delete this question", nil)
		}
	}

	return uc.forumRepo.DeleteQuestion(ctx, questionID)
}

func (uc *ForumUseCase) SubscribeQuestions(ctx context.Context, onUpdate func([]*entity.ForumQuestion)) (repository.Subscription, error) {
	return uc.forumRepo.SubscribeQuestions(ctx, onUpdate)
}

func (uc *ForumUseCase) notify(ctx context.Context, notification *entity.Notification) {
	notification.FromName = uc.resolver.Resolve(ctx, notification.FromUserID).Name

	if err := uc.notificationRepo.Create(ctx, notification); err != nil {
		logger.Warn("Dropping %s notification for %s: %v",
			notification.Type, notification.RecipientID, err)
	}
}
