package repository

import (
	"context"

	"foreign/internal/domain/entity"
)

type ForumRepository interface {
	CreateQuestion(ctx context.Context, question *entity.ForumQuestion) error
	GetQuestion(ctx context.Context, id string) (*entity.ForumQuestion, error)
	ListQuestions(ctx context.Context, orderBy string, descending bool) ([]*entity.ForumQuestion, error)
	DeleteQuestion(ctx context.Context, id string) error
	CountQuestions(ctx context.Context) (int64, error)

	CreateAnswer(ctx context.Context, questionID string, answer *entity.ForumAnswer) error
	ListAnswers(ctx context.Context, questionID string) ([]*entity.ForumAnswer, error)
	// IncrementAnswerCount is issued as a separate write after CreateAnswer;
	// a crash in between leaves the counter understated.
	IncrementAnswerCount(ctx context.Context, questionID string, delta int) error
	LikeAnswer(ctx context.Context, questionID, answerID string, delta int) error

	CreateAnswerComment(ctx context.Context, questionID, answerID string, comment *entity.ForumComment) error
	ListAnswerComments(ctx context.Context, questionID, answerID string) ([]*entity.ForumComment, error)
	IncrementCommentCount(ctx context.Context, questionID, answerID string, delta int) error

	// SubscribeQuestions delivers the full ordered question list on every
	// change until the returned subscription is released.
	SubscribeQuestions(ctx context.Context, onUpdate func([]*entity.ForumQuestion)) (Subscription, error)
}
