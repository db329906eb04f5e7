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
	"foreign/internal/infrastructure/realtime"
	"foreign/pkg/errors"
	"foreign/pkg/logger"
)

type firestoreForumRepository struct {
	client *firestore.Client
}

func NewFirestoreForumRepository(client *firestore.Client) repository.ForumRepository {
	return &firestoreForumRepository{
		client: client,
	}
}

func (r *firestoreForumRepository) CreateQuestion(ctx context.Context, question *entity.ForumQuestion) error {
	if question.ID == "" {
		question.ID = uuid.New().String()
	}
	question.Timestamp = time.Now()

	_, err := r.client.Collection("forum_questions").Doc(question.ID).Set(ctx, question)
	if err != nil {
		return errors.Internal("Failed to create question", err)
	}
	return nil
}

func (r *firestoreForumRepository) GetQuestion(ctx context.Context, id string) (*entity.ForumQuestion, error) {
	doc, err := r.client.Collection("forum_questions").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Question", err)
		}
		return nil, errors.Internal("Failed to get question", err)
	}

	var question entity.ForumQuestion
	if err := doc.DataTo(&question); err != nil {
		return nil, errors.Internal("Failed to parse question data", err)
	}
	return &question, nil
}

func (r *firestoreForumRepository) ListQuestions(ctx context.Context, orderBy string, descending bool) ([]*entity.ForumQuestion, error) {
	dir := firestore.Asc
	if descending {
		dir = firestore.Desc
	}

	iter := r.client.Collection("forum_questions").OrderBy(orderBy, dir).Documents(ctx)
	var questions []*entity.ForumQuestion

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list questions", err)
		}

		var question entity.ForumQuestion
		if err := doc.DataTo(&question); err != nil {
			return nil, errors.Internal("Failed to parse question data", err)
		}
		questions = append(questions, &question)
	}

	return questions, nil
}

func (r *firestoreForumRepository) DeleteQuestion(ctx context.Context, id string) error {
	// Answers and their comments are left in place; nothing cascades.
	_, err := r.client.Collection("forum_questions").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete question", err)
	}
	return nil
}

func (r *firestoreForumRepository) CountQuestions(ctx context.Context) (int64, error) {
	docs, err := r.client.Collection("forum_questions").Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count questions", err)
	}
	return int64(len(docs)), nil
}

func (r *firestoreForumRepository) CreateAnswer(ctx context.Context, questionID string, answer *entity.ForumAnswer) error {
	if answer.ID == "" {
		answer.ID = uuid.New().String()
	}
	answer.Timestamp = time.Now()

	_, err := r.client.Collection("forum_questions").Doc(questionID).
		Collection("answers").Doc(answer.ID).Set(ctx, answer)
	if err != nil {
		return errors.Internal("Failed to create answer", err)
	}
	return nil
}

func (r *firestoreForumRepository) ListAnswers(ctx context.Context, questionID string) ([]*entity.ForumAnswer, error) {
	iter := r.client.Collection("forum_questions").Doc(questionID).
		Collection("answers").OrderBy("timestamp", firestore.Asc).Documents(ctx)

	var answers []*entity.ForumAnswer
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list answers", err)
		}

		var answer entity.ForumAnswer
		if err := doc.DataTo(&answer); err != nil {
			return nil, errors.Internal("Failed to parse answer data", err)
		}
		answers = append(answers, &answer)
	}

	return answers, nil
}

func (r *firestoreForumRepository) IncrementAnswerCount(ctx context.Context, questionID string, delta int) error {
	_, err := r.client.Collection("forum_questions").Doc(questionID).Update(ctx, []firestore.Update{
		{Path: "answerCount", Value: firestore.Increment(delta)},
	})
	if err != nil {
		return errors.Internal("Failed to update answer count", err)
	}
	return nil
}

func (r *firestoreForumRepository) LikeAnswer(ctx context.Context, questionID, answerID string, delta int) error {
	_, err := r.client.Collection("forum_questions").Doc(questionID).
		Collection("answers").Doc(answerID).Update(ctx, []firestore.Update{
		{Path: "likes", Value: firestore.Increment(delta)},
	})
	if err != nil {
		return errors.Internal("Failed to update answer likes", err)
	}
	return nil
}

func (r *firestoreForumRepository) CreateAnswerComment(ctx context.Context, questionID, answerID string, comment *entity.ForumComment) error {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	comment.Timestamp = time.Now()

	_, err := r.client.Collection("forum_questions").Doc(questionID).
		Collection("answers").Doc(answerID).
		Collection("comments").Doc(comment.ID).Set(ctx, comment)
	if err != nil {
		return errors.Internal("Failed to create comment", err)
	}
	return nil
}

func (r *firestoreForumRepository) ListAnswerComments(ctx context.Context, questionID, answerID string) ([]*entity.ForumComment, error) {
	iter := r.client.Collection("forum_questions").Doc(questionID).
		Collection("answers").Doc(answerID).
		Collection("comments").OrderBy("timestamp", firestore.Asc).Documents(ctx)

	var comments []*entity.ForumComment
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list comments", err)
		}

		var comment entity.ForumComment
		if err := doc.DataTo(&comment); err != nil {
			return nil, errors.Internal("Failed to parse comment data", err)
		}
		comments = append(comments, &comment)
	}

	return comments, nil
}

func (r *firestoreForumRepository) IncrementCommentCount(ctx context.Context, questionID, answerID string, delta int) error {
	_, err := r.client.Collection("forum_questions").Doc(questionID).
		Collection("answers").Doc(answerID).Update(ctx, []firestore.Update{
		{Path: "commentCount", Value: firestore.Increment(delta)},
	})
	if err != nil {
		return errors.Internal("Failed to update comment count", err)
	}
	return nil
}

func (r *firestoreForumRepository) SubscribeQuestions(ctx context.Context, onUpdate func([]*entity.ForumQuestion)) (repository.Subscription, error) {
	subCtx, cancel := context.WithCancel(ctx)

	snapshots := r.client.Collection("forum_questions").
		OrderBy("timestamp", firestore.Desc).Snapshots(subCtx)

	go func() {
		for {
			snap, err := snapshots.Next()
			if err != nil {
				if subCtx.Err() == nil {
					logger.Error("Forum question listener stopped: %v", err)
				}
				return
			}

			var questions []*entity.ForumQuestion
			for {
				doc, err := snap.Documents.Next()
				if err == iterator.Done {
					break
				}
				if err != nil {
					logger.Warn("Forum question snapshot read error: %v", err)
					break
				}

				var question entity.ForumQuestion
				if err := doc.DataTo(&question); err != nil {
					logger.Warn("Skipping unreadable question %s: %v", doc.Ref.ID, err)
					continue
				}
				questions = append(questions, &question)
			}
			onUpdate(questions)
		}
	}()

	return realtime.NewHandle(func() {
		cancel()
		snapshots.Stop()
	}), nil
}
