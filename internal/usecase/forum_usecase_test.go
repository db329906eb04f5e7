package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foreign/internal/domain/entity"
)

func forumFixture() (*ForumUseCase, *fakeForumRepo, *fakeUserRepo, *fakeNotificationRepo) {
	userRepo := newFakeUserRepo(
		&entity.User{ID: "asker", Name: "Alma"},
		&entity.User{ID: "helper", Name: "Hugo"},
	)
	forumRepo := newFakeForumRepo()
	notificationRepo := &fakeNotificationRepo{}
	uc := NewForumUseCase(forumRepo, userRepo, notificationRepo, NewAuthorResolver(userRepo))
	return uc, forumRepo, userRepo, notificationRepo
}

func TestCreateQuestionEmbedsSnapshot(t *testing.T) {
	uc, _, _, _ := forumFixture()

	question, err := uc.CreateQuestion(context.Background(), "asker", "Where is the registrar?")
	require.NoError(t, err)
	assert.NotEmpty(t, question.ID)
	assert.Equal(t, "Alma", question.User.Name)
	assert.Equal(t, 0, question.AnswerCount)
}

func TestAddAnswerIncrementsCount(t *testing.T) {
	uc, forumRepo, _, notificationRepo := forumFixture()
	ctx := context.Background()

	question, err := uc.CreateQuestion(ctx, "asker", "Where is the registrar?")
	require.NoError(t, err)

	answer, err := uc.AddAnswer(ctx, "helper", question.ID, "Building B, second floor")
	require.NoError(t, err)
	assert.Equal(t, "Hugo", answer.User.Name)

	stored, err := forumRepo.GetQuestion(ctx, question.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.AnswerCount)

	require.Len(t, notificationRepo.notifications, 1)
	assert.Equal(t, "asker", notificationRepo.notifications[0].RecipientID)
	assert.Equal(t, entity.NotificationTypeAnswer, notificationRepo.notifications[0].Type)
}

func TestAddAnswerSurvivesIncrementFailure(t *testing.T) {
	uc, forumRepo, _, _ := forumFixture()
	ctx := context.Background()

	question, err := uc.CreateQuestion(ctx, "asker", "Where is the registrar?")
	require.NoError(t, err)

	forumRepo.failIncrement = true

	// The counter write fails after the answer write. The call still
	// succeeds and the answer is persisted; the count is simply stale.
	answer, err := uc.AddAnswer(ctx, "helper", question.ID, "Building B")
	require.NoError(t, err)
	assert.NotEmpty(t, answer.ID)

	answers, err := forumRepo.ListAnswers(ctx, question.ID)
	require.NoError(t, err)
	require.Len(t, answers, 1)

	stored, err := forumRepo.GetQuestion(ctx, question.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.AnswerCount)
}

func TestAnswerOwnQuestionIsSilent(t *testing.T) {
	uc, _, _, notificationRepo := forumFixture()
	ctx := context.Background()

	question, err := uc.CreateQuestion(ctx, "asker", "Anyone else lost?")
	require.NoError(t, err)

	_, err = uc.AddAnswer(ctx, "asker", question.ID, "Never mind, found it")
	require.NoError(t, err)
	assert.Empty(t, notificationRepo.notifications)
}

func TestListQuestionsTitleSearch(t *testing.T) {
	uc, _, _, _ := forumFixture()
	ctx := context.Background()

	_, err := uc.CreateQuestion(ctx, "asker", "Visa paperwork deadline?")
	require.NoError(t, err)
	_, err = uc.CreateQuestion(ctx, "helper", "Best cafeteria on campus")
	require.NoError(t, err)

	questions, err := uc.ListQuestions(ctx, "", false, "VISA")
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "Visa paperwork deadline?", questions[0].Title)

	questions, err = uc.ListQuestions(ctx, "", false, "")
	require.NoError(t, err)
	assert.Len(t, questions, 2)
}

func TestAddAnswerCommentIncrementsCount(t *testing.T) {
	uc, forumRepo, _, _ := forumFixture()
	ctx := context.Background()

	question, err := uc.CreateQuestion(ctx, "asker", "Where is the registrar?")
	require.NoError(t, err)
	answer, err := uc.AddAnswer(ctx, "helper", question.ID, "Building B")
	require.NoError(t, err)

	comment, err := uc.AddAnswerComment(ctx, "asker", question.ID, answer.ID, "thanks!")
	require.NoError(t, err)
	assert.Equal(t, "Alma", comment.User.Name)

	answers, err := forumRepo.ListAnswers(ctx, question.ID)
	require.NoError(t, err)
	require.Len(t, answers, 1)
	assert.Equal(t, 1, answers[0].CommentCount)
}

func TestLikeAnswer(t *testing.T) {
	uc, forumRepo, _, _ := forumFixture()
	ctx := context.Background()

	question, err := uc.CreateQuestion(ctx, "asker", "Where is the registrar?")
	require.NoError(t, err)
	answer, err := uc.AddAnswer(ctx, "helper", question.ID, "Building B")
	require.NoError(t, err)

	require.NoError(t, uc.LikeAnswer(ctx, question.ID, answer.ID))
	require.NoError(t, uc.LikeAnswer(ctx, question.ID, answer.ID))

	answers, err := forumRepo.ListAnswers(ctx, question.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, answers[0].Likes)
}

func TestDeleteQuestionOwnerOrAdmin(t *testing.T) {
	uc, _, userRepo, _ := forumFixture()
	ctx := context.Background()

	question, err := uc.CreateQuestion(ctx, "asker", "Where is the registrar?")
	require.NoError(t, err)

	err = uc.DeleteQuestion(ctx, "helper", question.ID)
	require.Error(t, err)

	require.NoError(t, userRepo.Create(ctx, &entity.User{ID: "admin", IsAdmin: true}))
	require.NoError(t, uc.DeleteQuestion(ctx, "admin", question.ID))

	_, err = uc.GetQuestion(ctx, question.ID)
	require.Error(t, err)
}

func TestSubscribeQuestionsDeliversAndReleases(t *testing.T) {
	uc, _, _, _ := forumFixture()
	ctx := context.Background()

	_, err := uc.CreateQuestion(ctx, "asker", "Where is the registrar?")
	require.NoError(t, err)

	var delivered []*entity.ForumQuestion
	sub, err := uc.SubscribeQuestions(ctx, func(questions []*entity.ForumQuestion) {
		delivered = questions
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	require.Len(t, delivered, 1)
}
