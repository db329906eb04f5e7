package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"foreign/internal/domain/entity"
	"foreign/internal/domain/repository"
	"foreign/pkg/errors"
)

// In-memory repositories used across the usecase tests. Each mirrors the
// Firestore implementation's observable behavior: NotFound errors, map-key
// like writes, array union/remove semantics, independent counter writes.

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(ctx context.Context, orderBy string, descending bool) ([]*entity.User, error) {
	var users []*entity.User
	for _, u := range r.users {
		copied := *u
		users = append(users, &copied)
	}
	sort.Slice(users, func(i, j int) bool {
		if descending {
			return users[i].Name > users[j].Name
		}
		return users[i].Name < users[j].Name
	})
	return users, nil
}

func (r *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) field(user *entity.User, field string) *[]string {
	switch field {
	case "friends":
		return &user.Friends
	case "pendingRequests":
		return &user.PendingRequests
	default:
		return &user.FriendRequests
	}
}

func (r *fakeUserRepo) ArrayUnion(ctx context.Context, id, field, value string) error {
	user, ok := r.users[id]
	if !ok {
		return errors.NotFound("User", nil)
	}
	arr := r.field(user, field)
	for _, v := range *arr {
		if v == value {
			return nil
		}
	}
	*arr = append(*arr, value)
	return nil
}

func (r *fakeUserRepo) ArrayRemove(ctx context.Context, id, field, value string) error {
	user, ok := r.users[id]
	if !ok {
		return errors.NotFound("User", nil)
	}
	arr := r.field(user, field)
	out := (*arr)[:0]
	for _, v := range *arr {
		if v != value {
			out = append(out, v)
		}
	}
	*arr = out
	return nil
}

type fakePostRepo struct {
	posts    []*entity.Post
	comments map[string][]*entity.Comment
}

func newFakePostRepo(posts ...*entity.Post) *fakePostRepo {
	repo := &fakePostRepo{comments: map[string][]*entity.Comment{}}
	for _, p := range posts {
		if p.Likes == nil {
			p.Likes = map[string]bool{}
		}
		repo.posts = append(repo.posts, p)
	}
	return repo
}

func (r *fakePostRepo) Create(ctx context.Context, post *entity.Post) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	if post.Likes == nil {
		post.Likes = map[string]bool{}
	}
	post.CreatedAt = time.Now()
	r.posts = append(r.posts, post)
	return nil
}

func (r *fakePostRepo) find(id string) *entity.Post {
	for _, p := range r.posts {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (r *fakePostRepo) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	post := r.find(id)
	if post == nil {
		return nil, errors.NotFound("Post", nil)
	}
	copied := *post
	copied.Likes = map[string]bool{}
	for k, v := range post.Likes {
		copied.Likes[k] = v
	}
	return &copied, nil
}

// List returns posts in insertion order; descending reverses. Tests rely on
// this order to assert that filtering never reorders.
func (r *fakePostRepo) List(ctx context.Context, orderBy string, descending bool) ([]*entity.Post, error) {
	out := make([]*entity.Post, 0, len(r.posts))
	for _, p := range r.posts {
		copied := *p
		out = append(out, &copied)
	}
	if descending {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out, nil
}

func (r *fakePostRepo) Delete(ctx context.Context, id string) error {
	for i, p := range r.posts {
		if p.ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakePostRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.posts)), nil
}

func (r *fakePostRepo) SetLike(ctx context.Context, postID, userID string, liked bool) error {
	post := r.find(postID)
	if post == nil {
		return errors.NotFound("Post", nil)
	}
	if liked {
		post.Likes[userID] = true
	} else {
		delete(post.Likes, userID)
	}
	return nil
}

func (r *fakePostRepo) AddComment(ctx context.Context, postID string, comment *entity.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	comment.CreatedAt = time.Now()
	copied := *comment
	r.comments[postID] = append(r.comments[postID], &copied)
	return nil
}

func (r *fakePostRepo) ListComments(ctx context.Context, postID string) ([]*entity.Comment, error) {
	return r.comments[postID], nil
}

func (r *fakePostRepo) DeleteComment(ctx context.Context, postID, commentID string) error {
	comments := r.comments[postID]
	for i, c := range comments {
		if c.ID == commentID {
			r.comments[postID] = append(comments[:i], comments[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeNotificationRepo struct {
	notifications []*entity.Notification
	failCreate    bool
}

func (r *fakeNotificationRepo) Create(ctx context.Context, notification *entity.Notification) error {
	if r.failCreate {
		return errors.Internal("Failed to create notification", nil)
	}
	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}
	notification.CreatedAt = time.Now()
	r.notifications = append(r.notifications, notification)
	return nil
}

func (r *fakeNotificationRepo) ListByRecipient(ctx context.Context, recipientID string) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range r.notifications {
		if n.RecipientID == recipientID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, id string) error {
	for _, n := range r.notifications {
		if n.ID == id {
			n.Read = true
			return nil
		}
	}
	return errors.NotFound("Notification", nil)
}

func (r *fakeNotificationRepo) Delete(ctx context.Context, id string) error {
	for i, n := range r.notifications {
		if n.ID == id {
			r.notifications = append(r.notifications[:i], r.notifications[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeForumRepo struct {
	questions     map[string]*entity.ForumQuestion
	answers       map[string][]*entity.ForumAnswer
	comments      map[string][]*entity.ForumComment
	failIncrement bool
}

func newFakeForumRepo() *fakeForumRepo {
	return &fakeForumRepo{
		questions: map[string]*entity.ForumQuestion{},
		answers:   map[string][]*entity.ForumAnswer{},
		comments:  map[string][]*entity.ForumComment{},
	}
}

func (r *fakeForumRepo) CreateQuestion(ctx context.Context, question *entity.ForumQuestion) error {
	if question.ID == "" {
		question.ID = uuid.New().String()
	}
	question.Timestamp = time.Now()
	r.questions[question.ID] = question
	return nil
}

func (r *fakeForumRepo) GetQuestion(ctx context.Context, id string) (*entity.ForumQuestion, error) {
	question, ok := r.questions[id]
	if !ok {
		return nil, errors.NotFound("Question", nil)
	}
	copied := *question
	return &copied, nil
}

func (r *fakeForumRepo) ListQuestions(ctx context.Context, orderBy string, descending bool) ([]*entity.ForumQuestion, error) {
	var out []*entity.ForumQuestion
	for _, q := range r.questions {
		copied := *q
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		if descending {
			return out[i].Timestamp.After(out[j].Timestamp)
		}
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}

func (r *fakeForumRepo) DeleteQuestion(ctx context.Context, id string) error {
	delete(r.questions, id)
	return nil
}

func (r *fakeForumRepo) CountQuestions(ctx context.Context) (int64, error) {
	return int64(len(r.questions)), nil
}

func (r *fakeForumRepo) CreateAnswer(ctx context.Context, questionID string, answer *entity.ForumAnswer) error {
	if answer.ID == "" {
		answer.ID = uuid.New().String()
	}
	answer.Timestamp = time.Now()
	r.answers[questionID] = append(r.answers[questionID], answer)
	return nil
}

func (r *fakeForumRepo) ListAnswers(ctx context.Context, questionID string) ([]*entity.ForumAnswer, error) {
	return r.answers[questionID], nil
}

func (r *fakeForumRepo) IncrementAnswerCount(ctx context.Context, questionID string, delta int) error {
	if r.failIncrement {
		return errors.Internal("Failed to update answer count", nil)
	}
	question, ok := r.questions[questionID]
	if !ok {
		return errors.NotFound("Question", nil)
	}
	question.AnswerCount += delta
	return nil
}

func (r *fakeForumRepo) LikeAnswer(ctx context.Context, questionID, answerID string, delta int) error {
	for _, a := range r.answers[questionID] {
		if a.ID == answerID {
			a.Likes += delta
			return nil
		}
	}
	return errors.NotFound("Answer", nil)
}

func (r *fakeForumRepo) CreateAnswerComment(ctx context.Context, questionID, answerID string, comment *entity.ForumComment) error {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	comment.Timestamp = time.Now()
	r.comments[questionID+"/"+answerID] = append(r.comments[questionID+"/"+answerID], comment)
	return nil
}

func (r *fakeForumRepo) ListAnswerComments(ctx context.Context, questionID, answerID string) ([]*entity.ForumComment, error) {
	return r.comments[questionID+"/"+answerID], nil
}

func (r *fakeForumRepo) IncrementCommentCount(ctx context.Context, questionID, answerID string, delta int) error {
	if r.failIncrement {
		return errors.Internal("Failed to update comment count", nil)
	}
	for _, a := range r.answers[questionID] {
		if a.ID == answerID {
			a.CommentCount += delta
			return nil
		}
	}
	return errors.NotFound("Answer", nil)
}

func (r *fakeForumRepo) SubscribeQuestions(ctx context.Context, onUpdate func([]*entity.ForumQuestion)) (repository.Subscription, error) {
	questions, _ := r.ListQuestions(ctx, "timestamp", true)
	onUpdate(questions)
	return noopSubscription{}, nil
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

type fakeLocationRepo struct {
	locations []*entity.Location
}

func (r *fakeLocationRepo) Create(ctx context.Context, location *entity.Location) error {
	if location.ID == "" {
		location.ID = uuid.New().String()
	}
	if location.Ratings == nil {
		location.Ratings = map[string]float64{}
	}
	location.CreatedAt = time.Now()
	r.locations = append(r.locations, location)
	return nil
}

func (r *fakeLocationRepo) find(id string) *entity.Location {
	for _, l := range r.locations {
		if l.ID == id {
			return l
		}
	}
	return nil
}

func (r *fakeLocationRepo) GetByID(ctx context.Context, id string) (*entity.Location, error) {
	location := r.find(id)
	if location == nil {
		return nil, errors.NotFound("Location", nil)
	}
	copied := *location
	return &copied, nil
}

func (r *fakeLocationRepo) List(ctx context.Context, orderBy string, descending bool) ([]*entity.Location, error) {
	out := make([]*entity.Location, 0, len(r.locations))
	for _, l := range r.locations {
		copied := *l
		out = append(out, &copied)
	}
	if descending {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out, nil
}

func (r *fakeLocationRepo) Delete(ctx context.Context, id string) error {
	for i, l := range r.locations {
		if l.ID == id {
			r.locations = append(r.locations[:i], r.locations[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeLocationRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.locations)), nil
}

func (r *fakeLocationRepo) Rate(ctx context.Context, locationID, userID string, value float64) error {
	location := r.find(locationID)
	if location == nil {
		return errors.NotFound("Location", nil)
	}
	location.Ratings[userID] = value
	return nil
}
