package entity

import "time"

// ForumQuestion is a top-level discussion thread. AnswerCount is maintained
// by an increment issued alongside each answer write, not derived at read
// time, so it can undercount after a crash between the two writes.
type ForumQuestion struct {
	ID          string         `json:"id" firestore:"id"`
	Title       string         `json:"title" firestore:"title"`
	User        AuthorSnapshot `json:"user" firestore:"user"`
	AnswerCount int            `json:"answer_count" firestore:"answerCount"`
	Timestamp   time.Time      `json:"timestamp" firestore:"timestamp"`
}

// ForumAnswer lives in a subcollection under its question.
type ForumAnswer struct {
	ID           string         `json:"id" firestore:"id"`
	Content      string         `json:"content" firestore:"content"`
	User         AuthorSnapshot `json:"user" firestore:"user"`
	Likes        int            `json:"likes" firestore:"likes"`
	CommentCount int            `json:"comment_count" firestore:"commentCount"`
	Timestamp    time.Time      `json:"timestamp" firestore:"timestamp"`
}

// ForumComment lives in a subcollection under its answer.
type ForumComment struct {
	ID        string         `json:"id" firestore:"id"`
	Content   string         `json:"content" firestore:"content"`
	User      AuthorSnapshot `json:"user" firestore:"user"`
	Likes     int            `json:"likes" firestore:"likes"`
	Timestamp time.Time      `json:"timestamp" firestore:"timestamp"`
}
