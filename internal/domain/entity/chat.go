package entity

import "time"

// MentorChat pairs a student with a mentor. Messages live in a subcollection.
type MentorChat struct {
	ID            string    `json:"id" firestore:"id"`
	Participants  []string  `json:"participants" firestore:"participants"`
	MentorID      string    `json:"mentor_id" firestore:"mentorId"`
	StudentID     string    `json:"student_id" firestore:"studentId"`
	LastMessage   string    `json:"last_message,omitempty" firestore:"lastMessage,omitempty"`
	LastMessageAt time.Time `json:"last_message_at" firestore:"lastMessageAt"`
	CreatedAt     time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt     time.Time `json:"updated_at" firestore:"updatedAt"`
}

type ChatMessage struct {
	ID        string         `json:"id" firestore:"id"`
	ChatID    string         `json:"chat_id" firestore:"chatId"`
	SenderID  string         `json:"sender_id" firestore:"senderId"`
	Content   string         `json:"content" firestore:"content"`
	User      AuthorSnapshot `json:"user" firestore:"user"`
	CreatedAt time.Time      `json:"created_at" firestore:"createdAt"`
}

func (c *MentorChat) HasParticipant(userID string) bool {
	for _, p := range c.Participants {
		if p == userID {
			return true
		}
	}
	return false
}
