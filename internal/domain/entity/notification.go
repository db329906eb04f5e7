package entity

import "time"

const (
	NotificationTypeLike          = "like"
	NotificationTypeComment       = "comment"
	NotificationTypeAnswer        = "answer"
	NotificationTypeFriendRequest = "friend_request"
	NotificationTypeFriendAccept  = "friend_accept"
	NotificationTypeChatMessage   = "chat_message"
)

// Notification is an append-only record keyed by recipient. Read is flipped
// by the recipient's client.
type Notification struct {
	ID          string    `json:"id" firestore:"id"`
	RecipientID string    `json:"recipient_id" firestore:"recipientId"`
	Type        string    `json:"type" firestore:"type"`
	FromUserID  string    `json:"from_user_id" firestore:"fromUserId"`
	FromName    string    `json:"from_name" firestore:"fromName"`
	TargetID    string    `json:"target_id,omitempty" firestore:"targetId,omitempty"`
	TargetType  string    `json:"target_type,omitempty" firestore:"targetType,omitempty"`
	Read        bool      `json:"read" firestore:"read"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
}
