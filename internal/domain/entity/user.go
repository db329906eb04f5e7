package entity

import (
	"time"
)

// Placeholder values used whenever an author reference cannot be resolved,
// e.g. the profile was deleted after the content was written.
const (
	UnknownUserName  = "Usuario sin nombre"
	DefaultAvatarURL = "https://storage.googleapis.com/foreign-app/public/avatars/default.png"
)

type User struct {
	ID         string   `json:"id" firestore:"id"`
	Email      string   `json:"email" firestore:"email"`
	Name       string   `json:"name" firestore:"name"`
	University string   `json:"university,omitempty" firestore:"university,omitempty"`
	Origin     string   `json:"origin,omitempty" firestore:"origin,omitempty"`
	Photo      string   `json:"photo,omitempty" firestore:"photo,omitempty"`
	Interests  []string `json:"interests" firestore:"interests"`

	// Friend graph. Friends holds confirmed friend ids; PendingRequests holds
	// ids this user has sent a request to; FriendRequests holds ids that have
	// sent a request to this user. The three arrays are mirrored pairwise
	// across documents by the friend lifecycle writes.
	Friends         []string `json:"friends" firestore:"friends"`
	PendingRequests []string `json:"pending_requests" firestore:"pendingRequests"`
	FriendRequests  []string `json:"friend_requests" firestore:"friendRequests"`

	IsAdmin  bool     `json:"is_admin" firestore:"isAdmin"`
	IsMentor bool     `json:"is_mentor" firestore:"isMentor"`
	Areas    []string `json:"areas,omitempty" firestore:"areas,omitempty"`

	NotificationsEnabled bool `json:"notifications_enabled" firestore:"notificationsEnabled"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// Author is the read-time projection attached to content items by the
// aggregation pipeline. It is never persisted.
type Author struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Photo      string `json:"photo"`
	University string `json:"university,omitempty"`
}

// AuthorSnapshot is the write-time author copy embedded in comments and forum
// documents. It is frozen at creation and never refreshed.
type AuthorSnapshot struct {
	ID    string `json:"id" firestore:"id"`
	Name  string `json:"name" firestore:"name"`
	Image string `json:"image" firestore:"image"`
}

// PlaceholderAuthor returns the projection used when a profile lookup fails.
func PlaceholderAuthor(userID string) Author {
	return Author{
		ID:    userID,
		Name:  UnknownUserName,
		Photo: DefaultAvatarURL,
	}
}

func (u *User) AuthorProjection() Author {
	return Author{
		ID:         u.ID,
		Name:       u.Name,
		Photo:      u.Photo,
		University: u.University,
	}
}

func (u *User) Snapshot() AuthorSnapshot {
	return AuthorSnapshot{
		ID:    u.ID,
		Name:  u.Name,
		Image: u.Photo,
	}
}

func (u *User) IsFriendOf(userID string) bool {
	for _, id := range u.Friends {
		if id == userID {
			return true
		}
	}
	return false
}
