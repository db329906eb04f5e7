package entity

import "time"

// Post is a feed entry. Two write paths have historically produced two shapes
// for this collection: newer documents carry the denormalized userName and
// userPhoto written at creation, older ones do not. Readers must treat those
// fields as a hint only; the canonical author data is the Author projection
// attached at read time.
type Post struct {
	ID       string `json:"id" firestore:"id"`
	Image    string `json:"image" firestore:"image"`
	Caption  string `json:"caption" firestore:"caption"`
	UserID   string `json:"user_id" firestore:"userId"`
	UserName string `json:"user_name,omitempty" firestore:"userName,omitempty"`
	UserPhoto string `json:"user_photo,omitempty" firestore:"userPhoto,omitempty"`

	// Likes is keyed by liker user id. Each like touches its own map key so
	// concurrent likers never clobber each other.
	Likes map[string]bool `json:"likes" firestore:"likes"`

	Location  string    `json:"location,omitempty" firestore:"location,omitempty"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`

	// Attached at read time, never persisted.
	Author *Author `json:"author,omitempty" firestore:"-"`
}

func (p *Post) LikedBy(userID string) bool {
	return p.Likes[userID]
}

func (p *Post) LikeCount() int {
	return len(p.Likes)
}

// Comment lives in a subcollection under its post. The author snapshot is
// embedded at creation and deliberately kept stale afterwards.
type Comment struct {
	ID        string         `json:"id" firestore:"id"`
	Text      string         `json:"text" firestore:"text"`
	User      AuthorSnapshot `json:"user" firestore:"user"`
	CreatedAt time.Time      `json:"created_at" firestore:"createdAt"`
}
