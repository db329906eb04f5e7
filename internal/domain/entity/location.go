package entity

import "time"

type Coordinates struct {
	Lat float64 `json:"lat" firestore:"lat"`
	Lng float64 `json:"lng" firestore:"lng"`
}

// Location is a user-contributed point on the campus map. Visibility is
// restricted at read time to locations created by the viewer or the viewer's
// friends.
type Location struct {
	ID          string      `json:"id" firestore:"id"`
	Title       string      `json:"title" firestore:"title"`
	Description string      `json:"description" firestore:"description"`
	Coordinates Coordinates `json:"coordinates" firestore:"coordinates"`
	Types       []string    `json:"types" firestore:"types"`
	ImageURLs   []string    `json:"image_urls,omitempty" firestore:"imageUrls,omitempty"`
	CreatedBy   string      `json:"created_by" firestore:"createdBy"`

	// Ratings is keyed by rater user id, same mechanic as post likes. The
	// average is computed at read time.
	Ratings map[string]float64 `json:"ratings" firestore:"ratings"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`

	Author *Author `json:"author,omitempty" firestore:"-"`
}

func (l *Location) AverageRating() float64 {
	if len(l.Ratings) == 0 {
		return 0
	}
	var sum float64
	for _, r := range l.Ratings {
		sum += r
	}
	return sum / float64(len(l.Ratings))
}
