package model

import "time"

// Event types recognized by the trending engine. Anything else is
// weighted like a view.
const (
	EventView  = "view"
	EventClick = "click"
	EventShare = "share"
)

// UserEvent is a single recorded interaction between a user and an article.
// Events are immutable once written.
type UserEvent struct {
	ID        string    `bson:"_id" json:"id"`
	ArticleID string    `bson:"article_id" json:"article_id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	EventType string    `bson:"event_type" json:"event_type"`
	Latitude  float64   `bson:"latitude" json:"latitude"`
	Longitude float64   `bson:"longitude" json:"longitude"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// EventWeight maps an event type to its engagement weight.
func EventWeight(eventType string) float64 {
	switch eventType {
	case EventClick:
		return 2
	case EventShare:
		return 3
	default:
		return 1
	}
}
