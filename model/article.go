package model

import "time"

// Article represents a news article stored in MongoDB.
// The id is the upsert key: re-ingesting the same id replaces every other field.
type Article struct {
	ID              string    `bson:"_id" json:"id"`
	Title           string    `bson:"title" json:"title"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	URL             string    `bson:"url,omitempty" json:"url,omitempty"`
	PublicationDate time.Time `bson:"publication_date,omitempty" json:"publication_date,omitempty"`
	SourceName      string    `bson:"source_name,omitempty" json:"source_name,omitempty"`
	Category        []string  `bson:"category,omitempty" json:"category,omitempty"`
	RelevanceScore  float64   `bson:"relevance_score,omitempty" json:"relevance_score,omitempty"`
	Latitude        *float64  `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude       *float64  `bson:"longitude,omitempty" json:"longitude,omitempty"`
}

// HasCoordinates reports whether the article carries a usable lat/lon pair.
// Latitude and longitude are only valid together.
func (a Article) HasCoordinates() bool {
	return a.Latitude != nil && a.Longitude != nil
}
