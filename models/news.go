package models

import "time"

// News is an article shown on the marketing pages. CoverImageID is the
// storage public ID of an uploaded cover image, if any.
type News struct {
	ID           string    `bson:"id" json:"id"`
	Title        string    `bson:"title" json:"title"`
	Summary      string    `bson:"summary" json:"summary"`
	Content      string    `bson:"content" json:"content"`
	CoverImageID string    `bson:"coverImageId,omitempty" json:"coverImageId,omitempty"`
	CoverURL     string    `bson:"-" json:"coverUrl,omitempty"`
	AuthorID     string    `bson:"authorId" json:"authorId"`
	PublishedAt  time.Time `bson:"publishedAt" json:"publishedAt"`
}
