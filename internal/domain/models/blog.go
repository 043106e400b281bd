package models

import (
	"time"

	"github.com/google/uuid"
)

// BlogPost is a journal entry. The slug is the public lookup key and
// is unique across all posts.
type BlogPost struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	Slug        string     `db:"slug" json:"slug"`
	Title       string     `db:"title" json:"title"`
	Excerpt     string     `db:"excerpt" json:"excerpt,omitempty"`
	FullContent string     `db:"full_content" json:"full_content"`
	Quote       string     `db:"quote" json:"quote,omitempty"`
	QuoteAuthor string     `db:"quote_author" json:"quote_author,omitempty"`
	Category    string     `db:"category" json:"category"`
	Date        string     `db:"date" json:"date"`
	Author      string     `db:"author" json:"author"`
	ImageURL    string     `db:"image_url" json:"image_url"`
	ReadTime    string     `db:"read_time" json:"read_time"`
	Tags        StringList `db:"tags" json:"tags"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}
