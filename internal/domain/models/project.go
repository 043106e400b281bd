package models

import (
	"time"

	"github.com/google/uuid"
)

// Project is a single portfolio entry. FullDescription carries the
// ordered paragraphs of the vision text, Palette the color tokens and
// Gallery the ordered image references; all three live in JSONB columns.
type Project struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	Title           string     `db:"title" json:"title"`
	Caption         string     `db:"caption" json:"caption"`
	ImageURL        string     `db:"image_url" json:"image_url"`
	Category        string     `db:"category" json:"category"`
	Location        string     `db:"location" json:"location"`
	Year            int        `db:"year" json:"year"`
	IsFeatured      bool       `db:"is_featured" json:"is_featured"`
	VisionTitle     string     `db:"vision_title" json:"vision_title"`
	FullDescription StringList `db:"full_description" json:"full_description"`
	Palette         StringList `db:"palette" json:"palette"`
	Gallery         StringList `db:"gallery" json:"gallery"`
	WalkthroughURL  *string    `db:"walkthrough_url" json:"walkthrough_url,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}
