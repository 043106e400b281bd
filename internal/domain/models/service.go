package models

import (
	"time"

	"github.com/google/uuid"
)

// Service is one design offering shown on the services page.
type Service struct {
	ID               uuid.UUID      `db:"id" json:"id"`
	Title            string         `db:"title" json:"title"`
	ShortDescription string         `db:"short_description" json:"short_description"`
	LongDescription  string         `db:"long_description" json:"long_description"`
	Features         FeatureList    `db:"features" json:"features"`
	ImageURL         string         `db:"image_url" json:"image_url"`
	Details          ServiceDetails `db:"details" json:"details"`
	CreatedAt        time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at" json:"updated_at"`
}
