package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateProjectRequest struct {
	Title           string   `json:"title" validate:"required,min=2,max=120"`
	Caption         string   `json:"caption,omitempty" validate:"omitempty,max=255"`
	ImageURL        string   `json:"image_url,omitempty" validate:"omitempty,uri"`
	Category        string   `json:"category,omitempty" validate:"omitempty,max=60"`
	Location        string   `json:"location,omitempty" validate:"omitempty,max=120"`
	Year            int      `json:"year,omitempty" validate:"omitempty,gte=1900,lte=2100"`
	IsFeatured      bool     `json:"is_featured,omitempty"`
	VisionTitle     string   `json:"vision_title,omitempty" validate:"omitempty,max=120"`
	FullDescription []string `json:"full_description,omitempty" validate:"omitempty,min=1,dive,required"`
	Palette         []string `json:"palette,omitempty"`
	Gallery         []string `json:"gallery,omitempty"`
	WalkthroughURL  *string  `json:"walkthrough_url,omitempty" validate:"omitempty,uri"`
}

type UpdateProjectRequest struct {
	Title           *string   `json:"title,omitempty" validate:"omitempty,min=2,max=120"`
	Caption         *string   `json:"caption,omitempty" validate:"omitempty,max=255"`
	ImageURL        *string   `json:"image_url,omitempty" validate:"omitempty,uri"`
	Category        *string   `json:"category,omitempty" validate:"omitempty,max=60"`
	Location        *string   `json:"location,omitempty" validate:"omitempty,max=120"`
	Year            *int      `json:"year,omitempty" validate:"omitempty,gte=1900,lte=2100"`
	IsFeatured      *bool     `json:"is_featured,omitempty"`
	VisionTitle     *string   `json:"vision_title,omitempty" validate:"omitempty,max=120"`
	FullDescription []string  `json:"full_description,omitempty" validate:"omitempty,min=1,dive,required"`
	Palette         []string  `json:"palette,omitempty"`
	Gallery         []string  `json:"gallery,omitempty"`
	WalkthroughURL  *string   `json:"walkthrough_url,omitempty" validate:"omitempty,uri"`
}

type ProjectResponse struct {
	ID              uuid.UUID `json:"id" swaggertype:"string" format:"uuid"`
	Title           string    `json:"title"`
	Caption         string    `json:"caption,omitempty"`
	ImageURL        string    `json:"image_url,omitempty"`
	Category        string    `json:"category,omitempty"`
	Location        string    `json:"location,omitempty"`
	Year            int       `json:"year,omitempty"`
	IsFeatured      bool      `json:"is_featured"`
	VisionTitle     string    `json:"vision_title,omitempty"`
	FullDescription []string  `json:"full_description,omitempty"`
	Palette         []string  `json:"palette,omitempty"`
	Gallery         []string  `json:"gallery,omitempty"`
	WalkthroughURL  *string   `json:"walkthrough_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
