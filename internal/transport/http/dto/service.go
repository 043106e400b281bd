package dto

import (
	"time"

	"github.com/google/uuid"
)

type FeaturePayload struct {
	Title  string `json:"title" validate:"required,max=120"`
	Detail string `json:"detail,omitempty" validate:"omitempty,max=500"`
}

type ServiceDetailsPayload struct {
	Included    []string `json:"included,omitempty"`
	Approach    string   `json:"approach,omitempty"`
	Materials   string   `json:"materials,omitempty"`
	Timeline    string   `json:"timeline,omitempty"`
	SuitableFor string   `json:"suitable_for,omitempty"`
}

type CreateServiceRequest struct {
	Title            string                 `json:"title" validate:"required,min=2,max=120"`
	ShortDescription string                 `json:"short_description,omitempty" validate:"omitempty,max=255"`
	LongDescription  string                 `json:"long_description,omitempty"`
	Features         []FeaturePayload       `json:"features,omitempty" validate:"omitempty,dive"`
	ImageURL         string                 `json:"image_url,omitempty" validate:"omitempty,uri"`
	Details          *ServiceDetailsPayload `json:"details,omitempty"`
}

type UpdateServiceRequest struct {
	Title            *string                `json:"title,omitempty" validate:"omitempty,min=2,max=120"`
	ShortDescription *string                `json:"short_description,omitempty" validate:"omitempty,max=255"`
	LongDescription  *string                `json:"long_description,omitempty"`
	Features         []FeaturePayload       `json:"features,omitempty" validate:"omitempty,dive"`
	ImageURL         *string                `json:"image_url,omitempty" validate:"omitempty,uri"`
	Details          *ServiceDetailsPayload `json:"details,omitempty"`
}

type ServiceResponse struct {
	ID               uuid.UUID             `json:"id" swaggertype:"string" format:"uuid"`
	Title            string                `json:"title"`
	ShortDescription string                `json:"short_description,omitempty"`
	LongDescription  string                `json:"long_description,omitempty"`
	Features         []FeaturePayload      `json:"features,omitempty"`
	ImageURL         string                `json:"image_url,omitempty"`
	Details          ServiceDetailsPayload `json:"details"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}
