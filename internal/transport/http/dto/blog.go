package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateBlogPostRequest struct {
	Slug        string   `json:"slug,omitempty" validate:"omitempty,max=160"`
	Title       string   `json:"title" validate:"required,min=2,max=160"`
	Excerpt     string   `json:"excerpt,omitempty" validate:"omitempty,max=500"`
	FullContent string   `json:"full_content" validate:"required"`
	Quote       string   `json:"quote,omitempty"`
	QuoteAuthor string   `json:"quote_author,omitempty" validate:"omitempty,max=120"`
	Category    string   `json:"category,omitempty" validate:"omitempty,max=60"`
	Date        string   `json:"date,omitempty" validate:"omitempty,max=40"`
	Author      string   `json:"author,omitempty" validate:"omitempty,max=120"`
	ImageURL    string   `json:"image_url,omitempty" validate:"omitempty,uri"`
	ReadTime    string   `json:"read_time,omitempty" validate:"omitempty,max=20"`
	Tags        []string `json:"tags,omitempty"`
}

type UpdateBlogPostRequest struct {
	Slug        *string  `json:"slug,omitempty" validate:"omitempty,max=160"`
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=2,max=160"`
	Excerpt     *string  `json:"excerpt,omitempty" validate:"omitempty,max=500"`
	FullContent *string  `json:"full_content,omitempty"`
	Quote       *string  `json:"quote,omitempty"`
	QuoteAuthor *string  `json:"quote_author,omitempty" validate:"omitempty,max=120"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,max=60"`
	Date        *string  `json:"date,omitempty" validate:"omitempty,max=40"`
	Author      *string  `json:"author,omitempty" validate:"omitempty,max=120"`
	ImageURL    *string  `json:"image_url,omitempty" validate:"omitempty,uri"`
	ReadTime    *string  `json:"read_time,omitempty" validate:"omitempty,max=20"`
	Tags        []string `json:"tags,omitempty"`
}

type BlogPostResponse struct {
	ID          uuid.UUID `json:"id" swaggertype:"string" format:"uuid"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt,omitempty"`
	FullContent string    `json:"full_content"`
	Quote       string    `json:"quote,omitempty"`
	QuoteAuthor string    `json:"quote_author,omitempty"`
	Category    string    `json:"category,omitempty"`
	Date        string    `json:"date,omitempty"`
	Author      string    `json:"author,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	ReadTime    string    `json:"read_time,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
