package domain

import (
	"time"

	"github.com/google/uuid"
)

type Media struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	MediaType string     `json:"media_type" db:"media_type"`
	MimeType  *string    `json:"mime_type,omitempty" db:"mime_type"`
	URI       string     `json:"uri" db:"uri"`
	Title     *string    `json:"title,omitempty" db:"title"`
	Note      *string    `json:"note,omitempty" db:"note"`
	TakenAt   *time.Time `json:"taken_at,omitempty" db:"taken_at"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time `json:"-" db:"deleted_at"`
}

type CreateMediaInput struct {
	MediaType string     `json:"media_type" validate:"required,min=1,max=50"`
	MimeType  *string    `json:"mime_type,omitempty" validate:"omitempty,max=100"`
	URI       string     `json:"uri" validate:"required,min=1,max=2000"`
	Title     *string    `json:"title,omitempty" validate:"omitempty,max=255"`
	Note      *string    `json:"note,omitempty" validate:"omitempty,max=2000"`
	TakenAt   *time.Time `json:"taken_at,omitempty"`
}

type UpdateMediaInput struct {
	MediaType *string        `json:"media_type" validate:"omitempty,min=1,max=50"`
	MimeType  NullableString `json:"mime_type" validate:"omitempty,max=100"`
	URI       *string        `json:"uri" validate:"omitempty,min=1,max=2000"`
	Title     NullableString `json:"title" validate:"omitempty,max=255"`
	Note      NullableString `json:"note" validate:"omitempty,max=2000"`
	TakenAt   NullableTime   `json:"taken_at"`
}
