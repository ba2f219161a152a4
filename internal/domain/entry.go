package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a diary-like record. Type is a free-form category string
// (e.g. "diary", "event"); content is the body text.
type Entry struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	Type       string     `json:"type" db:"type"`
	Title      *string    `json:"title,omitempty" db:"title"`
	Content    string     `json:"content" db:"content"`
	OccurredAt *time.Time `json:"occurred_at,omitempty" db:"occurred_at"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt  *time.Time `json:"-" db:"deleted_at"`
}

type CreateEntryInput struct {
	Type       string     `json:"type" validate:"required,min=1,max=50"`
	Title      *string    `json:"title,omitempty" validate:"omitempty,max=255"`
	Content    string     `json:"content" validate:"required,min=1"`
	OccurredAt *time.Time `json:"occurred_at,omitempty"`
}

type UpdateEntryInput struct {
	Type       *string        `json:"type" validate:"omitempty,min=1,max=50"`
	Title      NullableString `json:"title" validate:"omitempty,max=255"`
	Content    *string        `json:"content" validate:"omitempty,min=1"`
	OccurredAt NullableTime   `json:"occurred_at"`
}
