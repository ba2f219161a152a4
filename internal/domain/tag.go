package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Tag names are unique among active tags under case-insensitive,
// whitespace-collapsed comparison.
type Tag struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time `json:"-" db:"deleted_at"`
}

type CreateTagInput struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type UpdateTagInput struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// NormalizeTagName collapses internal whitespace and trims the ends.
// Uniqueness checks compare normalized names case-insensitively.
func NormalizeTagName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
