package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Person struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	FirstName string     `json:"first_name" db:"first_name"`
	LastName  *string    `json:"last_name,omitempty" db:"last_name"`
	Nickname  *string    `json:"nickname,omitempty" db:"nickname"`
	BirthDate *time.Time `json:"birth_date,omitempty" db:"birth_date"`
	Phone     *string    `json:"phone,omitempty" db:"phone"`
	Email     *string    `json:"email,omitempty" db:"email"`
	Note      *string    `json:"note,omitempty" db:"note"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time `json:"-" db:"deleted_at"`
}

type CreatePersonInput struct {
	FirstName string     `json:"first_name" validate:"required,min=1,max=100"`
	LastName  *string    `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Nickname  *string    `json:"nickname,omitempty" validate:"omitempty,max=50"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Phone     *string    `json:"phone,omitempty" validate:"omitempty,max=20"`
	Email     *string    `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Note      *string    `json:"note,omitempty" validate:"omitempty,max=2000"`
}

type UpdatePersonInput struct {
	FirstName *string        `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName  NullableString `json:"last_name" validate:"omitempty,max=100"`
	Nickname  NullableString `json:"nickname" validate:"omitempty,max=50"`
	BirthDate NullableTime   `json:"birth_date"`
	Phone     NullableString `json:"phone" validate:"omitempty,max=20"`
	Email     NullableString `json:"email" validate:"omitempty,email,max=255"`
	Note      NullableString `json:"note" validate:"omitempty,max=2000"`
}

// DisplayName joins first and last name; a person with neither falls back
// to the nickname. Empty string means nothing displayable is set.
func (p *Person) DisplayName() string {
	last := ""
	if p.LastName != nil {
		last = *p.LastName
	}
	name := strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(last))
	if name == "" && p.Nickname != nil {
		name = strings.TrimSpace(*p.Nickname)
	}
	return name
}
