package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Link entities join two primary entities. They soft-delete independently
// of their endpoints; a previously deleted link is revived on re-add
// instead of inserting a second row for the same natural key.

type EntryTag struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	EntryID   uuid.UUID  `json:"entry_id" db:"entry_id"`
	TagID     uuid.UUID  `json:"tag_id" db:"tag_id"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	DeletedAt *time.Time `json:"-" db:"deleted_at"`
}

type PersonTag struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	PersonID  uuid.UUID  `json:"person_id" db:"person_id"`
	TagID     uuid.UUID  `json:"tag_id" db:"tag_id"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	DeletedAt *time.Time `json:"-" db:"deleted_at"`
}

// RoleDefault is the sentinel used when a person-entry link is added
// without a role. Natural-key lookups never operate on a blank role.
const RoleDefault = "DEFAULT"

// NormalizeRole maps a blank role to RoleDefault so the (person, entry,
// role) natural key is always well-defined.
func NormalizeRole(role string) string {
	role = strings.TrimSpace(role)
	if role == "" {
		return RoleDefault
	}
	return role
}

type PersonEntry struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	PersonID  uuid.UUID  `json:"person_id" db:"person_id"`
	EntryID   uuid.UUID  `json:"entry_id" db:"entry_id"`
	Role      string     `json:"role" db:"role"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	DeletedAt *time.Time `json:"-" db:"deleted_at"`
}

type MediaEntry struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	MediaID   uuid.UUID  `json:"media_id" db:"media_id"`
	EntryID   uuid.UUID  `json:"entry_id" db:"entry_id"`
	Caption   *string    `json:"caption,omitempty" db:"caption"`
	SortOrder *int       `json:"sort_order,omitempty" db:"sort_order"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	DeletedAt *time.Time `json:"-" db:"deleted_at"`
}

// MediaLinkAttrs are the link-local fields of a media-entry link.
// Update replaces them wholesale.
type MediaLinkAttrs struct {
	Caption   *string `json:"caption,omitempty"`
	SortOrder *int    `json:"sort_order,omitempty"`
}

type PersonRelation struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	FromPersonID uuid.UUID  `json:"from_person_id" db:"from_person_id"`
	ToPersonID   uuid.UUID  `json:"to_person_id" db:"to_person_id"`
	Type         string     `json:"type" db:"type"`
	Note         *string    `json:"note,omitempty" db:"note"`
	ValidFrom    *time.Time `json:"valid_from,omitempty" db:"valid_from"`
	ValidTo      *time.Time `json:"valid_to,omitempty" db:"valid_to"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	DeletedAt    *time.Time `json:"-" db:"deleted_at"`
}

type RelationAttrs struct {
	Note      *string    `json:"note,omitempty"`
	ValidFrom *time.Time `json:"valid_from,omitempty"`
	ValidTo   *time.Time `json:"valid_to,omitempty"`
}

type CreateRelationInput struct {
	FromPersonID uuid.UUID  `json:"from_person_id" validate:"required"`
	ToPersonID   uuid.UUID  `json:"to_person_id" validate:"required"`
	Type         string     `json:"type" validate:"required,min=1,max=50"`
	Note         *string    `json:"note,omitempty"`
	ValidFrom    *time.Time `json:"valid_from,omitempty"`
	ValidTo      *time.Time `json:"valid_to,omitempty"`
}

// SortMediaEntries orders media links the way galleries display them:
// sort_order ascending with nulls last, ties broken by created_at.
// The sort is stable so the order is reproducible.
func SortMediaEntries(links []MediaEntry) {
	sort.SliceStable(links, func(i, j int) bool {
		a, b := links[i].SortOrder, links[j].SortOrder
		switch {
		case a == nil && b == nil:
			return links[i].CreatedAt.Before(links[j].CreatedAt)
		case a == nil:
			return false
		case b == nil:
			return true
		case *a != *b:
			return *a < *b
		default:
			return links[i].CreatedAt.Before(links[j].CreatedAt)
		}
	})
}
