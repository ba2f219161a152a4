package domain

import (
	"time"

	"github.com/google/uuid"
)

// Read views assembled by the detail and relation services. They combine
// a resolved target entity with the link-local fields of its link.

type EntryWithRole struct {
	Entry
	Role string `json:"role"`
}

type PersonWithRole struct {
	Person
	Role string `json:"role"`
}

type MediaWithLink struct {
	Media
	Caption   *string `json:"caption,omitempty"`
	SortOrder *int    `json:"sort_order,omitempty"`
}

type EntryWithLink struct {
	Entry
	Caption   *string `json:"caption,omitempty"`
	SortOrder *int    `json:"sort_order,omitempty"`
}

// RelationView is one directed typed edge plus the display name of the
// person on the other side. DisplayName is nil when that person is
// missing or soft-deleted.
type RelationView struct {
	ID           uuid.UUID  `json:"id"`
	FromPersonID uuid.UUID  `json:"from_person_id"`
	ToPersonID   uuid.UUID  `json:"to_person_id"`
	Type         string     `json:"type"`
	Note         *string    `json:"note,omitempty"`
	ValidFrom    *time.Time `json:"valid_from,omitempty"`
	ValidTo      *time.Time `json:"valid_to,omitempty"`
	DisplayName  *string    `json:"display_name,omitempty"`
}

type EntryDetail struct {
	Entry
	Tags    []Tag            `json:"tags"`
	Persons []PersonWithRole `json:"persons"`
	Media   []MediaWithLink  `json:"media"`
}

type PersonDetail struct {
	Person
	Tags         []Tag           `json:"tags"`
	Entries      []EntryWithRole `json:"entries"`
	RelationsOut []RelationView  `json:"relations_out"`
	RelationsIn  []RelationView  `json:"relations_in"`
}
