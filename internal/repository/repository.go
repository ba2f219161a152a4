package repository

import (
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Repositories struct {
	Person         PersonRepository
	Entry          EntryRepository
	Media          MediaRepository
	Tag            TagRepository
	EntryTag       EntryTagRepository
	PersonTag      PersonTagRepository
	PersonEntry    PersonEntryRepository
	MediaEntry     MediaEntryRepository
	PersonRelation PersonRelationRepository
	AuditLog       AuditLogRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Person:         NewPersonRepository(db),
		Entry:          NewEntryRepository(db),
		Media:          NewMediaRepository(db),
		Tag:            NewTagRepository(db),
		EntryTag:       NewEntryTagRepository(db),
		PersonTag:      NewPersonTagRepository(db),
		PersonEntry:    NewPersonEntryRepository(db),
		MediaEntry:     NewMediaEntryRepository(db),
		PersonRelation: NewPersonRelationRepository(db),
		AuditLog:       NewAuditLogRepository(db),
	}
}

// IsUniqueViolation reports whether err is a Postgres unique constraint
// violation. Callers translate it to a conflict (tag names) or a benign
// no-op (link natural keys racing on insert).
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
