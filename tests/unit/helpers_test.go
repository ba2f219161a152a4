package unit_test

import (
	"lide-archiv/internal/domain"
	"lide-archiv/internal/repository"
	"lide-archiv/tests/mocks"

	"github.com/google/uuid"
)

// repoMocks bundles one mock per repository so tests can wire any service
// through the same repository set.
type repoMocks struct {
	person         *mocks.PersonRepository
	entry          *mocks.EntryRepository
	media          *mocks.MediaRepository
	tag            *mocks.TagRepository
	entryTag       *mocks.EntryTagRepository
	personTag      *mocks.PersonTagRepository
	personEntry    *mocks.PersonEntryRepository
	mediaEntry     *mocks.MediaEntryRepository
	personRelation *mocks.PersonRelationRepository
	audit          *mocks.AuditLogRepository
}

func newRepoMocks() (*repository.Repositories, *repoMocks) {
	m := &repoMocks{
		person:         new(mocks.PersonRepository),
		entry:          new(mocks.EntryRepository),
		media:          new(mocks.MediaRepository),
		tag:            new(mocks.TagRepository),
		entryTag:       new(mocks.EntryTagRepository),
		personTag:      new(mocks.PersonTagRepository),
		personEntry:    new(mocks.PersonEntryRepository),
		mediaEntry:     new(mocks.MediaEntryRepository),
		personRelation: new(mocks.PersonRelationRepository),
		audit:          new(mocks.AuditLogRepository),
	}

	repos := &repository.Repositories{
		Person:         m.person,
		Entry:          m.entry,
		Media:          m.media,
		Tag:            m.tag,
		EntryTag:       m.entryTag,
		PersonTag:      m.personTag,
		PersonEntry:    m.personEntry,
		MediaEntry:     m.mediaEntry,
		PersonRelation: m.personRelation,
		AuditLog:       m.audit,
	}

	return repos, m
}

func activeEntry(id uuid.UUID) *domain.Entry {
	return &domain.Entry{ID: id, Type: "note", Content: "text"}
}

func activeTag(id uuid.UUID) *domain.Tag {
	return &domain.Tag{ID: id, Name: "rodina"}
}

func activePerson(id uuid.UUID) *domain.Person {
	return &domain.Person{ID: id, FirstName: "Jan"}
}

func stringPtr(s string) *string {
	return &s
}
