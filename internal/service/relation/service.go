package relation

import (
	"context"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"lide-archiv/internal/domain"
	"lide-archiv/internal/repository"
)

// Service reconciles link rows against their natural keys. Adds are
// idempotent: an active link is left alone, a soft-deleted one is revived,
// and only a missing one inserts. Removes require an active link under the
// exact natural key.
type Service interface {
	AddEntryTag(ctx context.Context, entryID, tagID uuid.UUID) error
	RemoveEntryTag(ctx context.Context, entryID, tagID uuid.UUID) error
	ListEntryTags(ctx context.Context, entryID uuid.UUID) ([]domain.Tag, error)
	ListTagEntries(ctx context.Context, tagID uuid.UUID) ([]domain.Entry, error)

	AddPersonTag(ctx context.Context, personID, tagID uuid.UUID) error
	RemovePersonTag(ctx context.Context, personID, tagID uuid.UUID) error
	ListPersonTags(ctx context.Context, personID uuid.UUID) ([]domain.Tag, error)
	ListTagPersons(ctx context.Context, tagID uuid.UUID) ([]domain.Person, error)

	AddPersonEntry(ctx context.Context, personID, entryID uuid.UUID, role string) error
	RemovePersonEntry(ctx context.Context, personID, entryID uuid.UUID, role string) error
	ListPersonEntries(ctx context.Context, personID uuid.UUID) ([]domain.EntryWithRole, error)
	ListEntryPersons(ctx context.Context, entryID uuid.UUID) ([]domain.PersonWithRole, error)

	AddMediaEntry(ctx context.Context, mediaID, entryID uuid.UUID, attrs domain.MediaLinkAttrs) error
	UpdateMediaEntry(ctx context.Context, mediaID, entryID uuid.UUID, attrs domain.MediaLinkAttrs) error
	RemoveMediaEntry(ctx context.Context, mediaID, entryID uuid.UUID) error
	ListEntryMedia(ctx context.Context, entryID uuid.UUID) ([]domain.MediaWithLink, error)
	ListMediaEntries(ctx context.Context, mediaID uuid.UUID) ([]domain.EntryWithLink, error)

	AddRelation(ctx context.Context, input domain.CreateRelationInput) error
	UpdateRelation(ctx context.Context, fromID, toID uuid.UUID, relType string, attrs domain.RelationAttrs) error
	RemoveRelation(ctx context.Context, fromID, toID uuid.UUID, relType string) error
	ListRelationsFrom(ctx context.Context, personID uuid.UUID) ([]domain.RelationView, error)
	ListRelationsTo(ctx context.Context, personID uuid.UUID) ([]domain.RelationView, error)
}

type service struct {
	personRepo         repository.PersonRepository
	entryRepo          repository.EntryRepository
	mediaRepo          repository.MediaRepository
	tagRepo            repository.TagRepository
	entryTagRepo       repository.EntryTagRepository
	personTagRepo      repository.PersonTagRepository
	personEntryRepo    repository.PersonEntryRepository
	mediaEntryRepo     repository.MediaEntryRepository
	personRelationRepo repository.PersonRelationRepository
	auditRepo          repository.AuditLogRepository
	redis              *redis.Client
}

func NewService(repos *repository.Repositories, redis *redis.Client) Service {
	return &service{
		personRepo:         repos.Person,
		entryRepo:          repos.Entry,
		mediaRepo:          repos.Media,
		tagRepo:            repos.Tag,
		entryTagRepo:       repos.EntryTag,
		personTagRepo:      repos.PersonTag,
		personEntryRepo:    repos.PersonEntry,
		mediaEntryRepo:     repos.MediaEntry,
		personRelationRepo: repos.PersonRelation,
		auditRepo:          repos.AuditLog,
		redis:              redis,
	}
}

// Endpoint checks. Links may only be added to or removed from active
// entities; a soft-deleted endpoint reads as not found.

func (s *service) requireActivePerson(ctx context.Context, id uuid.UUID) error {
	person, err := s.personRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if person == nil {
		return domain.ErrPersonNotFound
	}
	return nil
}

func (s *service) requireActiveEntry(ctx context.Context, id uuid.UUID) error {
	entry, err := s.entryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if entry == nil {
		return domain.ErrEntryNotFound
	}
	return nil
}

func (s *service) requireActiveMedia(ctx context.Context, id uuid.UUID) error {
	media, err := s.mediaRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if media == nil {
		return domain.ErrMediaNotFound
	}
	return nil
}

func (s *service) requireActiveTag(ctx context.Context, id uuid.UUID) error {
	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tag == nil {
		return domain.ErrTagNotFound
	}
	return nil
}

func (s *service) audit(ctx context.Context, action, entityType string, entityID uuid.UUID, oldValue, newValue any) {
	_ = repository.CreateAuditLog(s.auditRepo, ctx, domain.CreateAuditLogInput{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		OldValue:   oldValue,
		NewValue:   newValue,
	})
}
