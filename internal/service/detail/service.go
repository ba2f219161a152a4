package detail

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"lide-archiv/internal/domain"
	"lide-archiv/internal/repository"
)

// Service assembles denormalized read views: one root entity plus all of
// its currently-active links with their targets resolved. It never writes.
// Links whose target has been soft-deleted since linking are filtered out
// here, at read time; nothing cascades on delete.
type Service interface {
	EntryDetail(ctx context.Context, entryID uuid.UUID) (*domain.EntryDetail, error)
	PersonDetail(ctx context.Context, personID uuid.UUID) (*domain.PersonDetail, error)
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
	redis              *redis.Client
	cacheTTL           time.Duration
}

func NewService(repos *repository.Repositories, redis *redis.Client, cacheTTL time.Duration) Service {
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
		redis:              redis,
		cacheTTL:           cacheTTL,
	}
}

func (s *service) EntryDetail(ctx context.Context, entryID uuid.UUID) (*domain.EntryDetail, error) {
	if cached := getCached[domain.EntryDetail](ctx, s.redis, entryKey(entryID)); cached != nil {
		return cached, nil
	}

	entry, err := s.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrEntryNotFound
	}

	result := &domain.EntryDetail{
		Entry:   *entry,
		Tags:    []domain.Tag{},
		Persons: []domain.PersonWithRole{},
		Media:   []domain.MediaWithLink{},
	}

	tags, err := s.resolveEntryTags(ctx, entryID)
	if err != nil {
		return nil, err
	}
	result.Tags = tags

	peLinks, err := s.personEntryRepo.FindActiveByEntry(ctx, entryID)
	if err != nil {
		return nil, err
	}
	personIDs := make([]uuid.UUID, 0, len(peLinks))
	for _, l := range peLinks {
		personIDs = append(personIDs, l.PersonID)
	}
	personsByID, err := s.personsByID(ctx, personIDs)
	if err != nil {
		return nil, err
	}
	for _, l := range peLinks {
		p, ok := personsByID[l.PersonID]
		if !ok {
			continue
		}
		result.Persons = append(result.Persons, domain.PersonWithRole{Person: p, Role: l.Role})
	}

	meLinks, err := s.mediaEntryRepo.FindActiveByEntry(ctx, entryID)
	if err != nil {
		return nil, err
	}
	domain.SortMediaEntries(meLinks)

	mediaIDs := make([]uuid.UUID, 0, len(meLinks))
	for _, l := range meLinks {
		mediaIDs = append(mediaIDs, l.MediaID)
	}
	mediaItems, err := s.mediaRepo.GetByIDs(ctx, mediaIDs)
	if err != nil {
		return nil, err
	}
	mediaByID := make(map[uuid.UUID]domain.Media, len(mediaItems))
	for _, m := range mediaItems {
		mediaByID[m.ID] = m
	}
	for _, l := range meLinks {
		m, ok := mediaByID[l.MediaID]
		if !ok {
			continue
		}
		result.Media = append(result.Media, domain.MediaWithLink{
			Media:     m,
			Caption:   l.Caption,
			SortOrder: l.SortOrder,
		})
	}

	s.setCached(ctx, entryKey(entryID), result)
	return result, nil
}

func (s *service) PersonDetail(ctx context.Context, personID uuid.UUID) (*domain.PersonDetail, error) {
	if cached := getCached[domain.PersonDetail](ctx, s.redis, personKey(personID)); cached != nil {
		return cached, nil
	}

	person, err := s.personRepo.GetByID(ctx, personID)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, domain.ErrPersonNotFound
	}

	result := &domain.PersonDetail{
		Person:       *person,
		Tags:         []domain.Tag{},
		Entries:      []domain.EntryWithRole{},
		RelationsOut: []domain.RelationView{},
		RelationsIn:  []domain.RelationView{},
	}

	ptLinks, err := s.personTagRepo.FindActiveByPerson(ctx, personID)
	if err != nil {
		return nil, err
	}
	tagIDs := make([]uuid.UUID, 0, len(ptLinks))
	for _, l := range ptLinks {
		tagIDs = append(tagIDs, l.TagID)
	}
	tags, err := s.tagRepo.GetByIDs(ctx, tagIDs)
	if err != nil {
		return nil, err
	}
	result.Tags = tags

	peLinks, err := s.personEntryRepo.FindActiveByPerson(ctx, personID)
	if err != nil {
		return nil, err
	}
	entryIDs := make([]uuid.UUID, 0, len(peLinks))
	for _, l := range peLinks {
		entryIDs = append(entryIDs, l.EntryID)
	}
	entries, err := s.entryRepo.GetByIDs(ctx, entryIDs)
	if err != nil {
		return nil, err
	}
	entriesByID := make(map[uuid.UUID]domain.Entry, len(entries))
	for _, e := range entries {
		entriesByID[e.ID] = e
	}
	for _, l := range peLinks {
		e, ok := entriesByID[l.EntryID]
		if !ok {
			continue
		}
		result.Entries = append(result.Entries, domain.EntryWithRole{Entry: e, Role: l.Role})
	}

	relOut, err := s.personRelationRepo.FindActiveByFrom(ctx, personID)
	if err != nil {
		return nil, err
	}
	relIn, err := s.personRelationRepo.FindActiveByTo(ctx, personID)
	if err != nil {
		return nil, err
	}

	otherIDs := make([]uuid.UUID, 0, len(relOut)+len(relIn))
	for _, r := range relOut {
		otherIDs = append(otherIDs, r.ToPersonID)
	}
	for _, r := range relIn {
		otherIDs = append(otherIDs, r.FromPersonID)
	}
	othersByID, err := s.personsByID(ctx, otherIDs)
	if err != nil {
		return nil, err
	}

	for _, r := range relOut {
		result.RelationsOut = append(result.RelationsOut, toRelationView(r, othersByID, r.ToPersonID))
	}
	for _, r := range relIn {
		result.RelationsIn = append(result.RelationsIn, toRelationView(r, othersByID, r.FromPersonID))
	}

	s.setCached(ctx, personKey(personID), result)
	return result, nil
}

func (s *service) resolveEntryTags(ctx context.Context, entryID uuid.UUID) ([]domain.Tag, error) {
	links, err := s.entryTagRepo.FindActiveByEntry(ctx, entryID)
	if err != nil {
		return nil, err
	}
	tagIDs := make([]uuid.UUID, 0, len(links))
	for _, l := range links {
		tagIDs = append(tagIDs, l.TagID)
	}
	return s.tagRepo.GetByIDs(ctx, tagIDs)
}

func (s *service) personsByID(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Person, error) {
	persons, err := s.personRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]domain.Person, len(persons))
	for _, p := range persons {
		byID[p.ID] = p
	}
	return byID, nil
}

func toRelationView(r domain.PersonRelation, others map[uuid.UUID]domain.Person, otherID uuid.UUID) domain.RelationView {
	view := domain.RelationView{
		ID:           r.ID,
		FromPersonID: r.FromPersonID,
		ToPersonID:   r.ToPersonID,
		Type:         r.Type,
		Note:         r.Note,
		ValidFrom:    r.ValidFrom,
		ValidTo:      r.ValidTo,
	}
	if other, ok := others[otherID]; ok {
		if name := other.DisplayName(); name != "" {
			view.DisplayName = &name
		}
	}
	return view
}

func getCached[T any](ctx context.Context, rdb *redis.Client, key string) *T {
	if rdb == nil {
		return nil
	}
	data, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return nil
	}
	return &value
}

func (s *service) setCached(ctx context.Context, key string, value any) {
	if s.redis == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = s.redis.Set(ctx, key, data, s.cacheTTL).Err()
}
