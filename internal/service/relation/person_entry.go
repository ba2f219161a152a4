package relation

import (
	"context"

	"github.com/google/uuid"

	"lide-archiv/internal/domain"
	"lide-archiv/internal/repository"
	"lide-archiv/internal/service/detail"
)

func (s *service) AddPersonEntry(ctx context.Context, personID, entryID uuid.UUID, role string) error {
	if err := s.requireActivePerson(ctx, personID); err != nil {
		return err
	}
	if err := s.requireActiveEntry(ctx, entryID); err != nil {
		return err
	}

	role = domain.NormalizeRole(role)

	link, err := s.personEntryRepo.FindByKey(ctx, personID, entryID, role)
	if err != nil {
		return err
	}

	switch {
	case link != nil && link.DeletedAt == nil:
		return nil
	case link != nil:
		if err := s.personEntryRepo.Revive(ctx, link.ID); err != nil {
			return err
		}
		s.audit(ctx, "LINK", "PERSON_ENTRY", link.ID, nil, link)
	default:
		link = &domain.PersonEntry{
			ID:       uuid.New(),
			PersonID: personID,
			EntryID:  entryID,
			Role:     role,
		}
		if err := s.personEntryRepo.Create(ctx, link); err != nil {
			if repository.IsUniqueViolation(err) {
				return nil
			}
			return err
		}
		s.audit(ctx, "LINK", "PERSON_ENTRY", link.ID, nil, link)
	}

	detail.InvalidatePerson(ctx, s.redis, personID)
	detail.InvalidateEntry(ctx, s.redis, entryID)
	return nil
}

func (s *service) RemovePersonEntry(ctx context.Context, personID, entryID uuid.UUID, role string) error {
	role = domain.NormalizeRole(role)

	link, err := s.personEntryRepo.FindByKey(ctx, personID, entryID, role)
	if err != nil {
		return err
	}
	if link == nil || link.DeletedAt != nil {
		return domain.ErrLinkNotFound
	}

	if err := s.personEntryRepo.SoftDelete(ctx, link.ID); err != nil {
		return err
	}

	s.audit(ctx, "UNLINK", "PERSON_ENTRY", link.ID, link, nil)
	detail.InvalidatePerson(ctx, s.redis, personID)
	detail.InvalidateEntry(ctx, s.redis, entryID)
	return nil
}

func (s *service) ListPersonEntries(ctx context.Context, personID uuid.UUID) ([]domain.EntryWithRole, error) {
	if err := s.requireActivePerson(ctx, personID); err != nil {
		return nil, err
	}

	links, err := s.personEntryRepo.FindActiveByPerson(ctx, personID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.EntryID)
	}
	entries, err := s.entryRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]domain.Entry, len(entries))
	for _, entry := range entries {
		byID[entry.ID] = entry
	}

	result := make([]domain.EntryWithRole, 0, len(links))
	for _, link := range links {
		entry, ok := byID[link.EntryID]
		if !ok {
			continue
		}
		result = append(result, domain.EntryWithRole{Entry: entry, Role: link.Role})
	}
	return result, nil
}

func (s *service) ListEntryPersons(ctx context.Context, entryID uuid.UUID) ([]domain.PersonWithRole, error) {
	if err := s.requireActiveEntry(ctx, entryID); err != nil {
		return nil, err
	}

	links, err := s.personEntryRepo.FindActiveByEntry(ctx, entryID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.PersonID)
	}
	persons, err := s.personRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]domain.Person, len(persons))
	for _, person := range persons {
		byID[person.ID] = person
	}

	result := make([]domain.PersonWithRole, 0, len(links))
	for _, link := range links {
		person, ok := byID[link.PersonID]
		if !ok {
			continue
		}
		result = append(result, domain.PersonWithRole{Person: person, Role: link.Role})
	}
	return result, nil
}
