package relation

import (
	"context"

	"github.com/google/uuid"

	"lide-archiv/internal/domain"
	"lide-archiv/internal/repository"
	"lide-archiv/internal/service/detail"
)

func (s *service) AddPersonTag(ctx context.Context, personID, tagID uuid.UUID) error {
	if err := s.requireActivePerson(ctx, personID); err != nil {
		return err
	}
	if err := s.requireActiveTag(ctx, tagID); err != nil {
		return err
	}

	link, err := s.personTagRepo.FindByKey(ctx, personID, tagID)
	if err != nil {
		return err
	}

	switch {
	case link != nil && link.DeletedAt == nil:
		return nil
	case link != nil:
		if err := s.personTagRepo.Revive(ctx, link.ID); err != nil {
			return err
		}
		s.audit(ctx, "LINK", "PERSON_TAG", link.ID, nil, link)
	default:
		link = &domain.PersonTag{
			ID:       uuid.New(),
			PersonID: personID,
			TagID:    tagID,
		}
		if err := s.personTagRepo.Create(ctx, link); err != nil {
			if repository.IsUniqueViolation(err) {
				return nil
			}
			return err
		}
		s.audit(ctx, "LINK", "PERSON_TAG", link.ID, nil, link)
	}

	detail.InvalidatePerson(ctx, s.redis, personID)
	return nil
}

func (s *service) RemovePersonTag(ctx context.Context, personID, tagID uuid.UUID) error {
	link, err := s.personTagRepo.FindByKey(ctx, personID, tagID)
	if err != nil {
		return err
	}
	if link == nil || link.DeletedAt != nil {
		return domain.ErrLinkNotFound
	}

	if err := s.personTagRepo.SoftDelete(ctx, link.ID); err != nil {
		return err
	}

	s.audit(ctx, "UNLINK", "PERSON_TAG", link.ID, link, nil)
	detail.InvalidatePerson(ctx, s.redis, personID)
	return nil
}

func (s *service) ListPersonTags(ctx context.Context, personID uuid.UUID) ([]domain.Tag, error) {
	if err := s.requireActivePerson(ctx, personID); err != nil {
		return nil, err
	}

	links, err := s.personTagRepo.FindActiveByPerson(ctx, personID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.TagID)
	}
	return s.tagRepo.GetByIDs(ctx, ids)
}

func (s *service) ListTagPersons(ctx context.Context, tagID uuid.UUID) ([]domain.Person, error) {
	if err := s.requireActiveTag(ctx, tagID); err != nil {
		return nil, err
	}

	links, err := s.personTagRepo.FindActiveByTag(ctx, tagID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.PersonID)
	}
	return s.personRepo.GetByIDs(ctx, ids)
}
