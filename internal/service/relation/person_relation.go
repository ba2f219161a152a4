package relation

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"lide-archiv/internal/domain"
	"lide-archiv/internal/repository"
	"lide-archiv/internal/service/detail"
)

func (s *service) AddRelation(ctx context.Context, input domain.CreateRelationInput) error {
	relType := strings.TrimSpace(input.Type)
	if relType == "" {
		return domain.Invalid("type is required")
	}
	if input.FromPersonID == input.ToPersonID {
		return domain.Invalid("a relation must connect two different persons")
	}

	if err := s.requireActivePerson(ctx, input.FromPersonID); err != nil {
		return err
	}
	if err := s.requireActivePerson(ctx, input.ToPersonID); err != nil {
		return err
	}

	rel, err := s.personRelationRepo.FindByKey(ctx, input.FromPersonID, input.ToPersonID, relType)
	if err != nil {
		return err
	}

	switch {
	case rel != nil && rel.DeletedAt == nil:
		return nil
	case rel != nil:
		if err := s.personRelationRepo.Revive(ctx, rel.ID, input.Note, input.ValidFrom, input.ValidTo); err != nil {
			return err
		}
		s.audit(ctx, "LINK", "PERSON_RELATION", rel.ID, nil, input)
	default:
		rel = &domain.PersonRelation{
			ID:           uuid.New(),
			FromPersonID: input.FromPersonID,
			ToPersonID:   input.ToPersonID,
			Type:         relType,
			Note:         input.Note,
			ValidFrom:    input.ValidFrom,
			ValidTo:      input.ValidTo,
		}
		if err := s.personRelationRepo.Create(ctx, rel); err != nil {
			if repository.IsUniqueViolation(err) {
				return nil
			}
			return err
		}
		s.audit(ctx, "LINK", "PERSON_RELATION", rel.ID, nil, rel)
	}

	detail.InvalidatePerson(ctx, s.redis, input.FromPersonID)
	detail.InvalidatePerson(ctx, s.redis, input.ToPersonID)
	return nil
}

func (s *service) UpdateRelation(ctx context.Context, fromID, toID uuid.UUID, relType string, attrs domain.RelationAttrs) error {
	relType = strings.TrimSpace(relType)
	if relType == "" {
		return domain.Invalid("type is required")
	}

	rel, err := s.personRelationRepo.FindByKey(ctx, fromID, toID, relType)
	if err != nil {
		return err
	}
	if rel == nil || rel.DeletedAt != nil {
		return domain.ErrLinkNotFound
	}

	if err := s.personRelationRepo.UpdateAttrs(ctx, rel.ID, attrs.Note, attrs.ValidFrom, attrs.ValidTo); err != nil {
		return err
	}

	s.audit(ctx, "UPDATE", "PERSON_RELATION", rel.ID, rel, attrs)
	detail.InvalidatePerson(ctx, s.redis, fromID)
	detail.InvalidatePerson(ctx, s.redis, toID)
	return nil
}

func (s *service) RemoveRelation(ctx context.Context, fromID, toID uuid.UUID, relType string) error {
	relType = strings.TrimSpace(relType)
	if relType == "" {
		return domain.Invalid("type is required")
	}

	rel, err := s.personRelationRepo.FindByKey(ctx, fromID, toID, relType)
	if err != nil {
		return err
	}
	if rel == nil || rel.DeletedAt != nil {
		return domain.ErrLinkNotFound
	}

	if err := s.personRelationRepo.SoftDelete(ctx, rel.ID); err != nil {
		return err
	}

	s.audit(ctx, "UNLINK", "PERSON_RELATION", rel.ID, rel, nil)
	detail.InvalidatePerson(ctx, s.redis, fromID)
	detail.InvalidatePerson(ctx, s.redis, toID)
	return nil
}

func (s *service) ListRelationsFrom(ctx context.Context, personID uuid.UUID) ([]domain.RelationView, error) {
	if err := s.requireActivePerson(ctx, personID); err != nil {
		return nil, err
	}

	rels, err := s.personRelationRepo.FindActiveByFrom(ctx, personID)
	if err != nil {
		return nil, err
	}
	return s.toViews(ctx, rels, func(r domain.PersonRelation) uuid.UUID { return r.ToPersonID })
}

func (s *service) ListRelationsTo(ctx context.Context, personID uuid.UUID) ([]domain.RelationView, error) {
	if err := s.requireActivePerson(ctx, personID); err != nil {
		return nil, err
	}

	rels, err := s.personRelationRepo.FindActiveByTo(ctx, personID)
	if err != nil {
		return nil, err
	}
	return s.toViews(ctx, rels, func(r domain.PersonRelation) uuid.UUID { return r.FromPersonID })
}

// toViews resolves the person on the far side of each relation and attaches
// their display name when that person is still active.
func (s *service) toViews(ctx context.Context, rels []domain.PersonRelation, otherID func(domain.PersonRelation) uuid.UUID) ([]domain.RelationView, error) {
	ids := make([]uuid.UUID, 0, len(rels))
	for _, rel := range rels {
		ids = append(ids, otherID(rel))
	}
	persons, err := s.personRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]domain.Person, len(persons))
	for _, person := range persons {
		byID[person.ID] = person
	}

	views := make([]domain.RelationView, 0, len(rels))
	for _, rel := range rels {
		view := domain.RelationView{
			ID:           rel.ID,
			FromPersonID: rel.FromPersonID,
			ToPersonID:   rel.ToPersonID,
			Type:         rel.Type,
			Note:         rel.Note,
			ValidFrom:    rel.ValidFrom,
			ValidTo:      rel.ValidTo,
		}
		if person, ok := byID[otherID(rel)]; ok {
			if name := person.DisplayName(); name != "" {
				view.DisplayName = &name
			}
		}
		views = append(views, view)
	}
	return views, nil
}
