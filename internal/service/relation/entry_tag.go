package relation

import (
	"context"

	"github.com/google/uuid"

	"lide-archiv/internal/domain"
	"lide-archiv/internal/repository"
	"lide-archiv/internal/service/detail"
)

func (s *service) AddEntryTag(ctx context.Context, entryID, tagID uuid.UUID) error {
	if err := s.requireActiveEntry(ctx, entryID); err != nil {
		return err
	}
	if err := s.requireActiveTag(ctx, tagID); err != nil {
		return err
	}

	link, err := s.entryTagRepo.FindByKey(ctx, entryID, tagID)
	if err != nil {
		return err
	}

	switch {
	case link != nil && link.DeletedAt == nil:
		// Already linked.
		return nil
	case link != nil:
		if err := s.entryTagRepo.Revive(ctx, link.ID); err != nil {
			return err
		}
		s.audit(ctx, "LINK", "ENTRY_TAG", link.ID, nil, link)
	default:
		link = &domain.EntryTag{
			ID:      uuid.New(),
			EntryID: entryID,
			TagID:   tagID,
		}
		if err := s.entryTagRepo.Create(ctx, link); err != nil {
			// A concurrent add won the insert; the link exists either way.
			if repository.IsUniqueViolation(err) {
				return nil
			}
			return err
		}
		s.audit(ctx, "LINK", "ENTRY_TAG", link.ID, nil, link)
	}

	detail.InvalidateEntry(ctx, s.redis, entryID)
	return nil
}

func (s *service) RemoveEntryTag(ctx context.Context, entryID, tagID uuid.UUID) error {
	link, err := s.entryTagRepo.FindByKey(ctx, entryID, tagID)
	if err != nil {
		return err
	}
	if link == nil || link.DeletedAt != nil {
		return domain.ErrLinkNotFound
	}

	if err := s.entryTagRepo.SoftDelete(ctx, link.ID); err != nil {
		return err
	}

	s.audit(ctx, "UNLINK", "ENTRY_TAG", link.ID, link, nil)
	detail.InvalidateEntry(ctx, s.redis, entryID)
	return nil
}

func (s *service) ListEntryTags(ctx context.Context, entryID uuid.UUID) ([]domain.Tag, error) {
	if err := s.requireActiveEntry(ctx, entryID); err != nil {
		return nil, err
	}

	links, err := s.entryTagRepo.FindActiveByEntry(ctx, entryID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.TagID)
	}
	return s.tagRepo.GetByIDs(ctx, ids)
}

func (s *service) ListTagEntries(ctx context.Context, tagID uuid.UUID) ([]domain.Entry, error) {
	if err := s.requireActiveTag(ctx, tagID); err != nil {
		return nil, err
	}

	links, err := s.entryTagRepo.FindActiveByTag(ctx, tagID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.EntryID)
	}
	return s.entryRepo.GetByIDs(ctx, ids)
}
