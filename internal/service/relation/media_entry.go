package relation

import (
	"context"

	"github.com/google/uuid"

	"lide-archiv/internal/domain"
	"lide-archiv/internal/repository"
	"lide-archiv/internal/service/detail"
)

func (s *service) AddMediaEntry(ctx context.Context, mediaID, entryID uuid.UUID, attrs domain.MediaLinkAttrs) error {
	if err := s.requireActiveMedia(ctx, mediaID); err != nil {
		return err
	}
	if err := s.requireActiveEntry(ctx, entryID); err != nil {
		return err
	}

	link, err := s.mediaEntryRepo.FindByKey(ctx, mediaID, entryID)
	if err != nil {
		return err
	}

	switch {
	case link != nil && link.DeletedAt == nil:
		// Active link keeps its caption and sort order.
		return nil
	case link != nil:
		if err := s.mediaEntryRepo.Revive(ctx, link.ID, attrs.Caption, attrs.SortOrder); err != nil {
			return err
		}
		s.audit(ctx, "LINK", "MEDIA_ENTRY", link.ID, nil, attrs)
	default:
		link = &domain.MediaEntry{
			ID:        uuid.New(),
			MediaID:   mediaID,
			EntryID:   entryID,
			Caption:   attrs.Caption,
			SortOrder: attrs.SortOrder,
		}
		if err := s.mediaEntryRepo.Create(ctx, link); err != nil {
			if repository.IsUniqueViolation(err) {
				return nil
			}
			return err
		}
		s.audit(ctx, "LINK", "MEDIA_ENTRY", link.ID, nil, link)
	}

	detail.InvalidateEntry(ctx, s.redis, entryID)
	return nil
}

func (s *service) UpdateMediaEntry(ctx context.Context, mediaID, entryID uuid.UUID, attrs domain.MediaLinkAttrs) error {
	link, err := s.mediaEntryRepo.FindByKey(ctx, mediaID, entryID)
	if err != nil {
		return err
	}
	if link == nil || link.DeletedAt != nil {
		return domain.ErrLinkNotFound
	}

	if err := s.mediaEntryRepo.UpdateAttrs(ctx, link.ID, attrs.Caption, attrs.SortOrder); err != nil {
		return err
	}

	s.audit(ctx, "UPDATE", "MEDIA_ENTRY", link.ID, link, attrs)
	detail.InvalidateEntry(ctx, s.redis, entryID)
	return nil
}

func (s *service) RemoveMediaEntry(ctx context.Context, mediaID, entryID uuid.UUID) error {
	link, err := s.mediaEntryRepo.FindByKey(ctx, mediaID, entryID)
	if err != nil {
		return err
	}
	if link == nil || link.DeletedAt != nil {
		return domain.ErrLinkNotFound
	}

	if err := s.mediaEntryRepo.SoftDelete(ctx, link.ID); err != nil {
		return err
	}

	s.audit(ctx, "UNLINK", "MEDIA_ENTRY", link.ID, link, nil)
	detail.InvalidateEntry(ctx, s.redis, entryID)
	return nil
}

func (s *service) ListEntryMedia(ctx context.Context, entryID uuid.UUID) ([]domain.MediaWithLink, error) {
	if err := s.requireActiveEntry(ctx, entryID); err != nil {
		return nil, err
	}

	links, err := s.mediaEntryRepo.FindActiveByEntry(ctx, entryID)
	if err != nil {
		return nil, err
	}
	domain.SortMediaEntries(links)

	ids := make([]uuid.UUID, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.MediaID)
	}
	media, err := s.mediaRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]domain.Media, len(media))
	for _, m := range media {
		byID[m.ID] = m
	}

	result := make([]domain.MediaWithLink, 0, len(links))
	for _, link := range links {
		m, ok := byID[link.MediaID]
		if !ok {
			continue
		}
		result = append(result, domain.MediaWithLink{
			Media:     m,
			Caption:   link.Caption,
			SortOrder: link.SortOrder,
		})
	}
	return result, nil
}

func (s *service) ListMediaEntries(ctx context.Context, mediaID uuid.UUID) ([]domain.EntryWithLink, error) {
	if err := s.requireActiveMedia(ctx, mediaID); err != nil {
		return nil, err
	}

	links, err := s.mediaEntryRepo.FindActiveByMedia(ctx, mediaID)
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

	result := make([]domain.EntryWithLink, 0, len(links))
	for _, link := range links {
		entry, ok := byID[link.EntryID]
		if !ok {
			continue
		}
		result = append(result, domain.EntryWithLink{
			Entry:     entry,
			Caption:   link.Caption,
			SortOrder: link.SortOrder,
		})
	}
	return result, nil
}
