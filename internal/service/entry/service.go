package entry

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"lide-archiv/internal/domain"
	"lide-archiv/internal/repository"
	"lide-archiv/internal/service/detail"
)

type Service interface {
	Create(ctx context.Context, input domain.CreateEntryInput) (*domain.Entry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateEntryInput) (*domain.Entry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, entryType *string, params domain.PaginationParams) (domain.PaginatedResponse[domain.Entry], error)
}

type service struct {
	entryRepo       repository.EntryRepository
	personEntryRepo repository.PersonEntryRepository
	auditRepo       repository.AuditLogRepository
	redis           *redis.Client
}

func NewService(repos *repository.Repositories, redis *redis.Client) Service {
	return &service{
		entryRepo:       repos.Entry,
		personEntryRepo: repos.PersonEntry,
		auditRepo:       repos.AuditLog,
		redis:           redis,
	}
}

func (s *service) Create(ctx context.Context, input domain.CreateEntryInput) (*domain.Entry, error) {
	if strings.TrimSpace(input.Type) == "" {
		return nil, domain.Invalid("type is required")
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, domain.Invalid("content is required")
	}

	entry := &domain.Entry{
		ID:         uuid.New(),
		Type:       strings.TrimSpace(input.Type),
		Title:      input.Title,
		Content:    input.Content,
		OccurredAt: input.OccurredAt,
	}

	if err := s.entryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	_ = repository.CreateAuditLog(s.auditRepo, ctx, domain.CreateAuditLogInput{
		Action:     "CREATE",
		EntityType: "ENTRY",
		EntityID:   entry.ID,
		NewValue:   entry,
	})

	return entry, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	entry, err := s.entryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrEntryNotFound
	}
	return entry, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input domain.UpdateEntryInput) (*domain.Entry, error) {
	entry, err := s.entryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrEntryNotFound
	}

	oldEntry := *entry

	if input.Type != nil {
		if strings.TrimSpace(*input.Type) == "" {
			return nil, domain.Invalid("type must not be blank")
		}
		entry.Type = strings.TrimSpace(*input.Type)
	}
	if input.Content != nil {
		if strings.TrimSpace(*input.Content) == "" {
			return nil, domain.Invalid("content must not be blank")
		}
		entry.Content = *input.Content
	}
	if input.Title.Set {
		entry.Title = input.Title.Value
	}
	if input.OccurredAt.Set {
		entry.OccurredAt = input.OccurredAt.Value
	}

	if err := s.entryRepo.Update(ctx, entry); err != nil {
		return nil, err
	}

	_ = repository.CreateAuditLog(s.auditRepo, ctx, domain.CreateAuditLogInput{
		Action:     "UPDATE",
		EntityType: "ENTRY",
		EntityID:   entry.ID,
		OldValue:   oldEntry,
		NewValue:   *entry,
	})

	s.invalidateViews(ctx, entry.ID)

	return entry, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	entry, err := s.entryRepo.GetAnyByID(ctx, id)
	if err != nil {
		return err
	}
	if entry == nil {
		return domain.ErrEntryNotFound
	}
	if entry.DeletedAt != nil {
		return domain.ErrAlreadyDeleted
	}

	if err := s.entryRepo.SoftDelete(ctx, id); err != nil {
		return err
	}

	_ = repository.CreateAuditLog(s.auditRepo, ctx, domain.CreateAuditLogInput{
		Action:     "DELETE",
		EntityType: "ENTRY",
		EntityID:   id,
		OldValue:   entry,
	})

	s.invalidateViews(ctx, id)

	return nil
}

func (s *service) List(ctx context.Context, entryType *string, params domain.PaginationParams) (domain.PaginatedResponse[domain.Entry], error) {
	entries, total, err := s.entryRepo.List(ctx, entryType, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Entry]{}, err
	}

	return domain.NewPaginatedResponse(entries, params.Page, params.PageSize, total), nil
}

// invalidateViews drops the entry's own cached detail plus the person
// details that list this entry.
func (s *service) invalidateViews(ctx context.Context, entryID uuid.UUID) {
	detail.InvalidateEntry(ctx, s.redis, entryID)

	if s.redis == nil {
		return
	}

	if links, err := s.personEntryRepo.FindActiveByEntry(ctx, entryID); err == nil {
		for _, link := range links {
			detail.InvalidatePerson(ctx, s.redis, link.PersonID)
		}
	}
}
