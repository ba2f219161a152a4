package tag

import (
	"context"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"lide-archiv/internal/domain"
	"lide-archiv/internal/repository"
	"lide-archiv/internal/service/detail"
)

type Service interface {
	Create(ctx context.Context, input domain.CreateTagInput) (*domain.Tag, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateTagInput) (*domain.Tag, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]domain.Tag, error)
}

type service struct {
	tagRepo       repository.TagRepository
	entryTagRepo  repository.EntryTagRepository
	personTagRepo repository.PersonTagRepository
	auditRepo     repository.AuditLogRepository
	redis         *redis.Client
}

func NewService(repos *repository.Repositories, redis *redis.Client) Service {
	return &service{
		tagRepo:       repos.Tag,
		entryTagRepo:  repos.EntryTag,
		personTagRepo: repos.PersonTag,
		auditRepo:     repos.AuditLog,
		redis:         redis,
	}
}

func (s *service) Create(ctx context.Context, input domain.CreateTagInput) (*domain.Tag, error) {
	name := domain.NormalizeTagName(input.Name)
	if name == "" {
		return nil, domain.Invalid("name is required")
	}

	taken, err := s.tagRepo.ExistsActiveByName(ctx, name, nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrTagNameTaken
	}

	tag := &domain.Tag{
		ID:   uuid.New(),
		Name: name,
	}

	if err := s.tagRepo.Create(ctx, tag); err != nil {
		// Concurrent create slipped past the pre-check.
		if repository.IsUniqueViolation(err) {
			return nil, domain.ErrTagNameTaken
		}
		return nil, err
	}

	_ = repository.CreateAuditLog(s.auditRepo, ctx, domain.CreateAuditLogInput{
		Action:     "CREATE",
		EntityType: "TAG",
		EntityID:   tag.ID,
		NewValue:   tag,
	})

	return tag, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error) {
	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, domain.ErrTagNotFound
	}
	return tag, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input domain.UpdateTagInput) (*domain.Tag, error) {
	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, domain.ErrTagNotFound
	}

	name := domain.NormalizeTagName(input.Name)
	if name == "" {
		return nil, domain.Invalid("name is required")
	}

	taken, err := s.tagRepo.ExistsActiveByName(ctx, name, &id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrTagNameTaken
	}

	oldTag := *tag
	tag.Name = name

	if err := s.tagRepo.Update(ctx, tag); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, domain.ErrTagNameTaken
		}
		return nil, err
	}

	_ = repository.CreateAuditLog(s.auditRepo, ctx, domain.CreateAuditLogInput{
		Action:     "UPDATE",
		EntityType: "TAG",
		EntityID:   tag.ID,
		OldValue:   oldTag,
		NewValue:   *tag,
	})

	s.invalidateViews(ctx, tag.ID)

	return tag, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.tagRepo.GetAnyByID(ctx, id)
	if err != nil {
		return err
	}
	if tag == nil {
		return domain.ErrTagNotFound
	}
	if tag.DeletedAt != nil {
		return domain.ErrAlreadyDeleted
	}

	if err := s.tagRepo.SoftDelete(ctx, id); err != nil {
		return err
	}

	_ = repository.CreateAuditLog(s.auditRepo, ctx, domain.CreateAuditLogInput{
		Action:     "DELETE",
		EntityType: "TAG",
		EntityID:   id,
		OldValue:   tag,
	})

	s.invalidateViews(ctx, id)

	return nil
}

func (s *service) List(ctx context.Context) ([]domain.Tag, error) {
	return s.tagRepo.ListActive(ctx)
}

// invalidateViews drops the cached details of every entry and person
// carrying this tag. Renames and deletes both change what those views show.
func (s *service) invalidateViews(ctx context.Context, tagID uuid.UUID) {
	if s.redis == nil {
		return
	}

	if links, err := s.entryTagRepo.FindActiveByTag(ctx, tagID); err == nil {
		for _, link := range links {
			detail.InvalidateEntry(ctx, s.redis, link.EntryID)
		}
	}
	if links, err := s.personTagRepo.FindActiveByTag(ctx, tagID); err == nil {
		for _, link := range links {
			detail.InvalidatePerson(ctx, s.redis, link.PersonID)
		}
	}
}
