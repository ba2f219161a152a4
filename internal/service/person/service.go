package person

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
	Create(ctx context.Context, input domain.CreatePersonInput) (*domain.Person, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Person, error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdatePersonInput) (*domain.Person, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Person], error)
}

type service struct {
	personRepo      repository.PersonRepository
	personEntryRepo repository.PersonEntryRepository
	relationRepo    repository.PersonRelationRepository
	auditRepo       repository.AuditLogRepository
	redis           *redis.Client
}

func NewService(repos *repository.Repositories, redis *redis.Client) Service {
	return &service{
		personRepo:      repos.Person,
		personEntryRepo: repos.PersonEntry,
		relationRepo:    repos.PersonRelation,
		auditRepo:       repos.AuditLog,
		redis:           redis,
	}
}

func (s *service) Create(ctx context.Context, input domain.CreatePersonInput) (*domain.Person, error) {
	if strings.TrimSpace(input.FirstName) == "" {
		return nil, domain.Invalid("first_name is required")
	}

	person := &domain.Person{
		ID:        uuid.New(),
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  input.LastName,
		Nickname:  input.Nickname,
		BirthDate: input.BirthDate,
		Phone:     input.Phone,
		Email:     input.Email,
		Note:      input.Note,
	}

	if err := s.personRepo.Create(ctx, person); err != nil {
		return nil, err
	}

	_ = repository.CreateAuditLog(s.auditRepo, ctx, domain.CreateAuditLogInput{
		Action:     "CREATE",
		EntityType: "PERSON",
		EntityID:   person.ID,
		NewValue:   person,
	})

	return person, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Person, error) {
	person, err := s.personRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, domain.ErrPersonNotFound
	}
	return person, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input domain.UpdatePersonInput) (*domain.Person, error) {
	person, err := s.personRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, domain.ErrPersonNotFound
	}

	oldPerson := *person

	if input.FirstName != nil {
		if strings.TrimSpace(*input.FirstName) == "" {
			return nil, domain.Invalid("first_name must not be blank")
		}
		person.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName.Set {
		person.LastName = input.LastName.Value
	}
	if input.Nickname.Set {
		person.Nickname = input.Nickname.Value
	}
	if input.BirthDate.Set {
		person.BirthDate = input.BirthDate.Value
	}
	if input.Phone.Set {
		person.Phone = input.Phone.Value
	}
	if input.Email.Set {
		person.Email = input.Email.Value
	}
	if input.Note.Set {
		person.Note = input.Note.Value
	}

	if err := s.personRepo.Update(ctx, person); err != nil {
		return nil, err
	}

	_ = repository.CreateAuditLog(s.auditRepo, ctx, domain.CreateAuditLogInput{
		Action:     "UPDATE",
		EntityType: "PERSON",
		EntityID:   person.ID,
		OldValue:   oldPerson,
		NewValue:   *person,
	})

	s.invalidateViews(ctx, person.ID)

	return person, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	person, err := s.personRepo.GetAnyByID(ctx, id)
	if err != nil {
		return err
	}
	if person == nil {
		return domain.ErrPersonNotFound
	}
	if person.DeletedAt != nil {
		return domain.ErrAlreadyDeleted
	}

	if err := s.personRepo.SoftDelete(ctx, id); err != nil {
		return err
	}

	_ = repository.CreateAuditLog(s.auditRepo, ctx, domain.CreateAuditLogInput{
		Action:     "DELETE",
		EntityType: "PERSON",
		EntityID:   id,
		OldValue:   person,
	})

	s.invalidateViews(ctx, id)

	return nil
}

func (s *service) List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Person], error) {
	persons, total, err := s.personRepo.List(ctx, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Person]{}, err
	}

	return domain.NewPaginatedResponse(persons, params.Page, params.PageSize, total), nil
}

// invalidateViews drops every cached detail view this person appears in:
// their own, the entries they are linked to, and the person on the far
// side of each relation. Lookup failures just leave stale views to expire.
func (s *service) invalidateViews(ctx context.Context, personID uuid.UUID) {
	detail.InvalidatePerson(ctx, s.redis, personID)

	if s.redis == nil {
		return
	}

	if links, err := s.personEntryRepo.FindActiveByPerson(ctx, personID); err == nil {
		for _, link := range links {
			detail.InvalidateEntry(ctx, s.redis, link.EntryID)
		}
	}
	if rels, err := s.relationRepo.FindActiveByFrom(ctx, personID); err == nil {
		for _, rel := range rels {
			detail.InvalidatePerson(ctx, s.redis, rel.ToPersonID)
		}
	}
	if rels, err := s.relationRepo.FindActiveByTo(ctx, personID); err == nil {
		for _, rel := range rels {
			detail.InvalidatePerson(ctx, s.redis, rel.FromPersonID)
		}
	}
}
