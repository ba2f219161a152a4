package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"lide-archiv/internal/domain"
	"lide-archiv/internal/repository"
)

// Service wipes the database and loads a small sample dataset. The handler
// only exposes it in the development environment.
type Service interface {
	Reseed(ctx context.Context) error
}

type service struct {
	db    *sqlx.DB
	repos *repository.Repositories
}

func NewService(db *sqlx.DB, repos *repository.Repositories) Service {
	return &service{db: db, repos: repos}
}

func (s *service) Reseed(ctx context.Context) error {
	if err := s.truncate(ctx); err != nil {
		return fmt.Errorf("truncating tables: %w", err)
	}
	if err := s.load(ctx); err != nil {
		return fmt.Errorf("loading sample data: %w", err)
	}
	return nil
}

func (s *service) truncate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		TRUNCATE entry_tags, person_tags, person_entries, media_entries,
			person_relations, audit_logs, entries, media, tags, persons`)
	return err
}

func (s *service) load(ctx context.Context) error {
	jan := &domain.Person{
		ID:        newID(),
		FirstName: "Jan",
		LastName:  ptr("Novák"),
		Email:     ptr("jan.novak@example.com"),
	}
	eva := &domain.Person{
		ID:        newID(),
		FirstName: "Eva",
		LastName:  ptr("Svobodová"),
		Nickname:  ptr("Evka"),
	}
	for _, p := range []*domain.Person{jan, eva} {
		if err := s.repos.Person.Create(ctx, p); err != nil {
			return err
		}
	}

	family := &domain.Tag{ID: newID(), Name: "rodina"}
	travel := &domain.Tag{ID: newID(), Name: "cestování"}
	for _, t := range []*domain.Tag{family, travel} {
		if err := s.repos.Tag.Create(ctx, t); err != nil {
			return err
		}
	}

	trip := &domain.Entry{
		ID:         newID(),
		Type:       "note",
		Title:      ptr("Výlet do Krkonoš"),
		Content:    "Víkendový výlet s rodinou, počasí vyšlo.",
		OccurredAt: timePtr(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)),
	}
	if err := s.repos.Entry.Create(ctx, trip); err != nil {
		return err
	}

	photo := &domain.Media{
		ID:        newID(),
		MediaType: "photo",
		MimeType:  ptr("image/jpeg"),
		URI:       "https://example.com/media/snezka.jpg",
		Title:     ptr("Sněžka"),
	}
	if err := s.repos.Media.Create(ctx, photo); err != nil {
		return err
	}

	links := []error{
		s.repos.EntryTag.Create(ctx, &domain.EntryTag{ID: newID(), EntryID: trip.ID, TagID: travel.ID}),
		s.repos.PersonTag.Create(ctx, &domain.PersonTag{ID: newID(), PersonID: jan.ID, TagID: family.ID}),
		s.repos.PersonEntry.Create(ctx, &domain.PersonEntry{ID: newID(), PersonID: jan.ID, EntryID: trip.ID, Role: domain.RoleDefault}),
		s.repos.PersonEntry.Create(ctx, &domain.PersonEntry{ID: newID(), PersonID: eva.ID, EntryID: trip.ID, Role: "organizer"}),
		s.repos.MediaEntry.Create(ctx, &domain.MediaEntry{ID: newID(), MediaID: photo.ID, EntryID: trip.ID, Caption: ptr("Vrchol Sněžky"), SortOrder: intPtr(1)}),
		s.repos.PersonRelation.Create(ctx, &domain.PersonRelation{
			ID:           newID(),
			FromPersonID: jan.ID,
			ToPersonID:   eva.ID,
			Type:         "SPOUSE",
		}),
	}
	for _, err := range links {
		if err != nil {
			return err
		}
	}
	return nil
}

func newID() uuid.UUID { return uuid.New() }

func ptr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func timePtr(t time.Time) *time.Time { return &t }
