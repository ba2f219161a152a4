package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"lide-archiv/internal/domain"
)

type PersonEntryRepository interface {
	Create(ctx context.Context, link *domain.PersonEntry) error
	// The natural key is the (person, entry, role) triple; the same person
	// can be linked to the same entry under several roles.
	FindByKey(ctx context.Context, personID, entryID uuid.UUID, role string) (*domain.PersonEntry, error)
	FindActiveByPerson(ctx context.Context, personID uuid.UUID) ([]domain.PersonEntry, error)
	FindActiveByEntry(ctx context.Context, entryID uuid.UUID) ([]domain.PersonEntry, error)
	Revive(ctx context.Context, id uuid.UUID) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type personEntryRepository struct {
	db *sqlx.DB
}

func NewPersonEntryRepository(db *sqlx.DB) PersonEntryRepository {
	return &personEntryRepository{db: db}
}

func (r *personEntryRepository) Create(ctx context.Context, link *domain.PersonEntry) error {
	query := `
		INSERT INTO person_entries (id, person_id, entry_id, role)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query, link.ID, link.PersonID, link.EntryID, link.Role).
		Scan(&link.CreatedAt)
}

func (r *personEntryRepository) FindByKey(ctx context.Context, personID, entryID uuid.UUID, role string) (*domain.PersonEntry, error) {
	var link domain.PersonEntry
	query := `SELECT * FROM person_entries WHERE person_id = $1 AND entry_id = $2 AND role = $3`

	err := r.db.GetContext(ctx, &link, query, personID, entryID, role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *personEntryRepository) FindActiveByPerson(ctx context.Context, personID uuid.UUID) ([]domain.PersonEntry, error) {
	query := `SELECT * FROM person_entries WHERE person_id = $1 AND deleted_at IS NULL`

	var links []domain.PersonEntry
	err := r.db.SelectContext(ctx, &links, query, personID)
	return links, err
}

func (r *personEntryRepository) FindActiveByEntry(ctx context.Context, entryID uuid.UUID) ([]domain.PersonEntry, error) {
	query := `SELECT * FROM person_entries WHERE entry_id = $1 AND deleted_at IS NULL`

	var links []domain.PersonEntry
	err := r.db.SelectContext(ctx, &links, query, entryID)
	return links, err
}

func (r *personEntryRepository) Revive(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE person_entries SET deleted_at = NULL WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *personEntryRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE person_entries SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
