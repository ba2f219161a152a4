package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"lide-archiv/internal/domain"
)

type PersonRelationRepository interface {
	Create(ctx context.Context, rel *domain.PersonRelation) error
	// Natural key for reconciliation is (from, to, type).
	FindByKey(ctx context.Context, fromID, toID uuid.UUID, relType string) (*domain.PersonRelation, error)
	FindActiveByFrom(ctx context.Context, personID uuid.UUID) ([]domain.PersonRelation, error)
	FindActiveByTo(ctx context.Context, personID uuid.UUID) ([]domain.PersonRelation, error)
	Revive(ctx context.Context, id uuid.UUID, note *string, validFrom, validTo *time.Time) error
	UpdateAttrs(ctx context.Context, id uuid.UUID, note *string, validFrom, validTo *time.Time) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type personRelationRepository struct {
	db *sqlx.DB
}

func NewPersonRelationRepository(db *sqlx.DB) PersonRelationRepository {
	return &personRelationRepository{db: db}
}

func (r *personRelationRepository) Create(ctx context.Context, rel *domain.PersonRelation) error {
	query := `
		INSERT INTO person_relations (id, from_person_id, to_person_id, type, note, valid_from, valid_to)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		rel.ID, rel.FromPersonID, rel.ToPersonID, rel.Type,
		rel.Note, rel.ValidFrom, rel.ValidTo,
	).Scan(&rel.CreatedAt)
}

func (r *personRelationRepository) FindByKey(ctx context.Context, fromID, toID uuid.UUID, relType string) (*domain.PersonRelation, error) {
	var rel domain.PersonRelation
	query := `SELECT * FROM person_relations WHERE from_person_id = $1 AND to_person_id = $2 AND type = $3`

	err := r.db.GetContext(ctx, &rel, query, fromID, toID, relType)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rel, nil
}

func (r *personRelationRepository) FindActiveByFrom(ctx context.Context, personID uuid.UUID) ([]domain.PersonRelation, error) {
	query := `SELECT * FROM person_relations WHERE from_person_id = $1 AND deleted_at IS NULL`

	var rels []domain.PersonRelation
	err := r.db.SelectContext(ctx, &rels, query, personID)
	return rels, err
}

func (r *personRelationRepository) FindActiveByTo(ctx context.Context, personID uuid.UUID) ([]domain.PersonRelation, error) {
	query := `SELECT * FROM person_relations WHERE to_person_id = $1 AND deleted_at IS NULL`

	var rels []domain.PersonRelation
	err := r.db.SelectContext(ctx, &rels, query, personID)
	return rels, err
}

func (r *personRelationRepository) Revive(ctx context.Context, id uuid.UUID, note *string, validFrom, validTo *time.Time) error {
	query := `UPDATE person_relations SET deleted_at = NULL, note = $2, valid_from = $3, valid_to = $4 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, note, validFrom, validTo)
	return err
}

func (r *personRelationRepository) UpdateAttrs(ctx context.Context, id uuid.UUID, note *string, validFrom, validTo *time.Time) error {
	query := `UPDATE person_relations SET note = $2, valid_from = $3, valid_to = $4 WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id, note, validFrom, validTo)
	return err
}

func (r *personRelationRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE person_relations SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
