package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"lide-archiv/internal/domain"
)

type PersonTagRepository interface {
	Create(ctx context.Context, link *domain.PersonTag) error
	FindByKey(ctx context.Context, personID, tagID uuid.UUID) (*domain.PersonTag, error)
	FindActiveByPerson(ctx context.Context, personID uuid.UUID) ([]domain.PersonTag, error)
	FindActiveByTag(ctx context.Context, tagID uuid.UUID) ([]domain.PersonTag, error)
	Revive(ctx context.Context, id uuid.UUID) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type personTagRepository struct {
	db *sqlx.DB
}

func NewPersonTagRepository(db *sqlx.DB) PersonTagRepository {
	return &personTagRepository{db: db}
}

func (r *personTagRepository) Create(ctx context.Context, link *domain.PersonTag) error {
	query := `
		INSERT INTO person_tags (id, person_id, tag_id)
		VALUES ($1, $2, $3)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query, link.ID, link.PersonID, link.TagID).
		Scan(&link.CreatedAt)
}

func (r *personTagRepository) FindByKey(ctx context.Context, personID, tagID uuid.UUID) (*domain.PersonTag, error) {
	var link domain.PersonTag
	query := `SELECT * FROM person_tags WHERE person_id = $1 AND tag_id = $2`

	err := r.db.GetContext(ctx, &link, query, personID, tagID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *personTagRepository) FindActiveByPerson(ctx context.Context, personID uuid.UUID) ([]domain.PersonTag, error) {
	query := `SELECT * FROM person_tags WHERE person_id = $1 AND deleted_at IS NULL`

	var links []domain.PersonTag
	err := r.db.SelectContext(ctx, &links, query, personID)
	return links, err
}

func (r *personTagRepository) FindActiveByTag(ctx context.Context, tagID uuid.UUID) ([]domain.PersonTag, error) {
	query := `SELECT * FROM person_tags WHERE tag_id = $1 AND deleted_at IS NULL`

	var links []domain.PersonTag
	err := r.db.SelectContext(ctx, &links, query, tagID)
	return links, err
}

func (r *personTagRepository) Revive(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE person_tags SET deleted_at = NULL WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *personTagRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE person_tags SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
