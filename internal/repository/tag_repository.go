package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"lide-archiv/internal/domain"
)

type TagRepository interface {
	Create(ctx context.Context, tag *domain.Tag) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error)
	GetAnyByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Tag, error)
	Update(ctx context.Context, tag *domain.Tag) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	ListActive(ctx context.Context) ([]domain.Tag, error)
	ExistsActiveByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error)
}

type tagRepository struct {
	db *sqlx.DB
}

func NewTagRepository(db *sqlx.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(ctx context.Context, tag *domain.Tag) error {
	query := `
		INSERT INTO tags (id, name)
		VALUES ($1, $2)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query, tag.ID, tag.Name).
		Scan(&tag.CreatedAt, &tag.UpdatedAt)
}

func (r *tagRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error) {
	var tag domain.Tag
	query := `SELECT * FROM tags WHERE id = $1 AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &tag, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) GetAnyByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error) {
	var tag domain.Tag
	query := `SELECT * FROM tags WHERE id = $1`

	err := r.db.GetContext(ctx, &tag, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Tag, error) {
	if len(ids) == 0 {
		return []domain.Tag{}, nil
	}

	query := `SELECT * FROM tags WHERE id = ANY($1) AND deleted_at IS NULL`

	var tags []domain.Tag
	err := r.db.SelectContext(ctx, &tags, query, pq.Array(ids))
	return tags, err
}

func (r *tagRepository) Update(ctx context.Context, tag *domain.Tag) error {
	query := `
		UPDATE tags
		SET name = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query, tag.ID, tag.Name).
		Scan(&tag.UpdatedAt)
}

func (r *tagRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE tags SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *tagRepository) ListActive(ctx context.Context) ([]domain.Tag, error) {
	query := `SELECT * FROM tags WHERE deleted_at IS NULL ORDER BY name`

	var tags []domain.Tag
	err := r.db.SelectContext(ctx, &tags, query)
	return tags, err
}

// ExistsActiveByName matches case-insensitively among active tags.
// excludeID skips the tag being renamed so a no-op rename is not a
// conflict with itself.
func (r *tagRepository) ExistsActiveByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM tags
			WHERE LOWER(name) = LOWER($1)
				AND deleted_at IS NULL
				AND ($2::uuid IS NULL OR id <> $2)
		)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, name, excludeID)
	return exists, err
}
