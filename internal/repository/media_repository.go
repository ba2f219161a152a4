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

type MediaRepository interface {
	Create(ctx context.Context, media *domain.Media) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Media, error)
	GetAnyByID(ctx context.Context, id uuid.UUID) (*domain.Media, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Media, error)
	Update(ctx context.Context, media *domain.Media) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, mediaType *string, params domain.PaginationParams) ([]domain.Media, int64, error)
}

type mediaRepository struct {
	db *sqlx.DB
}

func NewMediaRepository(db *sqlx.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(ctx context.Context, media *domain.Media) error {
	query := `
		INSERT INTO media (id, media_type, mime_type, uri, title, note, taken_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		media.ID, media.MediaType, media.MimeType, media.URI,
		media.Title, media.Note, media.TakenAt,
	).Scan(&media.CreatedAt, &media.UpdatedAt)
}

func (r *mediaRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Media, error) {
	var media domain.Media
	query := `SELECT * FROM media WHERE id = $1 AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &media, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &media, nil
}

func (r *mediaRepository) GetAnyByID(ctx context.Context, id uuid.UUID) (*domain.Media, error) {
	var media domain.Media
	query := `SELECT * FROM media WHERE id = $1`

	err := r.db.GetContext(ctx, &media, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &media, nil
}

func (r *mediaRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Media, error) {
	if len(ids) == 0 {
		return []domain.Media{}, nil
	}

	query := `SELECT * FROM media WHERE id = ANY($1) AND deleted_at IS NULL`

	var items []domain.Media
	err := r.db.SelectContext(ctx, &items, query, pq.Array(ids))
	return items, err
}

func (r *mediaRepository) Update(ctx context.Context, media *domain.Media) error {
	query := `
		UPDATE media
		SET media_type = $2, mime_type = $3, uri = $4, title = $5,
			note = $6, taken_at = $7, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		media.ID, media.MediaType, media.MimeType, media.URI,
		media.Title, media.Note, media.TakenAt,
	).Scan(&media.UpdatedAt)
}

func (r *mediaRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE media SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *mediaRepository) List(ctx context.Context, mediaType *string, params domain.PaginationParams) ([]domain.Media, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM media WHERE deleted_at IS NULL AND ($1::text IS NULL OR media_type = $1)`
	if err := r.db.GetContext(ctx, &total, countQuery, mediaType); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM media
		WHERE deleted_at IS NULL AND ($1::text IS NULL OR media_type = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	var items []domain.Media
	err := r.db.SelectContext(ctx, &items, query, mediaType, params.PageSize, params.Offset())
	return items, total, err
}
