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

type EntryRepository interface {
	Create(ctx context.Context, entry *domain.Entry) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	GetAnyByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Entry, error)
	Update(ctx context.Context, entry *domain.Entry) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, entryType *string, params domain.PaginationParams) ([]domain.Entry, int64, error)
}

type entryRepository struct {
	db *sqlx.DB
}

func NewEntryRepository(db *sqlx.DB) EntryRepository {
	return &entryRepository{db: db}
}

func (r *entryRepository) Create(ctx context.Context, entry *domain.Entry) error {
	query := `
		INSERT INTO entries (id, type, title, content, occurred_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		entry.ID, entry.Type, entry.Title, entry.Content, entry.OccurredAt,
	).Scan(&entry.CreatedAt, &entry.UpdatedAt)
}

func (r *entryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	var entry domain.Entry
	query := `SELECT * FROM entries WHERE id = $1 AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &entry, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *entryRepository) GetAnyByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	var entry domain.Entry
	query := `SELECT * FROM entries WHERE id = $1`

	err := r.db.GetContext(ctx, &entry, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *entryRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Entry, error) {
	if len(ids) == 0 {
		return []domain.Entry{}, nil
	}

	query := `SELECT * FROM entries WHERE id = ANY($1) AND deleted_at IS NULL`

	var entries []domain.Entry
	err := r.db.SelectContext(ctx, &entries, query, pq.Array(ids))
	return entries, err
}

func (r *entryRepository) Update(ctx context.Context, entry *domain.Entry) error {
	query := `
		UPDATE entries
		SET type = $2, title = $3, content = $4, occurred_at = $5, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		entry.ID, entry.Type, entry.Title, entry.Content, entry.OccurredAt,
	).Scan(&entry.UpdatedAt)
}

func (r *entryRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE entries SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *entryRepository) List(ctx context.Context, entryType *string, params domain.PaginationParams) ([]domain.Entry, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM entries WHERE deleted_at IS NULL AND ($1::text IS NULL OR type = $1)`
	if err := r.db.GetContext(ctx, &total, countQuery, entryType); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM entries
		WHERE deleted_at IS NULL AND ($1::text IS NULL OR type = $1)
		ORDER BY occurred_at DESC NULLS LAST, created_at DESC
		LIMIT $2 OFFSET $3`

	var entries []domain.Entry
	err := r.db.SelectContext(ctx, &entries, query, entryType, params.PageSize, params.Offset())
	return entries, total, err
}
