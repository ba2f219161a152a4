package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"lide-archiv/internal/domain"
)

type MediaEntryRepository interface {
	Create(ctx context.Context, link *domain.MediaEntry) error
	FindByKey(ctx context.Context, mediaID, entryID uuid.UUID) (*domain.MediaEntry, error)
	FindActiveByEntry(ctx context.Context, entryID uuid.UUID) ([]domain.MediaEntry, error)
	FindActiveByMedia(ctx context.Context, mediaID uuid.UUID) ([]domain.MediaEntry, error)
	// Revive clears deleted_at and applies the link-local fields supplied
	// with the re-add in the same statement.
	Revive(ctx context.Context, id uuid.UUID, caption *string, sortOrder *int) error
	UpdateAttrs(ctx context.Context, id uuid.UUID, caption *string, sortOrder *int) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type mediaEntryRepository struct {
	db *sqlx.DB
}

func NewMediaEntryRepository(db *sqlx.DB) MediaEntryRepository {
	return &mediaEntryRepository{db: db}
}

func (r *mediaEntryRepository) Create(ctx context.Context, link *domain.MediaEntry) error {
	query := `
		INSERT INTO media_entries (id, media_id, entry_id, caption, sort_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		link.ID, link.MediaID, link.EntryID, link.Caption, link.SortOrder,
	).Scan(&link.CreatedAt)
}

func (r *mediaEntryRepository) FindByKey(ctx context.Context, mediaID, entryID uuid.UUID) (*domain.MediaEntry, error) {
	var link domain.MediaEntry
	query := `SELECT * FROM media_entries WHERE media_id = $1 AND entry_id = $2`

	err := r.db.GetContext(ctx, &link, query, mediaID, entryID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *mediaEntryRepository) FindActiveByEntry(ctx context.Context, entryID uuid.UUID) ([]domain.MediaEntry, error) {
	query := `SELECT * FROM media_entries WHERE entry_id = $1 AND deleted_at IS NULL`

	var links []domain.MediaEntry
	err := r.db.SelectContext(ctx, &links, query, entryID)
	return links, err
}

func (r *mediaEntryRepository) FindActiveByMedia(ctx context.Context, mediaID uuid.UUID) ([]domain.MediaEntry, error) {
	query := `SELECT * FROM media_entries WHERE media_id = $1 AND deleted_at IS NULL`

	var links []domain.MediaEntry
	err := r.db.SelectContext(ctx, &links, query, mediaID)
	return links, err
}

func (r *mediaEntryRepository) Revive(ctx context.Context, id uuid.UUID, caption *string, sortOrder *int) error {
	query := `UPDATE media_entries SET deleted_at = NULL, caption = $2, sort_order = $3 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, caption, sortOrder)
	return err
}

func (r *mediaEntryRepository) UpdateAttrs(ctx context.Context, id uuid.UUID, caption *string, sortOrder *int) error {
	query := `UPDATE media_entries SET caption = $2, sort_order = $3 WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id, caption, sortOrder)
	return err
}

func (r *mediaEntryRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE media_entries SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
