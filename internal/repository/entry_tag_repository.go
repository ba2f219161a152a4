package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"lide-archiv/internal/domain"
)

type EntryTagRepository interface {
	Create(ctx context.Context, link *domain.EntryTag) error
	// FindByKey returns the link for a natural key whether or not it is
	// soft-deleted, so reconciliation can tell "no link" from "deleted link".
	FindByKey(ctx context.Context, entryID, tagID uuid.UUID) (*domain.EntryTag, error)
	FindActiveByEntry(ctx context.Context, entryID uuid.UUID) ([]domain.EntryTag, error)
	FindActiveByTag(ctx context.Context, tagID uuid.UUID) ([]domain.EntryTag, error)
	Revive(ctx context.Context, id uuid.UUID) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type entryTagRepository struct {
	db *sqlx.DB
}

func NewEntryTagRepository(db *sqlx.DB) EntryTagRepository {
	return &entryTagRepository{db: db}
}

func (r *entryTagRepository) Create(ctx context.Context, link *domain.EntryTag) error {
	query := `
		INSERT INTO entry_tags (id, entry_id, tag_id)
		VALUES ($1, $2, $3)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query, link.ID, link.EntryID, link.TagID).
		Scan(&link.CreatedAt)
}

func (r *entryTagRepository) FindByKey(ctx context.Context, entryID, tagID uuid.UUID) (*domain.EntryTag, error) {
	var link domain.EntryTag
	query := `SELECT * FROM entry_tags WHERE entry_id = $1 AND tag_id = $2`

	err := r.db.GetContext(ctx, &link, query, entryID, tagID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *entryTagRepository) FindActiveByEntry(ctx context.Context, entryID uuid.UUID) ([]domain.EntryTag, error) {
	query := `SELECT * FROM entry_tags WHERE entry_id = $1 AND deleted_at IS NULL`

	var links []domain.EntryTag
	err := r.db.SelectContext(ctx, &links, query, entryID)
	return links, err
}

func (r *entryTagRepository) FindActiveByTag(ctx context.Context, tagID uuid.UUID) ([]domain.EntryTag, error) {
	query := `SELECT * FROM entry_tags WHERE tag_id = $1 AND deleted_at IS NULL`

	var links []domain.EntryTag
	err := r.db.SelectContext(ctx, &links, query, tagID)
	return links, err
}

func (r *entryTagRepository) Revive(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE entry_tags SET deleted_at = NULL WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *entryTagRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE entry_tags SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
