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

type PersonRepository interface {
	Create(ctx context.Context, person *domain.Person) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Person, error)
	GetAnyByID(ctx context.Context, id uuid.UUID) (*domain.Person, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Person, error)
	Update(ctx context.Context, person *domain.Person) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params domain.PaginationParams) ([]domain.Person, int64, error)
}

type personRepository struct {
	db *sqlx.DB
}

func NewPersonRepository(db *sqlx.DB) PersonRepository {
	return &personRepository{db: db}
}

func (r *personRepository) Create(ctx context.Context, person *domain.Person) error {
	query := `
		INSERT INTO persons (id, first_name, last_name, nickname, birth_date, phone, email, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		person.ID, person.FirstName, person.LastName, person.Nickname,
		person.BirthDate, person.Phone, person.Email, person.Note,
	).Scan(&person.CreatedAt, &person.UpdatedAt)
}

func (r *personRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Person, error) {
	var person domain.Person
	query := `SELECT * FROM persons WHERE id = $1 AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &person, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &person, nil
}

// GetAnyByID returns the person regardless of deletion status, so the
// soft-delete path can tell "missing" apart from "already deleted".
func (r *personRepository) GetAnyByID(ctx context.Context, id uuid.UUID) (*domain.Person, error) {
	var person domain.Person
	query := `SELECT * FROM persons WHERE id = $1`

	err := r.db.GetContext(ctx, &person, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *personRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Person, error) {
	if len(ids) == 0 {
		return []domain.Person{}, nil
	}

	query := `SELECT * FROM persons WHERE id = ANY($1) AND deleted_at IS NULL`

	var persons []domain.Person
	err := r.db.SelectContext(ctx, &persons, query, pq.Array(ids))
	return persons, err
}

func (r *personRepository) Update(ctx context.Context, person *domain.Person) error {
	query := `
		UPDATE persons
		SET first_name = $2, last_name = $3, nickname = $4, birth_date = $5,
			phone = $6, email = $7, note = $8, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		person.ID, person.FirstName, person.LastName, person.Nickname,
		person.BirthDate, person.Phone, person.Email, person.Note,
	).Scan(&person.UpdatedAt)
}

func (r *personRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE persons SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *personRepository) List(ctx context.Context, params domain.PaginationParams) ([]domain.Person, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM persons WHERE deleted_at IS NULL`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM persons
		WHERE deleted_at IS NULL
		ORDER BY first_name, last_name
		LIMIT $1 OFFSET $2`

	var persons []domain.Person
	err := r.db.SelectContext(ctx, &persons, query, params.PageSize, params.Offset())
	return persons, total, err
}
