package mocks

import (
	"context"
	"time"

	"lide-archiv/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type PersonRelationRepository struct {
	mock.Mock
}

func (m *PersonRelationRepository) Create(ctx context.Context, rel *domain.PersonRelation) error {
	args := m.Called(ctx, rel)
	return args.Error(0)
}

func (m *PersonRelationRepository) FindByKey(ctx context.Context, fromID, toID uuid.UUID, relType string) (*domain.PersonRelation, error) {
	args := m.Called(ctx, fromID, toID, relType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PersonRelation), args.Error(1)
}

func (m *PersonRelationRepository) FindActiveByFrom(ctx context.Context, personID uuid.UUID) ([]domain.PersonRelation, error) {
	args := m.Called(ctx, personID)
	return args.Get(0).([]domain.PersonRelation), args.Error(1)
}

func (m *PersonRelationRepository) FindActiveByTo(ctx context.Context, personID uuid.UUID) ([]domain.PersonRelation, error) {
	args := m.Called(ctx, personID)
	return args.Get(0).([]domain.PersonRelation), args.Error(1)
}

func (m *PersonRelationRepository) Revive(ctx context.Context, id uuid.UUID, note *string, validFrom, validTo *time.Time) error {
	args := m.Called(ctx, id, note, validFrom, validTo)
	return args.Error(0)
}

func (m *PersonRelationRepository) UpdateAttrs(ctx context.Context, id uuid.UUID, note *string, validFrom, validTo *time.Time) error {
	args := m.Called(ctx, id, note, validFrom, validTo)
	return args.Error(0)
}

func (m *PersonRelationRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
