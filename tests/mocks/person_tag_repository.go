package mocks

import (
	"context"

	"lide-archiv/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type PersonTagRepository struct {
	mock.Mock
}

func (m *PersonTagRepository) Create(ctx context.Context, link *domain.PersonTag) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *PersonTagRepository) FindByKey(ctx context.Context, personID, tagID uuid.UUID) (*domain.PersonTag, error) {
	args := m.Called(ctx, personID, tagID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PersonTag), args.Error(1)
}

func (m *PersonTagRepository) FindActiveByPerson(ctx context.Context, personID uuid.UUID) ([]domain.PersonTag, error) {
	args := m.Called(ctx, personID)
	return args.Get(0).([]domain.PersonTag), args.Error(1)
}

func (m *PersonTagRepository) FindActiveByTag(ctx context.Context, tagID uuid.UUID) ([]domain.PersonTag, error) {
	args := m.Called(ctx, tagID)
	return args.Get(0).([]domain.PersonTag), args.Error(1)
}

func (m *PersonTagRepository) Revive(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *PersonTagRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
