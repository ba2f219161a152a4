package mocks

import (
	"context"

	"lide-archiv/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type EntryRepository struct {
	mock.Mock
}

func (m *EntryRepository) Create(ctx context.Context, entry *domain.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *EntryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *EntryRepository) GetAnyByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *EntryRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Entry, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]domain.Entry), args.Error(1)
}

func (m *EntryRepository) Update(ctx context.Context, entry *domain.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *EntryRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *EntryRepository) List(ctx context.Context, entryType *string, params domain.PaginationParams) ([]domain.Entry, int64, error) {
	args := m.Called(ctx, entryType, params)
	return args.Get(0).([]domain.Entry), args.Get(1).(int64), args.Error(2)
}
