package mocks

import (
	"context"

	"lide-archiv/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type EntryTagRepository struct {
	mock.Mock
}

func (m *EntryTagRepository) Create(ctx context.Context, link *domain.EntryTag) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *EntryTagRepository) FindByKey(ctx context.Context, entryID, tagID uuid.UUID) (*domain.EntryTag, error) {
	args := m.Called(ctx, entryID, tagID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EntryTag), args.Error(1)
}

func (m *EntryTagRepository) FindActiveByEntry(ctx context.Context, entryID uuid.UUID) ([]domain.EntryTag, error) {
	args := m.Called(ctx, entryID)
	return args.Get(0).([]domain.EntryTag), args.Error(1)
}

func (m *EntryTagRepository) FindActiveByTag(ctx context.Context, tagID uuid.UUID) ([]domain.EntryTag, error) {
	args := m.Called(ctx, tagID)
	return args.Get(0).([]domain.EntryTag), args.Error(1)
}

func (m *EntryTagRepository) Revive(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *EntryTagRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
