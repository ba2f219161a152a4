package mocks

import (
	"context"

	"lide-archiv/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MediaEntryRepository struct {
	mock.Mock
}

func (m *MediaEntryRepository) Create(ctx context.Context, link *domain.MediaEntry) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MediaEntryRepository) FindByKey(ctx context.Context, mediaID, entryID uuid.UUID) (*domain.MediaEntry, error) {
	args := m.Called(ctx, mediaID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MediaEntry), args.Error(1)
}

func (m *MediaEntryRepository) FindActiveByEntry(ctx context.Context, entryID uuid.UUID) ([]domain.MediaEntry, error) {
	args := m.Called(ctx, entryID)
	return args.Get(0).([]domain.MediaEntry), args.Error(1)
}

func (m *MediaEntryRepository) FindActiveByMedia(ctx context.Context, mediaID uuid.UUID) ([]domain.MediaEntry, error) {
	args := m.Called(ctx, mediaID)
	return args.Get(0).([]domain.MediaEntry), args.Error(1)
}

func (m *MediaEntryRepository) Revive(ctx context.Context, id uuid.UUID, caption *string, sortOrder *int) error {
	args := m.Called(ctx, id, caption, sortOrder)
	return args.Error(0)
}

func (m *MediaEntryRepository) UpdateAttrs(ctx context.Context, id uuid.UUID, caption *string, sortOrder *int) error {
	args := m.Called(ctx, id, caption, sortOrder)
	return args.Error(0)
}

func (m *MediaEntryRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
