package mocks

import (
	"context"

	"lide-archiv/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type PersonEntryRepository struct {
	mock.Mock
}

func (m *PersonEntryRepository) Create(ctx context.Context, link *domain.PersonEntry) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *PersonEntryRepository) FindByKey(ctx context.Context, personID, entryID uuid.UUID, role string) (*domain.PersonEntry, error) {
	args := m.Called(ctx, personID, entryID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PersonEntry), args.Error(1)
}

func (m *PersonEntryRepository) FindActiveByPerson(ctx context.Context, personID uuid.UUID) ([]domain.PersonEntry, error) {
	args := m.Called(ctx, personID)
	return args.Get(0).([]domain.PersonEntry), args.Error(1)
}

func (m *PersonEntryRepository) FindActiveByEntry(ctx context.Context, entryID uuid.UUID) ([]domain.PersonEntry, error) {
	args := m.Called(ctx, entryID)
	return args.Get(0).([]domain.PersonEntry), args.Error(1)
}

func (m *PersonEntryRepository) Revive(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *PersonEntryRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
