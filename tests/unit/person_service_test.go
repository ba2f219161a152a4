package unit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"lide-archiv/internal/domain"
	"lide-archiv/internal/service/person"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPersonService_Create(t *testing.T) {
	repos, m := newRepoMocks()
	svc := person.NewService(repos, nil)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		input := domain.CreatePersonInput{
			FirstName: "Jan",
			LastName:  stringPtr("Novák"),
		}

		m.person.On("Create", ctx, mock.MatchedBy(func(p *domain.Person) bool {
			return p.FirstName == "Jan" && *p.LastName == "Novák"
		})).Return(nil).Once()
		m.audit.On("Create", ctx, mock.MatchedBy(func(log *domain.AuditLog) bool {
			return log.Action == "CREATE" && log.EntityType == "PERSON"
		})).Return(nil).Once()

		created, err := svc.Create(ctx, input)

		assert.NoError(t, err)
		assert.NotNil(t, created)
		assert.Equal(t, "Jan", created.FirstName)

		m.person.AssertExpectations(t)
		m.audit.AssertExpectations(t)
	})

	t.Run("Blank First Name", func(t *testing.T) {
		created, err := svc.Create(ctx, domain.CreatePersonInput{FirstName: "   "})

		assert.Error(t, err)
		assert.Nil(t, created)

		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("Repo Error", func(t *testing.T) {
		m.person.On("Create", ctx, mock.Anything).Return(errors.New("db error")).Once()

		created, err := svc.Create(ctx, domain.CreatePersonInput{FirstName: "Jan"})

		assert.Error(t, err)
		assert.Nil(t, created)
		m.person.AssertExpectations(t)
	})
}

func TestPersonService_Update(t *testing.T) {
	ctx := context.Background()
	personID := uuid.New()

	t.Run("Clears Nullable Field", func(t *testing.T) {
		repos, m := newRepoMocks()
		svc := person.NewService(repos, nil)

		existing := &domain.Person{
			ID:        personID,
			FirstName: "Jan",
			Nickname:  stringPtr("Honza"),
		}
		m.person.On("GetByID", ctx, personID).Return(existing, nil).Once()
		m.person.On("Update", ctx, mock.MatchedBy(func(p *domain.Person) bool {
			return p.Nickname == nil && p.FirstName == "Jan"
		})).Return(nil).Once()
		m.audit.On("Create", ctx, mock.Anything).Return(nil).Once()

		// "nickname": null clears; omitted fields stay untouched.
		input := domain.UpdatePersonInput{
			Nickname: domain.NullableString{Set: true, Value: nil},
		}

		updated, err := svc.Update(ctx, personID, input)

		assert.NoError(t, err)
		assert.Nil(t, updated.Nickname)
		m.person.AssertExpectations(t)
	})

	t.Run("Omitted Field Untouched", func(t *testing.T) {
		repos, m := newRepoMocks()
		svc := person.NewService(repos, nil)

		existing := &domain.Person{
			ID:        personID,
			FirstName: "Jan",
			Nickname:  stringPtr("Honza"),
		}
		m.person.On("GetByID", ctx, personID).Return(existing, nil).Once()
		m.person.On("Update", ctx, mock.Anything).Return(nil).Once()
		m.audit.On("Create", ctx, mock.Anything).Return(nil).Once()

		updated, err := svc.Update(ctx, personID, domain.UpdatePersonInput{
			LastName: domain.NullableString{Set: true, Value: stringPtr("Novák")},
		})

		assert.NoError(t, err)
		assert.Equal(t, "Honza", *updated.Nickname)
		assert.Equal(t, "Novák", *updated.LastName)
	})

	t.Run("Cannot Blank Required Field", func(t *testing.T) {
		repos, m := newRepoMocks()
		svc := person.NewService(repos, nil)

		m.person.On("GetByID", ctx, personID).
			Return(&domain.Person{ID: personID, FirstName: "Jan"}, nil).Once()

		_, err := svc.Update(ctx, personID, domain.UpdatePersonInput{
			FirstName: stringPtr("  "),
		})

		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("Not Found", func(t *testing.T) {
		repos, m := newRepoMocks()
		svc := person.NewService(repos, nil)

		m.person.On("GetByID", ctx, personID).Return(nil, nil).Once()

		_, err := svc.Update(ctx, personID, domain.UpdatePersonInput{})

		assert.ErrorIs(t, err, domain.ErrPersonNotFound)
	})
}

func TestPersonService_Delete(t *testing.T) {
	ctx := context.Background()
	personID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		repos, m := newRepoMocks()
		svc := person.NewService(repos, nil)

		m.person.On("GetAnyByID", ctx, personID).
			Return(&domain.Person{ID: personID, FirstName: "Jan"}, nil).Once()
		m.person.On("SoftDelete", ctx, personID).Return(nil).Once()
		m.audit.On("Create", ctx, mock.Anything).Return(nil).Once()

		err := svc.Delete(ctx, personID)

		assert.NoError(t, err)
		m.person.AssertExpectations(t)
	})

	t.Run("Already Deleted", func(t *testing.T) {
		repos, m := newRepoMocks()
		svc := person.NewService(repos, nil)

		deletedAt := time.Now()
		m.person.On("GetAnyByID", ctx, personID).
			Return(&domain.Person{ID: personID, FirstName: "Jan", DeletedAt: &deletedAt}, nil).Once()

		err := svc.Delete(ctx, personID)

		assert.ErrorIs(t, err, domain.ErrAlreadyDeleted)
	})

	t.Run("Not Found", func(t *testing.T) {
		repos, m := newRepoMocks()
		svc := person.NewService(repos, nil)

		m.person.On("GetAnyByID", ctx, personID).Return(nil, nil).Once()

		err := svc.Delete(ctx, personID)

		assert.ErrorIs(t, err, domain.ErrPersonNotFound)
	})
}
