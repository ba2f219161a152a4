package unit_test

import (
	"context"
	"testing"
	"time"

	"lide-archiv/internal/domain"
	"lide-archiv/internal/service/tag"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTagService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Normalizes Name", func(t *testing.T) {
		repos, m := newRepoMocks()
		svc := tag.NewService(repos, nil)

		m.tag.On("ExistsActiveByName", ctx, "rodinné foto", (*uuid.UUID)(nil)).
			Return(false, nil).Once()
		m.tag.On("Create", ctx, mock.MatchedBy(func(tg *domain.Tag) bool {
			return tg.Name == "rodinné foto"
		})).Return(nil).Once()
		m.audit.On("Create", ctx, mock.Anything).Return(nil).Once()

		created, err := svc.Create(ctx, domain.CreateTagInput{Name: "  rodinné   foto "})

		assert.NoError(t, err)
		assert.Equal(t, "rodinné foto", created.Name)
		m.tag.AssertExpectations(t)
	})

	t.Run("Name Taken", func(t *testing.T) {
		repos, m := newRepoMocks()
		svc := tag.NewService(repos, nil)

		m.tag.On("ExistsActiveByName", ctx, "Rodina", (*uuid.UUID)(nil)).
			Return(true, nil).Once()

		created, err := svc.Create(ctx, domain.CreateTagInput{Name: "Rodina"})

		assert.ErrorIs(t, err, domain.ErrTagNameTaken)
		assert.Nil(t, created)
	})

	t.Run("Unique Violation Race", func(t *testing.T) {
		repos, m := newRepoMocks()
		svc := tag.NewService(repos, nil)

		// Pre-check passes, but a concurrent create wins the insert.
		m.tag.On("ExistsActiveByName", ctx, "rodina", (*uuid.UUID)(nil)).
			Return(false, nil).Once()
		m.tag.On("Create", ctx, mock.Anything).
			Return(&pq.Error{Code: "23505"}).Once()

		created, err := svc.Create(ctx, domain.CreateTagInput{Name: "rodina"})

		assert.ErrorIs(t, err, domain.ErrTagNameTaken)
		assert.Nil(t, created)
		m.tag.AssertExpectations(t)
	})

	t.Run("Blank Name", func(t *testing.T) {
		repos, _ := newRepoMocks()
		svc := tag.NewService(repos, nil)

		_, err := svc.Create(ctx, domain.CreateTagInput{Name: "   "})

		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestTagService_Update(t *testing.T) {
	ctx := context.Background()
	tagID := uuid.New()

	t.Run("Rename", func(t *testing.T) {
		repos, m := newRepoMocks()
		svc := tag.NewService(repos, nil)

		m.tag.On("GetByID", ctx, tagID).
			Return(&domain.Tag{ID: tagID, Name: "rodina"}, nil).Once()
		m.tag.On("ExistsActiveByName", ctx, "přátelé", &tagID).
			Return(false, nil).Once()
		m.tag.On("Update", ctx, mock.MatchedBy(func(tg *domain.Tag) bool {
			return tg.Name == "přátelé"
		})).Return(nil).Once()
		m.audit.On("Create", ctx, mock.Anything).Return(nil).Once()

		updated, err := svc.Update(ctx, tagID, domain.UpdateTagInput{Name: "přátelé"})

		assert.NoError(t, err)
		assert.Equal(t, "přátelé", updated.Name)
		m.tag.AssertExpectations(t)
	})

	t.Run("Rename Conflict", func(t *testing.T) {
		repos, m := newRepoMocks()
		svc := tag.NewService(repos, nil)

		m.tag.On("GetByID", ctx, tagID).
			Return(&domain.Tag{ID: tagID, Name: "rodina"}, nil).Once()
		m.tag.On("ExistsActiveByName", ctx, "přátelé", &tagID).
			Return(true, nil).Once()

		_, err := svc.Update(ctx, tagID, domain.UpdateTagInput{Name: "přátelé"})

		assert.ErrorIs(t, err, domain.ErrTagNameTaken)
	})

	t.Run("Not Found", func(t *testing.T) {
		repos, m := newRepoMocks()
		svc := tag.NewService(repos, nil)

		m.tag.On("GetByID", ctx, tagID).Return(nil, nil).Once()

		_, err := svc.Update(ctx, tagID, domain.UpdateTagInput{Name: "rodina"})

		assert.ErrorIs(t, err, domain.ErrTagNotFound)
	})
}

func TestTagService_Delete(t *testing.T) {
	ctx := context.Background()
	tagID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		repos, m := newRepoMocks()
		svc := tag.NewService(repos, nil)

		m.tag.On("GetAnyByID", ctx, tagID).
			Return(&domain.Tag{ID: tagID, Name: "rodina"}, nil).Once()
		m.tag.On("SoftDelete", ctx, tagID).Return(nil).Once()
		m.audit.On("Create", ctx, mock.Anything).Return(nil).Once()

		assert.NoError(t, svc.Delete(ctx, tagID))
		m.tag.AssertExpectations(t)
	})

	t.Run("Delete Twice", func(t *testing.T) {
		repos, m := newRepoMocks()
		svc := tag.NewService(repos, nil)

		deletedAt := time.Now()
		m.tag.On("GetAnyByID", ctx, tagID).
			Return(&domain.Tag{ID: tagID, Name: "rodina", DeletedAt: &deletedAt}, nil).Once()

		assert.ErrorIs(t, svc.Delete(ctx, tagID), domain.ErrAlreadyDeleted)
	})
}
