package unit_test

import (
	"context"
	"testing"
	"time"

	"lide-archiv/internal/domain"
	"lide-archiv/internal/service/detail"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newDetailService() (detail.Service, *repoMocks) {
	repos, m := newRepoMocks()
	return detail.NewService(repos, nil, time.Minute), m
}

func TestDetailService_EntryDetail(t *testing.T) {
	ctx := context.Background()
	entryID := uuid.New()

	t.Run("Assembles View", func(t *testing.T) {
		svc, m := newDetailService()

		tagID := uuid.New()
		personID := uuid.New()
		mediaID := uuid.New()
		caption := "na vrcholu"
		order := 1

		m.entry.On("GetByID", ctx, entryID).Return(activeEntry(entryID), nil).Once()
		m.entryTag.On("FindActiveByEntry", ctx, entryID).Return([]domain.EntryTag{
			{ID: uuid.New(), EntryID: entryID, TagID: tagID},
		}, nil).Once()
		m.tag.On("GetByIDs", ctx, mock.Anything).Return([]domain.Tag{
			{ID: tagID, Name: "cestování"},
		}, nil).Once()
		m.personEntry.On("FindActiveByEntry", ctx, entryID).Return([]domain.PersonEntry{
			{ID: uuid.New(), PersonID: personID, EntryID: entryID, Role: "author"},
		}, nil).Once()
		m.person.On("GetByIDs", ctx, mock.Anything).Return([]domain.Person{
			{ID: personID, FirstName: "Jan"},
		}, nil).Once()
		m.mediaEntry.On("FindActiveByEntry", ctx, entryID).Return([]domain.MediaEntry{
			{ID: uuid.New(), MediaID: mediaID, EntryID: entryID, Caption: &caption, SortOrder: &order},
		}, nil).Once()
		m.media.On("GetByIDs", ctx, mock.Anything).Return([]domain.Media{
			{ID: mediaID, MediaType: "photo", URI: "u"},
		}, nil).Once()

		view, err := svc.EntryDetail(ctx, entryID)

		assert.NoError(t, err)
		assert.Equal(t, entryID, view.ID)
		assert.Len(t, view.Tags, 1)
		assert.Equal(t, "cestování", view.Tags[0].Name)
		assert.Len(t, view.Persons, 1)
		assert.Equal(t, "author", view.Persons[0].Role)
		assert.Len(t, view.Media, 1)
		assert.Equal(t, "na vrcholu", *view.Media[0].Caption)
	})

	t.Run("Stale Person Link Skipped", func(t *testing.T) {
		svc, m := newDetailService()

		m.entry.On("GetByID", ctx, entryID).Return(activeEntry(entryID), nil).Once()
		m.entryTag.On("FindActiveByEntry", ctx, entryID).Return([]domain.EntryTag{}, nil).Once()
		m.tag.On("GetByIDs", ctx, mock.Anything).Return([]domain.Tag{}, nil).Once()
		// Link survives but the person was soft-deleted afterwards.
		m.personEntry.On("FindActiveByEntry", ctx, entryID).Return([]domain.PersonEntry{
			{ID: uuid.New(), PersonID: uuid.New(), EntryID: entryID, Role: "author"},
		}, nil).Once()
		m.person.On("GetByIDs", ctx, mock.Anything).Return([]domain.Person{}, nil).Once()
		m.mediaEntry.On("FindActiveByEntry", ctx, entryID).Return([]domain.MediaEntry{}, nil).Once()
		m.media.On("GetByIDs", ctx, mock.Anything).Return([]domain.Media{}, nil).Once()

		view, err := svc.EntryDetail(ctx, entryID)

		assert.NoError(t, err)
		assert.Empty(t, view.Persons)
	})

	t.Run("Not Found", func(t *testing.T) {
		svc, m := newDetailService()

		m.entry.On("GetByID", ctx, entryID).Return(nil, nil).Once()

		view, err := svc.EntryDetail(ctx, entryID)

		assert.ErrorIs(t, err, domain.ErrEntryNotFound)
		assert.Nil(t, view)
	})
}

func TestDetailService_PersonDetail(t *testing.T) {
	ctx := context.Background()
	personID := uuid.New()

	t.Run("Assembles Relations Both Ways", func(t *testing.T) {
		svc, m := newDetailService()

		spouseID := uuid.New()
		parentID := uuid.New()

		m.person.On("GetByID", ctx, personID).Return(activePerson(personID), nil).Once()
		m.personTag.On("FindActiveByPerson", ctx, personID).Return([]domain.PersonTag{}, nil).Once()
		m.tag.On("GetByIDs", ctx, mock.Anything).Return([]domain.Tag{}, nil).Once()
		m.personEntry.On("FindActiveByPerson", ctx, personID).Return([]domain.PersonEntry{}, nil).Once()
		m.entry.On("GetByIDs", ctx, mock.Anything).Return([]domain.Entry{}, nil).Once()
		m.personRelation.On("FindActiveByFrom", ctx, personID).Return([]domain.PersonRelation{
			{ID: uuid.New(), FromPersonID: personID, ToPersonID: spouseID, Type: "SPOUSE"},
		}, nil).Once()
		m.personRelation.On("FindActiveByTo", ctx, personID).Return([]domain.PersonRelation{
			{ID: uuid.New(), FromPersonID: parentID, ToPersonID: personID, Type: "PARENT"},
		}, nil).Once()
		m.person.On("GetByIDs", ctx, mock.Anything).Return([]domain.Person{
			{ID: spouseID, FirstName: "Eva", LastName: stringPtr("Svobodová")},
			{ID: parentID, FirstName: "", Nickname: stringPtr("děda")},
		}, nil).Once()

		view, err := svc.PersonDetail(ctx, personID)

		assert.NoError(t, err)
		assert.Len(t, view.RelationsOut, 1)
		assert.Equal(t, "Eva Svobodová", *view.RelationsOut[0].DisplayName)
		assert.Len(t, view.RelationsIn, 1)
		// First and last name blank, so the nickname stands in.
		assert.Equal(t, "děda", *view.RelationsIn[0].DisplayName)
	})

	t.Run("Not Found", func(t *testing.T) {
		svc, m := newDetailService()

		m.person.On("GetByID", ctx, personID).Return(nil, nil).Once()

		view, err := svc.PersonDetail(ctx, personID)

		assert.ErrorIs(t, err, domain.ErrPersonNotFound)
		assert.Nil(t, view)
	})
}

func TestPersonDisplayName(t *testing.T) {
	t.Run("First And Last Joined", func(t *testing.T) {
		p := domain.Person{FirstName: "Jan", LastName: stringPtr("Novák")}
		assert.Equal(t, "Jan Novák", p.DisplayName())
	})

	t.Run("First Only", func(t *testing.T) {
		p := domain.Person{FirstName: "Jan"}
		assert.Equal(t, "Jan", p.DisplayName())
	})

	t.Run("Nickname Fallback", func(t *testing.T) {
		p := domain.Person{FirstName: "  ", Nickname: stringPtr("Honza")}
		assert.Equal(t, "Honza", p.DisplayName())
	})

	t.Run("Nothing Resolvable", func(t *testing.T) {
		p := domain.Person{FirstName: ""}
		assert.Equal(t, "", p.DisplayName())
	})
}
