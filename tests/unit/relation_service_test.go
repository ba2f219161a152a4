package unit_test

import (
	"context"
	"testing"
	"time"

	"lide-archiv/internal/domain"
	"lide-archiv/internal/service/relation"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRelationService_AddEntryTag(t *testing.T) {
	ctx := context.Background()
	entryID := uuid.New()
	tagID := uuid.New()

	t.Run("Inserts When Missing", func(t *testing.T) {
		repos, m := newRepoMocks()
		svc := relation.NewService(repos, nil)

		m.entry.On("GetByID", ctx, entryID).Return(activeEntry(entryID), nil).Once()
		m.tag.On("GetByID", ctx, tagID).Return(activeTag(tagID), nil).Once()
		m.entryTag.On("FindByKey", ctx, entryID, tagID).Return(nil, nil).Once()
		m.entryTag.On("Create", ctx, mock.MatchedBy(func(l *domain.EntryTag) bool {
			return l.EntryID == entryID && l.TagID == tagID
		})).Return(nil).Once()
		m.audit.On("Create", ctx, mock.Anything).Return(nil).Once()

		assert.NoError(t, svc.AddEntryTag(ctx, entryID, tagID))
		m.entryTag.AssertExpectations(t)
	})

	t.Run("Active Link Is No-Op", func(t *testing.T) {
		repos, m := newRepoMocks()
		svc := relation.NewService(repos, nil)

		m.entry.On("GetByID", ctx, entryID).Return(activeEntry(entryID), nil).Once()
		m.tag.On("GetByID", ctx, tagID).Return(activeTag(tagID), nil).Once()
		m.entryTag.On("FindByKey", ctx, entryID, tagID).
			Return(&domain.EntryTag{ID: uuid.New(), EntryID: entryID, TagID: tagID}, nil).Once()

		assert.NoError(t, svc.AddEntryTag(ctx, entryID, tagID))

		m.entryTag.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		m.entryTag.AssertNotCalled(t, "Revive", mock.Anything, mock.Anything)
	})

	t.Run("Revives Deleted Link", func(t *testing.T) {
		repos, m := newRepoMocks()
		svc := relation.NewService(repos, nil)

		linkID := uuid.New()
		deletedAt := time.Now()
		m.entry.On("GetByID", ctx, entryID).Return(activeEntry(entryID), nil).Once()
		m.tag.On("GetByID", ctx, tagID).Return(activeTag(tagID), nil).Once()
		m.entryTag.On("FindByKey", ctx, entryID, tagID).
			Return(&domain.EntryTag{ID: linkID, EntryID: entryID, TagID: tagID, DeletedAt: &deletedAt}, nil).Once()
		m.entryTag.On("Revive", ctx, linkID).Return(nil).Once()
		m.audit.On("Create", ctx, mock.Anything).Return(nil).Once()

		assert.NoError(t, svc.AddEntryTag(ctx, entryID, tagID))

		m.entryTag.AssertExpectations(t)
		m.entryTag.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Insert Race Is Benign", func(t *testing.T) {
		repos, m := newRepoMocks()
		svc := relation.NewService(repos, nil)

		m.entry.On("GetByID", ctx, entryID).Return(activeEntry(entryID), nil).Once()
		m.tag.On("GetByID", ctx, tagID).Return(activeTag(tagID), nil).Once()
		m.entryTag.On("FindByKey", ctx, entryID, tagID).Return(nil, nil).Once()
		m.entryTag.On("Create", ctx, mock.Anything).Return(&pq.Error{Code: "23505"}).Once()

		assert.NoError(t, svc.AddEntryTag(ctx, entryID, tagID))
	})

	t.Run("Deleted Endpoint Reads As Not Found", func(t *testing.T) {
		repos, m := newRepoMocks()
		svc := relation.NewService(repos, nil)

		m.entry.On("GetByID", ctx, entryID).Return(nil, nil).Once()

		err := svc.AddEntryTag(ctx, entryID, tagID)

		assert.ErrorIs(t, err, domain.ErrEntryNotFound)
		m.entryTag.AssertNotCalled(t, "FindByKey", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRelationService_RemoveEntryTag(t *testing.T) {
	ctx := context.Background()
	entryID := uuid.New()
	tagID := uuid.New()

	t.Run("Soft Deletes Active Link", func(t *testing.T) {
		repos, m := newRepoMocks()
		svc := relation.NewService(repos, nil)

		linkID := uuid.New()
		m.entryTag.On("FindByKey", ctx, entryID, tagID).
			Return(&domain.EntryTag{ID: linkID, EntryID: entryID, TagID: tagID}, nil).Once()
		m.entryTag.On("SoftDelete", ctx, linkID).Return(nil).Once()
		m.audit.On("Create", ctx, mock.Anything).Return(nil).Once()

		assert.NoError(t, svc.RemoveEntryTag(ctx, entryID, tagID))
		m.entryTag.AssertExpectations(t)
	})

	t.Run("Missing Link", func(t *testing.T) {
		repos, m := newRepoMocks()
		svc := relation.NewService(repos, nil)

		m.entryTag.On("FindByKey", ctx, entryID, tagID).Return(nil, nil).Once()

		assert.ErrorIs(t, svc.RemoveEntryTag(ctx, entryID, tagID), domain.ErrLinkNotFound)
	})

	t.Run("Already Removed Link", func(t *testing.T) {
		repos, m := newRepoMocks()
		svc := relation.NewService(repos, nil)

		deletedAt := time.Now()
		m.entryTag.On("FindByKey", ctx, entryID, tagID).
			Return(&domain.EntryTag{ID: uuid.New(), DeletedAt: &deletedAt}, nil).Once()

		assert.ErrorIs(t, svc.RemoveEntryTag(ctx, entryID, tagID), domain.ErrLinkNotFound)
		m.entryTag.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything)
	})
}

func TestRelationService_PersonEntryRoles(t *testing.T) {
	ctx := context.Background()
	personID := uuid.New()
	entryID := uuid.New()

	t.Run("Blank Role Uses Default", func(t *testing.T) {
		repos, m := newRepoMocks()
		svc := relation.NewService(repos, nil)

		m.person.On("GetByID", ctx, personID).Return(activePerson(personID), nil).Once()
		m.entry.On("GetByID", ctx, entryID).Return(activeEntry(entryID), nil).Once()
		m.personEntry.On("FindByKey", ctx, personID, entryID, domain.RoleDefault).Return(nil, nil).Once()
		m.personEntry.On("Create", ctx, mock.MatchedBy(func(l *domain.PersonEntry) bool {
			return l.Role == domain.RoleDefault
		})).Return(nil).Once()
		m.audit.On("Create", ctx, mock.Anything).Return(nil).Once()

		assert.NoError(t, svc.AddPersonEntry(ctx, personID, entryID, "  "))
		m.personEntry.AssertExpectations(t)
	})

	t.Run("Remove Matches Role Exactly", func(t *testing.T) {
		repos, m := newRepoMocks()
		svc := relation.NewService(repos, nil)

		// No active link under "author"; the "mentioned" link is untouched.
		m.personEntry.On("FindByKey", ctx, personID, entryID, "author").Return(nil, nil).Once()

		err := svc.RemovePersonEntry(ctx, personID, entryID, "author")

		assert.ErrorIs(t, err, domain.ErrLinkNotFound)
	})

	t.Run("Same Pair Under Two Roles", func(t *testing.T) {
		repos, m := newRepoMocks()
		svc := relation.NewService(repos, nil)

		m.person.On("GetByID", ctx, personID).Return(activePerson(personID), nil).Once()
		m.entry.On("GetByID", ctx, entryID).Return(activeEntry(entryID), nil).Once()
		m.personEntry.On("FindByKey", ctx, personID, entryID, "mentioned").Return(nil, nil).Once()
		m.personEntry.On("Create", ctx, mock.MatchedBy(func(l *domain.PersonEntry) bool {
			return l.Role == "mentioned"
		})).Return(nil).Once()
		m.audit.On("Create", ctx, mock.Anything).Return(nil).Once()

		assert.NoError(t, svc.AddPersonEntry(ctx, personID, entryID, "mentioned"))
	})
}

func TestRelationService_MediaEntry(t *testing.T) {
	ctx := context.Background()
	mediaID := uuid.New()
	entryID := uuid.New()

	t.Run("Revive Applies Link Fields", func(t *testing.T) {
		repos, m := newRepoMocks()
		svc := relation.NewService(repos, nil)

		linkID := uuid.New()
		deletedAt := time.Now()
		caption := "Vrchol Sněžky"
		order := 2

		m.media.On("GetByID", ctx, mediaID).Return(&domain.Media{ID: mediaID, MediaType: "photo", URI: "u"}, nil).Once()
		m.entry.On("GetByID", ctx, entryID).Return(activeEntry(entryID), nil).Once()
		m.mediaEntry.On("FindByKey", ctx, mediaID, entryID).
			Return(&domain.MediaEntry{ID: linkID, MediaID: mediaID, EntryID: entryID, DeletedAt: &deletedAt}, nil).Once()
		m.mediaEntry.On("Revive", ctx, linkID, &caption, &order).Return(nil).Once()
		m.audit.On("Create", ctx, mock.Anything).Return(nil).Once()

		err := svc.AddMediaEntry(ctx, mediaID, entryID, domain.MediaLinkAttrs{
			Caption:   &caption,
			SortOrder: &order,
		})

		assert.NoError(t, err)
		m.mediaEntry.AssertExpectations(t)
	})

	t.Run("Active Link Keeps Fields", func(t *testing.T) {
		repos, m := newRepoMocks()
		svc := relation.NewService(repos, nil)

		caption := "old"
		m.media.On("GetByID", ctx, mediaID).Return(&domain.Media{ID: mediaID, MediaType: "photo", URI: "u"}, nil).Once()
		m.entry.On("GetByID", ctx, entryID).Return(activeEntry(entryID), nil).Once()
		m.mediaEntry.On("FindByKey", ctx, mediaID, entryID).
			Return(&domain.MediaEntry{ID: uuid.New(), Caption: &caption}, nil).Once()

		newCaption := "new"
		err := svc.AddMediaEntry(ctx, mediaID, entryID, domain.MediaLinkAttrs{Caption: &newCaption})

		assert.NoError(t, err)
		m.mediaEntry.AssertNotCalled(t, "Revive", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		m.mediaEntry.AssertNotCalled(t, "UpdateAttrs", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Update Requires Active Link", func(t *testing.T) {
		repos, m := newRepoMocks()
		svc := relation.NewService(repos, nil)

		deletedAt := time.Now()
		m.mediaEntry.On("FindByKey", ctx, mediaID, entryID).
			Return(&domain.MediaEntry{ID: uuid.New(), DeletedAt: &deletedAt}, nil).Once()

		err := svc.UpdateMediaEntry(ctx, mediaID, entryID, domain.MediaLinkAttrs{})

		assert.ErrorIs(t, err, domain.ErrLinkNotFound)
	})
}

func TestRelationService_ListEntryMedia(t *testing.T) {
	ctx := context.Background()
	entryID := uuid.New()

	mediaA := uuid.New()
	mediaB := uuid.New()
	mediaC := uuid.New()
	staleMedia := uuid.New()

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	order1 := 1
	order5 := 5

	repos, m := newRepoMocks()
	svc := relation.NewService(repos, nil)

	m.entry.On("GetByID", ctx, entryID).Return(activeEntry(entryID), nil).Once()

	// Unordered input: nil sort_order sorts last, ties fall back to created_at.
	m.mediaEntry.On("FindActiveByEntry", ctx, entryID).Return([]domain.MediaEntry{
		{ID: uuid.New(), MediaID: mediaB, EntryID: entryID, SortOrder: nil, CreatedAt: base},
		{ID: uuid.New(), MediaID: mediaC, EntryID: entryID, SortOrder: &order5, CreatedAt: base.Add(time.Hour)},
		{ID: uuid.New(), MediaID: mediaA, EntryID: entryID, SortOrder: &order1, CreatedAt: base.Add(2 * time.Hour)},
		{ID: uuid.New(), MediaID: staleMedia, EntryID: entryID, SortOrder: &order1, CreatedAt: base},
	}, nil).Once()

	// staleMedia was soft-deleted after linking; the batch fetch omits it.
	m.media.On("GetByIDs", ctx, mock.Anything).Return([]domain.Media{
		{ID: mediaA, MediaType: "photo", URI: "a"},
		{ID: mediaB, MediaType: "photo", URI: "b"},
		{ID: mediaC, MediaType: "photo", URI: "c"},
	}, nil).Once()

	result, err := svc.ListEntryMedia(ctx, entryID)

	assert.NoError(t, err)
	assert.Len(t, result, 3)
	assert.Equal(t, mediaA, result[0].ID)
	assert.Equal(t, mediaC, result[1].ID)
	assert.Equal(t, mediaB, result[2].ID)
}

func TestRelationService_PersonRelation(t *testing.T) {
	ctx := context.Background()
	fromID := uuid.New()
	toID := uuid.New()

	t.Run("Self Relation Rejected", func(t *testing.T) {
		repos, _ := newRepoMocks()
		svc := relation.NewService(repos, nil)

		err := svc.AddRelation(ctx, domain.CreateRelationInput{
			FromPersonID: fromID,
			ToPersonID:   fromID,
			Type:         "SPOUSE",
		})

		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("Blank Type Rejected", func(t *testing.T) {
		repos, _ := newRepoMocks()
		svc := relation.NewService(repos, nil)

		err := svc.AddRelation(ctx, domain.CreateRelationInput{
			FromPersonID: fromID,
			ToPersonID:   toID,
			Type:         "  ",
		})

		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("Revive Applies Attrs", func(t *testing.T) {
		repos, m := newRepoMocks()
		svc := relation.NewService(repos, nil)

		relID := uuid.New()
		deletedAt := time.Now()
		note := "obnoveno"

		m.person.On("GetByID", ctx, fromID).Return(activePerson(fromID), nil).Once()
		m.person.On("GetByID", ctx, toID).Return(activePerson(toID), nil).Once()
		m.personRelation.On("FindByKey", ctx, fromID, toID, "SPOUSE").
			Return(&domain.PersonRelation{ID: relID, FromPersonID: fromID, ToPersonID: toID, Type: "SPOUSE", DeletedAt: &deletedAt}, nil).Once()
		m.personRelation.On("Revive", ctx, relID, &note, (*time.Time)(nil), (*time.Time)(nil)).Return(nil).Once()
		m.audit.On("Create", ctx, mock.Anything).Return(nil).Once()

		err := svc.AddRelation(ctx, domain.CreateRelationInput{
			FromPersonID: fromID,
			ToPersonID:   toID,
			Type:         "SPOUSE",
			Note:         &note,
		})

		assert.NoError(t, err)
		m.personRelation.AssertExpectations(t)
	})

	t.Run("Remove Matches Type Exactly", func(t *testing.T) {
		repos, m := newRepoMocks()
		svc := relation.NewService(repos, nil)

		m.personRelation.On("FindByKey", ctx, fromID, toID, "FRIEND").Return(nil, nil).Once()

		assert.ErrorIs(t, svc.RemoveRelation(ctx, fromID, toID, "FRIEND"), domain.ErrLinkNotFound)
	})

	t.Run("Views Carry Display Names", func(t *testing.T) {
		repos, m := newRepoMocks()
		svc := relation.NewService(repos, nil)

		missingID := uuid.New()
		m.person.On("GetByID", ctx, fromID).Return(activePerson(fromID), nil).Once()
		m.personRelation.On("FindActiveByFrom", ctx, fromID).Return([]domain.PersonRelation{
			{ID: uuid.New(), FromPersonID: fromID, ToPersonID: toID, Type: "SPOUSE"},
			{ID: uuid.New(), FromPersonID: fromID, ToPersonID: missingID, Type: "FRIEND"},
		}, nil).Once()
		m.person.On("GetByIDs", ctx, mock.Anything).Return([]domain.Person{
			{ID: toID, FirstName: "Eva", LastName: stringPtr("Svobodová")},
		}, nil).Once()

		views, err := svc.ListRelationsFrom(ctx, fromID)

		assert.NoError(t, err)
		assert.Len(t, views, 2)
		assert.Equal(t, "Eva Svobodová", *views[0].DisplayName)
		// The far person is soft-deleted; the edge survives without a name.
		assert.Nil(t, views[1].DisplayName)
	})
}
