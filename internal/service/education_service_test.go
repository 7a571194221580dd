package service

import (
	"ecowave_backend/internal/model"
	"ecowave_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeContentStore struct {
	contents []model.EducationContent
}

func (f *fakeContentStore) FindAll() ([]model.EducationContent, error) {
	return f.contents, nil
}

func (f *fakeContentStore) FindByID(id string) (*model.EducationContent, error) {
	for _, c := range f.contents {
		if c.ID == id {
			copied := c
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func sampleCatalog() *fakeContentStore {
	return &fakeContentStore{contents: []model.EducationContent{
		{UUIDBase: model.UUIDBase{ID: "ed1"}, Title: "The Plastic Problem", Type: model.ContentArticle, Category: "Pollution"},
		{UUIDBase: model.UUIDBase{ID: "ed2"}, Title: "Sea Turtles 101", Type: model.ContentVideo, Category: "Wildlife"},
		{UUIDBase: model.UUIDBase{ID: "ed3"}, Title: "Coral Reef Crisis", Type: model.ContentInfographic, Category: "Ecosystems"},
	}}
}

func TestFetchCatalog(t *testing.T) {
	svc := NewEducationService(sampleCatalog(), nil, nil)

	t.Run("no filters returns everything", func(t *testing.T) {
		for _, typeFilter := range []string{"", "All"} {
			contents, err := svc.FetchCatalog(typeFilter, "")
			require.NoError(t, err)
			assert.Len(t, contents, 3)
		}
	})

	t.Run("filters by type", func(t *testing.T) {
		contents, err := svc.FetchCatalog("Video", "")
		require.NoError(t, err)
		require.Len(t, contents, 1)
		assert.Equal(t, "Sea Turtles 101", contents[0].Title)
	})

	t.Run("search matches title and category", func(t *testing.T) {
		contents, err := svc.FetchCatalog("", "CORAL")
		require.NoError(t, err)
		require.Len(t, contents, 1)
		assert.Equal(t, "ed3", contents[0].ID)

		contents, err = svc.FetchCatalog("", "wildlife")
		require.NoError(t, err)
		require.Len(t, contents, 1)
		assert.Equal(t, "ed2", contents[0].ID)
	})

	t.Run("combined filters", func(t *testing.T) {
		contents, err := svc.FetchCatalog("Article", "turtle")
		require.NoError(t, err)
		assert.Empty(t, contents)
	})
}

func TestCompleteContent(t *testing.T) {
	t.Run("awards points with category title", func(t *testing.T) {
		store := newMemProgressionStore(testUser(1, 100))
		svc := NewEducationService(sampleCatalog(), NewProgressionService(store), nil)

		user, err := svc.CompleteContent(1, "ed2")
		require.NoError(t, err)
		assert.Equal(t, 125, user.Points)

		ledger, err := store.Activities(1, model.ActivityLedgerCap)
		require.NoError(t, err)
		require.Len(t, ledger, 1)
		assert.Equal(t, model.ActivityEducation, ledger[0].Kind)
		assert.Equal(t, "Learned about Wildlife", ledger[0].Title)
		assert.Equal(t, "Sea Turtles 101", ledger[0].Context)
	})

	t.Run("repeat completion counts again", func(t *testing.T) {
		store := newMemProgressionStore(testUser(1, 0))
		svc := NewEducationService(sampleCatalog(), NewProgressionService(store), nil)

		_, err := svc.CompleteContent(1, "ed1")
		require.NoError(t, err)
		user, err := svc.CompleteContent(1, "ed1")
		require.NoError(t, err)

		assert.Equal(t, 2*EducationAward, user.Points)

		ledger, err := store.Activities(1, model.ActivityLedgerCap)
		require.NoError(t, err)
		assert.Len(t, ledger, 2)
	})

	t.Run("unknown content", func(t *testing.T) {
		svc := NewEducationService(sampleCatalog(), NewProgressionService(newMemProgressionStore(testUser(1, 0))), nil)

		_, err := svc.CompleteContent(1, "nope")
		assert.ErrorIs(t, err, util.ErrContentNotFound)
	})
}
