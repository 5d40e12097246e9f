package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tunerec/internal/models"
	"tunerec/internal/repositories"
)

func TestAddRejectsEmptyGenreList(t *testing.T) {
	service := NewPreferenceService(new(MockPreferenceRepository), new(MockCatalogService))

	for _, genreIDs := range [][]int64{nil, {}} {
		_, err := service.Add(context.Background(), 1, genreIDs)

		var appErr *AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, CodeInvalidData, appErr.Code)
	}
}

func TestAddUnknownGenreAbortsWithoutWrites(t *testing.T) {
	repo := new(MockPreferenceRepository)
	catalog := new(MockCatalogService)
	catalog.On("GenreExists", mock.Anything, int64(5)).Return(true)
	catalog.On("GenreExists", mock.Anything, int64(99)).Return(false)

	service := NewPreferenceService(repo, catalog)
	_, err := service.Add(context.Background(), 1, []int64{5, 99})

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, CodeInvalidGenre, appErr.Code)
	// The whole call aborts before any write, valid ids included.
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestAddDeduplicatesInputAndCountsDuplicates(t *testing.T) {
	repo := new(MockPreferenceRepository)
	catalog := new(MockCatalogService)

	// Genre 5 is new, genre 6 already preferred; 5 appears twice in input.
	catalog.On("GenreExists", mock.Anything, int64(5)).Return(true).Once()
	catalog.On("GenreExists", mock.Anything, int64(6)).Return(true).Once()
	repo.On("Exists", mock.Anything, int64(1), int64(5)).Return(false, nil)
	repo.On("Exists", mock.Anything, int64(1), int64(6)).Return(true, nil)
	repo.On("Insert", mock.Anything, mock.MatchedBy(func(p *models.Preference) bool {
		return p.UserID == 1 && p.GenreID == 5
	})).Return(nil).Once()

	repo.On("ListByUser", mock.Anything, int64(1)).Return([]*models.Preference{
		{UserID: 1, GenreID: 5},
		{UserID: 1, GenreID: 6},
	}, nil)
	catalog.On("GenreName", mock.Anything, int64(5)).Return("Rock", true)
	catalog.On("GenreName", mock.Anything, int64(6)).Return("Jazz", true)

	service := NewPreferenceService(repo, catalog)
	result, err := service.Add(context.Background(), 1, []int64{5, 5, 6})

	require.NoError(t, err)
	assert.Equal(t, 1, result.GenresAdded)
	assert.Equal(t, 1, result.GenresDuplicated)
	require.Len(t, result.Preferences, 2)
	assert.Equal(t, "Rock", result.Preferences[0].GenreName)
	repo.AssertExpectations(t)
	catalog.AssertExpectations(t)
}

func TestAddTreatsInsertConflictAsDuplicate(t *testing.T) {
	repo := new(MockPreferenceRepository)
	catalog := new(MockCatalogService)
	catalog.On("GenreExists", mock.Anything, int64(5)).Return(true)
	repo.On("Exists", mock.Anything, int64(1), int64(5)).Return(false, nil)
	// A concurrent add slipped in between the existence check and the insert.
	repo.On("Insert", mock.Anything, mock.Anything).Return(repositories.ErrDuplicatePreference)
	repo.On("ListByUser", mock.Anything, int64(1)).Return([]*models.Preference{
		{UserID: 1, GenreID: 5},
	}, nil)
	catalog.On("GenreName", mock.Anything, int64(5)).Return("Rock", true)

	service := NewPreferenceService(repo, catalog)
	result, err := service.Add(context.Background(), 1, []int64{5})

	require.NoError(t, err)
	assert.Equal(t, 0, result.GenresAdded)
	assert.Equal(t, 1, result.GenresDuplicated)
}

func TestListFallsBackToGenericGenreName(t *testing.T) {
	repo := new(MockPreferenceRepository)
	catalog := new(MockCatalogService)
	repo.On("ListByUser", mock.Anything, int64(1)).Return([]*models.Preference{
		{UserID: 1, GenreID: 5},
		{UserID: 1, GenreID: 42},
	}, nil)
	catalog.On("GenreName", mock.Anything, int64(5)).Return("Rock", true)
	catalog.On("GenreName", mock.Anything, int64(42)).Return("", false)

	service := NewPreferenceService(repo, catalog)
	preferences, err := service.List(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, preferences, 2)
	assert.Equal(t, "Rock", preferences[0].GenreName)
	assert.Equal(t, "Genre 42", preferences[1].GenreName)
}

func TestListEmptyIsNotAnError(t *testing.T) {
	repo := new(MockPreferenceRepository)
	repo.On("ListByUser", mock.Anything, int64(1)).Return([]*models.Preference{}, nil)

	service := NewPreferenceService(repo, new(MockCatalogService))
	preferences, err := service.List(context.Background(), 1)

	require.NoError(t, err)
	assert.NotNil(t, preferences)
	assert.Empty(t, preferences)
}

func TestRemoveMissingPreference(t *testing.T) {
	repo := new(MockPreferenceRepository)
	repo.On("Delete", mock.Anything, int64(1), int64(5)).Return(false, nil)

	service := NewPreferenceService(repo, new(MockCatalogService))
	err := service.Remove(context.Background(), 1, 5)

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, CodePreferenceNotFound, appErr.Code)
}

func TestRemoveExistingPreference(t *testing.T) {
	repo := new(MockPreferenceRepository)
	repo.On("Delete", mock.Anything, int64(1), int64(5)).Return(true, nil)

	service := NewPreferenceService(repo, new(MockCatalogService))
	err := service.Remove(context.Background(), 1, 5)

	require.NoError(t, err)
}

func TestRemoveAllSucceedsOnZeroRows(t *testing.T) {
	repo := new(MockPreferenceRepository)
	repo.On("DeleteAll", mock.Anything, int64(1)).Return(int64(0), nil)

	service := NewPreferenceService(repo, new(MockCatalogService))
	err := service.RemoveAll(context.Background(), 1)

	require.NoError(t, err)
}

func TestAuthorizeOwner(t *testing.T) {
	owner := int64(1)
	stranger := int64(2)

	tests := []struct {
		name      string
		callerID  *int64
		isService bool
		wantErr   bool
	}{
		{"service call bypasses identity match", nil, true, false},
		{"owner may act", &owner, false, false},
		{"other user denied", &stranger, false, true},
		{"anonymous denied", nil, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AuthorizeOwner(tt.callerID, 1, tt.isService)
			if tt.wantErr {
				var appErr *AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, CodeForbiddenAccess, appErr.Code)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
