package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tunerec/internal/models"
)

// MockPreferenceRepository is a mock preference store for service tests
type MockPreferenceRepository struct {
	mock.Mock
}

func (m *MockPreferenceRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Preference, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Preference), args.Error(1)
}

func (m *MockPreferenceRepository) GenreIDsByUser(ctx context.Context, userID int64) ([]int64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockPreferenceRepository) Exists(ctx context.Context, userID, genreID int64) (bool, error) {
	args := m.Called(ctx, userID, genreID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPreferenceRepository) Insert(ctx context.Context, preference *models.Preference) error {
	args := m.Called(ctx, preference)
	return args.Error(0)
}

func (m *MockPreferenceRepository) Delete(ctx context.Context, userID, genreID int64) (bool, error) {
	args := m.Called(ctx, userID, genreID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPreferenceRepository) DeleteAll(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockCatalogService is a mock catalog gateway for service tests
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) GenreExists(ctx context.Context, genreID int64) bool {
	args := m.Called(ctx, genreID)
	return args.Bool(0)
}

func (m *MockCatalogService) GenreName(ctx context.Context, genreID int64) (string, bool) {
	args := m.Called(ctx, genreID)
	return args.String(0), args.Bool(1)
}

func (m *MockCatalogService) ContentByGenre(ctx context.Context, genreID int64, contentType models.ContentType, limit int) []CatalogItem {
	args := m.Called(ctx, genreID, contentType, limit)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]CatalogItem)
}

func (m *MockCatalogService) OwnedContentIDs(ctx context.Context, userID int64, contentType models.ContentType) map[int64]struct{} {
	args := m.Called(ctx, userID, contentType)
	if args.Get(0) == nil {
		return map[int64]struct{}{}
	}
	return args.Get(0).(map[int64]struct{})
}
