package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"tunerec/internal/auth"
	"tunerec/internal/models"
	"tunerec/internal/repositories"
	"tunerec/internal/services"
	"tunerec/internal/testutil"
)

const (
	testJWTSecret    = "handler-test-secret"
	testServiceToken = "handler-service-token"
)

// fakePreferenceRepo is an in-memory preference store for handler tests
type fakePreferenceRepo struct {
	preferences []*models.Preference
}

func (f *fakePreferenceRepo) ListByUser(_ context.Context, userID int64) ([]*models.Preference, error) {
	var result []*models.Preference
	for _, p := range f.preferences {
		if p.UserID == userID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakePreferenceRepo) GenreIDsByUser(ctx context.Context, userID int64) ([]int64, error) {
	preferences, _ := f.ListByUser(ctx, userID)
	ids := make([]int64, 0, len(preferences))
	for _, p := range preferences {
		ids = append(ids, p.GenreID)
	}
	return ids, nil
}

func (f *fakePreferenceRepo) Exists(_ context.Context, userID, genreID int64) (bool, error) {
	for _, p := range f.preferences {
		if p.UserID == userID && p.GenreID == genreID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePreferenceRepo) Insert(_ context.Context, preference *models.Preference) error {
	for _, p := range f.preferences {
		if p.UserID == preference.UserID && p.GenreID == preference.GenreID {
			return repositories.ErrDuplicatePreference
		}
	}
	f.preferences = append(f.preferences, preference)
	return nil
}

func (f *fakePreferenceRepo) Delete(_ context.Context, userID, genreID int64) (bool, error) {
	for i, p := range f.preferences {
		if p.UserID == userID && p.GenreID == genreID {
			f.preferences = append(f.preferences[:i], f.preferences[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePreferenceRepo) DeleteAll(_ context.Context, userID int64) (int64, error) {
	var kept []*models.Preference
	var deleted int64
	for _, p := range f.preferences {
		if p.UserID == userID {
			deleted++
			continue
		}
		kept = append(kept, p)
	}
	f.preferences = kept
	return deleted, nil
}

// fakeCatalog serves fixed catalog data for handler tests
type fakeCatalog struct {
	genres map[int64]string
	songs  map[int64][]services.CatalogItem
	albums map[int64][]services.CatalogItem
}

func (f *fakeCatalog) GenreExists(_ context.Context, genreID int64) bool {
	_, ok := f.genres[genreID]
	return ok
}

func (f *fakeCatalog) GenreName(_ context.Context, genreID int64) (string, bool) {
	name, ok := f.genres[genreID]
	return name, ok
}

func (f *fakeCatalog) ContentByGenre(_ context.Context, genreID int64, contentType models.ContentType, limit int) []services.CatalogItem {
	source := f.songs
	if contentType == models.ContentTypeAlbum {
		source = f.albums
	}
	items := source[genreID]
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

func (f *fakeCatalog) OwnedContentIDs(context.Context, int64, models.ContentType) map[int64]struct{} {
	return map[int64]struct{}{}
}

// newTestServer wires real services over the fakes into a router with the
// auth middleware, mirroring the production setup in cmd/server.
func newTestServer(t *testing.T, repo *fakePreferenceRepo, catalog *fakeCatalog) *testutil.HTTPTestHelper {
	t.Helper()

	helper := testutil.NewHTTPTestHelper(t)
	router := helper.Router()
	router.Use(auth.Middleware(auth.NewTokenService(testJWTSecret), testServiceToken))

	preferenceService := services.NewPreferenceService(repo, catalog)
	recommendationService := services.NewRecommendationService(repo, catalog)
	NewPreferenceHandler(preferenceService).RegisterRoutes(router)
	NewRecommendationHandler(recommendationService).RegisterRoutes(router)

	return helper
}

func serviceHeaders() map[string]string {
	return map[string]string{auth.ServiceTokenHeader: testServiceToken}
}

func userHeaders(t *testing.T, userID int64) map[string]string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + signed}
}

func defaultCatalog() *fakeCatalog {
	return &fakeCatalog{
		genres: map[int64]string{
			10: "Rock",
			20: "Jazz",
		},
		songs: map[int64][]services.CatalogItem{
			10: {
				{ID: 100, Title: "Song A", GenreID: 10, GenreName: "Rock"},
				{ID: 101, Title: "Song B", GenreID: 10, GenreName: "Rock"},
			},
			20: {
				{ID: 200, Title: "Song C", GenreID: 20, GenreName: "Jazz"},
			},
		},
		albums: map[int64][]services.CatalogItem{
			10: {
				{ID: 500, Title: "Album A", GenreID: 10, GenreName: "Rock"},
			},
		},
	}
}
