package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"tunerec/internal/models"
	"tunerec/internal/repositories"
)

// AddPreferencesResult reports the outcome of adding genre preferences.
type AddPreferencesResult struct {
	Message          string                   `json:"message"`
	GenresAdded      int                      `json:"genres_added"`
	GenresDuplicated int                      `json:"genres_duplicated"`
	Preferences      []models.GenrePreference `json:"preferences"`
}

// PreferenceService manages a user's genre preference set, validating
// genres against the catalog before any write.
type PreferenceService struct {
	preferences repositories.PreferenceRepository
	catalog     CatalogService
}

// NewPreferenceService creates a new preference service
func NewPreferenceService(preferences repositories.PreferenceRepository, catalog CatalogService) *PreferenceService {
	return &PreferenceService{
		preferences: preferences,
		catalog:     catalog,
	}
}

// List returns the user's preferences enriched with genre names from the
// catalog. A failed name lookup falls back to a label derived from the id
// instead of failing the call.
func (s *PreferenceService) List(ctx context.Context, userID int64) ([]models.GenrePreference, error) {
	preferences, err := s.preferences.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences for user %d: %w", userID, err)
	}

	result := make([]models.GenrePreference, 0, len(preferences))
	for _, preference := range preferences {
		name, ok := s.catalog.GenreName(ctx, preference.GenreID)
		if !ok {
			name = fmt.Sprintf("Genre %d", preference.GenreID)
		}
		result = append(result, models.GenrePreference{
			GenreID:   preference.GenreID,
			GenreName: name,
		})
	}

	return result, nil
}

// Add validates and stores new genre preferences for the user. The input is
// deduplicated, then every distinct id is validated against the catalog
// before any write; a single unknown genre aborts the whole call. Ids the
// user already prefers are counted as duplicates, not re-added.
func (s *PreferenceService) Add(ctx context.Context, userID int64, genreIDs []int64) (*AddPreferencesResult, error) {
	if len(genreIDs) == 0 {
		return nil, NewInvalidData("the genre list cannot be empty")
	}

	seen := make(map[int64]struct{}, len(genreIDs))
	unique := make([]int64, 0, len(genreIDs))
	for _, genreID := range genreIDs {
		if _, dup := seen[genreID]; dup {
			continue
		}
		seen[genreID] = struct{}{}
		unique = append(unique, genreID)
	}

	// Validate the full input before writing anything.
	for _, genreID := range unique {
		if !s.catalog.GenreExists(ctx, genreID) {
			return nil, NewInvalidGenre(fmt.Sprintf("genre with id %d does not exist", genreID))
		}
	}

	added := 0
	duplicated := 0
	for _, genreID := range unique {
		exists, err := s.preferences.Exists(ctx, userID, genreID)
		if err != nil {
			return nil, fmt.Errorf("failed to check preference for user %d: %w", userID, err)
		}
		if exists {
			duplicated++
			continue
		}

		err = s.preferences.Insert(ctx, models.NewPreference(userID, genreID))
		if errors.Is(err, repositories.ErrDuplicatePreference) {
			// A concurrent add won the race; the unique index is the
			// authoritative guard.
			duplicated++
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to insert preference for user %d: %w", userID, err)
		}
		added++
	}

	slog.Info("Preferences added", "userID", userID, "added", added, "duplicated", duplicated)

	preferences, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &AddPreferencesResult{
		Message:          "Preferences added successfully",
		GenresAdded:      added,
		GenresDuplicated: duplicated,
		Preferences:      preferences,
	}, nil
}

// Remove deletes one genre preference of the user.
func (s *PreferenceService) Remove(ctx context.Context, userID, genreID int64) error {
	found, err := s.preferences.Delete(ctx, userID, genreID)
	if err != nil {
		return fmt.Errorf("failed to delete preference for user %d: %w", userID, err)
	}
	if !found {
		return NewPreferenceNotFound(fmt.Sprintf("user has no genre with id %d in their preferences", genreID))
	}

	slog.Info("Preference removed", "userID", userID, "genreID", genreID)
	return nil
}

// RemoveAll deletes every genre preference of the user. Removing zero rows
// is a success.
func (s *PreferenceService) RemoveAll(ctx context.Context, userID int64) error {
	count, err := s.preferences.DeleteAll(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to delete preferences for user %d: %w", userID, err)
	}

	slog.Info("All preferences removed", "userID", userID, "count", count)
	return nil
}

// AuthorizeOwner verifies that the caller may act on the target user's
// resources. Service-to-service calls bypass the identity match.
func AuthorizeOwner(callerID *int64, userID int64, isService bool) error {
	if isService {
		return nil
	}
	if callerID == nil || *callerID != userID {
		slog.Warn("Access denied to another user's resources",
			"callerID", callerID, "userID", userID)
		return NewForbiddenAccess("you do not have permission to access another user's resources")
	}
	return nil
}
