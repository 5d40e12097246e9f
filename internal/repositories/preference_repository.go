package repositories

import (
	"context"
	"errors"

	"tunerec/internal/models"
)

// ErrDuplicatePreference is returned by Insert when the store's uniqueness
// constraint on (user_id, genre_id) rejects the row. Callers treat it as
// "already exists", not as a failure.
var ErrDuplicatePreference = errors.New("preference already exists")

// PreferenceRepository defines the interface for preference data operations
type PreferenceRepository interface {
	// ListByUser returns a user's preferences ordered by creation time.
	ListByUser(ctx context.Context, userID int64) ([]*models.Preference, error)

	// GenreIDsByUser returns only the genre ids of a user's preferences,
	// in the same order ListByUser would yield them.
	GenreIDsByUser(ctx context.Context, userID int64) ([]int64, error)

	// Exists reports whether the user already prefers the genre.
	Exists(ctx context.Context, userID, genreID int64) (bool, error)

	// Insert stores a new preference. Returns ErrDuplicatePreference when
	// the (user_id, genre_id) pair is already present.
	Insert(ctx context.Context, preference *models.Preference) error

	// Delete removes one preference. The bool reports whether a row existed.
	Delete(ctx context.Context, userID, genreID int64) (bool, error)

	// DeleteAll removes every preference of the user and returns the count.
	DeleteAll(ctx context.Context, userID int64) (int64, error)
}
