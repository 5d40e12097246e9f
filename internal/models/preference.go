package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Preference records a user's declared interest in a genre. The pair
// (user_id, genre_id) is unique; a matching compound index enforces this
// at the store level.
type Preference struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID    int64              `bson:"user_id" json:"user_id"`
	GenreID   int64              `bson:"genre_id" json:"genre_id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// NewPreference creates a Preference stamped with the current time.
func NewPreference(userID, genreID int64) *Preference {
	return &Preference{
		UserID:    userID,
		GenreID:   genreID,
		CreatedAt: time.Now(),
	}
}

// GenrePreference is the name-enriched projection of a Preference returned
// to API callers. The genre name comes from the catalog, with a fallback
// label when the lookup yields nothing.
type GenrePreference struct {
	GenreID   int64  `json:"genre_id"`
	GenreName string `json:"genre_name"`
}
