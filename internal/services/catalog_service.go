package services

import (
	"context"

	"tunerec/internal/models"
)

// CatalogItem is one content item fetched from the catalog for a genre,
// before ownership filtering.
type CatalogItem struct {
	ID        int64
	Title     string
	GenreID   int64
	GenreName string
}

// CatalogService defines the interface to the external content catalog.
//
// Recommendations are best-effort: every method converts transport and
// decode failures into an empty or absent result instead of propagating
// them, so a flaky catalog degrades responses rather than failing them.
type CatalogService interface {
	// GenreExists reports whether the catalog knows the genre.
	GenreExists(ctx context.Context, genreID int64) bool

	// GenreName returns the display name of a genre. ok is false when the
	// lookup failed or the catalog returned nothing.
	GenreName(ctx context.Context, genreID int64) (string, bool)

	// ContentByGenre fetches up to limit items of the given type for a
	// genre, in catalog order.
	ContentByGenre(ctx context.Context, genreID int64, contentType models.ContentType, limit int) []CatalogItem

	// OwnedContentIDs returns the ids of the given content type the user
	// already owns or has favorited.
	OwnedContentIDs(ctx context.Context, userID int64, contentType models.ContentType) map[int64]struct{}
}
