package services

import (
	"context"
	"fmt"
	"log/slog"

	"tunerec/internal/models"
	"tunerec/internal/repositories"
)

// Bounds accepted for the overall recommendation limit.
const (
	MinRecommendationLimit = 1
	MaxRecommendationLimit = 50
)

// RecommendationService generates personalized song and album
// recommendations from a user's genre preferences, excluding content the
// user already owns.
type RecommendationService struct {
	preferences repositories.PreferenceRepository
	catalog     CatalogService
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService(preferences repositories.PreferenceRepository, catalog CatalogService) *RecommendationService {
	return &RecommendationService{
		preferences: preferences,
		catalog:     catalog,
	}
}

// Generate produces a bounded, deduplicated, type-balanced recommendation
// set for the user.
//
// Candidates are gathered per preferred genre, in preference order, with
// ownership filtering applied before counting. Genre iteration stops as
// soon as the per-type limit is met, so earlier genres are favored when an
// early genre alone satisfies the limit. For "both", the album pass runs
// against limit/2 and a final rebalance caps the combined count at limit.
func (s *RecommendationService) Generate(ctx context.Context, userID int64, contentType models.ContentType, limit int) (*models.RecommendationResult, error) {
	slog.Info("Generating recommendations",
		"userID", userID, "contentType", contentType, "limit", limit)

	if !contentType.Valid() {
		return nil, NewInvalidParameter("type must be 'song', 'album' or 'both'")
	}
	if limit < MinRecommendationLimit || limit > MaxRecommendationLimit {
		return nil, NewInvalidParameter(fmt.Sprintf("limit must be between %d and %d",
			MinRecommendationLimit, MaxRecommendationLimit))
	}

	genreIDs, err := s.preferences.GenreIDsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferred genres for user %d: %w", userID, err)
	}

	if len(genreIDs) == 0 {
		slog.Warn("User has no preferences configured", "userID", userID)
		return models.NewRecommendationResult(userID, nil, nil), nil
	}

	// Request more than the strict even split per genre to compensate for
	// items dropped by ownership filtering, without a second round-trip.
	itemsPerGenre := max(1, limit/len(genreIDs)) + 2

	var songs []models.RecommendedSong
	var albums []models.RecommendedAlbum

	if contentType.IncludesSongs() {
		owned := s.catalog.OwnedContentIDs(ctx, userID, models.ContentTypeSong)
		candidates := s.collectCandidates(ctx, models.ContentTypeSong, genreIDs, owned, itemsPerGenre, limit)
		songs = make([]models.RecommendedSong, 0, len(candidates))
		for _, item := range candidates {
			songs = append(songs, models.RecommendedSong{
				SongID:    item.ID,
				Title:     item.Title,
				GenreID:   item.GenreID,
				GenreName: item.GenreName,
			})
		}
	}

	if contentType.IncludesAlbums() {
		albumLimit := limit
		if contentType == models.ContentTypeBoth {
			albumLimit = limit / 2
		}
		owned := s.catalog.OwnedContentIDs(ctx, userID, models.ContentTypeAlbum)
		candidates := s.collectCandidates(ctx, models.ContentTypeAlbum, genreIDs, owned, itemsPerGenre, albumLimit)
		albums = make([]models.RecommendedAlbum, 0, len(candidates))
		for _, item := range candidates {
			albums = append(albums, models.RecommendedAlbum{
				AlbumID:   item.ID,
				Title:     item.Title,
				GenreID:   item.GenreID,
				GenreName: item.GenreName,
			})
		}
	}

	if contentType == models.ContentTypeBoth {
		songs, albums = rebalance(songs, albums, limit)
	}

	result := models.NewRecommendationResult(userID, songs, albums)
	slog.Info("Recommendations generated",
		"userID", userID, "songs", len(result.Songs), "albums", len(result.Albums),
		"total", result.TotalCount)
	return result, nil
}

// collectCandidates gathers unowned items of one content type across the
// preferred genres. Iteration order is the stored preference order; genres
// after the one that fills the limit are never queried.
func (s *RecommendationService) collectCandidates(
	ctx context.Context,
	contentType models.ContentType,
	genreIDs []int64,
	owned map[int64]struct{},
	itemsPerGenre int,
	limit int,
) []CatalogItem {
	collected := make([]CatalogItem, 0, limit)

	for _, genreID := range genreIDs {
		items := s.catalog.ContentByGenre(ctx, genreID, contentType, itemsPerGenre)

		for _, item := range items {
			if _, owns := owned[item.ID]; owns {
				continue
			}
			collected = append(collected, item)
		}

		if len(collected) >= limit {
			break
		}
	}

	if len(collected) > limit {
		collected = collected[:limit]
	}
	return collected
}

// rebalance caps the combined count at limit when the two lists overflow
// it, keeping the earliest-generated entries of each. Given the per-type
// limits this is a safety net, but it runs whenever the sum exceeds limit.
func rebalance(songs []models.RecommendedSong, albums []models.RecommendedAlbum, limit int) ([]models.RecommendedSong, []models.RecommendedAlbum) {
	if len(songs)+len(albums) <= limit {
		return songs, albums
	}

	songsMax := limit / 2
	albumsMax := limit - songsMax

	if len(songs) > songsMax {
		songs = songs[:songsMax]
	}
	if len(albums) > albumsMax {
		albums = albums[:albumsMax]
	}
	return songs, albums
}
