package repositories

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tunerec/internal/models"
)

// mongoPreferenceRepository implements PreferenceRepository using MongoDB
type mongoPreferenceRepository struct {
	collection *mongo.Collection
}

// NewMongoPreferenceRepository creates a new MongoDB-backed preference repository
func NewMongoPreferenceRepository(db *models.Database) PreferenceRepository {
	return &mongoPreferenceRepository{
		collection: db.DB.Collection(models.PreferencesCollection),
	}
}

// ListByUser returns a user's preferences ordered by creation time
func (r *mongoPreferenceRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Preference, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list preferences: %w", err)
	}
	defer cursor.Close(ctx)

	var preferences []*models.Preference
	for cursor.Next(ctx) {
		var preference models.Preference
		if err := cursor.Decode(&preference); err != nil {
			slog.Error("Failed to decode preference", "error", err)
			continue
		}
		preferences = append(preferences, &preference)
	}

	return preferences, cursor.Err()
}

// GenreIDsByUser returns only the genre ids, preserving ListByUser order
func (r *mongoPreferenceRepository) GenreIDsByUser(ctx context.Context, userID int64) ([]int64, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetProjection(bson.M{"genre_id": 1})

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list genre ids: %w", err)
	}
	defer cursor.Close(ctx)

	var genreIDs []int64
	for cursor.Next(ctx) {
		var doc struct {
			ID      primitive.ObjectID `bson:"_id"`
			GenreID int64              `bson:"genre_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			slog.Error("Failed to decode preference projection", "error", err)
			continue
		}
		genreIDs = append(genreIDs, doc.GenreID)
	}

	return genreIDs, cursor.Err()
}

// Exists reports whether the user already prefers the genre
func (r *mongoPreferenceRepository) Exists(ctx context.Context, userID, genreID int64) (bool, error) {
	filter := bson.M{"user_id": userID, "genre_id": genreID}

	err := r.collection.FindOne(ctx, filter, options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return false, nil
		}
		return false, fmt.Errorf("failed to check preference existence: %w", err)
	}
	return true, nil
}

// Insert stores a new preference, mapping unique-index conflicts to
// ErrDuplicatePreference
func (r *mongoPreferenceRepository) Insert(ctx context.Context, preference *models.Preference) error {
	result, err := r.collection.InsertOne(ctx, preference)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicatePreference
		}
		return fmt.Errorf("failed to insert preference: %w", err)
	}

	preference.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// Delete removes one preference and reports whether it existed
func (r *mongoPreferenceRepository) Delete(ctx context.Context, userID, genreID int64) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"user_id": userID, "genre_id": genreID})
	if err != nil {
		return false, fmt.Errorf("failed to delete preference: %w", err)
	}
	return result.DeletedCount > 0, nil
}

// DeleteAll removes every preference of the user
func (r *mongoPreferenceRepository) DeleteAll(ctx context.Context, userID int64) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete preferences: %w", err)
	}
	return result.DeletedCount, nil
}
