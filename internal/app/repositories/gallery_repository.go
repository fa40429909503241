package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/smartschool/backend/internal/app/models"
	"github.com/smartschool/backend/internal/pkg/apperrors"
	"github.com/smartschool/backend/internal/pkg/logger"
)

// GalleryRepository handles gallery image operations.
type GalleryRepository struct {
	coll *mongo.Collection
}

// NewGalleryRepository creates a new GalleryRepository.
func NewGalleryRepository(database *mongo.Database) *GalleryRepository {
	return &GalleryRepository{coll: database.Collection("galleries")}
}

// List returns all gallery images, newest first.
func (r *GalleryRepository) List(ctx context.Context) ([]models.GalleryImage, error) {
	cursor, err := r.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		logger.Error().Err(err).Msg("Error querying gallery images")
		return nil, apperrors.NewPersistenceError(err, "failed to list gallery images")
	}

	images := []models.GalleryImage{}
	if err := cursor.All(ctx, &images); err != nil {
		logger.Error().Err(err).Msg("Error decoding gallery images")
		return nil, apperrors.NewPersistenceError(err, "failed to decode gallery images")
	}
	return images, nil
}

// CreateMany inserts a batch of gallery images in a single write. The
// caller must have resolved every image reference already; this is the
// persistence half of the batch's all-or-nothing boundary. An empty
// batch is a no-op; the driver rejects an empty InsertMany.
func (r *GalleryRepository) CreateMany(ctx context.Context, images []models.GalleryImage) error {
	if len(images) == 0 {
		return nil
	}

	now := time.Now()
	docs := make([]interface{}, len(images))
	for i := range images {
		if images[i].ImageURL == "" {
			return apperrors.NewValidationError("imageUrl is required")
		}
		if images[i].Category == "" {
			images[i].Category = models.DefaultGalleryCategory
		}
		images[i].CreatedAt = now
		docs[i] = images[i]
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		logger.Error().Err(err).Int("count", len(docs)).Msg("Error inserting gallery images")
		return apperrors.NewPersistenceError(err, "failed to insert gallery images")
	}
	return nil
}

// Delete removes a gallery image by id.
func (r *GalleryRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		logger.Error().Err(err).Str("id", id).Msg("Error deleting gallery image")
		return apperrors.NewPersistenceError(err, "failed to delete gallery image")
	}
	if res.DeletedCount == 0 {
		return apperrors.NewNotFoundError("gallery image not found")
	}
	return nil
}
