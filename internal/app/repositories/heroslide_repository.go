package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/smartschool/backend/internal/app/models"
	"github.com/smartschool/backend/internal/pkg/apperrors"
	"github.com/smartschool/backend/internal/pkg/logger"
)

// HeroSlideRepository handles homepage carousel operations.
type HeroSlideRepository struct {
	coll *mongo.Collection
}

// NewHeroSlideRepository creates a new HeroSlideRepository.
func NewHeroSlideRepository(database *mongo.Database) *HeroSlideRepository {
	return &HeroSlideRepository{coll: database.Collection("heroslides")}
}

// List returns all hero slides.
func (r *HeroSlideRepository) List(ctx context.Context) ([]models.HeroSlide, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		logger.Error().Err(err).Msg("Error querying hero slides")
		return nil, apperrors.NewPersistenceError(err, "failed to list hero slides")
	}

	slides := []models.HeroSlide{}
	if err := cursor.All(ctx, &slides); err != nil {
		logger.Error().Err(err).Msg("Error decoding hero slides")
		return nil, apperrors.NewPersistenceError(err, "failed to decode hero slides")
	}
	return slides, nil
}

// Create inserts a new hero slide. The image reference is required.
func (r *HeroSlideRepository) Create(ctx context.Context, slide *models.HeroSlide) error {
	if slide.ImageURL == "" {
		return apperrors.NewValidationError("imageUrl is required")
	}

	slide.CreatedAt = time.Now()
	res, err := r.coll.InsertOne(ctx, slide)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating hero slide")
		return apperrors.NewPersistenceError(err, "failed to create hero slide")
	}
	slide.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// Update overwrites only the supplied fields and returns the updated slide.
func (r *HeroSlideRepository) Update(ctx context.Context, id string, upd models.HeroSlideUpdate) (*models.HeroSlide, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Subtitle != nil {
		set["subtitle"] = *upd.Subtitle
	}
	if upd.DisplayOrder != nil {
		set["displayOrder"] = *upd.DisplayOrder
	}
	if upd.ImageURL != nil {
		set["imageUrl"] = *upd.ImageURL
	}

	var slide models.HeroSlide
	if len(set) == 0 {
		err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&slide)
	} else {
		err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set},
			options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&slide)
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NewNotFoundError("hero slide not found")
	}
	if err != nil {
		logger.Error().Err(err).Str("id", id).Msg("Error updating hero slide")
		return nil, apperrors.NewPersistenceError(err, "failed to update hero slide")
	}
	return &slide, nil
}

// Delete removes a hero slide by id.
func (r *HeroSlideRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		logger.Error().Err(err).Str("id", id).Msg("Error deleting hero slide")
		return apperrors.NewPersistenceError(err, "failed to delete hero slide")
	}
	if res.DeletedCount == 0 {
		return apperrors.NewNotFoundError("hero slide not found")
	}
	return nil
}
