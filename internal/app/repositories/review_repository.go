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

// ReviewRepository handles testimonial operations.
type ReviewRepository struct {
	coll *mongo.Collection
}

// NewReviewRepository creates a new ReviewRepository.
func NewReviewRepository(database *mongo.Database) *ReviewRepository {
	return &ReviewRepository{coll: database.Collection("reviews")}
}

// List returns reviews, newest first. With approvedOnly set, only
// approved reviews are included; the unfiltered listing is the admin view.
func (r *ReviewRepository) List(ctx context.Context, approvedOnly bool) ([]models.Review, error) {
	filter := bson.M{}
	if approvedOnly {
		filter["isApproved"] = true
	}

	cursor, err := r.coll.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		logger.Error().Err(err).Msg("Error querying reviews")
		return nil, apperrors.NewPersistenceError(err, "failed to list reviews")
	}

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		logger.Error().Err(err).Msg("Error decoding reviews")
		return nil, apperrors.NewPersistenceError(err, "failed to decode reviews")
	}
	return reviews, nil
}

// Create inserts a new review. name, review text and a rating in [1,5]
// are required; new reviews start unapproved.
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	if review.Name == "" || review.Review == "" {
		return apperrors.NewValidationError("name and review are required")
	}
	if review.Rating < 1 || review.Rating > 5 {
		return apperrors.ErrRatingOutOfRange
	}
	review.IsApproved = false

	review.CreatedAt = time.Now()
	res, err := r.coll.InsertOne(ctx, review)
	if err != nil {
		logger.Error().Err(err).Str("name", review.Name).Msg("Error creating review")
		return apperrors.NewPersistenceError(err, "failed to create review")
	}
	review.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// Approve marks a review as approved and returns the updated record.
func (r *ReviewRepository) Approve(ctx context.Context, id string) (*models.Review, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var review models.Review
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"isApproved": true}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&review)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NewNotFoundError("review not found")
	}
	if err != nil {
		logger.Error().Err(err).Str("id", id).Msg("Error approving review")
		return nil, apperrors.NewPersistenceError(err, "failed to approve review")
	}
	return &review, nil
}

// Delete removes a review by id.
func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		logger.Error().Err(err).Str("id", id).Msg("Error deleting review")
		return apperrors.NewPersistenceError(err, "failed to delete review")
	}
	if res.DeletedCount == 0 {
		return apperrors.NewNotFoundError("review not found")
	}
	return nil
}
