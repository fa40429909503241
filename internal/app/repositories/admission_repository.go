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

// AdmissionRepository handles enrollment application operations.
type AdmissionRepository struct {
	coll *mongo.Collection
}

// NewAdmissionRepository creates a new AdmissionRepository.
func NewAdmissionRepository(database *mongo.Database) *AdmissionRepository {
	return &AdmissionRepository{coll: database.Collection("admissions")}
}

// List returns all admissions, newest first.
func (r *AdmissionRepository) List(ctx context.Context) ([]models.Admission, error) {
	cursor, err := r.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		logger.Error().Err(err).Msg("Error querying admissions")
		return nil, apperrors.NewPersistenceError(err, "failed to list admissions")
	}

	admissions := []models.Admission{}
	if err := cursor.All(ctx, &admissions); err != nil {
		logger.Error().Err(err).Msg("Error decoding admissions")
		return nil, apperrors.NewPersistenceError(err, "failed to decode admissions")
	}
	return admissions, nil
}

// Create inserts a new admission. studentName is required; status
// defaults to Pending.
func (r *AdmissionRepository) Create(ctx context.Context, admission *models.Admission) error {
	if admission.StudentName == "" {
		return apperrors.NewValidationError("studentName is required")
	}
	if admission.Status == "" {
		admission.Status = models.DefaultAdmissionStatus
	}

	admission.CreatedAt = time.Now()
	res, err := r.coll.InsertOne(ctx, admission)
	if err != nil {
		logger.Error().Err(err).Str("studentName", admission.StudentName).Msg("Error creating admission")
		return apperrors.NewPersistenceError(err, "failed to create admission")
	}
	admission.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// SetStatus updates only the status field and returns the updated record.
func (r *AdmissionRepository) SetStatus(ctx context.Context, id, status string) (*models.Admission, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var admission models.Admission
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&admission)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NewNotFoundError("admission not found")
	}
	if err != nil {
		logger.Error().Err(err).Str("id", id).Msg("Error updating admission status")
		return nil, apperrors.NewPersistenceError(err, "failed to update admission status")
	}
	return &admission, nil
}

// Delete removes an admission by id.
func (r *AdmissionRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		logger.Error().Err(err).Str("id", id).Msg("Error deleting admission")
		return apperrors.NewPersistenceError(err, "failed to delete admission")
	}
	if res.DeletedCount == 0 {
		return apperrors.NewNotFoundError("admission not found")
	}
	return nil
}
