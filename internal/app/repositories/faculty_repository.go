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

// FacultyRepository handles staff profile operations.
type FacultyRepository struct {
	coll *mongo.Collection
}

// NewFacultyRepository creates a new FacultyRepository.
func NewFacultyRepository(database *mongo.Database) *FacultyRepository {
	return &FacultyRepository{coll: database.Collection("faculties")}
}

// List returns all faculty members.
func (r *FacultyRepository) List(ctx context.Context) ([]models.Faculty, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		logger.Error().Err(err).Msg("Error querying faculty")
		return nil, apperrors.NewPersistenceError(err, "failed to list faculty")
	}

	faculty := []models.Faculty{}
	if err := cursor.All(ctx, &faculty); err != nil {
		logger.Error().Err(err).Msg("Error decoding faculty")
		return nil, apperrors.NewPersistenceError(err, "failed to decode faculty")
	}
	return faculty, nil
}

// Create inserts a new faculty member. Name is required; the image
// reference is optional.
func (r *FacultyRepository) Create(ctx context.Context, member *models.Faculty) error {
	if member.Name == "" {
		return apperrors.NewValidationError("name is required")
	}

	member.CreatedAt = time.Now()
	res, err := r.coll.InsertOne(ctx, member)
	if err != nil {
		logger.Error().Err(err).Str("name", member.Name).Msg("Error creating faculty member")
		return apperrors.NewPersistenceError(err, "failed to create faculty member")
	}
	member.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// Update overwrites only the supplied fields. The image reference is in
// the update only when a new file accompanied the request, so an update
// without a file keeps the stored image.
func (r *FacultyRepository) Update(ctx context.Context, id string, upd models.FacultyUpdate) (*models.Faculty, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Department != nil {
		set["department"] = *upd.Department
	}
	if upd.Position != nil {
		set["position"] = *upd.Position
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.Phone != nil {
		set["phone"] = *upd.Phone
	}
	if upd.ImageURL != nil {
		set["imageUrl"] = *upd.ImageURL
	}

	var member models.Faculty
	if len(set) == 0 {
		err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&member)
	} else {
		err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set},
			options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&member)
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NewNotFoundError("faculty member not found")
	}
	if err != nil {
		logger.Error().Err(err).Str("id", id).Msg("Error updating faculty member")
		return nil, apperrors.NewPersistenceError(err, "failed to update faculty member")
	}
	return &member, nil
}

// Delete removes a faculty member by id.
func (r *FacultyRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		logger.Error().Err(err).Str("id", id).Msg("Error deleting faculty member")
		return apperrors.NewPersistenceError(err, "failed to delete faculty member")
	}
	if res.DeletedCount == 0 {
		return apperrors.NewNotFoundError("faculty member not found")
	}
	return nil
}
