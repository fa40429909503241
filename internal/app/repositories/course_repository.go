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

// CourseRepository handles course operations.
type CourseRepository struct {
	coll *mongo.Collection
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(database *mongo.Database) *CourseRepository {
	return &CourseRepository{coll: database.Collection("courses")}
}

// List returns all courses.
func (r *CourseRepository) List(ctx context.Context) ([]models.Course, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		logger.Error().Err(err).Msg("Error querying courses")
		return nil, apperrors.NewPersistenceError(err, "failed to list courses")
	}

	courses := []models.Course{}
	if err := cursor.All(ctx, &courses); err != nil {
		logger.Error().Err(err).Msg("Error decoding courses")
		return nil, apperrors.NewPersistenceError(err, "failed to decode courses")
	}
	return courses, nil
}

// Create inserts a new course. className is required; studentCount
// defaults to zero.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	if course.ClassName == "" {
		return apperrors.NewValidationError("className is required")
	}

	course.CreatedAt = time.Now()
	res, err := r.coll.InsertOne(ctx, course)
	if err != nil {
		logger.Error().Err(err).Str("className", course.ClassName).Msg("Error creating course")
		return apperrors.NewPersistenceError(err, "failed to create course")
	}
	course.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// Update overwrites only the supplied fields and returns the updated course.
func (r *CourseRepository) Update(ctx context.Context, id string, upd models.CourseUpdate) (*models.Course, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if upd.ClassName != nil {
		set["className"] = *upd.ClassName
	}
	if upd.TeacherName != nil {
		set["teacherName"] = *upd.TeacherName
	}
	if upd.StudentCount != nil {
		set["studentCount"] = *upd.StudentCount
	}

	var course models.Course
	if len(set) == 0 {
		err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&course)
	} else {
		err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set},
			options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&course)
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NewNotFoundError("course not found")
	}
	if err != nil {
		logger.Error().Err(err).Str("id", id).Msg("Error updating course")
		return nil, apperrors.NewPersistenceError(err, "failed to update course")
	}
	return &course, nil
}

// Delete removes a course by id.
func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		logger.Error().Err(err).Str("id", id).Msg("Error deleting course")
		return apperrors.NewPersistenceError(err, "failed to delete course")
	}
	if res.DeletedCount == 0 {
		return apperrors.NewNotFoundError("course not found")
	}
	return nil
}
