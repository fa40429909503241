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

// NoticeRepository handles announcement operations.
type NoticeRepository struct {
	coll *mongo.Collection
}

// NewNoticeRepository creates a new NoticeRepository.
func NewNoticeRepository(database *mongo.Database) *NoticeRepository {
	return &NoticeRepository{coll: database.Collection("notices")}
}

// List returns notices, newest first. With activeOnly set, hidden
// notices are excluded; they still exist and appear in the unfiltered
// listing.
func (r *NoticeRepository) List(ctx context.Context, activeOnly bool) ([]models.Notice, error) {
	filter := bson.M{}
	if activeOnly {
		filter["isActive"] = true
	}

	cursor, err := r.coll.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		logger.Error().Err(err).Msg("Error querying notices")
		return nil, apperrors.NewPersistenceError(err, "failed to list notices")
	}

	notices := []models.Notice{}
	if err := cursor.All(ctx, &notices); err != nil {
		logger.Error().Err(err).Msg("Error decoding notices")
		return nil, apperrors.NewPersistenceError(err, "failed to decode notices")
	}
	return notices, nil
}

// Create inserts a new notice. title and content are required; priority
// defaults to Normal and new notices are active.
func (r *NoticeRepository) Create(ctx context.Context, notice *models.Notice) error {
	if notice.Title == "" || notice.Content == "" {
		return apperrors.NewValidationError("title and content are required")
	}
	if notice.Priority == "" {
		notice.Priority = models.DefaultNoticePriority
	}
	notice.IsActive = true

	notice.CreatedAt = time.Now()
	res, err := r.coll.InsertOne(ctx, notice)
	if err != nil {
		logger.Error().Err(err).Str("title", notice.Title).Msg("Error creating notice")
		return apperrors.NewPersistenceError(err, "failed to create notice")
	}
	notice.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// Update overwrites only the supplied fields. The image reference is in
// the update only when a new file accompanied the request.
func (r *NoticeRepository) Update(ctx context.Context, id string, upd models.NoticeUpdate) (*models.Notice, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Content != nil {
		set["content"] = *upd.Content
	}
	if upd.Priority != nil {
		set["priority"] = *upd.Priority
	}
	if upd.IsActive != nil {
		set["isActive"] = *upd.IsActive
	}
	if upd.ImageURL != nil {
		set["imageUrl"] = *upd.ImageURL
	}

	var notice models.Notice
	if len(set) == 0 {
		err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&notice)
	} else {
		err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set},
			options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&notice)
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NewNotFoundError("notice not found")
	}
	if err != nil {
		logger.Error().Err(err).Str("id", id).Msg("Error updating notice")
		return nil, apperrors.NewPersistenceError(err, "failed to update notice")
	}
	return &notice, nil
}

// Delete removes a notice by id.
func (r *NoticeRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		logger.Error().Err(err).Str("id", id).Msg("Error deleting notice")
		return apperrors.NewPersistenceError(err, "failed to delete notice")
	}
	if res.DeletedCount == 0 {
		return apperrors.NewNotFoundError("notice not found")
	}
	return nil
}
