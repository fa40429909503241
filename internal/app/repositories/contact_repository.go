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

// ContactRepository handles contact message operations.
type ContactRepository struct {
	coll *mongo.Collection
}

// NewContactRepository creates a new ContactRepository.
func NewContactRepository(database *mongo.Database) *ContactRepository {
	return &ContactRepository{coll: database.Collection("contacts")}
}

// List returns all contact messages, newest first.
func (r *ContactRepository) List(ctx context.Context) ([]models.Contact, error) {
	cursor, err := r.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		logger.Error().Err(err).Msg("Error querying contacts")
		return nil, apperrors.NewPersistenceError(err, "failed to list contacts")
	}

	contacts := []models.Contact{}
	if err := cursor.All(ctx, &contacts); err != nil {
		logger.Error().Err(err).Msg("Error decoding contacts")
		return nil, apperrors.NewPersistenceError(err, "failed to decode contacts")
	}
	return contacts, nil
}

// Create inserts a new contact message. name is required; status
// defaults to New.
func (r *ContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	if contact.Name == "" {
		return apperrors.NewValidationError("name is required")
	}
	if contact.Status == "" {
		contact.Status = models.DefaultContactStatus
	}

	contact.CreatedAt = time.Now()
	res, err := r.coll.InsertOne(ctx, contact)
	if err != nil {
		logger.Error().Err(err).Str("name", contact.Name).Msg("Error creating contact")
		return apperrors.NewPersistenceError(err, "failed to create contact")
	}
	contact.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// SetStatus updates only the status field and returns the updated record.
func (r *ContactRepository) SetStatus(ctx context.Context, id, status string) (*models.Contact, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var contact models.Contact
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&contact)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NewNotFoundError("contact not found")
	}
	if err != nil {
		logger.Error().Err(err).Str("id", id).Msg("Error updating contact status")
		return nil, apperrors.NewPersistenceError(err, "failed to update contact status")
	}
	return &contact, nil
}

// Delete removes a contact message by id.
func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		logger.Error().Err(err).Str("id", id).Msg("Error deleting contact")
		return apperrors.NewPersistenceError(err, "failed to delete contact")
	}
	if res.DeletedCount == 0 {
		return apperrors.NewNotFoundError("contact not found")
	}
	return nil
}
