package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/smartschool/backend/internal/app/models"
	"github.com/smartschool/backend/internal/pkg/apperrors"
	"github.com/smartschool/backend/internal/pkg/logger"
)

// EventRepository handles calendar event operations.
type EventRepository struct {
	coll *mongo.Collection
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(database *mongo.Database) *EventRepository {
	return &EventRepository{coll: database.Collection("events")}
}

// List returns all events in ascending date order, regardless of when
// they were created.
func (r *EventRepository) List(ctx context.Context) ([]models.Event, error) {
	cursor, err := r.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		logger.Error().Err(err).Msg("Error querying events")
		return nil, apperrors.NewPersistenceError(err, "failed to list events")
	}

	events := []models.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		logger.Error().Err(err).Msg("Error decoding events")
		return nil, apperrors.NewPersistenceError(err, "failed to decode events")
	}
	return events, nil
}

// Create inserts a new event. title and date are required.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	if event.Title == "" {
		return apperrors.NewValidationError("title is required")
	}
	if event.Date.IsZero() {
		return apperrors.NewValidationError("date is required")
	}

	event.CreatedAt = time.Now()
	res, err := r.coll.InsertOne(ctx, event)
	if err != nil {
		logger.Error().Err(err).Str("title", event.Title).Msg("Error creating event")
		return apperrors.NewPersistenceError(err, "failed to create event")
	}
	event.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// Delete removes an event by id.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		logger.Error().Err(err).Str("id", id).Msg("Error deleting event")
		return apperrors.NewPersistenceError(err, "failed to delete event")
	}
	if res.DeletedCount == 0 {
		return apperrors.NewNotFoundError("event not found")
	}
	return nil
}
