package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smartschool/backend/internal/app/models"
	"github.com/smartschool/backend/internal/app/models/dto"
	"github.com/smartschool/backend/internal/middleware"
	"github.com/smartschool/backend/internal/pkg/apperrors"
)

// EventStore is the persistence surface the event controller needs.
type EventStore interface {
	List(ctx context.Context) ([]models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id string) error
}

// EventController handles calendar events.
type EventController struct {
	events EventStore
}

// NewEventController creates a new EventController.
func NewEventController(events EventStore) *EventController {
	return &EventController{events: events}
}

// eventDateLayouts are the accepted date formats, in match order.
var eventDateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseEventDate(raw string) (time.Time, error) {
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.NewValidationError("date must be RFC 3339 or YYYY-MM-DD")
}

// List returns all events in ascending date order.
func (c *EventController) List(ctx *gin.Context) {
	events, err := c.events.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, events)
}

// Create persists a new event.
func (c *EventController) Create(ctx *gin.Context) {
	var req dto.EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(err.Error()))
		return
	}

	date, err := parseEventDate(req.Date)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	event := models.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Time:        req.Time,
	}
	if err := c.events.Create(ctx.Request.Context(), &event); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete removes an event by id.
func (c *EventController) Delete(ctx *gin.Context) {
	if err := c.events.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
