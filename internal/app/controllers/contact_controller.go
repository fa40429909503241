package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartschool/backend/internal/app/models"
	"github.com/smartschool/backend/internal/app/models/dto"
	"github.com/smartschool/backend/internal/middleware"
	"github.com/smartschool/backend/internal/pkg/apperrors"
)

// ContactStore is the persistence surface the contact controller needs.
type ContactStore interface {
	List(ctx context.Context) ([]models.Contact, error)
	Create(ctx context.Context, contact *models.Contact) error
	SetStatus(ctx context.Context, id, status string) (*models.Contact, error)
	Delete(ctx context.Context, id string) error
}

// ContactController handles contact form messages.
type ContactController struct {
	contacts ContactStore
}

// NewContactController creates a new ContactController.
func NewContactController(contacts ContactStore) *ContactController {
	return &ContactController{contacts: contacts}
}

// List returns all contact messages, newest first.
func (c *ContactController) List(ctx *gin.Context) {
	contacts, err := c.contacts.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, contacts)
}

// Create persists a new contact message.
func (c *ContactController) Create(ctx *gin.Context) {
	var req dto.ContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(err.Error()))
		return
	}

	contact := models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}
	if err := c.contacts.Create(ctx.Request.Context(), &contact); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// SetStatus updates only the status of a contact message.
func (c *ContactController) SetStatus(ctx *gin.Context) {
	var req dto.StatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(err.Error()))
		return
	}

	if _, err := c.contacts.SetStatus(ctx.Request.Context(), ctx.Param("id"), req.Status); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete removes a contact message by id.
func (c *ContactController) Delete(ctx *gin.Context) {
	if err := c.contacts.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
