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

// AdmissionStore is the persistence surface the admission controller needs.
type AdmissionStore interface {
	List(ctx context.Context) ([]models.Admission, error)
	Create(ctx context.Context, admission *models.Admission) error
	SetStatus(ctx context.Context, id, status string) (*models.Admission, error)
	Delete(ctx context.Context, id string) error
}

// AdmissionController handles enrollment applications.
type AdmissionController struct {
	admissions AdmissionStore
}

// NewAdmissionController creates a new AdmissionController.
func NewAdmissionController(admissions AdmissionStore) *AdmissionController {
	return &AdmissionController{admissions: admissions}
}

// List returns all admissions, newest first.
func (c *AdmissionController) List(ctx *gin.Context) {
	admissions, err := c.admissions.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, admissions)
}

// Create persists a new admission application.
func (c *AdmissionController) Create(ctx *gin.Context) {
	var req dto.AdmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(err.Error()))
		return
	}

	admission := models.Admission{
		StudentName: req.StudentName,
		ParentName:  req.ParentName,
		Email:       req.Email,
		Phone:       req.Phone,
		Class:       req.Class,
	}
	if err := c.admissions.Create(ctx.Request.Context(), &admission); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// SetStatus updates only the status of an admission.
func (c *AdmissionController) SetStatus(ctx *gin.Context) {
	var req dto.StatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(err.Error()))
		return
	}

	if _, err := c.admissions.SetStatus(ctx.Request.Context(), ctx.Param("id"), req.Status); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete removes an admission by id.
func (c *AdmissionController) Delete(ctx *gin.Context) {
	if err := c.admissions.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
