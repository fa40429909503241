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

// ReviewStore is the persistence surface the review controller needs.
type ReviewStore interface {
	List(ctx context.Context, approvedOnly bool) ([]models.Review, error)
	Create(ctx context.Context, review *models.Review) error
	Approve(ctx context.Context, id string) (*models.Review, error)
	Delete(ctx context.Context, id string) error
}

// ReviewController handles visitor testimonials.
type ReviewController struct {
	reviews ReviewStore
}

// NewReviewController creates a new ReviewController.
func NewReviewController(reviews ReviewStore) *ReviewController {
	return &ReviewController{reviews: reviews}
}

// List returns approved reviews, newest first.
func (c *ReviewController) List(ctx *gin.Context) {
	reviews, err := c.reviews.List(ctx.Request.Context(), true)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, reviews)
}

// ListAll returns every review including unapproved ones.
func (c *ReviewController) ListAll(ctx *gin.Context) {
	reviews, err := c.reviews.List(ctx.Request.Context(), false)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, reviews)
}

// Create persists a new review. Ratings outside [1,5] are rejected.
func (c *ReviewController) Create(ctx *gin.Context) {
	var req dto.ReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(err.Error()))
		return
	}

	review := models.Review{
		Name:   req.Name,
		Rating: req.Rating,
		Review: req.Review,
	}
	if err := c.reviews.Create(ctx.Request.Context(), &review); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// Approve marks a review as publicly visible.
func (c *ReviewController) Approve(ctx *gin.Context) {
	if _, err := c.reviews.Approve(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete removes a review by id.
func (c *ReviewController) Delete(ctx *gin.Context) {
	if err := c.reviews.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
