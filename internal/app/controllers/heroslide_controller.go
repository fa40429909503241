package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/smartschool/backend/internal/app/models"
	"github.com/smartschool/backend/internal/app/upload"
	"github.com/smartschool/backend/internal/middleware"
	"github.com/smartschool/backend/internal/pkg/apperrors"
)

// HeroSlideStore is the persistence surface the hero slide controller needs.
type HeroSlideStore interface {
	List(ctx context.Context) ([]models.HeroSlide, error)
	Create(ctx context.Context, slide *models.HeroSlide) error
	Update(ctx context.Context, id string, upd models.HeroSlideUpdate) (*models.HeroSlide, error)
	Delete(ctx context.Context, id string) error
}

// HeroSlideController handles homepage carousel management.
type HeroSlideController struct {
	slides   HeroSlideStore
	pipeline *upload.Pipeline
}

// NewHeroSlideController creates a new HeroSlideController.
func NewHeroSlideController(slides HeroSlideStore, pipeline *upload.Pipeline) *HeroSlideController {
	return &HeroSlideController{slides: slides, pipeline: pipeline}
}

// List returns all hero slides.
func (c *HeroSlideController) List(ctx *gin.Context) {
	slides, err := c.slides.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, slides)
}

// Create stores the required "image" attachment and persists a new slide.
func (c *HeroSlideController) Create(ctx *gin.Context) {
	imageURL, err := c.pipeline.Single(ctx.Request.Context(), ctx.Request, "image", true)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	slide := models.HeroSlide{
		Title:    ctx.PostForm("title"),
		Subtitle: ctx.PostForm("subtitle"),
		ImageURL: imageURL,
	}
	if raw, ok := ctx.GetPostForm("displayOrder"); ok && raw != "" {
		order, err := strconv.Atoi(raw)
		if err != nil {
			middleware.HandleAPIError(ctx, apperrors.NewValidationError("displayOrder must be a number"))
			return
		}
		slide.DisplayOrder = order
	}

	if err := c.slides.Create(ctx.Request.Context(), &slide); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// Update overwrites the supplied form fields; the image changes only
// when a new file is attached.
func (c *HeroSlideController) Update(ctx *gin.Context) {
	imageURL, err := c.pipeline.Single(ctx.Request.Context(), ctx.Request, "image", false)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var upd models.HeroSlideUpdate
	if v, ok := ctx.GetPostForm("title"); ok {
		upd.Title = &v
	}
	if v, ok := ctx.GetPostForm("subtitle"); ok {
		upd.Subtitle = &v
	}
	if raw, ok := ctx.GetPostForm("displayOrder"); ok && raw != "" {
		order, err := strconv.Atoi(raw)
		if err != nil {
			middleware.HandleAPIError(ctx, apperrors.NewValidationError("displayOrder must be a number"))
			return
		}
		upd.DisplayOrder = &order
	}
	if imageURL != "" {
		upd.ImageURL = &imageURL
	}

	if _, err := c.slides.Update(ctx.Request.Context(), ctx.Param("id"), upd); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete removes a hero slide by id.
func (c *HeroSlideController) Delete(ctx *gin.Context) {
	if err := c.slides.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
