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

// NoticeStore is the persistence surface the notice controller needs.
type NoticeStore interface {
	List(ctx context.Context, activeOnly bool) ([]models.Notice, error)
	Create(ctx context.Context, notice *models.Notice) error
	Update(ctx context.Context, id string, upd models.NoticeUpdate) (*models.Notice, error)
	Delete(ctx context.Context, id string) error
}

// NoticeController handles announcements.
type NoticeController struct {
	notices  NoticeStore
	pipeline *upload.Pipeline
}

// NewNoticeController creates a new NoticeController.
func NewNoticeController(notices NoticeStore, pipeline *upload.Pipeline) *NoticeController {
	return &NoticeController{notices: notices, pipeline: pipeline}
}

// List returns active notices, newest first.
func (c *NoticeController) List(ctx *gin.Context) {
	notices, err := c.notices.List(ctx.Request.Context(), true)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, notices)
}

// ListAll returns every notice including hidden ones.
func (c *NoticeController) ListAll(ctx *gin.Context) {
	notices, err := c.notices.List(ctx.Request.Context(), false)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, notices)
}

// Create persists a new notice with an optional image.
func (c *NoticeController) Create(ctx *gin.Context) {
	imageURL, err := c.pipeline.Single(ctx.Request.Context(), ctx.Request, "image", false)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	notice := models.Notice{
		Title:    ctx.PostForm("title"),
		Content:  ctx.PostForm("content"),
		Priority: ctx.PostForm("priority"),
		ImageURL: imageURL,
	}

	if err := c.notices.Create(ctx.Request.Context(), &notice); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// Update overwrites the supplied form fields; the image changes only
// when a new file is attached. Toggling isActive hides or shows the
// notice without deleting it.
func (c *NoticeController) Update(ctx *gin.Context) {
	imageURL, err := c.pipeline.Single(ctx.Request.Context(), ctx.Request, "image", false)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var upd models.NoticeUpdate
	if v, ok := ctx.GetPostForm("title"); ok {
		upd.Title = &v
	}
	if v, ok := ctx.GetPostForm("content"); ok {
		upd.Content = &v
	}
	if v, ok := ctx.GetPostForm("priority"); ok {
		upd.Priority = &v
	}
	if raw, ok := ctx.GetPostForm("isActive"); ok && raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			middleware.HandleAPIError(ctx, apperrors.NewValidationError("isActive must be a boolean"))
			return
		}
		upd.IsActive = &active
	}
	if imageURL != "" {
		upd.ImageURL = &imageURL
	}

	if _, err := c.notices.Update(ctx.Request.Context(), ctx.Param("id"), upd); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete removes a notice by id.
func (c *NoticeController) Delete(ctx *gin.Context) {
	if err := c.notices.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
