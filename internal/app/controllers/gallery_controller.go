package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/smartschool/backend/internal/app/models"
	"github.com/smartschool/backend/internal/app/upload"
	"github.com/smartschool/backend/internal/middleware"
)

// GalleryStore is the persistence surface the gallery controller needs.
type GalleryStore interface {
	List(ctx context.Context) ([]models.GalleryImage, error)
	CreateMany(ctx context.Context, images []models.GalleryImage) error
	Delete(ctx context.Context, id string) error
}

// GalleryController handles gallery listing, batch upload and deletion.
type GalleryController struct {
	gallery  GalleryStore
	pipeline *upload.Pipeline
}

// NewGalleryController creates a new GalleryController.
func NewGalleryController(gallery GalleryStore, pipeline *upload.Pipeline) *GalleryController {
	return &GalleryController{gallery: gallery, pipeline: pipeline}
}

// List returns all gallery images, newest first.
func (c *GalleryController) List(ctx *gin.Context) {
	images, err := c.gallery.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, images)
}

// Create stores every attachment under "images" and persists one gallery
// record per file, all sharing the request's category and uploader. The
// records are written only after every file has been stored, so a failed
// upload persists nothing. An empty batch is a valid request that
// persists nothing and still succeeds.
func (c *GalleryController) Create(ctx *gin.Context) {
	stored, err := c.pipeline.Batch(ctx.Request.Context(), ctx.Request, "images")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	category := ctx.PostForm("category")

	// adminId is a weak back-reference; anything unparseable is stored as no uploader
	var uploadedBy *primitive.ObjectID
	if oid, err := primitive.ObjectIDFromHex(ctx.PostForm("adminId")); err == nil {
		uploadedBy = &oid
	}

	images := make([]models.GalleryImage, len(stored))
	for i, f := range stored {
		images[i] = models.GalleryImage{
			ImageURL:   f.URL,
			Category:   category,
			UploadedBy: uploadedBy,
		}
	}

	if err := c.gallery.CreateMany(ctx.Request.Context(), images); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete removes a gallery image by id.
func (c *GalleryController) Delete(ctx *gin.Context) {
	if err := c.gallery.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
