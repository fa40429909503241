package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartschool/backend/internal/app/models"
	"github.com/smartschool/backend/internal/app/upload"
	"github.com/smartschool/backend/internal/middleware"
)

// FacultyStore is the persistence surface the faculty controller needs.
type FacultyStore interface {
	List(ctx context.Context) ([]models.Faculty, error)
	Create(ctx context.Context, member *models.Faculty) error
	Update(ctx context.Context, id string, upd models.FacultyUpdate) (*models.Faculty, error)
	Delete(ctx context.Context, id string) error
}

// FacultyController handles staff profile management.
type FacultyController struct {
	faculty  FacultyStore
	pipeline *upload.Pipeline
}

// NewFacultyController creates a new FacultyController.
func NewFacultyController(faculty FacultyStore, pipeline *upload.Pipeline) *FacultyController {
	return &FacultyController{faculty: faculty, pipeline: pipeline}
}

// List returns all faculty members.
func (c *FacultyController) List(ctx *gin.Context) {
	faculty, err := c.faculty.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, faculty)
}

// Create persists a new faculty member with an optional photo.
func (c *FacultyController) Create(ctx *gin.Context) {
	imageURL, err := c.pipeline.Single(ctx.Request.Context(), ctx.Request, "image", false)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	member := models.Faculty{
		Name:       ctx.PostForm("name"),
		Department: ctx.PostForm("department"),
		Position:   ctx.PostForm("position"),
		Email:      ctx.PostForm("email"),
		Phone:      ctx.PostForm("phone"),
		ImageURL:   imageURL,
	}

	if err := c.faculty.Create(ctx.Request.Context(), &member); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// Update overwrites the supplied form fields; the photo changes only
// when a new file is attached.
func (c *FacultyController) Update(ctx *gin.Context) {
	imageURL, err := c.pipeline.Single(ctx.Request.Context(), ctx.Request, "image", false)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var upd models.FacultyUpdate
	if v, ok := ctx.GetPostForm("name"); ok {
		upd.Name = &v
	}
	if v, ok := ctx.GetPostForm("department"); ok {
		upd.Department = &v
	}
	if v, ok := ctx.GetPostForm("position"); ok {
		upd.Position = &v
	}
	if v, ok := ctx.GetPostForm("email"); ok {
		upd.Email = &v
	}
	if v, ok := ctx.GetPostForm("phone"); ok {
		upd.Phone = &v
	}
	if imageURL != "" {
		upd.ImageURL = &imageURL
	}

	if _, err := c.faculty.Update(ctx.Request.Context(), ctx.Param("id"), upd); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete removes a faculty member by id.
func (c *FacultyController) Delete(ctx *gin.Context) {
	if err := c.faculty.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
