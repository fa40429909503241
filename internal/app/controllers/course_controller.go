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

// CourseStore is the persistence surface the course controller needs.
type CourseStore interface {
	List(ctx context.Context) ([]models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, id string, upd models.CourseUpdate) (*models.Course, error)
	Delete(ctx context.Context, id string) error
}

// CourseController handles course management.
type CourseController struct {
	courses CourseStore
}

// NewCourseController creates a new CourseController.
func NewCourseController(courses CourseStore) *CourseController {
	return &CourseController{courses: courses}
}

// List returns all courses.
func (c *CourseController) List(ctx *gin.Context) {
	courses, err := c.courses.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, courses)
}

// Create persists a new course.
func (c *CourseController) Create(ctx *gin.Context) {
	var req dto.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(err.Error()))
		return
	}

	course := models.Course{
		ClassName:    req.ClassName,
		TeacherName:  req.TeacherName,
		StudentCount: req.StudentCount,
	}
	if err := c.courses.Create(ctx.Request.Context(), &course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// Update overwrites only the supplied fields.
func (c *CourseController) Update(ctx *gin.Context) {
	var req dto.CourseUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(err.Error()))
		return
	}

	upd := models.CourseUpdate{
		ClassName:    req.ClassName,
		TeacherName:  req.TeacherName,
		StudentCount: req.StudentCount,
	}
	if _, err := c.courses.Update(ctx.Request.Context(), ctx.Param("id"), upd); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete removes a course by id.
func (c *CourseController) Delete(ctx *gin.Context) {
	if err := c.courses.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
