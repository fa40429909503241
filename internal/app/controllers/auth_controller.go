// Package controllers maps HTTP requests onto repository operations.
// Each controller depends on a narrow store interface declared here, so
// handler tests run against hand-written mocks.
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

// AdminStore is the admin lookup surface the auth controller needs.
type AdminStore interface {
	FindByCredentials(ctx context.Context, username, password string) (*models.Admin, error)
}

// AuthController handles admin login.
type AuthController struct {
	admins AdminStore
}

// NewAuthController creates a new AuthController.
func NewAuthController(admins AdminStore) *AuthController {
	return &AuthController{admins: admins}
}

// Login checks the submitted credentials against the stored admin by
// exact match and echoes the admin record on success.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(err.Error()))
		return
	}

	admin, err := c.admins.FindByCredentials(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "admin": admin})
}
