package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartschool/backend/internal/pkg/apperrors"
)

// HandleAPIError maps application errors onto the wire convention: a
// bare {"error": message} body, 401 for credential mismatch, 404 for a
// missing target, 500 for everything else. Error bodies carry the raw
// message; there are no structured error codes.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
