package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"crm_backend/internal/apperrors"
	"crm_backend/internal/logging"
)

// respondError maps the service error taxonomy onto HTTP status codes.
// Unexpected errors are logged in full but surface as a generic 500 so
// storage details never leak to the caller.
func respondError(c *gin.Context, err error) {
	var (
		validationErr *apperrors.ValidationError
		authErr       *apperrors.AuthError
		notFoundErr   *apperrors.NotFoundError
		conflictErr   *apperrors.ConflictError
		inventoryErr  *apperrors.InsufficientInventoryError
	)
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Msg})
	case errors.As(err, &authErr):
		c.JSON(http.StatusUnauthorized, gin.H{"error": authErr.Msg})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{"error": conflictErr.Msg})
	case errors.As(err, &inventoryErr):
		c.JSON(http.StatusConflict, gin.H{"error": inventoryErr.Error()})
	default:
		logging.L().WithError(err).Error("unhandled service error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
