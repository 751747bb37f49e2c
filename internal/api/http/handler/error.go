package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/milkledger/server/internal/logger"
	"github.com/milkledger/server/internal/model"
)

// handleError maps the error taxonomy to transport status codes: missing
// or malformed input 400, unauthenticated 401, not found 404, name
// conflict 409, everything else 500.
func handleError(c *gin.Context, l *logger.Logger, err error) {
	var (
		validationErr *model.ValidationError
		conflictErr   *model.ConflictError
		authErr       *model.AuthenticationError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.As(err, &authErr):
		c.JSON(http.StatusUnauthorized, gin.H{"error": authErr.Error()})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{"error": conflictErr.Error()})
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		l.Error("Handler: request failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// parseYearMonth reads the year and month path parameters.
func parseYearMonth(c *gin.Context) (int, int, error) {
	year, month, err := atoiPair(c.Param("year"), c.Param("month"))
	if err != nil {
		return 0, 0, model.NewValidationError("invalid year or month")
	}
	return year, month, nil
}
