package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/milkledger/server/internal/logger"
)

// Resetter clears all stored data.
type Resetter interface {
	Reset(ctx context.Context)
}

// Admin handles maintenance endpoints.
type Admin struct {
	resetter Resetter
	logger   *logger.Logger
}

// NewAdmin creates a new Admin handler.
func NewAdmin(resetter Resetter, logger *logger.Logger) *Admin {
	return &Admin{resetter: resetter, logger: logger}
}

func (h *Admin) Reset(c *gin.Context) {
	h.resetter.Reset(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "all data cleared"})
}
