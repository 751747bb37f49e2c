package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/milkledger/server/internal/logger"
	"github.com/milkledger/server/internal/model"
	"github.com/milkledger/server/internal/service"
)

// Courier handles courier roster endpoints.
type Courier struct {
	service *service.Courier
	logger  *logger.Logger
}

// NewCourier creates a new Courier handler.
func NewCourier(service *service.Courier, logger *logger.Logger) *Courier {
	return &Courier{service: service, logger: logger}
}

func (h *Courier) List(c *gin.Context) {
	couriers, err := h.service.List(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, couriers)
}

func (h *Courier) Create(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, h.logger, model.NewValidationError("invalid request body"))
		return
	}

	courier, err := h.service.Create(c.Request.Context(), req.Name)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, courier)
}

func (h *Courier) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
