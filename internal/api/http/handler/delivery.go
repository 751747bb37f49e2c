package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/milkledger/server/internal/logger"
	"github.com/milkledger/server/internal/model"
	"github.com/milkledger/server/internal/service"
)

// Delivery handles delivery record endpoints.
type Delivery struct {
	service *service.Delivery
	logger  *logger.Logger
}

// NewDelivery creates a new Delivery handler.
func NewDelivery(service *service.Delivery, logger *logger.Logger) *Delivery {
	return &Delivery{service: service, logger: logger}
}

// Upsert records or removes a day's delivery. Quantity is accepted as any
// JSON value; the service coerces it.
func (h *Delivery) Upsert(c *gin.Context) {
	var req struct {
		CourierID string `json:"courier_id"`
		Year      int    `json:"year"`
		Month     int    `json:"month"`
		Day       int    `json:"day"`
		Quantity  any    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, h.logger, model.NewValidationError("invalid request body"))
		return
	}

	result, err := h.service.Upsert(c.Request.Context(), service.UpsertDeliveryParams{
		CourierID: req.CourierID,
		Year:      req.Year,
		Month:     req.Month,
		Day:       req.Day,
		Quantity:  req.Quantity,
	})
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	if result.Deleted {
		c.JSON(http.StatusOK, gin.H{"success": true, "deleted": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Delivery) CourierMonth(c *gin.Context) {
	year, month, err := parseYearMonth(c)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	days, err := h.service.CourierMonth(c.Request.Context(), c.Param("id"), year, month)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, days)
}

func (h *Delivery) MonthOverview(c *gin.Context) {
	year, month, err := parseYearMonth(c)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	deliveries, err := h.service.MonthOverview(c.Request.Context(), year, month)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, deliveries)
}
