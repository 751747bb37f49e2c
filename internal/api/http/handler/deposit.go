package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/milkledger/server/internal/logger"
	"github.com/milkledger/server/internal/model"
	"github.com/milkledger/server/internal/service"
)

// Deposit handles deposit record endpoints.
type Deposit struct {
	service *service.Deposit
	logger  *logger.Logger
}

// NewDeposit creates a new Deposit handler.
func NewDeposit(service *service.Deposit, logger *logger.Logger) *Deposit {
	return &Deposit{service: service, logger: logger}
}

func (h *Deposit) Create(c *gin.Context) {
	var req struct {
		CourierID   string  `json:"courier_id"`
		Year        int     `json:"year"`
		Month       int     `json:"month"`
		Day         int     `json:"day"`
		Amount      float64 `json:"amount"`
		Description string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, h.logger, model.NewValidationError("invalid request body"))
		return
	}

	deposit, err := h.service.Create(c.Request.Context(), service.CreateDepositParams{
		CourierID:   req.CourierID,
		Year:        req.Year,
		Month:       req.Month,
		Day:         req.Day,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "deposit": deposit})
}

func (h *Deposit) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (h *Deposit) CourierMonth(c *gin.Context) {
	year, month, err := parseYearMonth(c)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	deposits, err := h.service.CourierMonth(c.Request.Context(), c.Param("id"), year, month)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, deposits)
}

func (h *Deposit) MonthOverview(c *gin.Context) {
	year, month, err := parseYearMonth(c)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	deposits, err := h.service.MonthOverview(c.Request.Context(), year, month)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, deposits)
}
