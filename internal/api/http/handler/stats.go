package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/milkledger/server/internal/logger"
	"github.com/milkledger/server/internal/service"
)

// Stats handles statistics and ranking endpoints.
type Stats struct {
	service *service.Stats
	logger  *logger.Logger
}

// NewStats creates a new Stats handler.
func NewStats(service *service.Stats, logger *logger.Logger) *Stats {
	return &Stats{service: service, logger: logger}
}

func (h *Stats) CourierMonth(c *gin.Context) {
	year, month, err := parseYearMonth(c)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	stats, err := h.service.CourierMonth(c.Request.Context(), c.Param("id"), year, month)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Stats) CourierAccount(c *gin.Context) {
	year, month, err := parseYearMonth(c)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	stats, err := h.service.CourierAccount(c.Request.Context(), c.Param("id"), year, month)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Stats) Ranking(c *gin.Context) {
	year, month, err := parseYearMonth(c)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	ranking, err := h.service.Ranking(c.Request.Context(), year, month)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, ranking)
}
