package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budgetapi/internal/services"
)

// StatisticsHandler serves aggregate reports.
type StatisticsHandler struct {
	statisticsService services.StatisticsServicer
}

// NewStatisticsHandler creates a new StatisticsHandler.
func NewStatisticsHandler(statisticsService services.StatisticsServicer) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: statisticsService}
}

// GetStatistics handles GET /statistics
// @Summary     Get statistics
// @Description Totals, balance, count and top-10 expense categories over the last day, week or month (default)
// @Tags        statistics
// @Produce     json
// @Param       period query string false "day, week or month" Enums(day, week, month)
// @Success     200 {object} models.Statistics "Statistics"
// @Failure     500 {object} ErrorResponse     "Server error"
// @Router      /statistics [get]
func (h *StatisticsHandler) GetStatistics(c *gin.Context) {
	period := services.ParsePeriod(c.Query("period"))

	stats, err := h.statisticsService.GetStatistics(c.Request.Context(), period)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
