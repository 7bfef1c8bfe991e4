package handler

import (
	"levelup/dto"
	"levelup/usecase"
	"levelup/utils"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	service *usecase.AnalyticsService
}

func NewAnalyticsHandler(service *usecase.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

func (h *AnalyticsHandler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c)
	if err != nil {
		internalError(c, err, "Failed to build analytics summary")
		return
	}
	utils.Success(c, summary)
}

func (h *AnalyticsHandler) Daily(c *gin.Context) {
	days, ok := windowDays(c, usecase.DefaultDailyWindowDays)
	if !ok {
		return
	}

	breakdown, err := h.service.Daily(c, days)
	if err != nil {
		internalError(c, err, "Failed to build daily analytics")
		return
	}
	utils.Success(c, breakdown)
}

func (h *AnalyticsHandler) CategoryDaily(c *gin.Context) {
	days, ok := windowDays(c, usecase.DefaultCategoryWindowDays)
	if !ok {
		return
	}

	breakdown, err := h.service.CategoryDaily(c, c.Param("id"), days)
	if err != nil {
		internalError(c, err, "Failed to build category analytics")
		return
	}
	utils.Success(c, breakdown)
}

// windowDays binds ?days=, answering 422 itself when the value is unusable.
func windowDays(c *gin.Context, fallback int) (int, bool) {
	var query dto.AnalyticsWindowQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		validationFailed(c, err)
		return 0, false
	}
	if query.Days == nil {
		return fallback, true
	}
	return *query.Days, true
}
