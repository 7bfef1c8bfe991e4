package handler

import (
	"levelup/usecase"
	"levelup/utils"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	progress *usecase.ProgressService
}

func NewStatsHandler(progress *usecase.ProgressService) *StatsHandler {
	return &StatsHandler{progress: progress}
}

// GetUserStats returns the profile, recreating the default one when it is missing.
func (h *StatsHandler) GetUserStats(c *gin.Context) {
	stats, err := h.progress.GetStats(c)
	if err != nil {
		internalError(c, err, "Failed to fetch user stats")
		return
	}
	utils.Success(c, stats)
}
