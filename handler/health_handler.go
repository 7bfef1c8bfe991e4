package handler

import (
	"context"
	"time"

	"levelup/dto"
	"levelup/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Pinger is satisfied by *mongo.Client.
type Pinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

type HealthHandler struct {
	db          Pinger
	cpuInterval time.Duration
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db, cpuInterval: 100 * time.Millisecond}
}

func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	resp := dto.HealthResponse{
		Status:   "ok",
		Database: "up",
		Host:     utils.GetHostStats(ctx, h.cpuInterval),
	}

	if err := h.db.Ping(ctx, readpref.Primary()); err != nil {
		utils.WithContext(c).WithError(err).Warn("Health check: database ping failed")
		utils.TrackError("health", "db_ping")
		resp.Status = "degraded"
		resp.Database = "down"
		utils.ServiceUnavailable(c, resp)
		return
	}
	utils.Success(c, resp)
}
