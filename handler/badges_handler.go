package handler

import (
	"levelup/dto"
	"levelup/usecase"
	"levelup/utils"

	"github.com/gin-gonic/gin"
)

type BadgesHandler struct {
	service *usecase.BadgesService
}

func NewBadgesHandler(service *usecase.BadgesService) *BadgesHandler {
	return &BadgesHandler{service: service}
}

func (h *BadgesHandler) ListBadges(c *gin.Context) {
	badges, err := h.service.ListBadges(c)
	if err != nil {
		internalError(c, err, "Failed to fetch badges")
		return
	}
	utils.Success(c, badges)
}

func (h *BadgesHandler) CreateBadge(c *gin.Context) {
	var req dto.CreateBadgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, err)
		return
	}

	badge, err := h.service.CreateBadge(c, &req)
	if err != nil {
		internalError(c, err, "Failed to create badge")
		return
	}
	utils.Success(c, badge)
}

func (h *BadgesHandler) DeleteBadge(c *gin.Context) {
	if err := h.service.DeleteBadge(c, c.Param("id")); err != nil {
		deleteFailed(c, err, "Badge")
		return
	}
	utils.Message(c, "Badge deleted")
}
