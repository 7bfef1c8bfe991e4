package handler

import (
	"levelup/dto"
	"levelup/usecase"
	"levelup/utils"

	"github.com/gin-gonic/gin"
)

type GoalsHandler struct {
	service *usecase.GoalsService
}

func NewGoalsHandler(service *usecase.GoalsService) *GoalsHandler {
	return &GoalsHandler{service: service}
}

func (h *GoalsHandler) ListGoals(c *gin.Context) {
	goals, err := h.service.ListGoals(c)
	if err != nil {
		internalError(c, err, "Failed to fetch goals")
		return
	}
	utils.Success(c, goals)
}

func (h *GoalsHandler) CreateGoal(c *gin.Context) {
	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, err)
		return
	}

	goal, err := h.service.CreateGoal(c, &req)
	if err != nil {
		internalError(c, err, "Failed to create goal")
		return
	}
	utils.Success(c, goal)
}

func (h *GoalsHandler) DeleteGoal(c *gin.Context) {
	if err := h.service.DeleteGoal(c, c.Param("id")); err != nil {
		deleteFailed(c, err, "Goal")
		return
	}
	utils.Message(c, "Goal deleted")
}
