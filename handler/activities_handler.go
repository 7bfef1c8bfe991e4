package handler

import (
	"levelup/dto"
	"levelup/model"
	"levelup/usecase"
	"levelup/utils"

	"github.com/gin-gonic/gin"
)

type ActivitiesHandler struct {
	service *usecase.ActivitiesService
}

func NewActivitiesHandler(service *usecase.ActivitiesService) *ActivitiesHandler {
	return &ActivitiesHandler{service: service}
}

// ListActivities serves GET /api/activities?category_id=&start_date=&end_date=
func (h *ActivitiesHandler) ListActivities(c *gin.Context) {
	var query dto.ListActivitiesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		validationFailed(c, err)
		return
	}

	activities, err := h.service.ListActivities(c, model.ActivityFilter{
		CategoryID: query.CategoryID,
		StartDate:  query.StartDate,
		EndDate:    query.EndDate,
	})
	if err != nil {
		internalError(c, err, "Failed to fetch activities")
		return
	}
	utils.Success(c, activities)
}

// CreateActivity stores the activity and runs the stats and badge updates
// before answering, so a follow-up GET /api/stats already reflects it.
func (h *ActivitiesHandler) CreateActivity(c *gin.Context) {
	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, err)
		return
	}

	activity, err := h.service.LogActivity(c, &req)
	if err != nil {
		if activity != nil {
			internalError(c, err, "Activity saved but progress update failed")
			return
		}
		internalError(c, err, "Failed to create activity")
		return
	}
	utils.Success(c, activity)
}

func (h *ActivitiesHandler) DeleteActivity(c *gin.Context) {
	if err := h.service.DeleteActivity(c, c.Param("id")); err != nil {
		deleteFailed(c, err, "Activity")
		return
	}
	utils.Message(c, "Activity deleted")
}
