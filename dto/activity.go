package dto

type CreateActivityRequest struct {
	CategoryID   string  `json:"category_id" binding:"required"`
	CategoryName string  `json:"category_name" binding:"required"`
	Date         string  `json:"date" binding:"required,isodate"`
	StartTime    string  `json:"start_time" binding:"required,clock"`
	Duration     *int    `json:"duration" binding:"required"`
	Notes        *string `json:"notes"`
}

// ListActivitiesQuery binds GET /api/activities query parameters.
type ListActivitiesQuery struct {
	CategoryID string `form:"category_id"`
	StartDate  string `form:"start_date" binding:"omitempty,isodate"`
	EndDate    string `form:"end_date" binding:"omitempty,isodate"`
}
