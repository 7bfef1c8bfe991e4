package dto

type CreateGoalRequest struct {
	CategoryID   string `json:"category_id" binding:"required"`
	CategoryName string `json:"category_name" binding:"required"`
	Target       *int   `json:"target" binding:"required"`
	Period       string `json:"period" binding:"required"`
}
