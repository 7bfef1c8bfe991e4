package dto

type CreateBadgeRequest struct {
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description" binding:"required"`
	Icon           string `json:"icon" binding:"required"`
	ConditionType  string `json:"condition_type" binding:"required"` // streak, activity_count, level, category_specific
	ConditionValue *int   `json:"condition_value" binding:"required"`
}
