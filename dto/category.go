package dto

type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Icon  string `json:"icon" binding:"required"`
	Color string `json:"color" binding:"required"`
	// Defaults to true when omitted.
	IsCustom *bool `json:"is_custom"`
}
