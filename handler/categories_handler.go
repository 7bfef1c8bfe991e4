package handler

import (
	"levelup/dto"
	"levelup/usecase"
	"levelup/utils"

	"github.com/gin-gonic/gin"
)

type CategoriesHandler struct {
	service *usecase.CategoriesService
}

func NewCategoriesHandler(service *usecase.CategoriesService) *CategoriesHandler {
	return &CategoriesHandler{service: service}
}

func (h *CategoriesHandler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c)
	if err != nil {
		internalError(c, err, "Failed to fetch categories")
		return
	}
	utils.Success(c, categories)
}

func (h *CategoriesHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, err)
		return
	}

	category, err := h.service.CreateCategory(c, &req)
	if err != nil {
		internalError(c, err, "Failed to create category")
		return
	}
	utils.Success(c, category)
}

func (h *CategoriesHandler) DeleteCategory(c *gin.Context) {
	if err := h.service.DeleteCategory(c, c.Param("id")); err != nil {
		deleteFailed(c, err, "Category")
		return
	}
	utils.Message(c, "Category deleted")
}
