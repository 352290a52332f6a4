package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budgetapi/internal/models"
	"budgetapi/internal/services"
)

// CategoryHandler handles category-related requests
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategoryRequest represents the request payload for creating a category
type CreateCategoryRequest struct {
	Name  string              `json:"name" binding:"required" example:"Groceries"`
	Icon  string              `json:"icon" binding:"required" example:"ShoppingCart"`
	Color string              `json:"color" binding:"required" example:"bg-orange-500"`
	Type  models.CategoryType `json:"type" binding:"required,category_type" example:"expense"`
}

// ListCategories handles the retrieval of categories
// @Summary     List categories
// @Description Get all categories ordered by id, optionally filtered by type
// @Tags        categories
// @Produce     json
// @Param       type query string false "Filter by category type (income/expense)"
// @Success     200 {array}  models.Category "Categories"
// @Failure     500 {object} ErrorResponse   "Server error"
// @Router      /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context(), queryPtr[models.CategoryType](c, "type"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// CreateCategory handles the creation of a new category
// @Summary     Create a category
// @Description Create a new transaction category; every field is required
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       request body CreateCategoryRequest true "Category details"
// @Success     201 {object} models.Category "Category created"
// @Failure     400 {object} ErrorResponse   "Invalid input (typed error mode)"
// @Failure     500 {object} ErrorResponse   "Server error"
// @Router      /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req.Name, req.Icon, req.Color, req.Type)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, category)
}
