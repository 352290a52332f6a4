package services

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"budgetapi/internal/database"
	apperrors "budgetapi/internal/errors"
	"budgetapi/internal/models"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// ListCategories returns categories ordered by id, optionally restricted to
// one type. An unknown type simply matches nothing.
func (s *categoryService) ListCategories(ctx context.Context, categoryType *models.CategoryType) ([]models.Category, error) {
	query := database.Conn(ctx, s.db).Model(&models.Category{})
	if categoryType != nil {
		query = query.Where("type = ?", *categoryType)
	}

	categories := make([]models.Category, 0)
	if err := query.Order("id ASC").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDataAccess, err)
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

// CreateCategory creates a new category and returns the stored row
func (s *categoryService) CreateCategory(ctx context.Context, name, icon, color string, categoryType models.CategoryType) (*models.Category, error) {
	switch {
	case name == "":
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	case icon == "":
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "icon is required")
	case color == "":
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "color is required")
	case !categoryType.Valid():
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be income or expense")
	}

	category := &models.Category{
		Name:  name,
		Icon:  icon,
		Color: color,
		Type:  categoryType,
	}

	if err := database.Conn(ctx, s.db).Clauses(clause.Returning{}).Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDataAccess, err)
	}

	return category, nil
}
