package repository

import (
	"gradebench-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GroupCategoryRepository handles database operations for group categories
type GroupCategoryRepository struct {
	db *gorm.DB
}

// NewGroupCategoryRepository creates a new group category repository
func NewGroupCategoryRepository(db *gorm.DB) *GroupCategoryRepository {
	return &GroupCategoryRepository{db: db}
}

// Create creates a new group category
func (r *GroupCategoryRepository) Create(category *models.GroupCategory) error {
	return r.db.Create(category).Error
}

// Update updates a group category
func (r *GroupCategoryRepository) Update(category *models.GroupCategory) error {
	return r.db.Save(category).Error
}

// GetByID retrieves a group category by ID
func (r *GroupCategoryRepository) GetByID(id uuid.UUID) (*models.GroupCategory, error) {
	var category models.GroupCategory
	err := r.db.First(&category, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetByCanvasID retrieves a group category by its remote LMS id
func (r *GroupCategoryRepository) GetByCanvasID(canvasID int64) (*models.GroupCategory, error) {
	var category models.GroupCategory
	err := r.db.First(&category, "canvas_id = ?", canvasID).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetByCourseID retrieves all group categories of a course
func (r *GroupCategoryRepository) GetByCourseID(courseID uuid.UUID) ([]models.GroupCategory, error) {
	var categories []models.GroupCategory
	err := r.db.Where("course_id = ?", courseID).Find(&categories).Error
	return categories, err
}
