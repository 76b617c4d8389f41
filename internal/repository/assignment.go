package repository

import (
	"gradebench-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentRepository handles database operations for assignments
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create creates a new assignment
func (r *AssignmentRepository) Create(assignment *models.Assignment) error {
	return r.db.Create(assignment).Error
}

// Update updates an assignment
func (r *AssignmentRepository) Update(assignment *models.Assignment) error {
	return r.db.Save(assignment).Error
}

// GetByCanvasID retrieves an assignment by its remote LMS id
func (r *AssignmentRepository) GetByCanvasID(canvasID int64) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.db.First(&assignment, "canvas_id = ?", canvasID).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetByCourseID retrieves all assignments of a course
func (r *AssignmentRepository) GetByCourseID(courseID uuid.UUID) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.Where("course_id = ?", courseID).Order("due_at").Find(&assignments).Error
	return assignments, err
}
