package repository

import (
	"gradebench-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmissionRepository handles database operations for submissions
type SubmissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// Create creates a new submission
func (r *SubmissionRepository) Create(submission *models.Submission) error {
	return r.db.Create(submission).Error
}

// Update updates a submission
func (r *SubmissionRepository) Update(submission *models.Submission) error {
	return r.db.Save(submission).Error
}

// GetByCanvasID retrieves a submission by its remote LMS id
func (r *SubmissionRepository) GetByCanvasID(canvasID int64) (*models.Submission, error) {
	var submission models.Submission
	err := r.db.First(&submission, "canvas_id = ?", canvasID).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

// GetByAssignmentID retrieves all submissions of an assignment
func (r *SubmissionRepository) GetByAssignmentID(assignmentID uuid.UUID) ([]models.Submission, error) {
	var submissions []models.Submission
	err := r.db.Where("assignment_id = ?", assignmentID).Find(&submissions).Error
	return submissions, err
}
