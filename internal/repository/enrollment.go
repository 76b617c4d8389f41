package repository

import (
	"gradebench-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *gorm.DB
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Create creates a new enrollment
func (r *EnrollmentRepository) Create(enrollment *models.Enrollment) error {
	return r.db.Create(enrollment).Error
}

// Update updates an enrollment
func (r *EnrollmentRepository) Update(enrollment *models.Enrollment) error {
	return r.db.Save(enrollment).Error
}

// GetByCanvasID retrieves an enrollment by its remote LMS id
func (r *EnrollmentRepository) GetByCanvasID(canvasID int64) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := r.db.First(&enrollment, "canvas_id = ?", canvasID).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// GetByCourseID retrieves all enrollments of a course
func (r *EnrollmentRepository) GetByCourseID(courseID uuid.UUID) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := r.db.Where("course_id = ?", courseID).Find(&enrollments).Error
	return enrollments, err
}

// GetByCourseAndCanvasUser retrieves the enrollment of a remote user in a course
func (r *EnrollmentRepository) GetByCourseAndCanvasUser(courseID uuid.UUID, canvasUserID int64) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := r.db.First(&enrollment, "course_id = ? AND canvas_user_id = ?", courseID, canvasUserID).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// CountByCourseID returns the number of enrollments in a course
func (r *EnrollmentRepository) CountByCourseID(courseID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Enrollment{}).Where("course_id = ?", courseID).Count(&count).Error
	return count, err
}
