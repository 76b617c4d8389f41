package repository

import (
	"gradebench-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *gorm.DB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// Create creates a new course
func (r *CourseRepository) Create(course *models.Course) error {
	return r.db.Create(course).Error
}

// Update updates a course
func (r *CourseRepository) Update(course *models.Course) error {
	return r.db.Save(course).Error
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(id uuid.UUID) (*models.Course, error) {
	var course models.Course
	err := r.db.First(&course, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// GetByCanvasID retrieves a course by its remote LMS id
func (r *CourseRepository) GetByCanvasID(canvasID int64) (*models.Course, error) {
	var course models.Course
	err := r.db.First(&course, "canvas_id = ?", canvasID).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// GetAll retrieves all courses with pagination
func (r *CourseRepository) GetAll(limit, offset int) ([]models.Course, int64, error) {
	var courses []models.Course
	var total int64

	if err := r.db.Model(&models.Course{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name").Limit(limit).Offset(offset).Find(&courses).Error
	if err != nil {
		return nil, 0, err
	}
	return courses, total, nil
}

// GetAllCanvasIDs returns the remote ids of every stored course
func (r *CourseRepository) GetAllCanvasIDs() ([]int64, error) {
	var ids []int64
	err := r.db.Model(&models.Course{}).Pluck("canvas_id", &ids).Error
	return ids, err
}
