package service

import (
	"gradebench-backend/internal/database/models"
	apperrors "gradebench-backend/internal/errors"
	"gradebench-backend/internal/repository"
)

// CourseService handles course queries
type CourseService struct {
	courses repository.CourseRepositoryInterface
}

// NewCourseService creates a new course service
func NewCourseService(courses repository.CourseRepositoryInterface) *CourseService {
	return &CourseService{courses: courses}
}

// GetAll returns a page of courses with the total count
func (s *CourseService) GetAll(limit, offset int) ([]models.Course, int64, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.courses.GetAll(limit, offset)
}

// GetByCanvasID returns a course by its remote LMS id
func (s *CourseService) GetByCanvasID(canvasID int64) (*models.Course, error) {
	course, err := s.courses.GetByCanvasID(canvasID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}
