package service

import (
	"context"
	"fmt"

	"gradebench-backend/internal/database/models"
	apperrors "gradebench-backend/internal/errors"
	"gradebench-backend/internal/logger"
	"gradebench-backend/internal/repository"

	"github.com/google/uuid"
)

// StudentService handles student queries and identity linking
type StudentService struct {
	students repository.StudentRepositoryInterface
	github   GitHubServiceInterface
	log      *logger.Logger
}

// NewStudentService creates a new student service. github may be nil, in
// which case LinkGitHub stores the username without verifying it.
func NewStudentService(students repository.StudentRepositoryInterface, github GitHubServiceInterface) *StudentService {
	return &StudentService{
		students: students,
		github:   github,
		log:      logger.New().WithField("component", "students"),
	}
}

// GetAll returns a page of students with the total count
func (s *StudentService) GetAll(limit, offset int) ([]models.Student, int64, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.students.GetAll(limit, offset)
}

// LinkGitHub attaches a Git platform identity to a student. When a lookup
// service is configured the username is verified remotely first and the
// numeric account id is stored alongside it.
func (s *StudentService) LinkGitHub(ctx context.Context, studentID uuid.UUID, username string) (*models.Student, error) {
	if username == "" {
		return nil, apperrors.NewValidationError("username", "must not be empty")
	}

	student, err := s.students.GetByID(studentID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, err
	}

	student.GitHubUsername = username
	if s.github != nil {
		identity, err := s.github.LookupUser(ctx, username)
		if err != nil {
			return nil, fmt.Errorf("verify github user %q: %w", username, err)
		}
		student.GitHubID = identity.ID
		if student.Name == "" && identity.Name != "" {
			student.Name = identity.Name
		}
	}

	if err := s.students.Update(student); err != nil {
		return nil, err
	}
	s.log.WithFields(map[string]interface{}{
		"student": student.Email, "github": username,
	}).Info("linked github identity")
	return student, nil
}
