package repository

import (
	"gradebench-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CourseRepositoryInterface defines the interface for course repository operations
type CourseRepositoryInterface interface {
	Create(course *models.Course) error
	Update(course *models.Course) error
	GetByID(id uuid.UUID) (*models.Course, error)
	GetByCanvasID(canvasID int64) (*models.Course, error)
	GetAll(limit, offset int) ([]models.Course, int64, error)
	GetAllCanvasIDs() ([]int64, error)
}

// EnrollmentRepositoryInterface defines the interface for enrollment repository operations
type EnrollmentRepositoryInterface interface {
	Create(enrollment *models.Enrollment) error
	Update(enrollment *models.Enrollment) error
	GetByCanvasID(canvasID int64) (*models.Enrollment, error)
	GetByCourseID(courseID uuid.UUID) ([]models.Enrollment, error)
	GetByCourseAndCanvasUser(courseID uuid.UUID, canvasUserID int64) (*models.Enrollment, error)
	CountByCourseID(courseID uuid.UUID) (int64, error)
}

// StudentRepositoryInterface defines the interface for student repository operations
type StudentRepositoryInterface interface {
	Create(student *models.Student) error
	Update(student *models.Student) error
	GetByID(id uuid.UUID) (*models.Student, error)
	GetByEmail(email string) (*models.Student, error)
	GetByCanvasUserID(canvasUserID int64) (*models.Student, error)
	GetByTeamID(teamID uuid.UUID) ([]models.Student, error)
	GetAll(limit, offset int) ([]models.Student, int64, error)
	AssignTeam(studentID uuid.UUID, teamID *uuid.UUID) error
}

// AssignmentRepositoryInterface defines the interface for assignment repository operations
type AssignmentRepositoryInterface interface {
	Create(assignment *models.Assignment) error
	Update(assignment *models.Assignment) error
	GetByCanvasID(canvasID int64) (*models.Assignment, error)
	GetByCourseID(courseID uuid.UUID) ([]models.Assignment, error)
}

// SubmissionRepositoryInterface defines the interface for submission repository operations
type SubmissionRepositoryInterface interface {
	Create(submission *models.Submission) error
	Update(submission *models.Submission) error
	GetByCanvasID(canvasID int64) (*models.Submission, error)
	GetByAssignmentID(assignmentID uuid.UUID) ([]models.Submission, error)
}

// GroupCategoryRepositoryInterface defines the interface for group category repository operations
type GroupCategoryRepositoryInterface interface {
	Create(category *models.GroupCategory) error
	Update(category *models.GroupCategory) error
	GetByID(id uuid.UUID) (*models.GroupCategory, error)
	GetByCanvasID(canvasID int64) (*models.GroupCategory, error)
	GetByCourseID(courseID uuid.UUID) ([]models.GroupCategory, error)
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	Update(team *models.Team) error
	Delete(id uuid.UUID) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByCanvasGroupID(canvasGroupID int64) (*models.Team, error)
	GetByName(courseID uuid.UUID, name string) (*models.Team, error)
	GetByCourseID(courseID uuid.UUID) ([]models.Team, error)
	GetImportedByCourseID(courseID uuid.UUID) ([]models.Team, error)
	GetImportedByCategoryID(categoryID uuid.UUID) ([]models.Team, error)
	GetWithMembers(id uuid.UUID) (*models.Team, error)
	GetMemberCount(teamID uuid.UUID) (int64, error)
}

// MembershipChangeRepositoryInterface defines the interface for the reassignment audit trail
type MembershipChangeRepositoryInterface interface {
	Create(change *models.TeamMembershipChange) error
	GetByStudentID(studentID uuid.UUID) ([]models.TeamMembershipChange, error)
}

// SyncRunRepositoryInterface defines the interface for sync run history
type SyncRunRepositoryInterface interface {
	Create(run *models.SyncRun) error
	Update(run *models.SyncRun) error
	GetByID(id uuid.UUID) (*models.SyncRun, error)
	GetLatestByCourse(courseID uuid.UUID, kind string) (*models.SyncRun, error)
}
