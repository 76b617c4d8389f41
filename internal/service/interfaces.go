package service

import (
	"context"

	"gradebench-backend/internal/canvas"
	"gradebench-backend/internal/database/models"
	"gradebench-backend/internal/progress"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CanvasAPI is the LMS surface the sync engine depends on. The concrete
// implementation is *canvas.Client; tests substitute a mock.
type CanvasAPI interface {
	GetCourse(ctx context.Context, courseID int64) (*canvas.Course, error)
	ListCourses(ctx context.Context) ([]canvas.Course, error)
	ListEnrollments(ctx context.Context, courseID int64) ([]canvas.Enrollment, error)
	ListAssignments(ctx context.Context, courseID int64) ([]canvas.Assignment, error)
	ListSubmissions(ctx context.Context, courseID int64) ([]canvas.Submission, error)
	ListGroupCategories(ctx context.Context, courseID int64) ([]canvas.GroupCategory, error)
	ListGroups(ctx context.Context, categoryID int64) ([]canvas.Group, error)
	ListGroupUsers(ctx context.Context, groupID int64) ([]canvas.User, error)
	ReplaceGroupMembers(ctx context.Context, groupID int64, userIDs []int64) (*canvas.MembershipAck, error)
	CreateGroupCategory(ctx context.Context, courseID int64, name string) (*canvas.GroupCategory, error)
	CreateGroup(ctx context.Context, categoryID int64, name, description string) (*canvas.Group, error)
}

// SyncServiceInterface defines the interface for the sync engine
type SyncServiceInterface interface {
	StartSync(ctx context.Context, actor string, courseCanvasID int64) (string, error)
	StartSyncAll(ctx context.Context, actor string) (string, error)
	GetProgress(ctx context.Context, actor, target string) (*progress.Record, error)
}

// PushServiceInterface defines the interface for the push gateway
type PushServiceInterface interface {
	PushTeamMembership(ctx context.Context, teamID uuid.UUID) (*canvas.MembershipAck, error)
	PushCourseMemberships(ctx context.Context, courseCanvasID int64) ([]canvas.MembershipAck, []error)
	EnsureRemoteGroup(ctx context.Context, teamID uuid.UUID) (*models.Team, error)
}

// TeamServiceInterface defines the interface for team operations
type TeamServiceInterface interface {
	CreateManualTeam(req *CreateTeamRequest) (*models.Team, error)
	GetByID(id uuid.UUID) (*TeamResponse, error)
	GetByCourse(courseCanvasID int64) ([]TeamResponse, error)
}

// CourseServiceInterface defines the interface for course queries
type CourseServiceInterface interface {
	GetAll(limit, offset int) ([]models.Course, int64, error)
	GetByCanvasID(canvasID int64) (*models.Course, error)
}

// StudentServiceInterface defines the interface for student operations
type StudentServiceInterface interface {
	GetAll(limit, offset int) ([]models.Student, int64, error)
	LinkGitHub(ctx context.Context, studentID uuid.UUID, username string) (*models.Student, error)
}

// GitHubServiceInterface defines the interface for Git platform identity lookups
type GitHubServiceInterface interface {
	LookupUser(ctx context.Context, username string) (*GitHubIdentity, error)
}

// DirectoryLookup resolves people through the institutional directory.
// It is an optional fallback for reconciling remote users to students.
type DirectoryLookup interface {
	Enabled() bool
	FindByEmail(email string) (*DirectoryPerson, error)
}
