package testutils

import (
	"fmt"
	"time"

	"gradebench-backend/internal/database/models"

	"github.com/google/uuid"
)

// CourseFactory provides methods to create test Course data
type CourseFactory struct{}

// NewCourseFactory creates a new CourseFactory
func NewCourseFactory() *CourseFactory {
	return &CourseFactory{}
}

// Create creates a test Course with default values
func (f *CourseFactory) Create() *models.Course {
	id := uuid.New()
	return &models.Course{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CanvasID:      int64(1000 + id.ID()%9000),
		Name:          "Introduction to Databases",
		CourseCode:    "CS-145",
		Term:          "Fall 2026",
		WorkflowState: "available",
	}
}

// WithCanvasID sets a custom remote id for the course
func (f *CourseFactory) WithCanvasID(canvasID int64) *models.Course {
	course := f.Create()
	course.CanvasID = canvasID
	return course
}

// StudentFactory provides methods to create test Student data
type StudentFactory struct{}

// NewStudentFactory creates a new StudentFactory
func NewStudentFactory() *StudentFactory {
	return &StudentFactory{}
}

// Create creates a test Student with default values
func (f *StudentFactory) Create() *models.Student {
	id := uuid.New()
	canvasUserID := int64(id.ID())
	return &models.Student{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "Ada Lovelace",
		Email:        fmt.Sprintf("student-%s@test.edu", id.String()[:8]),
		CanvasUserID: &canvasUserID,
	}
}

// WithCanvasUserID sets a custom remote user id for the student
func (f *StudentFactory) WithCanvasUserID(canvasUserID int64) *models.Student {
	student := f.Create()
	student.CanvasUserID = &canvasUserID
	return student
}

// WithTeam assigns the student to a team
func (f *StudentFactory) WithTeam(teamID uuid.UUID) *models.Student {
	student := f.Create()
	student.TeamID = &teamID
	return student
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a manual test Team with default values
func (f *TeamFactory) Create(courseID uuid.UUID) *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:     fmt.Sprintf("Team %s", id.String()[:8]),
		CourseID: courseID,
	}
}

// Imported creates a team linked to a remote group
func (f *TeamFactory) Imported(courseID uuid.UUID, canvasGroupID int64) *models.Team {
	team := f.Create(courseID)
	team.CanvasGroupID = &canvasGroupID
	return team
}

// GroupCategoryFactory provides methods to create test GroupCategory data
type GroupCategoryFactory struct{}

// NewGroupCategoryFactory creates a new GroupCategoryFactory
func NewGroupCategoryFactory() *GroupCategoryFactory {
	return &GroupCategoryFactory{}
}

// Create creates a test GroupCategory with default values
func (f *GroupCategoryFactory) Create(courseID uuid.UUID) *models.GroupCategory {
	id := uuid.New()
	return &models.GroupCategory{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CanvasID: int64(id.ID()),
		CourseID: courseID,
		Name:     "Project Groups",
	}
}

// EnrollmentFactory provides methods to create test Enrollment data
type EnrollmentFactory struct{}

// NewEnrollmentFactory creates a new EnrollmentFactory
func NewEnrollmentFactory() *EnrollmentFactory {
	return &EnrollmentFactory{}
}

// Create creates a student-role test Enrollment with default values
func (f *EnrollmentFactory) Create(courseID uuid.UUID, canvasUserID int64) *models.Enrollment {
	id := uuid.New()
	return &models.Enrollment{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CanvasID:     int64(id.ID()),
		CourseID:     courseID,
		CanvasUserID: canvasUserID,
		UserName:     "Ada Lovelace",
		UserEmail:    fmt.Sprintf("enrollee-%s@test.edu", id.String()[:8]),
		Role:         models.RoleStudent,
	}
}

// AssignmentFactory provides methods to create test Assignment data
type AssignmentFactory struct{}

// NewAssignmentFactory creates a new AssignmentFactory
func NewAssignmentFactory() *AssignmentFactory {
	return &AssignmentFactory{}
}

// Create creates a test Assignment with default values
func (f *AssignmentFactory) Create(courseID uuid.UUID) *models.Assignment {
	id := uuid.New()
	return &models.Assignment{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CanvasID:       int64(id.ID()),
		CourseID:       courseID,
		Name:           "Problem Set 1",
		PointsPossible: 100,
		GradingType:    "points",
		Published:      true,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Course        *CourseFactory
	Student       *StudentFactory
	Team          *TeamFactory
	GroupCategory *GroupCategoryFactory
	Enrollment    *EnrollmentFactory
	Assignment    *AssignmentFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Course:        NewCourseFactory(),
		Student:       NewStudentFactory(),
		Team:          NewTeamFactory(),
		GroupCategory: NewGroupCategoryFactory(),
		Enrollment:    NewEnrollmentFactory(),
		Assignment:    NewAssignmentFactory(),
	}
}
