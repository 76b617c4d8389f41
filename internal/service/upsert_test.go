package service_test

import (
	"testing"

	"gradebench-backend/internal/canvas"
	"gradebench-backend/internal/database/models"
	apperrors "gradebench-backend/internal/errors"
	"gradebench-backend/internal/mocks"
	"gradebench-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type upserterMocks struct {
	courses     *mocks.MockCourseRepositoryInterface
	enrollments *mocks.MockEnrollmentRepositoryInterface
	students    *mocks.MockStudentRepositoryInterface
	assignments *mocks.MockAssignmentRepositoryInterface
	submissions *mocks.MockSubmissionRepositoryInterface
	categories  *mocks.MockGroupCategoryRepositoryInterface
}

func newTestUpserter(t *testing.T) (*service.Upserter, *upserterMocks) {
	ctrl := gomock.NewController(t)
	m := &upserterMocks{
		courses:     mocks.NewMockCourseRepositoryInterface(ctrl),
		enrollments: mocks.NewMockEnrollmentRepositoryInterface(ctrl),
		students:    mocks.NewMockStudentRepositoryInterface(ctrl),
		assignments: mocks.NewMockAssignmentRepositoryInterface(ctrl),
		submissions: mocks.NewMockSubmissionRepositoryInterface(ctrl),
		categories:  mocks.NewMockGroupCategoryRepositoryInterface(ctrl),
	}
	upserter := service.NewUpserter(m.courses, m.enrollments, m.students, m.assignments, m.submissions, m.categories, validator.New())
	return upserter, m
}

func TestUpsertCourseCreates(t *testing.T) {
	upserter, m := newTestUpserter(t)

	dto := &canvas.Course{
		ID:            42,
		Name:          "Databases",
		CourseCode:    "CS-145",
		WorkflowState: "available",
		Term:          &canvas.Term{ID: 1, Name: "Fall 2026"},
	}

	m.courses.EXPECT().GetByCanvasID(int64(42)).Return(nil, gorm.ErrRecordNotFound)
	m.courses.EXPECT().Create(gomock.Any()).DoAndReturn(func(course *models.Course) error {
		assert.Equal(t, int64(42), course.CanvasID)
		assert.Equal(t, "Fall 2026", course.Term)
		return nil
	})

	course, created, err := upserter.UpsertCourse(dto)

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Databases", course.Name)
}

func TestUpsertCourseConvergesOnExistingRow(t *testing.T) {
	upserter, m := newTestUpserter(t)

	existing := &models.Course{CanvasID: 42, Name: "Old Name", Term: "Spring 2026"}
	m.courses.EXPECT().GetByCanvasID(int64(42)).Return(existing, nil)
	m.courses.EXPECT().Update(existing).Return(nil)

	// No term in the remote record: the stored one must survive.
	course, created, err := upserter.UpsertCourse(&canvas.Course{ID: 42, Name: "New Name"})

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "New Name", course.Name)
	assert.Equal(t, "Spring 2026", course.Term)
}

func TestUpsertCourseRejectsInvalidRecord(t *testing.T) {
	upserter, _ := newTestUpserter(t)

	_, _, err := upserter.UpsertCourse(&canvas.Course{ID: 42})

	require.Error(t, err)
	var upsertErr *apperrors.EntityUpsertError
	require.ErrorAs(t, err, &upsertErr)
	assert.Equal(t, "course", upsertErr.Kind)
	assert.Equal(t, int64(42), upsertErr.CanvasID)
}

func TestUpsertEnrollmentCreatesStudent(t *testing.T) {
	upserter, m := newTestUpserter(t)

	course := &models.Course{BaseModel: models.BaseModel{ID: uuid.New()}}
	dto := &canvas.Enrollment{
		ID:       7,
		CourseID: 42,
		UserID:   101,
		Type:     "StudentEnrollment",
		User:     &canvas.User{ID: 101, Name: "Ada Lovelace", LoginID: "ada@test.edu"},
	}

	m.students.EXPECT().GetByCanvasUserID(int64(101)).Return(nil, gorm.ErrRecordNotFound)
	m.students.EXPECT().GetByEmail("ada@test.edu").Return(nil, gorm.ErrRecordNotFound)
	m.students.EXPECT().Create(gomock.Any()).DoAndReturn(func(student *models.Student) error {
		assert.Equal(t, "Ada Lovelace", student.Name)
		assert.Equal(t, "ada@test.edu", student.Email)
		require.NotNil(t, student.CanvasUserID)
		assert.Equal(t, int64(101), *student.CanvasUserID)
		return nil
	})
	m.enrollments.EXPECT().GetByCanvasID(int64(7)).Return(nil, gorm.ErrRecordNotFound)
	m.enrollments.EXPECT().Create(gomock.Any()).DoAndReturn(func(enrollment *models.Enrollment) error {
		assert.Equal(t, course.ID, enrollment.CourseID)
		assert.NotNil(t, enrollment.StudentID)
		return nil
	})

	enrollment, created, err := upserter.UpsertEnrollment(course, dto)

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.RoleStudent, enrollment.Role)
	assert.Equal(t, "ada@test.edu", enrollment.UserEmail)
}

func TestUpsertEnrollmentLinksStudentByEmail(t *testing.T) {
	upserter, m := newTestUpserter(t)

	course := &models.Course{BaseModel: models.BaseModel{ID: uuid.New()}}
	existing := &models.Student{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Ada Lovelace",
		Email:     "ada@test.edu",
	}

	m.students.EXPECT().GetByCanvasUserID(int64(101)).Return(nil, gorm.ErrRecordNotFound)
	m.students.EXPECT().GetByEmail("ada@test.edu").Return(existing, nil)
	m.students.EXPECT().Update(existing).Return(nil)
	m.enrollments.EXPECT().GetByCanvasID(int64(7)).Return(nil, gorm.ErrRecordNotFound)
	m.enrollments.EXPECT().Create(gomock.Any()).Return(nil)

	_, _, err := upserter.UpsertEnrollment(course, &canvas.Enrollment{
		ID:       7,
		CourseID: 42,
		UserID:   101,
		Type:     "StudentEnrollment",
		User:     &canvas.User{ID: 101, Email: "ada@test.edu"},
	})

	require.NoError(t, err)
	// The email match adopts the remote identity.
	require.NotNil(t, existing.CanvasUserID)
	assert.Equal(t, int64(101), *existing.CanvasUserID)
}

func TestUpsertEnrollmentTeacherRoleSkipsStudent(t *testing.T) {
	upserter, m := newTestUpserter(t)

	course := &models.Course{BaseModel: models.BaseModel{ID: uuid.New()}}

	// No student repository expectations: a teacher enrollment must not
	// touch the students table.
	m.enrollments.EXPECT().GetByCanvasID(int64(8)).Return(nil, gorm.ErrRecordNotFound)
	m.enrollments.EXPECT().Create(gomock.Any()).DoAndReturn(func(enrollment *models.Enrollment) error {
		assert.Nil(t, enrollment.StudentID)
		return nil
	})

	_, created, err := upserter.UpsertEnrollment(course, &canvas.Enrollment{
		ID:       8,
		CourseID: 42,
		UserID:   555,
		Type:     "TeacherEnrollment",
		User:     &canvas.User{ID: 555, Name: "Prof. Codd"},
	})

	require.NoError(t, err)
	assert.True(t, created)
}

func TestUpsertAssignmentIsIdempotent(t *testing.T) {
	upserter, m := newTestUpserter(t)

	course := &models.Course{BaseModel: models.BaseModel{ID: uuid.New()}}
	dto := &canvas.Assignment{ID: 30, Name: "Problem Set 1", PointsPossible: 100, Published: true}

	gomock.InOrder(
		m.assignments.EXPECT().GetByCanvasID(int64(30)).Return(nil, gorm.ErrRecordNotFound),
		m.assignments.EXPECT().Create(gomock.Any()).DoAndReturn(func(assignment *models.Assignment) error {
			assignment.ID = uuid.New()
			return nil
		}),
		m.assignments.EXPECT().GetByCanvasID(int64(30)).DoAndReturn(func(int64) (*models.Assignment, error) {
			return &models.Assignment{CanvasID: 30, CourseID: course.ID, Name: "Problem Set 1"}, nil
		}),
		m.assignments.EXPECT().Update(gomock.Any()).Return(nil),
	)

	_, created, err := upserter.UpsertAssignment(course, dto)
	require.NoError(t, err)
	assert.True(t, created)

	_, created, err = upserter.UpsertAssignment(course, dto)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestUpsertSubmissionRequiresAssignment(t *testing.T) {
	upserter, m := newTestUpserter(t)

	m.assignments.EXPECT().GetByCanvasID(int64(30)).Return(nil, gorm.ErrRecordNotFound)

	_, _, err := upserter.UpsertSubmission(&canvas.Submission{ID: 1, AssignmentID: 30, UserID: 101})

	require.Error(t, err)
	var upsertErr *apperrors.EntityUpsertError
	require.ErrorAs(t, err, &upsertErr)
	assert.Equal(t, "submission", upsertErr.Kind)
}

func TestUpsertSubmissionWithoutStudentLink(t *testing.T) {
	upserter, m := newTestUpserter(t)

	assignment := &models.Assignment{BaseModel: models.BaseModel{ID: uuid.New()}, CanvasID: 30}
	m.assignments.EXPECT().GetByCanvasID(int64(30)).Return(assignment, nil)
	m.students.EXPECT().GetByCanvasUserID(int64(101)).Return(nil, gorm.ErrRecordNotFound)
	m.submissions.EXPECT().GetByCanvasID(int64(1)).Return(nil, gorm.ErrRecordNotFound)
	m.submissions.EXPECT().Create(gomock.Any()).DoAndReturn(func(submission *models.Submission) error {
		assert.Equal(t, assignment.ID, submission.AssignmentID)
		assert.Nil(t, submission.StudentID)
		return nil
	})

	_, created, err := upserter.UpsertSubmission(&canvas.Submission{ID: 1, AssignmentID: 30, UserID: 101, Grade: "A"})

	require.NoError(t, err)
	assert.True(t, created)
}

func TestUpsertGroupCategoryCreates(t *testing.T) {
	upserter, m := newTestUpserter(t)

	course := &models.Course{BaseModel: models.BaseModel{ID: uuid.New()}}

	m.categories.EXPECT().GetByCanvasID(int64(55)).Return(nil, gorm.ErrRecordNotFound)
	m.categories.EXPECT().Create(gomock.Any()).DoAndReturn(func(category *models.GroupCategory) error {
		assert.Equal(t, course.ID, category.CourseID)
		assert.Equal(t, "Project Groups", category.Name)
		return nil
	})

	_, created, err := upserter.UpsertGroupCategory(course, &canvas.GroupCategory{ID: 55, Name: "Project Groups"})

	require.NoError(t, err)
	assert.True(t, created)
}
