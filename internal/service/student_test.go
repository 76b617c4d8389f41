package service_test

import (
	"context"
	"testing"

	"gradebench-backend/internal/database/models"
	apperrors "gradebench-backend/internal/errors"
	"gradebench-backend/internal/mocks"
	"gradebench-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func newTestStudentService(t *testing.T) (*service.StudentService, *mocks.MockStudentRepositoryInterface, *mocks.MockGitHubServiceInterface) {
	ctrl := gomock.NewController(t)
	students := mocks.NewMockStudentRepositoryInterface(ctrl)
	github := mocks.NewMockGitHubServiceInterface(ctrl)
	return service.NewStudentService(students, github), students, github
}

func TestGetAllClampsLimit(t *testing.T) {
	svc, students, _ := newTestStudentService(t)

	students.EXPECT().GetAll(50, 0).Return(nil, int64(0), nil)

	_, _, err := svc.GetAll(5000, -3)
	require.NoError(t, err)
}

func TestLinkGitHubVerifiesIdentity(t *testing.T) {
	svc, students, github := newTestStudentService(t)

	student := &models.Student{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "ada@test.edu"}

	students.EXPECT().GetByID(student.ID).Return(student, nil)
	github.EXPECT().LookupUser(gomock.Any(), "adalovelace").
		Return(&service.GitHubIdentity{ID: 12345, Username: "adalovelace", Name: "Ada Lovelace"}, nil)
	students.EXPECT().Update(student).Return(nil)

	got, err := svc.LinkGitHub(context.Background(), student.ID, "adalovelace")

	require.NoError(t, err)
	assert.Equal(t, "adalovelace", got.GitHubUsername)
	assert.Equal(t, int64(12345), got.GitHubID)
	assert.Equal(t, "Ada Lovelace", got.Name)
}

func TestLinkGitHubUnknownUsername(t *testing.T) {
	svc, students, github := newTestStudentService(t)

	student := &models.Student{BaseModel: models.BaseModel{ID: uuid.New()}}

	students.EXPECT().GetByID(student.ID).Return(student, nil)
	github.EXPECT().LookupUser(gomock.Any(), "nobody").
		Return(nil, apperrors.NewNotFoundError("github user"))

	_, err := svc.LinkGitHub(context.Background(), student.ID, "nobody")

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestLinkGitHubWithoutLookupService(t *testing.T) {
	ctrl := gomock.NewController(t)
	students := mocks.NewMockStudentRepositoryInterface(ctrl)
	svc := service.NewStudentService(students, nil)

	student := &models.Student{BaseModel: models.BaseModel{ID: uuid.New()}}
	students.EXPECT().GetByID(student.ID).Return(student, nil)
	students.EXPECT().Update(student).Return(nil)

	got, err := svc.LinkGitHub(context.Background(), student.ID, "adalovelace")

	require.NoError(t, err)
	assert.Equal(t, "adalovelace", got.GitHubUsername)
	assert.Zero(t, got.GitHubID)
}

func TestLinkGitHubUnknownStudent(t *testing.T) {
	svc, students, _ := newTestStudentService(t)

	id := uuid.New()
	students.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.LinkGitHub(context.Background(), id, "adalovelace")

	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestLinkGitHubEmptyUsername(t *testing.T) {
	svc, _, _ := newTestStudentService(t)

	_, err := svc.LinkGitHub(context.Background(), uuid.New(), "")

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}
