package handlers

import (
	"net/http"
	"testing"

	"gradebench-backend/internal/database/models"
	apperrors "gradebench-backend/internal/errors"
	"gradebench-backend/internal/mocks"
	"gradebench-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupStudentTest(t *testing.T) (*testutils.HTTPTestSuite, *mocks.MockStudentServiceInterface) {
	ctrl := gomock.NewController(t)
	studentService := mocks.NewMockStudentServiceInterface(ctrl)
	handler := NewStudentHandler(studentService)

	suite := testutils.SetupHTTPTest()
	suite.Router.GET("/students", handler.GetStudents)
	suite.Router.PUT("/students/:id/github", handler.LinkGitHub)
	return suite, studentService
}

func TestGetStudentsDefaults(t *testing.T) {
	suite, studentService := setupStudentTest(t)

	students := []models.Student{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Ada"},
	}
	studentService.EXPECT().GetAll(50, 0).Return(students, int64(1), nil)

	recorder := suite.MakeRequest(http.MethodGet, "/students", nil)

	var response struct {
		Students []models.Student `json:"students"`
		Total    int64            `json:"total"`
	}
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
	assert.Len(t, response.Students, 1)
	assert.Equal(t, int64(1), response.Total)
}

func TestGetStudentsPagination(t *testing.T) {
	suite, studentService := setupStudentTest(t)

	studentService.EXPECT().GetAll(10, 20).Return(nil, int64(0), nil)

	recorder := suite.MakeRequest(http.MethodGet, "/students?limit=10&offset=20", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestLinkGitHubUpdatesStudent(t *testing.T) {
	suite, studentService := setupStudentTest(t)

	studentID := uuid.New()
	student := &models.Student{
		BaseModel:      models.BaseModel{ID: studentID},
		Name:           "Ada",
		GitHubUsername: "adalovelace",
		GitHubID:       12345,
	}
	studentService.EXPECT().LinkGitHub(gomock.Any(), studentID, "adalovelace").Return(student, nil)

	recorder := suite.MakeRequest(http.MethodPut, "/students/"+studentID.String()+"/github",
		LinkGitHubRequest{Username: "adalovelace"})

	var response models.Student
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
	assert.Equal(t, "adalovelace", response.GitHubUsername)
}

func TestLinkGitHubStudentNotFound(t *testing.T) {
	suite, studentService := setupStudentTest(t)

	studentID := uuid.New()
	studentService.EXPECT().LinkGitHub(gomock.Any(), studentID, "adalovelace").
		Return(nil, apperrors.ErrStudentNotFound)

	recorder := suite.MakeRequest(http.MethodPut, "/students/"+studentID.String()+"/github",
		LinkGitHubRequest{Username: "adalovelace"})

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestLinkGitHubMissingUsername(t *testing.T) {
	suite, _ := setupStudentTest(t)

	recorder := suite.MakeRequest(http.MethodPut, "/students/"+uuid.New().String()+"/github",
		map[string]interface{}{})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestLinkGitHubInvalidStudentID(t *testing.T) {
	suite, _ := setupStudentTest(t)

	recorder := suite.MakeRequest(http.MethodPut, "/students/not-a-uuid/github",
		LinkGitHubRequest{Username: "adalovelace"})

	testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid student ID")
}
