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

func setupCourseTest(t *testing.T) (*testutils.HTTPTestSuite, *mocks.MockCourseServiceInterface) {
	ctrl := gomock.NewController(t)
	courseService := mocks.NewMockCourseServiceInterface(ctrl)
	handler := NewCourseHandler(courseService)

	suite := testutils.SetupHTTPTest()
	suite.Router.GET("/courses", handler.GetCourses)
	suite.Router.GET("/courses/:canvas_id", handler.GetCourse)
	return suite, courseService
}

func TestGetCoursesDefaults(t *testing.T) {
	suite, courseService := setupCourseTest(t)

	courses := []models.Course{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Databases", CanvasID: 42},
	}
	courseService.EXPECT().GetAll(50, 0).Return(courses, int64(1), nil)

	recorder := suite.MakeRequest(http.MethodGet, "/courses", nil)

	var response struct {
		Courses []models.Course `json:"courses"`
		Total   int64           `json:"total"`
	}
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
	assert.Len(t, response.Courses, 1)
	assert.Equal(t, int64(1), response.Total)
}

func TestGetCoursesPagination(t *testing.T) {
	suite, courseService := setupCourseTest(t)

	courseService.EXPECT().GetAll(10, 20).Return(nil, int64(0), nil)

	recorder := suite.MakeRequest(http.MethodGet, "/courses?limit=10&offset=20", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestGetCourseByCanvasID(t *testing.T) {
	suite, courseService := setupCourseTest(t)

	course := &models.Course{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Databases",
		CanvasID:  42,
	}
	courseService.EXPECT().GetByCanvasID(int64(42)).Return(course, nil)

	recorder := suite.MakeRequest(http.MethodGet, "/courses/42", nil)

	var response models.Course
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
	assert.Equal(t, int64(42), response.CanvasID)
}

func TestGetCourseNotFound(t *testing.T) {
	suite, courseService := setupCourseTest(t)

	courseService.EXPECT().GetByCanvasID(int64(42)).Return(nil, apperrors.ErrCourseNotFound)

	recorder := suite.MakeRequest(http.MethodGet, "/courses/42", nil)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGetCourseInvalidID(t *testing.T) {
	suite, _ := setupCourseTest(t)

	recorder := suite.MakeRequest(http.MethodGet, "/courses/not-a-number", nil)

	testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid course ID")
}
