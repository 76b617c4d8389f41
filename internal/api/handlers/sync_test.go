package handlers

import (
	"net/http"
	"testing"
	"time"

	apperrors "gradebench-backend/internal/errors"
	"gradebench-backend/internal/mocks"
	"gradebench-backend/internal/progress"
	"gradebench-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupSyncTest(t *testing.T) (*testutils.HTTPTestSuite, *mocks.MockSyncServiceInterface) {
	ctrl := gomock.NewController(t)
	syncService := mocks.NewMockSyncServiceInterface(ctrl)
	handler := NewSyncHandler(syncService)

	suite := testutils.SetupHTTPTest()
	suite.Router.POST("/sync/courses/:canvas_id", handler.StartCourseSync)
	suite.Router.POST("/sync/all", handler.StartSyncAll)
	suite.Router.GET("/sync/progress/:target", handler.GetProgress)
	return suite, syncService
}

func TestStartCourseSyncAccepted(t *testing.T) {
	suite, syncService := setupSyncTest(t)

	syncService.EXPECT().StartSync(gomock.Any(), "anonymous", int64(42)).
		Return("course-42", nil)

	recorder := suite.MakeRequest(http.MethodPost, "/sync/courses/42", nil)

	var response StartSyncResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusAccepted, &response)
	assert.Equal(t, "course-42", response.Target)
}

func TestStartCourseSyncAlreadyRunning(t *testing.T) {
	suite, syncService := setupSyncTest(t)

	syncService.EXPECT().StartSync(gomock.Any(), "anonymous", int64(42)).
		Return("", apperrors.ErrSyncAlreadyRunning)

	recorder := suite.MakeRequest(http.MethodPost, "/sync/courses/42", nil)

	testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "already running")
}

func TestStartCourseSyncInvalidID(t *testing.T) {
	suite, _ := setupSyncTest(t)

	recorder := suite.MakeRequest(http.MethodPost, "/sync/courses/not-a-number", nil)

	testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid course ID")
}

func TestStartSyncAllAccepted(t *testing.T) {
	suite, syncService := setupSyncTest(t)

	syncService.EXPECT().StartSyncAll(gomock.Any(), "anonymous").Return("all", nil)

	recorder := suite.MakeRequest(http.MethodPost, "/sync/all", nil)

	var response StartSyncResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusAccepted, &response)
	assert.Equal(t, "all", response.Target)
}

func TestGetProgressReturnsSnapshot(t *testing.T) {
	suite, syncService := setupSyncTest(t)

	record := &progress.Record{
		Actor:     "anonymous",
		Target:    "course-42",
		Phase:     progress.PhaseSyncingMembers,
		Current:   2,
		Total:     3,
		StartedAt: time.Now(),
	}
	syncService.EXPECT().GetProgress(gomock.Any(), "anonymous", "course-42").Return(record, nil)

	recorder := suite.MakeRequest(http.MethodGet, "/sync/progress/course-42", nil)

	var response progress.Record
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
	assert.Equal(t, progress.PhaseSyncingMembers, response.Phase)
	assert.Equal(t, 2, response.Current)
}

func TestGetProgressNotFound(t *testing.T) {
	suite, syncService := setupSyncTest(t)

	syncService.EXPECT().GetProgress(gomock.Any(), "anonymous", "course-42").
		Return(nil, apperrors.ErrProgressNotFound)

	recorder := suite.MakeRequest(http.MethodGet, "/sync/progress/course-42", nil)

	require.Equal(t, http.StatusNotFound, recorder.Code)
}
