package handlers

import (
	"net/http"
	"testing"

	"gradebench-backend/internal/canvas"
	apperrors "gradebench-backend/internal/errors"
	"gradebench-backend/internal/mocks"
	"gradebench-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupPushTest(t *testing.T) (*testutils.HTTPTestSuite, *mocks.MockPushServiceInterface) {
	ctrl := gomock.NewController(t)
	pushService := mocks.NewMockPushServiceInterface(ctrl)
	handler := NewPushHandler(pushService)

	suite := testutils.SetupHTTPTest()
	suite.Router.POST("/push/teams/:id", handler.PushTeam)
	suite.Router.POST("/push/teams/:id/remote-group", handler.EnsureRemoteGroup)
	suite.Router.POST("/push/courses/:canvas_id", handler.PushCourse)
	return suite, pushService
}

func TestPushTeamReturnsAck(t *testing.T) {
	suite, pushService := setupPushTest(t)

	teamID := uuid.New()
	pushService.EXPECT().PushTeamMembership(gomock.Any(), teamID).
		Return(&canvas.MembershipAck{GroupID: 90, Members: []int64{101, 102}}, nil)

	recorder := suite.MakeRequest(http.MethodPost, "/push/teams/"+teamID.String(), nil)

	var ack canvas.MembershipAck
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &ack)
	assert.Equal(t, int64(90), ack.GroupID)
	assert.Len(t, ack.Members, 2)
}

func TestPushTeamManualTeamConflict(t *testing.T) {
	suite, pushService := setupPushTest(t)

	teamID := uuid.New()
	pushService.EXPECT().PushTeamMembership(gomock.Any(), teamID).
		Return(nil, apperrors.ErrManualTeam)

	recorder := suite.MakeRequest(http.MethodPost, "/push/teams/"+teamID.String(), nil)

	testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "not linked to a remote group")
}

func TestPushTeamNotFound(t *testing.T) {
	suite, pushService := setupPushTest(t)

	teamID := uuid.New()
	pushService.EXPECT().PushTeamMembership(gomock.Any(), teamID).
		Return(nil, apperrors.ErrTeamNotFound)

	recorder := suite.MakeRequest(http.MethodPost, "/push/teams/"+teamID.String(), nil)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestPushTeamAuthFailureIsBadGateway(t *testing.T) {
	suite, pushService := setupPushTest(t)

	teamID := uuid.New()
	pushService.EXPECT().PushTeamMembership(gomock.Any(), teamID).
		Return(nil, &apperrors.AuthError{Message: "token revoked"})

	recorder := suite.MakeRequest(http.MethodPost, "/push/teams/"+teamID.String(), nil)

	assert.Equal(t, http.StatusBadGateway, recorder.Code)
}

func TestPushTeamInvalidID(t *testing.T) {
	suite, _ := setupPushTest(t)

	recorder := suite.MakeRequest(http.MethodPost, "/push/teams/not-a-uuid", nil)

	testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid team ID")
}

func TestPushCourseReportsPartialFailures(t *testing.T) {
	suite, pushService := setupPushTest(t)

	pushService.EXPECT().PushCourseMemberships(gomock.Any(), int64(42)).
		Return(
			[]canvas.MembershipAck{{GroupID: 90, Members: []int64{101}}},
			[]error{&apperrors.RateLimitedError{Endpoint: "/groups/91", Attempts: 3}},
		)

	recorder := suite.MakeRequest(http.MethodPost, "/push/courses/42", nil)

	var response struct {
		Pushed []canvas.MembershipAck `json:"pushed"`
		Errors []string               `json:"errors"`
	}
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
	assert.Len(t, response.Pushed, 1)
	assert.Len(t, response.Errors, 1)
	assert.Contains(t, response.Errors[0], "rate limited")
}

func TestPushCourseNotFound(t *testing.T) {
	suite, pushService := setupPushTest(t)

	pushService.EXPECT().PushCourseMemberships(gomock.Any(), int64(42)).
		Return(nil, []error{apperrors.ErrCourseNotFound})

	recorder := suite.MakeRequest(http.MethodPost, "/push/courses/42", nil)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestEnsureRemoteGroupLinksTeam(t *testing.T) {
	suite, pushService := setupPushTest(t)

	teamID := uuid.New()
	groupID := int64(90)
	team := testutils.NewTeamFactory().Imported(uuid.New(), groupID)
	team.ID = teamID

	pushService.EXPECT().EnsureRemoteGroup(gomock.Any(), teamID).Return(team, nil)

	recorder := suite.MakeRequest(http.MethodPost, "/push/teams/"+teamID.String()+"/remote-group", nil)

	var response struct {
		CanvasGroupID *int64 `json:"canvas_group_id"`
	}
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
	assert.NotNil(t, response.CanvasGroupID)
}
