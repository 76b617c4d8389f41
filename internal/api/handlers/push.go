package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "gradebench-backend/internal/errors"
	"gradebench-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PushHandler handles HTTP requests for pushing memberships to the LMS
type PushHandler struct {
	pushService service.PushServiceInterface
}

// NewPushHandler creates a new push handler
func NewPushHandler(pushService service.PushServiceInterface) *PushHandler {
	return &PushHandler{
		pushService: pushService,
	}
}

// PushTeam handles POST /push/teams/:id
// @Summary Push team membership to the LMS
// @Description Replace the remote group's member list with the team's local members
// @Tags push
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} canvas.MembershipAck "Acknowledged member list"
// @Failure 400 {object} map[string]interface{} "Invalid team ID"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 409 {object} map[string]interface{} "Team has no remote group"
// @Security BearerAuth
// @Router /push/teams/{id} [post]
func (h *PushHandler) PushTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	ack, err := h.pushService.PushTeamMembership(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTeamNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrManualTeam):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsAuth(err):
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, ack)
}

// PushCourse handles POST /push/courses/:canvas_id
// @Summary Push all imported teams of a course to the LMS
// @Description Push every imported team of a course; per-team failures are reported, not fatal
// @Tags push
// @Accept json
// @Produce json
// @Param canvas_id path int true "Course canvas ID"
// @Success 200 {object} map[string]interface{} "Acks and per-team errors"
// @Failure 400 {object} map[string]interface{} "Invalid course ID"
// @Failure 404 {object} map[string]interface{} "Course not found"
// @Security BearerAuth
// @Router /push/courses/{canvas_id} [post]
func (h *PushHandler) PushCourse(c *gin.Context) {
	canvasID, err := strconv.ParseInt(c.Param("canvas_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course ID"})
		return
	}

	acks, errs := h.pushService.PushCourseMemberships(c.Request.Context(), canvasID)
	if len(acks) == 0 && len(errs) == 1 && errors.Is(errs[0], apperrors.ErrCourseNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": errs[0].Error()})
		return
	}

	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, e.Error())
	}
	c.JSON(http.StatusOK, gin.H{
		"pushed": acks,
		"errors": messages,
	})
}

// EnsureRemoteGroup handles POST /push/teams/:id/remote-group
// @Summary Create a remote group for a manual team
// @Description Create a remote LMS group for a manual team and link the team to it
// @Tags push
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} models.Team "Linked team"
// @Failure 400 {object} map[string]interface{} "Invalid team ID"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Security BearerAuth
// @Router /push/teams/{id}/remote-group [post]
func (h *PushHandler) EnsureRemoteGroup(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	team, err := h.pushService.EnsureRemoteGroup(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, team)
}
