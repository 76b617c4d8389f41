package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"gradebench-backend/internal/auth"
	apperrors "gradebench-backend/internal/errors"
	"gradebench-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SyncHandler handles HTTP requests for sync operations
type SyncHandler struct {
	syncService service.SyncServiceInterface
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(syncService service.SyncServiceInterface) *SyncHandler {
	return &SyncHandler{
		syncService: syncService,
	}
}

// StartSyncResponse is returned when a sync run is accepted
type StartSyncResponse struct {
	Target string `json:"target" example:"course-101"`
}

func actorFrom(c *gin.Context) string {
	if username, ok := auth.GetUsername(c); ok {
		return username
	}
	return "anonymous"
}

// StartCourseSync handles POST /sync/courses/:canvas_id
// @Summary Start a course sync
// @Description Start a background sync of one course from the LMS
// @Tags sync
// @Accept json
// @Produce json
// @Param canvas_id path int true "Course canvas ID"
// @Success 202 {object} StartSyncResponse "Sync accepted"
// @Failure 400 {object} map[string]interface{} "Invalid course ID"
// @Failure 409 {object} map[string]interface{} "Sync already running"
// @Security BearerAuth
// @Router /sync/courses/{canvas_id} [post]
func (h *SyncHandler) StartCourseSync(c *gin.Context) {
	canvasID, err := strconv.ParseInt(c.Param("canvas_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course ID"})
		return
	}

	target, err := h.syncService.StartSync(c.Request.Context(), actorFrom(c), canvasID)
	if err != nil {
		if errors.Is(err, apperrors.ErrSyncAlreadyRunning) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, StartSyncResponse{Target: target})
}

// StartSyncAll handles POST /sync/all
// @Summary Start a sync of all courses
// @Description Start a background sync of every remote course
// @Tags sync
// @Accept json
// @Produce json
// @Success 202 {object} StartSyncResponse "Sync accepted"
// @Failure 409 {object} map[string]interface{} "Sync already running"
// @Security BearerAuth
// @Router /sync/all [post]
func (h *SyncHandler) StartSyncAll(c *gin.Context) {
	target, err := h.syncService.StartSyncAll(c.Request.Context(), actorFrom(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrSyncAlreadyRunning) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, StartSyncResponse{Target: target})
}

// GetProgress handles GET /sync/progress/:target
// @Summary Get sync progress
// @Description Get the latest progress snapshot for a sync run
// @Tags sync
// @Accept json
// @Produce json
// @Param target path string true "Progress target (course-<id> or all)"
// @Success 200 {object} progress.Record "Progress snapshot"
// @Failure 404 {object} map[string]interface{} "No progress for target"
// @Security BearerAuth
// @Router /sync/progress/{target} [get]
func (h *SyncHandler) GetProgress(c *gin.Context) {
	target := c.Param("target")

	record, err := h.syncService.GetProgress(c.Request.Context(), actorFrom(c), target)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, record)
}
