package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "gradebench-backend/internal/errors"
	"gradebench-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CourseHandler handles HTTP requests for course operations
type CourseHandler struct {
	courseService service.CourseServiceInterface
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(courseService service.CourseServiceInterface) *CourseHandler {
	return &CourseHandler{
		courseService: courseService,
	}
}

// GetCourses handles GET /courses
// @Summary List courses
// @Description Get synced courses with pagination
// @Tags courses
// @Accept json
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} map[string]interface{} "Courses and total count"
// @Security BearerAuth
// @Router /courses [get]
func (h *CourseHandler) GetCourses(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	courses, total, err := h.courseService.GetAll(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"courses": courses,
		"total":   total,
	})
}

// GetCourse handles GET /courses/:canvas_id
// @Summary Get a course
// @Description Get a synced course by its remote LMS id
// @Tags courses
// @Accept json
// @Produce json
// @Param canvas_id path int true "Course canvas ID"
// @Success 200 {object} models.Course "Course"
// @Failure 400 {object} map[string]interface{} "Invalid course ID"
// @Failure 404 {object} map[string]interface{} "Course not found"
// @Security BearerAuth
// @Router /courses/{canvas_id} [get]
func (h *CourseHandler) GetCourse(c *gin.Context) {
	canvasID, err := strconv.ParseInt(c.Param("canvas_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course ID"})
		return
	}

	course, err := h.courseService.GetByCanvasID(canvasID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, course)
}
