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

// StudentHandler handles HTTP requests for student operations
type StudentHandler struct {
	studentService service.StudentServiceInterface
}

// NewStudentHandler creates a new student handler
func NewStudentHandler(studentService service.StudentServiceInterface) *StudentHandler {
	return &StudentHandler{
		studentService: studentService,
	}
}

// LinkGitHubRequest is the payload for linking a Git platform identity
type LinkGitHubRequest struct {
	Username string `json:"username" binding:"required"`
}

// GetStudents handles GET /students
// @Summary List students
// @Description Get students with pagination
// @Tags students
// @Accept json
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} map[string]interface{} "Students and total count"
// @Security BearerAuth
// @Router /students [get]
func (h *StudentHandler) GetStudents(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	students, total, err := h.studentService.GetAll(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"students": students,
		"total":    total,
	})
}

// LinkGitHub handles PUT /students/:id/github
// @Summary Link a Git platform identity to a student
// @Description Verify and store the student's platform username
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student ID (UUID)"
// @Param body body LinkGitHubRequest true "Username to link"
// @Success 200 {object} models.Student "Updated student"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Student or platform user not found"
// @Security BearerAuth
// @Router /students/{id}/github [put]
func (h *StudentHandler) LinkGitHub(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid student ID"})
		return
	}

	var req LinkGitHubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	student, err := h.studentService.LinkGitHub(c.Request.Context(), id, req.Username)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrStudentNotFound), apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, student)
}
