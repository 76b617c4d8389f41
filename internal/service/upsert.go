package service

import (
	"errors"

	"gradebench-backend/internal/canvas"
	"gradebench-backend/internal/database/models"
	apperrors "gradebench-backend/internal/errors"
	"gradebench-backend/internal/logger"
	"gradebench-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Upserter maps raw remote records to local entities with create-or-update
// semantics keyed by (entity kind, canvas id). Records are validated at this
// boundary; nothing untyped or invalid reaches the repositories. Repeated
// upserts of the same remote record converge on one row.
type Upserter struct {
	courses     repository.CourseRepositoryInterface
	enrollments repository.EnrollmentRepositoryInterface
	students    repository.StudentRepositoryInterface
	assignments repository.AssignmentRepositoryInterface
	submissions repository.SubmissionRepositoryInterface
	categories  repository.GroupCategoryRepositoryInterface
	validator   *validator.Validate
	log         *logger.Logger
}

// NewUpserter creates a new upserter
func NewUpserter(
	courses repository.CourseRepositoryInterface,
	enrollments repository.EnrollmentRepositoryInterface,
	students repository.StudentRepositoryInterface,
	assignments repository.AssignmentRepositoryInterface,
	submissions repository.SubmissionRepositoryInterface,
	categories repository.GroupCategoryRepositoryInterface,
	validate *validator.Validate,
) *Upserter {
	return &Upserter{
		courses:     courses,
		enrollments: enrollments,
		students:    students,
		assignments: assignments,
		submissions: submissions,
		categories:  categories,
		validator:   validate,
		log:         logger.New().WithField("component", "upserter"),
	}
}

func upsertErr(kind string, canvasID int64, err error) error {
	return &apperrors.EntityUpsertError{Kind: kind, CanvasID: canvasID, Err: err}
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// UpsertCourse creates or updates a course from a remote record
func (u *Upserter) UpsertCourse(dto *canvas.Course) (*models.Course, bool, error) {
	if err := u.validator.Struct(dto); err != nil {
		return nil, false, upsertErr("course", dto.ID, err)
	}

	term := ""
	if dto.Term != nil {
		term = dto.Term.Name
	}

	existing, err := u.courses.GetByCanvasID(dto.ID)
	if isNotFound(err) {
		course := &models.Course{
			CanvasID:      dto.ID,
			Name:          dto.Name,
			CourseCode:    dto.CourseCode,
			Term:          term,
			WorkflowState: dto.WorkflowState,
		}
		if err := u.courses.Create(course); err != nil {
			return nil, false, upsertErr("course", dto.ID, err)
		}
		return course, true, nil
	}
	if err != nil {
		return nil, false, upsertErr("course", dto.ID, err)
	}

	existing.Name = dto.Name
	existing.CourseCode = dto.CourseCode
	existing.WorkflowState = dto.WorkflowState
	if term != "" {
		existing.Term = term
	}
	if err := u.courses.Update(existing); err != nil {
		return nil, false, upsertErr("course", dto.ID, err)
	}
	return existing, false, nil
}

// UpsertEnrollment creates or updates an enrollment. Student-role
// enrollments also resolve (or create) the linked Student record, keyed by
// canvas user id with email as the secondary match.
func (u *Upserter) UpsertEnrollment(course *models.Course, dto *canvas.Enrollment) (*models.Enrollment, bool, error) {
	if err := u.validator.Struct(dto); err != nil {
		return nil, false, upsertErr("enrollment", dto.ID, err)
	}

	name, email := "", ""
	if dto.User != nil {
		name = dto.User.Name
		email = dto.User.BestEmail()
	}

	var studentID *models.Student
	if models.EnrollmentRole(dto.Type) == models.RoleStudent {
		student, err := u.ensureStudent(dto.UserID, name, email)
		if err != nil {
			return nil, false, upsertErr("enrollment", dto.ID, err)
		}
		studentID = student
	}

	existing, err := u.enrollments.GetByCanvasID(dto.ID)
	if isNotFound(err) {
		enrollment := &models.Enrollment{
			CanvasID:     dto.ID,
			CourseID:     course.ID,
			CanvasUserID: dto.UserID,
			UserName:     name,
			UserEmail:    email,
			Role:         models.EnrollmentRole(dto.Type),
		}
		if studentID != nil {
			enrollment.StudentID = &studentID.ID
		}
		if err := u.enrollments.Create(enrollment); err != nil {
			return nil, false, upsertErr("enrollment", dto.ID, err)
		}
		return enrollment, true, nil
	}
	if err != nil {
		return nil, false, upsertErr("enrollment", dto.ID, err)
	}

	existing.CanvasUserID = dto.UserID
	existing.Role = models.EnrollmentRole(dto.Type)
	if name != "" {
		existing.UserName = name
	}
	if email != "" {
		existing.UserEmail = email
	}
	if studentID != nil {
		existing.StudentID = &studentID.ID
	}
	if err := u.enrollments.Update(existing); err != nil {
		return nil, false, upsertErr("enrollment", dto.ID, err)
	}
	return existing, false, nil
}

// ensureStudent finds a student by canvas user id, then by email, creating
// one when neither matches. An email match also links the canvas identity.
func (u *Upserter) ensureStudent(canvasUserID int64, name, email string) (*models.Student, error) {
	student, err := u.students.GetByCanvasUserID(canvasUserID)
	if err == nil {
		return student, nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	if email != "" {
		student, err = u.students.GetByEmail(email)
		if err == nil {
			student.CanvasUserID = &canvasUserID
			if err := u.students.Update(student); err != nil {
				return nil, err
			}
			return student, nil
		}
		if !isNotFound(err) {
			return nil, err
		}
	}

	student = &models.Student{
		Name:         name,
		Email:        email,
		CanvasUserID: &canvasUserID,
	}
	if err := u.students.Create(student); err != nil {
		return nil, err
	}
	u.log.WithFields(map[string]interface{}{
		"canvas_user_id": canvasUserID, "email": email,
	}).Debug("created student from enrollment")
	return student, nil
}

// UpsertAssignment creates or updates an assignment from a remote record
func (u *Upserter) UpsertAssignment(course *models.Course, dto *canvas.Assignment) (*models.Assignment, bool, error) {
	if err := u.validator.Struct(dto); err != nil {
		return nil, false, upsertErr("assignment", dto.ID, err)
	}

	existing, err := u.assignments.GetByCanvasID(dto.ID)
	if isNotFound(err) {
		assignment := &models.Assignment{
			CanvasID:       dto.ID,
			CourseID:       course.ID,
			Name:           dto.Name,
			Description:    dto.Description,
			DueAt:          dto.DueAt,
			PointsPossible: dto.PointsPossible,
			GradingType:    dto.GradingType,
			Published:      dto.Published,
		}
		if err := u.assignments.Create(assignment); err != nil {
			return nil, false, upsertErr("assignment", dto.ID, err)
		}
		return assignment, true, nil
	}
	if err != nil {
		return nil, false, upsertErr("assignment", dto.ID, err)
	}

	existing.Name = dto.Name
	existing.DueAt = dto.DueAt
	existing.PointsPossible = dto.PointsPossible
	existing.GradingType = dto.GradingType
	existing.Published = dto.Published
	if dto.Description != "" {
		existing.Description = dto.Description
	}
	if err := u.assignments.Update(existing); err != nil {
		return nil, false, upsertErr("assignment", dto.ID, err)
	}
	return existing, false, nil
}

// UpsertSubmission creates or updates a submission. The parent assignment
// must already be persisted; the student link is resolved when possible and
// left nil otherwise.
func (u *Upserter) UpsertSubmission(dto *canvas.Submission) (*models.Submission, bool, error) {
	if err := u.validator.Struct(dto); err != nil {
		return nil, false, upsertErr("submission", dto.ID, err)
	}

	assignment, err := u.assignments.GetByCanvasID(dto.AssignmentID)
	if err != nil {
		return nil, false, upsertErr("submission", dto.ID, err)
	}

	var studentRef *models.Student
	if student, err := u.students.GetByCanvasUserID(dto.UserID); err == nil {
		studentRef = student
	} else if !isNotFound(err) {
		return nil, false, upsertErr("submission", dto.ID, err)
	}

	existing, err := u.submissions.GetByCanvasID(dto.ID)
	if isNotFound(err) {
		submission := &models.Submission{
			CanvasID:      dto.ID,
			AssignmentID:  assignment.ID,
			CanvasUserID:  dto.UserID,
			Score:         dto.Score,
			Grade:         dto.Grade,
			SubmittedAt:   dto.SubmittedAt,
			Late:          dto.Late,
			Missing:       dto.Missing,
			WorkflowState: dto.WorkflowState,
		}
		if studentRef != nil {
			submission.StudentID = &studentRef.ID
		}
		if err := u.submissions.Create(submission); err != nil {
			return nil, false, upsertErr("submission", dto.ID, err)
		}
		return submission, true, nil
	}
	if err != nil {
		return nil, false, upsertErr("submission", dto.ID, err)
	}

	existing.Score = dto.Score
	existing.Grade = dto.Grade
	existing.SubmittedAt = dto.SubmittedAt
	existing.Late = dto.Late
	existing.Missing = dto.Missing
	existing.WorkflowState = dto.WorkflowState
	if studentRef != nil {
		existing.StudentID = &studentRef.ID
	}
	if err := u.submissions.Update(existing); err != nil {
		return nil, false, upsertErr("submission", dto.ID, err)
	}
	return existing, false, nil
}

// UpsertGroupCategory creates or updates a group set from a remote record
func (u *Upserter) UpsertGroupCategory(course *models.Course, dto *canvas.GroupCategory) (*models.GroupCategory, bool, error) {
	if err := u.validator.Struct(dto); err != nil {
		return nil, false, upsertErr("group_category", dto.ID, err)
	}

	existing, err := u.categories.GetByCanvasID(dto.ID)
	if isNotFound(err) {
		category := &models.GroupCategory{
			CanvasID:   dto.ID,
			CourseID:   course.ID,
			Name:       dto.Name,
			SelfSignup: dto.SelfSignup,
			GroupLimit: dto.GroupLimit,
		}
		if err := u.categories.Create(category); err != nil {
			return nil, false, upsertErr("group_category", dto.ID, err)
		}
		return category, true, nil
	}
	if err != nil {
		return nil, false, upsertErr("group_category", dto.ID, err)
	}

	existing.Name = dto.Name
	existing.SelfSignup = dto.SelfSignup
	existing.GroupLimit = dto.GroupLimit
	if err := u.categories.Update(existing); err != nil {
		return nil, false, upsertErr("group_category", dto.ID, err)
	}
	return existing, false, nil
}
