package models

import "github.com/google/uuid"

// EnrollmentRole is the role of an enrollment in a course
type EnrollmentRole string

const (
	RoleStudent  EnrollmentRole = "StudentEnrollment"
	RoleTeacher  EnrollmentRole = "TeacherEnrollment"
	RoleTA       EnrollmentRole = "TaEnrollment"
	RoleObserver EnrollmentRole = "ObserverEnrollment"
)

// Enrollment links a remote LMS user to a course. StudentID is resolved
// during sync by matching the enrollment email to a Student, or by creating
// one on demand for student-role enrollments.
type Enrollment struct {
	BaseModel
	CanvasID     int64          `json:"canvas_id" gorm:"uniqueIndex;not null"`
	CourseID     uuid.UUID      `json:"course_id" gorm:"type:uuid;not null;index"`
	CanvasUserID int64          `json:"canvas_user_id" gorm:"not null;index"`
	UserName     string         `json:"user_name" gorm:"size:255"`
	UserEmail    string         `json:"user_email" gorm:"size:255"`
	Role         EnrollmentRole `json:"role" gorm:"size:40;not null"`
	StudentID    *uuid.UUID     `json:"student_id" gorm:"type:uuid;index"`

	Course  *Course  `json:"course,omitempty" gorm:"foreignKey:CourseID"`
	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID"`
}

// TableName returns the table name for Enrollment
func (Enrollment) TableName() string {
	return "enrollments"
}

// IsStudent reports whether the enrollment carries the student role.
func (e *Enrollment) IsStudent() bool {
	return e.Role == RoleStudent
}
