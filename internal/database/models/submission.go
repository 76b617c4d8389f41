package models

import (
	"time"

	"github.com/google/uuid"
)

// Submission represents a student submission for an assignment.
// StudentID is nullable because a submission can arrive for a remote user
// that has not been resolved to a local Student yet.
type Submission struct {
	BaseModel
	CanvasID      int64      `json:"canvas_id" gorm:"uniqueIndex;not null"`
	AssignmentID  uuid.UUID  `json:"assignment_id" gorm:"type:uuid;not null;index"`
	StudentID     *uuid.UUID `json:"student_id" gorm:"type:uuid;index"`
	CanvasUserID  int64      `json:"canvas_user_id" gorm:"not null;index"`
	Score         *float64   `json:"score"`
	Grade         string     `json:"grade" gorm:"size:40"`
	SubmittedAt   *time.Time `json:"submitted_at"`
	Late          bool       `json:"late"`
	Missing       bool       `json:"missing"`
	WorkflowState string     `json:"workflow_state" gorm:"size:40"`

	Assignment *Assignment `json:"assignment,omitempty" gorm:"foreignKey:AssignmentID"`
	Student    *Student    `json:"student,omitempty" gorm:"foreignKey:StudentID"`
}

// TableName returns the table name for Submission
func (Submission) TableName() string {
	return "submissions"
}
