package models

import "github.com/google/uuid"

// Student is the durable local identity for a person, independent of any
// single remote system. It may carry links to an LMS identity (CanvasUserID)
// and a Git platform identity (GitHubUsername/GitHubID). Students are created
// by imports but never auto-deleted.
type Student struct {
	BaseModel
	Name           string     `json:"name" gorm:"size:255;not null" validate:"required,max=255"`
	Email          string     `json:"email" gorm:"size:255;index" validate:"omitempty,email"`
	CanvasUserID   *int64     `json:"canvas_user_id" gorm:"uniqueIndex"`
	GitHubUsername string     `json:"github_username" gorm:"size:100"`
	GitHubID       int64      `json:"github_id"`
	TeamID         *uuid.UUID `json:"team_id" gorm:"type:uuid;index"`

	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Student
func (Student) TableName() string {
	return "students"
}
