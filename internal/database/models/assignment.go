package models

import (
	"time"

	"github.com/google/uuid"
)

// Assignment represents an LMS assignment within a course
type Assignment struct {
	BaseModel
	CanvasID       int64      `json:"canvas_id" gorm:"uniqueIndex;not null"`
	CourseID       uuid.UUID  `json:"course_id" gorm:"type:uuid;not null;index"`
	Name           string     `json:"name" gorm:"size:255;not null" validate:"required,max=255"`
	Description    string     `json:"description" gorm:"type:text"`
	DueAt          *time.Time `json:"due_at"`
	PointsPossible float64    `json:"points_possible"`
	GradingType    string     `json:"grading_type" gorm:"size:40"`
	Published      bool       `json:"published"`

	Course      *Course      `json:"course,omitempty" gorm:"foreignKey:CourseID"`
	Submissions []Submission `json:"submissions,omitempty" gorm:"foreignKey:AssignmentID"`
}

// TableName returns the table name for Assignment
func (Assignment) TableName() string {
	return "assignments"
}
