package models

import "github.com/google/uuid"

// GroupCategory represents an LMS group set within a course
type GroupCategory struct {
	BaseModel
	CanvasID   int64     `json:"canvas_id" gorm:"uniqueIndex;not null"`
	CourseID   uuid.UUID `json:"course_id" gorm:"type:uuid;not null;index"`
	Name       string    `json:"name" gorm:"size:255;not null" validate:"required,max=255"`
	SelfSignup string    `json:"self_signup" gorm:"size:40"`
	GroupLimit int       `json:"group_limit"`

	Course *Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`
	Teams  []Team  `json:"teams,omitempty" gorm:"foreignKey:CategoryID"`
}

// TableName returns the table name for GroupCategory
func (GroupCategory) TableName() string {
	return "group_categories"
}
