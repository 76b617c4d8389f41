package models

import "github.com/google/uuid"

// Team is a local working group of students within a course.
//
// CanvasGroupID is the link to a remote LMS group. A team with a non-nil
// CanvasGroupID is "imported" and owned by the sync engine; a team with a
// nil CanvasGroupID is "manual", created by a user, and must never be
// renamed, re-described, re-membered, or deleted by any sync path.
type Team struct {
	BaseModel
	Name          string     `json:"name" gorm:"size:255;not null" validate:"required,max=255"`
	Description   string     `json:"description" gorm:"size:500" validate:"max=500"`
	CourseID      uuid.UUID  `json:"course_id" gorm:"type:uuid;not null;index"`
	CanvasGroupID *int64     `json:"canvas_group_id" gorm:"uniqueIndex"`
	CategoryID    *uuid.UUID `json:"category_id" gorm:"type:uuid;index"`

	Course   *Course        `json:"course,omitempty" gorm:"foreignKey:CourseID"`
	Category *GroupCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Members  []Student      `json:"members,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// IsImported reports whether the team is linked to a remote LMS group.
func (t *Team) IsImported() bool {
	return t.CanvasGroupID != nil
}
