package models

// Course represents a course imported from the LMS.
// CanvasID is the remote key; repeated syncs update the same row.
type Course struct {
	BaseModel
	CanvasID      int64  `json:"canvas_id" gorm:"uniqueIndex;not null"`
	Name          string `json:"name" gorm:"size:255;not null" validate:"required,max=255"`
	CourseCode    string `json:"course_code" gorm:"size:100"`
	Term          string `json:"term" gorm:"size:100"`
	WorkflowState string `json:"workflow_state" gorm:"size:40"`

	// Relationships
	Enrollments     []Enrollment    `json:"enrollments,omitempty" gorm:"foreignKey:CourseID"`
	Assignments     []Assignment    `json:"assignments,omitempty" gorm:"foreignKey:CourseID"`
	GroupCategories []GroupCategory `json:"group_categories,omitempty" gorm:"foreignKey:CourseID"`
	Teams           []Team          `json:"teams,omitempty" gorm:"foreignKey:CourseID"`
}

// TableName returns the table name for Course
func (Course) TableName() string {
	return "courses"
}
