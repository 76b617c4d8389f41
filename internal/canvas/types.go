package canvas

import "time"

// Term represents a Canvas enrollment term
type Term struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Course represents a course as returned by the Canvas API
type Course struct {
	ID            int64  `json:"id" validate:"required"`
	Name          string `json:"name" validate:"required"`
	CourseCode    string `json:"course_code"`
	WorkflowState string `json:"workflow_state"`
	Term          *Term  `json:"term"`
}

// User represents a Canvas user embedded in enrollments and group listings
type User struct {
	ID           int64  `json:"id" validate:"required"`
	Name         string `json:"name"`
	SortableName string `json:"sortable_name"`
	Email        string `json:"email"`
	LoginID      string `json:"login_id"`
}

// BestEmail returns the best available email for the user. Canvas often
// omits the email field and exposes the address as login_id instead.
func (u *User) BestEmail() string {
	if u.Email != "" {
		return u.Email
	}
	return u.LoginID
}

// Enrollment represents a course enrollment as returned by the Canvas API
type Enrollment struct {
	ID       int64  `json:"id" validate:"required"`
	CourseID int64  `json:"course_id" validate:"required"`
	UserID   int64  `json:"user_id" validate:"required"`
	Type     string `json:"type" validate:"required"`
	State    string `json:"enrollment_state"`
	User     *User  `json:"user"`
}

// Assignment represents an assignment as returned by the Canvas API
type Assignment struct {
	ID             int64      `json:"id" validate:"required"`
	CourseID       int64      `json:"course_id"`
	Name           string     `json:"name" validate:"required"`
	Description    string     `json:"description"`
	DueAt          *time.Time `json:"due_at"`
	PointsPossible float64    `json:"points_possible"`
	GradingType    string     `json:"grading_type"`
	Published      bool       `json:"published"`
}

// Submission represents a submission as returned by the Canvas API
type Submission struct {
	ID            int64      `json:"id" validate:"required"`
	AssignmentID  int64      `json:"assignment_id" validate:"required"`
	UserID        int64      `json:"user_id" validate:"required"`
	Score         *float64   `json:"score"`
	Grade         string     `json:"grade"`
	SubmittedAt   *time.Time `json:"submitted_at"`
	Late          bool       `json:"late"`
	Missing       bool       `json:"missing"`
	WorkflowState string     `json:"workflow_state"`
}

// GroupCategory represents a group set as returned by the Canvas API
type GroupCategory struct {
	ID         int64  `json:"id" validate:"required"`
	CourseID   int64  `json:"course_id"`
	Name       string `json:"name" validate:"required"`
	SelfSignup string `json:"self_signup"`
	GroupLimit int    `json:"group_limit"`
}

// Group represents a group as returned by the Canvas API
type Group struct {
	ID              int64  `json:"id" validate:"required"`
	Name            string `json:"name" validate:"required"`
	Description     string `json:"description"`
	GroupCategoryID int64  `json:"group_category_id"`
	MembersCount    int    `json:"members_count"`
}
