package models

import "github.com/google/uuid"

// MembershipSource identifies what caused a team assignment change
type MembershipSource string

const (
	MembershipSourceSync   MembershipSource = "sync"
	MembershipSourceManual MembershipSource = "manual"
)

// TeamMembershipChange is an audit record written whenever a student is
// moved between teams, so reassignments made by a sync run stay observable.
type TeamMembershipChange struct {
	BaseModel
	StudentID  uuid.UUID        `json:"student_id" gorm:"type:uuid;not null;index"`
	FromTeamID *uuid.UUID       `json:"from_team_id" gorm:"type:uuid"`
	ToTeamID   *uuid.UUID       `json:"to_team_id" gorm:"type:uuid"`
	Source     MembershipSource `json:"source" gorm:"size:20;not null"`

	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID"`
}

// TableName returns the table name for TeamMembershipChange
func (TeamMembershipChange) TableName() string {
	return "team_membership_changes"
}
