package models

import (
	"time"

	"github.com/google/uuid"
)

// SyncRun is the durable record of a finished sync run. Live progress is
// served from the progress store; this table keeps history after the store
// entry expires.
type SyncRun struct {
	BaseModel
	Actor      string     `json:"actor" gorm:"size:100;not null;index"`
	CourseID   *uuid.UUID `json:"course_id" gorm:"type:uuid;index"`
	Kind       string     `json:"kind" gorm:"size:40;not null"`
	Phase      string     `json:"phase" gorm:"size:40;not null"`
	Message    string     `json:"message" gorm:"size:500"`
	ErrorCount int        `json:"error_count"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at"`
}

// TableName returns the table name for SyncRun
func (SyncRun) TableName() string {
	return "sync_runs"
}
