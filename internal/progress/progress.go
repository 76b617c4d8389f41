// Package progress tracks the live status of sync runs. Each run owns one
// record keyed by (actor, target); writers replace the whole record so
// concurrent readers always see a consistent snapshot. Terminal records
// expire after a retention window and readers must tolerate not-found.
package progress

import (
	"context"
	"fmt"
	"time"
)

// Phase is the externally visible stage of a sync run
type Phase string

const (
	PhasePending         Phase = "pending"
	PhaseFetchingCourses Phase = "fetching_courses"
	PhaseFetchingGroups  Phase = "fetching_groups"
	PhaseSavingGroups    Phase = "saving_groups"
	PhaseSyncingMembers  Phase = "syncing_members"
	PhaseCompleted       Phase = "completed"
	PhaseFailed          Phase = "failed"
)

// Record is the status snapshot of one sync run
type Record struct {
	Actor      string     `json:"actor"`
	Target     string     `json:"target"`
	Phase      Phase      `json:"phase"`
	Current    int        `json:"current"`
	Total      int        `json:"total"`
	Message    string     `json:"message"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	Errors     []string   `json:"errors,omitempty"`
}

// Terminal reports whether the run has finished
func (r *Record) Terminal() bool {
	return r.Phase == PhaseCompleted || r.Phase == PhaseFailed
}

// Key returns the store key for an (actor, target) pair
func Key(actor, target string) string {
	return fmt.Sprintf("%s:%s", actor, target)
}

// Store persists progress records. Put replaces the whole record
// (last-write-wins); Get returns the latest committed snapshot or
// apperrors.ErrProgressNotFound after expiry.
type Store interface {
	Put(ctx context.Context, record Record) error
	Get(ctx context.Context, actor, target string) (*Record, error)
	Delete(ctx context.Context, actor, target string) error
}

// clone deep-copies a record so stored state is never aliased by callers
func clone(r Record) Record {
	out := r
	if r.Errors != nil {
		out.Errors = append([]string(nil), r.Errors...)
	}
	if r.FinishedAt != nil {
		finished := *r.FinishedAt
		out.FinishedAt = &finished
	}
	return out
}
