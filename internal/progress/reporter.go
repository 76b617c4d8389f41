package progress

import (
	"context"
	"time"

	"gradebench-backend/internal/logger"
)

// Reporter binds a Store to one run's (actor, target) key and publishes
// milestone updates. It is used by a single sync goroutine; readers poll
// the Store directly.
type Reporter struct {
	store  Store
	record Record
	log    *logger.Logger
}

// NewReporter registers a pending record for a run and returns its reporter
func NewReporter(ctx context.Context, store Store, actor, target string) *Reporter {
	r := &Reporter{
		store: store,
		record: Record{
			Actor:     actor,
			Target:    target,
			Phase:     PhasePending,
			StartedAt: time.Now(),
		},
		log: logger.New().WithFields(map[string]interface{}{
			"actor":  actor,
			"target": target,
		}),
	}
	r.publish(ctx)
	return r
}

// SetPhase transitions the run to a new phase
func (r *Reporter) SetPhase(ctx context.Context, phase Phase, message string) {
	r.record.Phase = phase
	r.record.Message = message
	r.record.Current = 0
	r.record.Total = 0
	r.publish(ctx)
}

// SetProgress updates the counters within the current phase. Callers update
// at coarse milestones, not per record.
func (r *Reporter) SetProgress(ctx context.Context, current, total int, message string) {
	r.record.Current = current
	r.record.Total = total
	if message != "" {
		r.record.Message = message
	}
	r.publish(ctx)
}

// AddError appends a recoverable error to the run's error list
func (r *Reporter) AddError(ctx context.Context, err error) {
	r.record.Errors = append(r.record.Errors, err.Error())
	r.publish(ctx)
}

// Errors returns the recoverable errors collected so far
func (r *Reporter) Errors() []string {
	return append([]string(nil), r.record.Errors...)
}

// Finish marks the run terminal. A run that collected recoverable errors
// still finishes as completed; the error list stays visible in the snapshot.
func (r *Reporter) Finish(ctx context.Context, phase Phase, message string) {
	now := time.Now()
	r.record.Phase = phase
	r.record.Message = message
	r.record.FinishedAt = &now
	r.publish(ctx)
}

func (r *Reporter) publish(ctx context.Context) {
	if err := r.store.Put(ctx, r.record); err != nil {
		// A failed progress write must never fail the sync itself.
		r.log.WithField("error", err.Error()).Warn("failed to publish sync progress")
	}
}
