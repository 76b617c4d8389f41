package service

import (
	"context"
	"fmt"
	"time"

	"gradebench-backend/internal/canvas"
	"gradebench-backend/internal/database/models"
	apperrors "gradebench-backend/internal/errors"
	"gradebench-backend/internal/logger"
	"gradebench-backend/internal/progress"
	"gradebench-backend/internal/repository"

	"golang.org/x/sync/errgroup"
)

// SyncKind distinguishes sync flavors for the run guard and run history
type SyncKind string

// SyncKindFull is the complete course pull
const SyncKindFull SyncKind = "full"

// State is an internal state of the per-course sync state machine.
// States execute in strict order; each state's entities are durably
// upserted before the next state's fetch begins.
type State string

const (
	StateIdle                    State = "idle"
	StateFetchingCourse          State = "fetching_course"
	StateFetchingEnrollments     State = "fetching_enrollments"
	StateFetchingAssignments     State = "fetching_assignments"
	StateFetchingSubmissions     State = "fetching_submissions"
	StateFetchingGroupCategories State = "fetching_group_categories"
	StateFetchingGroups          State = "fetching_groups"
	StateSavingGroups            State = "saving_groups"
	StateSyncingMemberships      State = "syncing_memberships"
	StateDone                    State = "done"
	StateFailed                  State = "failed"
)

// statePhase maps internal states onto the coarser externally visible phases
func statePhase(s State) progress.Phase {
	switch s {
	case StateFetchingCourse, StateFetchingEnrollments, StateFetchingAssignments, StateFetchingSubmissions:
		return progress.PhaseFetchingCourses
	case StateFetchingGroupCategories, StateFetchingGroups:
		return progress.PhaseFetchingGroups
	case StateSavingGroups:
		return progress.PhaseSavingGroups
	case StateSyncingMemberships:
		return progress.PhaseSyncingMembers
	case StateDone:
		return progress.PhaseCompleted
	case StateFailed:
		return progress.PhaseFailed
	default:
		return progress.PhasePending
	}
}

// CourseTarget is the progress/guard target key for one course
func CourseTarget(courseCanvasID int64) string {
	return fmt.Sprintf("course-%d", courseCanvasID)
}

// AllTarget is the progress/guard target key for a sync-all run
const AllTarget = "all"

// SyncService orchestrates ordered multi-entity pulls from the LMS. One
// course sync runs the state machine above; distinct courses may sync
// concurrently, while a second run for the same course is rejected.
type SyncService struct {
	canvas      CanvasAPI
	upserter    *Upserter
	reconciler  *Reconciler
	courses     repository.CourseRepositoryInterface
	runs        repository.SyncRunRepositoryInterface
	store       progress.Store
	guard       *runGuard
	deleteStale bool
	log         *logger.Logger
}

// NewSyncService creates a new sync service
func NewSyncService(
	canvasAPI CanvasAPI,
	upserter *Upserter,
	reconciler *Reconciler,
	courses repository.CourseRepositoryInterface,
	runs repository.SyncRunRepositoryInterface,
	store progress.Store,
	deleteStaleTeams bool,
) *SyncService {
	return &SyncService{
		canvas:      canvasAPI,
		upserter:    upserter,
		reconciler:  reconciler,
		courses:     courses,
		runs:        runs,
		store:       store,
		guard:       newRunGuard(),
		deleteStale: deleteStaleTeams,
		log:         logger.New().WithField("component", "syncer"),
	}
}

// StartSync begins a course sync in the background and returns its progress
// target. A sync already running for the course is rejected with
// ErrSyncAlreadyRunning before any work starts.
func (s *SyncService) StartSync(ctx context.Context, actor string, courseCanvasID int64) (string, error) {
	target := CourseTarget(courseCanvasID)
	key := guardKey(target, SyncKindFull)
	if !s.guard.tryAcquire(key) {
		return "", apperrors.ErrSyncAlreadyRunning
	}
	go func() {
		defer s.guard.release(key)
		// The run outlives the request that started it.
		s.runCourseSync(context.Background(), actor, courseCanvasID)
	}()
	return target, nil
}

// StartSyncAll begins a sync of every remote course in the background
func (s *SyncService) StartSyncAll(ctx context.Context, actor string) (string, error) {
	key := guardKey(AllTarget, SyncKindFull)
	if !s.guard.tryAcquire(key) {
		return "", apperrors.ErrSyncAlreadyRunning
	}
	go func() {
		defer s.guard.release(key)
		s.syncAll(context.Background(), actor)
	}()
	return AllTarget, nil
}

// GetProgress returns the latest snapshot for a run, or ErrProgressNotFound
// once the record expired.
func (s *SyncService) GetProgress(ctx context.Context, actor, target string) (*progress.Record, error) {
	return s.store.Get(ctx, actor, target)
}

// SyncCourse runs one course sync to completion on the calling goroutine.
// It holds the same guard as StartSync, so it composes with background runs.
func (s *SyncService) SyncCourse(ctx context.Context, actor string, courseCanvasID int64) error {
	key := guardKey(CourseTarget(courseCanvasID), SyncKindFull)
	if !s.guard.tryAcquire(key) {
		return apperrors.ErrSyncAlreadyRunning
	}
	defer s.guard.release(key)
	return s.runCourseSync(ctx, actor, courseCanvasID)
}

// syncAll fans out one independent course run per remote course. Course runs
// are concurrent; there is no cross-course ordering guarantee.
func (s *SyncService) syncAll(ctx context.Context, actor string) {
	reporter := progress.NewReporter(ctx, s.store, actor, AllTarget)
	reporter.SetPhase(ctx, progress.PhaseFetchingCourses, "listing remote courses")

	courses, err := s.canvas.ListCourses(ctx)
	if err != nil {
		reporter.Finish(ctx, progress.PhaseFailed, fmt.Sprintf("listing courses failed: %v", err))
		return
	}

	var g errgroup.Group
	for i := range courses {
		course := courses[i]
		g.Go(func() error {
			err := s.SyncCourse(ctx, actor, course.ID)
			if err != nil && err != apperrors.ErrSyncAlreadyRunning {
				return fmt.Errorf("course %d: %w", course.ID, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		reporter.AddError(ctx, err)
		reporter.Finish(ctx, progress.PhaseCompleted, "sync finished with failed courses")
		return
	}
	reporter.Finish(ctx, progress.PhaseCompleted, fmt.Sprintf("synced %d courses", len(courses)))
}

// courseSyncRun carries the mutable state of one run through its phases
type courseSyncRun struct {
	svc            *SyncService
	actor          string
	courseCanvasID int64
	reporter       *progress.Reporter
	course         *models.Course
	categories     []CategoryGroups
	state          State
	log            *logger.Logger
}

// runCourseSync drives the state machine for one course. It returns the
// fatal error that failed the run, or nil for completed runs (including
// "completed with errors").
func (s *SyncService) runCourseSync(ctx context.Context, actor string, courseCanvasID int64) error {
	run := &courseSyncRun{
		svc:            s,
		actor:          actor,
		courseCanvasID: courseCanvasID,
		reporter:       progress.NewReporter(ctx, s.store, actor, CourseTarget(courseCanvasID)),
		state:          StateIdle,
		log:            s.log.WithSync(courseCanvasID, string(SyncKindFull)).WithField("actor", actor),
	}
	started := time.Now()

	err := run.execute(ctx)

	// Persist a durable record regardless of outcome; the progress store
	// entry expires, this row does not.
	record := &models.SyncRun{
		Actor:      actor,
		Kind:       string(SyncKindFull),
		Phase:      string(statePhase(run.state)),
		ErrorCount: len(run.reporter.Errors()),
		StartedAt:  started,
	}
	now := time.Now()
	record.FinishedAt = &now
	if run.course != nil {
		record.CourseID = &run.course.ID
	}
	if err != nil {
		record.Message = err.Error()
	}
	if dbErr := s.runs.Create(record); dbErr != nil {
		run.log.WithField("error", dbErr.Error()).Warn("failed to persist sync run record")
	}
	return err
}

// enter transitions to the next state. Each transition is a cooperative
// cancellation checkpoint: a cancelled run stops before the next entity
// kind, keeping everything already upserted.
func (r *courseSyncRun) enter(ctx context.Context, next State, message string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("sync cancelled before %s: %w", next, err)
	}
	r.log.WithFields(map[string]interface{}{"from": r.state, "to": next}).Debug("sync state transition")
	r.state = next
	r.reporter.SetPhase(ctx, statePhase(next), message)
	return nil
}

// fail moves the run to the terminal failed state
func (r *courseSyncRun) fail(ctx context.Context, err error) error {
	r.state = StateFailed
	r.log.WithField("error", err.Error()).Error("sync run failed")
	r.reporter.Finish(ctx, progress.PhaseFailed, err.Error())
	return err
}

// recordPhaseError handles a failed fetch inside a state. Auth errors are
// fatal; rate-limit and transport exhaustion fail only the current phase and
// are surfaced through the run's error list.
func (r *courseSyncRun) recordPhaseError(ctx context.Context, err error) (fatal bool) {
	if apperrors.IsAuth(err) {
		return true
	}
	r.log.WithFields(map[string]interface{}{"state": r.state, "error": err.Error()}).
		Warn("phase failed, continuing with remaining phases")
	r.reporter.AddError(ctx, fmt.Errorf("%s: %w", r.state, err))
	return false
}

func (r *courseSyncRun) execute(ctx context.Context) error {
	if err := r.fetchCourse(ctx); err != nil {
		return r.fail(ctx, err)
	}

	type phase struct {
		state State
		msg   string
		run   func(context.Context) error
	}
	phases := []phase{
		{StateFetchingEnrollments, "fetching enrollments", r.fetchEnrollments},
		{StateFetchingAssignments, "fetching assignments", r.fetchAssignments},
		{StateFetchingSubmissions, "fetching submissions", r.fetchSubmissions},
		{StateFetchingGroupCategories, "fetching group categories", r.fetchGroupCategories},
		{StateFetchingGroups, "fetching groups", r.fetchGroups},
		{StateSavingGroups, "saving groups as teams", r.saveGroups},
		{StateSyncingMemberships, "syncing team memberships", r.syncMemberships},
	}
	for _, p := range phases {
		if err := r.enter(ctx, p.state, p.msg); err != nil {
			return r.fail(ctx, err)
		}
		if err := p.run(ctx); err != nil {
			if r.recordPhaseError(ctx, err) {
				return r.fail(ctx, err)
			}
		}
	}

	r.state = StateDone
	message := fmt.Sprintf("course %q synced", r.course.Name)
	if len(r.categories) == 0 {
		message = "no remote groups found"
	}
	if n := len(r.reporter.Errors()); n > 0 {
		message = fmt.Sprintf("%s (%d recoverable errors)", message, n)
	}
	r.reporter.Finish(ctx, progress.PhaseCompleted, message)
	r.log.WithField("message", message).Info("sync run completed")
	return nil
}

// fetchCourse loads the course record. Without a course, locally or
// remotely, every downstream phase is skipped and the run fails.
func (r *courseSyncRun) fetchCourse(ctx context.Context) error {
	if err := r.enter(ctx, StateFetchingCourse, "fetching course"); err != nil {
		return err
	}

	dto, err := r.svc.canvas.GetCourse(ctx, r.courseCanvasID)
	if err != nil {
		if apperrors.IsAuth(err) {
			return err
		}
		// Tolerate a throttled/unreachable course endpoint when the course
		// is already known locally from an earlier run.
		local, lookupErr := r.svc.courses.GetByCanvasID(r.courseCanvasID)
		if lookupErr != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrCourseNeverLoaded, err)
		}
		r.reporter.AddError(ctx, err)
		r.course = local
		return nil
	}

	course, _, err := r.svc.upserter.UpsertCourse(dto)
	if err != nil {
		return err
	}
	r.course = course
	return nil
}

func (r *courseSyncRun) fetchEnrollments(ctx context.Context) error {
	dtos, err := r.svc.canvas.ListEnrollments(ctx, r.courseCanvasID)
	if err != nil {
		return err
	}
	for i := range dtos {
		if _, _, err := r.svc.upserter.UpsertEnrollment(r.course, &dtos[i]); err != nil {
			r.reporter.AddError(ctx, err)
		}
	}
	r.reporter.SetProgress(ctx, len(dtos), len(dtos), "")
	return nil
}

func (r *courseSyncRun) fetchAssignments(ctx context.Context) error {
	dtos, err := r.svc.canvas.ListAssignments(ctx, r.courseCanvasID)
	if err != nil {
		return err
	}
	for i := range dtos {
		if _, _, err := r.svc.upserter.UpsertAssignment(r.course, &dtos[i]); err != nil {
			r.reporter.AddError(ctx, err)
		}
	}
	r.reporter.SetProgress(ctx, len(dtos), len(dtos), "")
	return nil
}

func (r *courseSyncRun) fetchSubmissions(ctx context.Context) error {
	dtos, err := r.svc.canvas.ListSubmissions(ctx, r.courseCanvasID)
	if err != nil {
		return err
	}
	for i := range dtos {
		if _, _, err := r.svc.upserter.UpsertSubmission(&dtos[i]); err != nil {
			r.reporter.AddError(ctx, err)
		}
	}
	r.reporter.SetProgress(ctx, len(dtos), len(dtos), "")
	return nil
}

func (r *courseSyncRun) fetchGroupCategories(ctx context.Context) error {
	dtos, err := r.svc.canvas.ListGroupCategories(ctx, r.courseCanvasID)
	if err != nil {
		return err
	}
	r.categories = make([]CategoryGroups, 0, len(dtos))
	for i := range dtos {
		category, _, err := r.svc.upserter.UpsertGroupCategory(r.course, &dtos[i])
		if err != nil {
			r.reporter.AddError(ctx, err)
			continue
		}
		r.categories = append(r.categories, CategoryGroups{
			Category: category,
			Members:  make(map[int64][]canvas.User),
		})
	}
	return nil
}

func (r *courseSyncRun) fetchGroups(ctx context.Context) error {
	for i := range r.categories {
		cg := &r.categories[i]
		groups, err := r.svc.canvas.ListGroups(ctx, cg.Category.CanvasID)
		if err != nil {
			return err
		}
		cg.Groups = groups
		cg.Fetched = true
		for _, group := range groups {
			users, err := r.svc.canvas.ListGroupUsers(ctx, group.ID)
			if err != nil {
				if apperrors.IsAuth(err) {
					return err
				}
				r.reporter.AddError(ctx, fmt.Errorf("members of group %d: %w", group.ID, err))
				continue
			}
			cg.Members[group.ID] = users
		}
		r.reporter.SetProgress(ctx, i+1, len(r.categories), "")
	}
	return nil
}

func (r *courseSyncRun) saveGroups(ctx context.Context) error {
	for i := range r.categories {
		_, errs := r.svc.reconciler.SaveTeams(r.course, r.categories[i], r.svc.deleteStale)
		for _, err := range errs {
			r.reporter.AddError(ctx, err)
		}
		r.reporter.SetProgress(ctx, i+1, len(r.categories), "")
	}
	return nil
}

func (r *courseSyncRun) syncMemberships(ctx context.Context) error {
	for i := range r.categories {
		_, errs := r.svc.reconciler.SyncMemberships(r.course, r.categories[i])
		for _, err := range errs {
			r.reporter.AddError(ctx, err)
		}
		r.reporter.SetProgress(ctx, i+1, len(r.categories), "")
	}
	return nil
}
