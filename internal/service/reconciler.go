package service

import (
	"fmt"

	"gradebench-backend/internal/canvas"
	"gradebench-backend/internal/config"
	"gradebench-backend/internal/database/models"
	apperrors "gradebench-backend/internal/errors"
	"gradebench-backend/internal/logger"
	"gradebench-backend/internal/repository"

	"github.com/google/uuid"
)

// CategoryGroups bundles one group category with the groups and memberships
// observed for it in a single pull.
type CategoryGroups struct {
	Category *models.GroupCategory
	Groups   []canvas.Group
	// Members maps a remote group id to the users observed in it.
	Members map[int64][]canvas.User
	// Fetched marks a complete group listing for the category. Stale cleanup
	// only trusts a complete listing: a failed pull must not make live teams
	// look stale.
	Fetched bool
}

// ReconcileResult summarizes the team mutations of one category
type ReconcileResult struct {
	TeamsCreated int
	TeamsUpdated int
	TeamsDeleted int
	Moved        int
	Skipped      int
}

// Reconciler folds pulled remote groups into the local team model. It is the
// only component that links or unlinks a remote group to a team.
//
// Teams without a remote-group link are manual: the reconciler never renames,
// re-describes, reassigns, or deletes them. All lookups go through the
// remote-group key, so manual teams are structurally unreachable from here.
type Reconciler struct {
	teams     repository.TeamRepositoryInterface
	students  repository.StudentRepositoryInterface
	enrolls   repository.EnrollmentRepositoryInterface
	changes   repository.MembershipChangeRepositoryInterface
	directory DirectoryLookup
	fallback  config.IdentityFallback
	log       *logger.Logger
}

// NewReconciler creates a new reconciler. directory may be nil.
func NewReconciler(
	teams repository.TeamRepositoryInterface,
	students repository.StudentRepositoryInterface,
	enrolls repository.EnrollmentRepositoryInterface,
	changes repository.MembershipChangeRepositoryInterface,
	directory DirectoryLookup,
	fallback config.IdentityFallback,
) *Reconciler {
	return &Reconciler{
		teams:     teams,
		students:  students,
		enrolls:   enrolls,
		changes:   changes,
		directory: directory,
		fallback:  fallback,
		log:       logger.New().WithField("component", "reconciler"),
	}
}

// SaveTeams upserts one team per remote group of a category. When
// deleteStale is set and the category's listing completed, previously
// imported teams whose remote group vanished from this pull are deleted; by
// default they are left alone. Per-group failures are collected, not fatal.
func (r *Reconciler) SaveTeams(course *models.Course, cg CategoryGroups, deleteStale bool) (*ReconcileResult, []error) {
	result := &ReconcileResult{}
	var errs []error

	observed := make(map[int64]struct{}, len(cg.Groups))
	for i := range cg.Groups {
		group := &cg.Groups[i]
		observed[group.ID] = struct{}{}

		team, err := r.teams.GetByCanvasGroupID(group.ID)
		if isNotFound(err) {
			groupID := group.ID
			team = &models.Team{
				Name:          group.Name,
				Description:   group.Description,
				CourseID:      course.ID,
				CanvasGroupID: &groupID,
				CategoryID:    &cg.Category.ID,
			}
			if err := r.teams.Create(team); err != nil {
				errs = append(errs, upsertErr("team", group.ID, err))
				continue
			}
			result.TeamsCreated++
			continue
		}
		if err != nil {
			errs = append(errs, upsertErr("team", group.ID, err))
			continue
		}

		team.Name = group.Name
		team.CategoryID = &cg.Category.ID
		// Description is locally owned: a manual override survives unless the
		// remote record supplies a non-empty value.
		if group.Description != "" {
			team.Description = group.Description
		}
		if err := r.teams.Update(team); err != nil {
			errs = append(errs, upsertErr("team", group.ID, err))
			continue
		}
		result.TeamsUpdated++
	}

	if deleteStale && cg.Fetched {
		deleted, staleErrs := r.deleteStaleTeams(cg.Category.ID, observed)
		result.TeamsDeleted = deleted
		errs = append(errs, staleErrs...)
	}

	return result, errs
}

// deleteStaleTeams removes imported teams of a category whose remote group
// no longer exists. Members are detached first so students are kept.
func (r *Reconciler) deleteStaleTeams(categoryID uuid.UUID, observed map[int64]struct{}) (int, []error) {
	imported, err := r.teams.GetImportedByCategoryID(categoryID)
	if err != nil {
		return 0, []error{fmt.Errorf("list imported teams: %w", err)}
	}

	var errs []error
	deleted := 0
	for i := range imported {
		team := &imported[i]
		if team.CanvasGroupID == nil {
			continue
		}
		if _, ok := observed[*team.CanvasGroupID]; ok {
			continue
		}
		members, err := r.students.GetByTeamID(team.ID)
		if err != nil {
			errs = append(errs, fmt.Errorf("list members of stale team %s: %w", team.Name, err))
			continue
		}
		for j := range members {
			if err := r.students.AssignTeam(members[j].ID, nil); err != nil {
				errs = append(errs, fmt.Errorf("detach %s from stale team %s: %w", members[j].Name, team.Name, err))
			}
		}
		if err := r.teams.Delete(team.ID); err != nil {
			errs = append(errs, fmt.Errorf("delete stale team %s: %w", team.Name, err))
			continue
		}
		r.log.WithField("team", team.Name).Info("deleted stale imported team")
		deleted++
	}
	return deleted, errs
}

// SyncMemberships assigns students to the teams their remote groups dictate.
// Unresolvable users are handled per the configured fallback policy; each
// reassignment is written to the audit trail with its old and new team.
func (r *Reconciler) SyncMemberships(course *models.Course, cg CategoryGroups) (*ReconcileResult, []error) {
	result := &ReconcileResult{}
	var errs []error

	for groupID, users := range cg.Members {
		team, err := r.teams.GetByCanvasGroupID(groupID)
		if err != nil {
			errs = append(errs, fmt.Errorf("team for remote group %d: %w", groupID, err))
			continue
		}

		for i := range users {
			user := &users[i]
			student, err := r.resolveStudent(course, user)
			if err != nil {
				result.Skipped++
				errs = append(errs, err)
				continue
			}

			if student.TeamID != nil && *student.TeamID == team.ID {
				continue
			}
			fromTeamID := student.TeamID
			if err := r.students.AssignTeam(student.ID, &team.ID); err != nil {
				errs = append(errs, fmt.Errorf("assign %s to team %s: %w", student.Name, team.Name, err))
				continue
			}
			if err := r.changes.Create(&models.TeamMembershipChange{
				StudentID:  student.ID,
				FromTeamID: fromTeamID,
				ToTeamID:   &team.ID,
				Source:     models.MembershipSourceSync,
			}); err != nil {
				errs = append(errs, fmt.Errorf("record membership change for %s: %w", student.Name, err))
			}
			r.log.WithFields(map[string]interface{}{
				"student":   student.Name,
				"from_team": fromTeamID,
				"to_team":   team.ID,
			}).Info("moved student to remote-dictated team")
			result.Moved++
		}
	}

	return result, errs
}

// resolveStudent maps a remote user to a Student: first through the course
// enrollment link, then the canvas-user and email keys, then the directory,
// and finally the configured fallback policy.
func (r *Reconciler) resolveStudent(course *models.Course, user *canvas.User) (*models.Student, error) {
	enrollment, err := r.enrolls.GetByCourseAndCanvasUser(course.ID, user.ID)
	if err == nil && enrollment.StudentID != nil {
		if student, err := r.students.GetByID(*enrollment.StudentID); err == nil {
			return student, nil
		}
	}

	if student, err := r.students.GetByCanvasUserID(user.ID); err == nil {
		return student, nil
	}

	email := user.BestEmail()
	if email != "" {
		if student, err := r.students.GetByEmail(email); err == nil {
			canvasUserID := user.ID
			student.CanvasUserID = &canvasUserID
			if err := r.students.Update(student); err == nil {
				return student, nil
			}
		}
	}

	if email != "" && r.directory != nil && r.directory.Enabled() {
		if person, err := r.directory.FindByEmail(email); err == nil && person != nil {
			return r.createStudent(person.DisplayName(), email, user.ID)
		}
	}

	switch r.fallback {
	case config.IdentityFallbackSynthetic:
		name := user.Name
		if name == "" {
			name = fmt.Sprintf("Canvas user %d", user.ID)
		}
		if email == "" {
			email = fmt.Sprintf("canvas-%d@import.invalid", user.ID)
		}
		return r.createStudent(name, email, user.ID)
	default:
		return nil, &apperrors.ReconciliationConflictError{
			CanvasUserID: user.ID,
			Reason:       "no enrollment, identity, or directory match",
		}
	}
}

func (r *Reconciler) createStudent(name, email string, canvasUserID int64) (*models.Student, error) {
	student := &models.Student{
		Name:         name,
		Email:        email,
		CanvasUserID: &canvasUserID,
	}
	if err := r.students.Create(student); err != nil {
		return nil, &apperrors.ReconciliationConflictError{
			CanvasUserID: canvasUserID,
			Reason:       fmt.Sprintf("create student failed: %v", err),
		}
	}
	return student, nil
}
