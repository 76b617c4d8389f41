package service

import (
	"context"
	"fmt"

	"gradebench-backend/internal/canvas"
	"gradebench-backend/internal/database/models"
	apperrors "gradebench-backend/internal/errors"
	"gradebench-backend/internal/logger"
	"gradebench-backend/internal/repository"

	"github.com/google/uuid"
)

// PushService writes local team membership back to the LMS. The remote
// member list is replaced wholesale with the local one, so remote-side edits
// made since the last sync are overwritten. Manual teams have no remote
// group and are rejected.
type PushService struct {
	canvas     CanvasAPI
	teams      repository.TeamRepositoryInterface
	students   repository.StudentRepositoryInterface
	categories repository.GroupCategoryRepositoryInterface
	courses    repository.CourseRepositoryInterface
	log        *logger.Logger
}

// NewPushService creates a new push service
func NewPushService(
	canvasAPI CanvasAPI,
	teams repository.TeamRepositoryInterface,
	students repository.StudentRepositoryInterface,
	categories repository.GroupCategoryRepositoryInterface,
	courses repository.CourseRepositoryInterface,
) *PushService {
	return &PushService{
		canvas:     canvasAPI,
		teams:      teams,
		students:   students,
		categories: categories,
		courses:    courses,
		log:        logger.New().WithField("component", "push"),
	}
}

// PushTeamMembership replaces the remote group's member list with the team's
// current local members. Members without a linked remote identity are left
// out of the pushed list and logged.
func (s *PushService) PushTeamMembership(ctx context.Context, teamID uuid.UUID) (*canvas.MembershipAck, error) {
	team, err := s.teams.GetByID(teamID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, err
	}
	if !team.IsImported() {
		return nil, apperrors.ErrManualTeam
	}

	members, err := s.students.GetByTeamID(team.ID)
	if err != nil {
		return nil, fmt.Errorf("list members of team %s: %w", team.Name, err)
	}

	userIDs := make([]int64, 0, len(members))
	for i := range members {
		if members[i].CanvasUserID == nil {
			s.log.WithFields(map[string]interface{}{
				"team": team.Name, "student": members[i].Name,
			}).Warn("skipping member without remote identity")
			continue
		}
		userIDs = append(userIDs, *members[i].CanvasUserID)
	}

	ack, err := s.canvas.ReplaceGroupMembers(ctx, *team.CanvasGroupID, userIDs)
	if err != nil {
		return nil, fmt.Errorf("push team %s: %w", team.Name, err)
	}
	s.log.WithFields(map[string]interface{}{
		"team": team.Name, "members": len(ack.Members),
	}).Info("pushed team membership")
	return ack, nil
}

// PushCourseMemberships pushes every imported team of a course. Per-team
// failures are collected; one bad team does not stop the rest.
func (s *PushService) PushCourseMemberships(ctx context.Context, courseCanvasID int64) ([]canvas.MembershipAck, []error) {
	course, err := s.courses.GetByCanvasID(courseCanvasID)
	if err != nil {
		if isNotFound(err) {
			return nil, []error{apperrors.ErrCourseNotFound}
		}
		return nil, []error{err}
	}

	teams, err := s.teams.GetImportedByCourseID(course.ID)
	if err != nil {
		return nil, []error{err}
	}

	var acks []canvas.MembershipAck
	var errs []error
	for i := range teams {
		ack, err := s.PushTeamMembership(ctx, teams[i].ID)
		if err != nil {
			errs = append(errs, err)
			if apperrors.IsAuth(err) {
				break
			}
			continue
		}
		acks = append(acks, *ack)
	}
	return acks, errs
}

// EnsureRemoteGroup creates a remote group for a manual team and links the
// team to it, turning it into an imported team. Teams already linked are
// returned unchanged. The team's category must exist remotely; a category
// without a remote id gets one created first.
func (s *PushService) EnsureRemoteGroup(ctx context.Context, teamID uuid.UUID) (*models.Team, error) {
	team, err := s.teams.GetByID(teamID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, err
	}
	if team.IsImported() {
		return team, nil
	}

	course, err := s.courses.GetByID(team.CourseID)
	if err != nil {
		return nil, fmt.Errorf("course of team %s: %w", team.Name, err)
	}

	categoryCanvasID, err := s.ensureRemoteCategory(ctx, course, team)
	if err != nil {
		return nil, err
	}

	group, err := s.canvas.CreateGroup(ctx, categoryCanvasID, team.Name, team.Description)
	if err != nil {
		return nil, fmt.Errorf("create remote group for team %s: %w", team.Name, err)
	}

	groupID := group.ID
	team.CanvasGroupID = &groupID
	if err := s.teams.Update(team); err != nil {
		return nil, fmt.Errorf("link team %s to remote group %d: %w", team.Name, groupID, err)
	}
	s.log.WithFields(map[string]interface{}{
		"team": team.Name, "canvas_group_id": groupID,
	}).Info("created remote group for manual team")
	return team, nil
}

// ensureRemoteCategory resolves the remote group set a new group should land
// in, creating one named after the team's category (or the course) when the
// team has no category with a remote id yet.
func (s *PushService) ensureRemoteCategory(ctx context.Context, course *models.Course, team *models.Team) (int64, error) {
	if team.CategoryID != nil {
		category, err := s.categories.GetByID(*team.CategoryID)
		if err == nil {
			return category.CanvasID, nil
		}
		if !isNotFound(err) {
			return 0, err
		}
	}

	name := fmt.Sprintf("%s teams", course.CourseCode)
	dto, err := s.canvas.CreateGroupCategory(ctx, course.CanvasID, name)
	if err != nil {
		return 0, fmt.Errorf("create remote group set %q: %w", name, err)
	}

	category := &models.GroupCategory{
		CanvasID: dto.ID,
		CourseID: course.ID,
		Name:     dto.Name,
	}
	if err := s.categories.Create(category); err != nil {
		return 0, fmt.Errorf("persist group set %q: %w", name, err)
	}
	team.CategoryID = &category.ID
	return category.CanvasID, nil
}
