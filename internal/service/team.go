package service

import (
	"fmt"

	"gradebench-backend/internal/database/models"
	apperrors "gradebench-backend/internal/errors"
	"gradebench-backend/internal/logger"
	"gradebench-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CreateTeamRequest is the payload for creating a manual team
type CreateTeamRequest struct {
	Name           string      `json:"name" validate:"required,min=1,max=200"`
	Description    string      `json:"description" validate:"max=500"`
	CourseCanvasID int64       `json:"course_canvas_id" validate:"required"`
	MemberIDs      []uuid.UUID `json:"member_ids"`
}

// TeamResponse is the API shape of a team
type TeamResponse struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description,omitempty"`
	CanvasGroupID *int64           `json:"canvas_group_id,omitempty"`
	Imported      bool             `json:"imported"`
	MemberCount   int64            `json:"member_count"`
	Members       []models.Student `json:"members,omitempty"`
}

// TeamService handles manually managed teams. Teams it creates carry no
// remote-group link, which keeps them out of the reconciler's reach.
type TeamService struct {
	teams     repository.TeamRepositoryInterface
	courses   repository.CourseRepositoryInterface
	students  repository.StudentRepositoryInterface
	changes   repository.MembershipChangeRepositoryInterface
	validator *validator.Validate
	log       *logger.Logger
}

// NewTeamService creates a new team service
func NewTeamService(
	teams repository.TeamRepositoryInterface,
	courses repository.CourseRepositoryInterface,
	students repository.StudentRepositoryInterface,
	changes repository.MembershipChangeRepositoryInterface,
	validate *validator.Validate,
) *TeamService {
	return &TeamService{
		teams:     teams,
		courses:   courses,
		students:  students,
		changes:   changes,
		validator: validate,
		log:       logger.New().WithField("component", "teams"),
	}
}

// CreateManualTeam creates a team with no remote-group link and assigns the
// requested members to it.
func (s *TeamService) CreateManualTeam(req *CreateTeamRequest) (*models.Team, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	course, err := s.courses.GetByCanvasID(req.CourseCanvasID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, err
	}

	if existing, err := s.teams.GetByName(course.ID, req.Name); err == nil && existing != nil {
		return nil, apperrors.ErrTeamExists
	}

	team := &models.Team{
		Name:        req.Name,
		Description: req.Description,
		CourseID:    course.ID,
	}
	if err := s.teams.Create(team); err != nil {
		return nil, fmt.Errorf("create team: %w", err)
	}

	for _, studentID := range req.MemberIDs {
		student, err := s.students.GetByID(studentID)
		if err != nil {
			s.log.WithField("student_id", studentID).Warn("skipping unknown member on team create")
			continue
		}
		fromTeamID := student.TeamID
		if err := s.students.AssignTeam(student.ID, &team.ID); err != nil {
			s.log.WithFields(map[string]interface{}{
				"student": student.Name, "error": err.Error(),
			}).Warn("failed to assign member on team create")
			continue
		}
		_ = s.changes.Create(&models.TeamMembershipChange{
			StudentID:  student.ID,
			FromTeamID: fromTeamID,
			ToTeamID:   &team.ID,
			Source:     models.MembershipSourceManual,
		})
	}

	s.log.WithField("team", team.Name).Info("created manual team")
	return team, nil
}

// GetByID returns a team with its members
func (s *TeamService) GetByID(id uuid.UUID) (*TeamResponse, error) {
	team, err := s.teams.GetWithMembers(id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, err
	}
	resp := s.toResponse(team)
	resp.Members = team.Members
	resp.MemberCount = int64(len(team.Members))
	return resp, nil
}

// GetByCourse returns all teams of a course, imported and manual
func (s *TeamService) GetByCourse(courseCanvasID int64) ([]TeamResponse, error) {
	course, err := s.courses.GetByCanvasID(courseCanvasID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, err
	}

	teams, err := s.teams.GetByCourseID(course.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		resp := s.toResponse(&teams[i])
		if count, err := s.teams.GetMemberCount(teams[i].ID); err == nil {
			resp.MemberCount = count
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *TeamService) toResponse(team *models.Team) *TeamResponse {
	return &TeamResponse{
		ID:            team.ID,
		Name:          team.Name,
		Description:   team.Description,
		CanvasGroupID: team.CanvasGroupID,
		Imported:      team.IsImported(),
	}
}
