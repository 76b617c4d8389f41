package repository

import (
	"gradebench-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// Update updates a team
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// Delete deletes a team
func (r *TeamRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Team{}, "id = ?", id).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByCanvasGroupID retrieves the team linked to a remote group
func (r *TeamRepository) GetByCanvasGroupID(canvasGroupID int64) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "canvas_group_id = ?", canvasGroupID).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByName retrieves a team by name within a course
func (r *TeamRepository) GetByName(courseID uuid.UUID, name string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "course_id = ? AND name = ?", courseID, name).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByCourseID retrieves all teams of a course
func (r *TeamRepository) GetByCourseID(courseID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Where("course_id = ?", courseID).Order("name").Find(&teams).Error
	return teams, err
}

// GetImportedByCourseID retrieves teams linked to a remote group.
// Only these teams may be mutated by sync paths.
func (r *TeamRepository) GetImportedByCourseID(courseID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Where("course_id = ? AND canvas_group_id IS NOT NULL", courseID).Find(&teams).Error
	return teams, err
}

// GetImportedByCategoryID retrieves imported teams of one group category
func (r *TeamRepository) GetImportedByCategoryID(categoryID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Where("category_id = ? AND canvas_group_id IS NOT NULL", categoryID).Find(&teams).Error
	return teams, err
}

// GetWithMembers retrieves a team with all its members
func (r *TeamRepository) GetWithMembers(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Members").First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetMemberCount returns the number of members in a team
func (r *TeamRepository) GetMemberCount(teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Student{}).Where("team_id = ?", teamID).Count(&count).Error
	return count, err
}
