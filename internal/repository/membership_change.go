package repository

import (
	"gradebench-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipChangeRepository handles the team reassignment audit trail
type MembershipChangeRepository struct {
	db *gorm.DB
}

// NewMembershipChangeRepository creates a new membership change repository
func NewMembershipChangeRepository(db *gorm.DB) *MembershipChangeRepository {
	return &MembershipChangeRepository{db: db}
}

// Create records a team assignment change
func (r *MembershipChangeRepository) Create(change *models.TeamMembershipChange) error {
	return r.db.Create(change).Error
}

// GetByStudentID retrieves the change history of a student, newest first
func (r *MembershipChangeRepository) GetByStudentID(studentID uuid.UUID) ([]models.TeamMembershipChange, error) {
	var changes []models.TeamMembershipChange
	err := r.db.Where("student_id = ?", studentID).Order("created_at DESC").Find(&changes).Error
	return changes, err
}
