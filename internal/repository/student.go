package repository

import (
	"gradebench-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *gorm.DB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create creates a new student
func (r *StudentRepository) Create(student *models.Student) error {
	return r.db.Create(student).Error
}

// Update updates a student
func (r *StudentRepository) Update(student *models.Student) error {
	return r.db.Save(student).Error
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(id uuid.UUID) (*models.Student, error) {
	var student models.Student
	err := r.db.First(&student, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// GetByEmail retrieves a student by email
func (r *StudentRepository) GetByEmail(email string) (*models.Student, error) {
	var student models.Student
	err := r.db.First(&student, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// GetByCanvasUserID retrieves a student by linked LMS user id
func (r *StudentRepository) GetByCanvasUserID(canvasUserID int64) (*models.Student, error) {
	var student models.Student
	err := r.db.First(&student, "canvas_user_id = ?", canvasUserID).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// GetByTeamID retrieves the members of a team
func (r *StudentRepository) GetByTeamID(teamID uuid.UUID) ([]models.Student, error) {
	var students []models.Student
	err := r.db.Where("team_id = ?", teamID).Order("name").Find(&students).Error
	return students, err
}

// GetAll retrieves all students with pagination
func (r *StudentRepository) GetAll(limit, offset int) ([]models.Student, int64, error) {
	var students []models.Student
	var total int64

	if err := r.db.Model(&models.Student{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name").Limit(limit).Offset(offset).Find(&students).Error
	if err != nil {
		return nil, 0, err
	}
	return students, total, nil
}

// AssignTeam moves a student to a team (nil removes the assignment)
func (r *StudentRepository) AssignTeam(studentID uuid.UUID, teamID *uuid.UUID) error {
	return r.db.Model(&models.Student{}).Where("id = ?", studentID).Update("team_id", teamID).Error
}
