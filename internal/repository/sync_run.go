package repository

import (
	"gradebench-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SyncRunRepository handles the durable history of finished sync runs
type SyncRunRepository struct {
	db *gorm.DB
}

// NewSyncRunRepository creates a new sync run repository
func NewSyncRunRepository(db *gorm.DB) *SyncRunRepository {
	return &SyncRunRepository{db: db}
}

// Create records a sync run
func (r *SyncRunRepository) Create(run *models.SyncRun) error {
	return r.db.Create(run).Error
}

// Update updates a sync run
func (r *SyncRunRepository) Update(run *models.SyncRun) error {
	return r.db.Save(run).Error
}

// GetByID retrieves a sync run by ID
func (r *SyncRunRepository) GetByID(id uuid.UUID) (*models.SyncRun, error) {
	var run models.SyncRun
	err := r.db.First(&run, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// GetLatestByCourse retrieves the most recent run for a course and kind
func (r *SyncRunRepository) GetLatestByCourse(courseID uuid.UUID, kind string) (*models.SyncRun, error) {
	var run models.SyncRun
	err := r.db.Where("course_id = ? AND kind = ?", courseID, kind).
		Order("started_at DESC").First(&run).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}
