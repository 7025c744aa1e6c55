package repository

import (
	"time"

	"carebase-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftRepository handles database operations for shifts
type ShiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db *gorm.DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// Create creates a new shift
func (r *ShiftRepository) Create(shift *models.Shift) error {
	return r.db.Create(shift).Error
}

// GetByID retrieves a shift by ID scoped to the company
func (r *ShiftRepository) GetByID(companyID, id uuid.UUID) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.Preload("EVVRecord").First(&shift, "id = ? AND company_id = ?", id, companyID).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// GetActiveByCarerInWindow retrieves the carer's SCHEDULED and IN_PROGRESS
// shifts whose [scheduled_start, scheduled_end) interval overlaps the given
// window. Used by the conflict check inside the create transaction.
func (r *ShiftRepository) GetActiveByCarerInWindow(companyID, carerID uuid.UUID, start, end time.Time) ([]models.Shift, error) {
	var shifts []models.Shift
	err := r.db.
		Where("company_id = ? AND carer_id = ?", companyID, carerID).
		Where("status IN ?", []models.ShiftStatus{models.ShiftStatusScheduled, models.ShiftStatusInProgress}).
		Where("scheduled_start < ? AND scheduled_end > ?", end, start).
		Order("scheduled_start ASC").
		Find(&shifts).Error
	return shifts, err
}

// List retrieves shifts for a company with optional filters
func (r *ShiftRepository) List(companyID uuid.UUID, filter ShiftFilter, limit, offset int) ([]models.Shift, int64, error) {
	var shifts []models.Shift
	var total int64

	query := r.db.Model(&models.Shift{}).Where("company_id = ?", companyID)
	if filter.CarerID != nil {
		query = query.Where("carer_id = ?", *filter.CarerID)
	}
	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.From != nil {
		query = query.Where("scheduled_end > ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("scheduled_start < ?", *filter.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("EVVRecord").Order("scheduled_start ASC").Limit(limit).Offset(offset).Find(&shifts).Error
	return shifts, total, err
}

// Update updates a shift
func (r *ShiftRepository) Update(shift *models.Shift) error {
	return r.db.Save(shift).Error
}
