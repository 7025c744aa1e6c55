package repository

import (
	"carebase-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EVVRecordRepository handles database operations for EVV records
type EVVRecordRepository struct {
	db *gorm.DB
}

// NewEVVRecordRepository creates a new EVV record repository
func NewEVVRecordRepository(db *gorm.DB) *EVVRecordRepository {
	return &EVVRecordRepository{db: db}
}

// UpsertForShift writes the EVV capture for a shift. A corrected capture
// replaces the previous row via the unique shift_id index; no capture
// history is kept.
func (r *EVVRecordRepository) UpsertForShift(record *models.EVVRecord) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "shift_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"latitude", "longitude", "accuracy_meters", "captured_at", "source",
			"status", "is_within_geofence", "distance_from_client",
			"geofence_radius", "captured_by_id", "updated_at",
		}),
	}).Create(record).Error
}

// GetByShiftID retrieves the EVV record attached to a shift
func (r *EVVRecordRepository) GetByShiftID(shiftID uuid.UUID) (*models.EVVRecord, error) {
	var record models.EVVRecord
	err := r.db.First(&record, "shift_id = ?", shiftID).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}
