package models

import (
	"time"

	"github.com/google/uuid"
)

// EVVStatus is the geofence compliance verdict stored with an EVV capture
type EVVStatus string

const (
	EVVStatusCompliant           EVVStatus = "COMPLIANT"
	EVVStatusOutOfRange          EVVStatus = "OUT_OF_RANGE"
	EVVStatusLocationUnavailable EVVStatus = "LOCATION_UNAVAILABLE"
	EVVStatusNotRequired         EVVStatus = "NOT_REQUIRED"
)

// IsValid checks if the EVVStatus is valid
func (s EVVStatus) IsValid() bool {
	switch s {
	case EVVStatusCompliant, EVVStatusOutOfRange, EVVStatusLocationUnavailable, EVVStatusNotRequired:
		return true
	}
	return false
}

// EVVRecord is an electronic visit verification capture for a shift.
// One record per shift: a corrected capture overwrites the previous one,
// no history is kept.
type EVVRecord struct {
	BaseModel
	CompanyID          uuid.UUID `json:"company_id" gorm:"type:uuid;not null;index"`
	ShiftID            uuid.UUID `json:"shift_id" gorm:"type:uuid;not null;uniqueIndex"`
	Latitude           float64   `json:"latitude"`
	Longitude          float64   `json:"longitude"`
	AccuracyMeters     float64   `json:"accuracy_meters"`
	CapturedAt         time.Time `json:"captured_at" gorm:"not null"`
	Source             EVVSource `json:"source" gorm:"type:varchar(10);not null"`
	Status             EVVStatus `json:"status" gorm:"type:varchar(25);not null"`
	IsWithinGeofence   bool      `json:"is_within_geofence"`
	DistanceFromClient float64   `json:"distance_from_client"`
	GeofenceRadius     float64   `json:"geofence_radius"`
	CapturedByID       uuid.UUID `json:"captured_by_id" gorm:"type:uuid;not null"`
}

// TableName returns the table name for EVVRecord
func (EVVRecord) TableName() string {
	return "evv_records"
}
