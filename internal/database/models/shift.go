package models

import (
	"time"

	"github.com/google/uuid"
)

// Shift represents one scheduled caregiving visit. Shifts are never
// physically deleted; terminal statuses (COMPLETED, MISSED, CANCELLED)
// are soft end states.
type Shift struct {
	BaseModel
	CompanyID       uuid.UUID     `json:"company_id" gorm:"type:uuid;not null;index" validate:"required"`
	CarerID         uuid.UUID     `json:"carer_id" gorm:"type:uuid;not null;index:idx_shifts_carer_window" validate:"required"`
	ClientID        uuid.UUID     `json:"client_id" gorm:"type:uuid;not null;index" validate:"required"`
	ServiceType     string        `json:"service_type" gorm:"size:80;not null" validate:"required,max=80"`
	ScheduledStart  time.Time     `json:"scheduled_start" gorm:"not null;index:idx_shifts_carer_window" validate:"required"`
	ScheduledEnd    time.Time     `json:"scheduled_end" gorm:"not null" validate:"required"`
	ActualStart     *time.Time    `json:"actual_start,omitempty"`
	ActualEnd       *time.Time    `json:"actual_end,omitempty"`
	Status          ShiftStatus   `json:"status" gorm:"type:varchar(20);not null;default:'SCHEDULED';index"`
	Notes           string        `json:"notes" gorm:"type:text"`
	ClientSignature string        `json:"client_signature,omitempty" gorm:"type:text"`
	SignedAt        *time.Time    `json:"signed_at,omitempty"`
	MissedReason    *MissedReason `json:"missed_reason,omitempty" gorm:"type:varchar(40)"`
	MissedAt        *time.Time    `json:"missed_at,omitempty"`
	MissedByID      *uuid.UUID    `json:"missed_by_id,omitempty" gorm:"type:uuid"`
	CreatedByID     uuid.UUID     `json:"created_by_id" gorm:"type:uuid;not null"`

	// Relationships
	Carer     Carer      `json:"carer,omitempty" gorm:"foreignKey:CarerID;constraint:OnDelete:RESTRICT"`
	Client    Client     `json:"client,omitempty" gorm:"foreignKey:ClientID;constraint:OnDelete:RESTRICT"`
	EVVRecord *EVVRecord `json:"evv_record,omitempty" gorm:"foreignKey:ShiftID"`
}

// TableName returns the table name for Shift
func (Shift) TableName() string {
	return "shifts"
}

// HoursWorked computes the worked duration in hours, falling back to the
// scheduled bounds when actual timestamps are missing. Never negative.
func (s *Shift) HoursWorked() float64 {
	start := s.ScheduledStart
	if s.ActualStart != nil {
		start = *s.ActualStart
	}
	end := s.ScheduledEnd
	if s.ActualEnd != nil {
		end = *s.ActualEnd
	}
	hours := end.Sub(start).Hours()
	if hours < 0 {
		return 0
	}
	return hours
}
