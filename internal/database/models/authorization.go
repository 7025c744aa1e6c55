package models

import (
	"time"

	"github.com/google/uuid"
)

// Authorization represents a client's insurance-granted service quota for a
// date range and service type. It is created by the billing context; this
// subsystem only consumes units from it and transitions its status.
type Authorization struct {
	BaseModel
	CompanyID       uuid.UUID           `json:"company_id" gorm:"type:uuid;not null;index" validate:"required"`
	ClientID        uuid.UUID           `json:"client_id" gorm:"type:uuid;not null;index:idx_authorizations_client_service" validate:"required"`
	ServiceType     string              `json:"service_type" gorm:"size:80;not null;index:idx_authorizations_client_service" validate:"required,max=80"`
	UnitType        UnitType            `json:"unit_type" gorm:"type:varchar(20);not null" validate:"required"`
	AuthorizedUnits float64             `json:"authorized_units" gorm:"not null" validate:"required,gt=0"`
	UsedUnits       float64             `json:"used_units" gorm:"not null;default:0"`
	StartDate       time.Time           `json:"start_date" gorm:"type:date;not null" validate:"required"`
	EndDate         time.Time           `json:"end_date" gorm:"type:date;not null" validate:"required"`
	Status          AuthorizationStatus `json:"status" gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	PayerName       string              `json:"payer_name" gorm:"size:120"`
	AuthorizationNo string              `json:"authorization_no" gorm:"size:60"`

	// Relationships
	Client Client               `json:"client,omitempty" gorm:"foreignKey:ClientID;constraint:OnDelete:RESTRICT"`
	Alerts []AuthorizationAlert `json:"alerts,omitempty" gorm:"foreignKey:AuthorizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Authorization
func (Authorization) TableName() string {
	return "authorizations"
}

// RemainingUnits is authorized minus used, floored at zero
func (a *Authorization) RemainingUnits() float64 {
	remaining := a.AuthorizedUnits - a.UsedUnits
	if remaining < 0 {
		return 0
	}
	return remaining
}

// UsagePercentage is used units as a percentage of authorized units
func (a *Authorization) UsagePercentage() float64 {
	if a.AuthorizedUnits <= 0 {
		return 0
	}
	return a.UsedUnits / a.AuthorizedUnits * 100
}

// InWindow reports whether the given instant falls within the
// authorization's date range, inclusive on both ends. Comparison is on
// calendar days since start/end are stored as dates.
func (a *Authorization) InWindow(at time.Time) bool {
	day := at.UTC().Truncate(24 * time.Hour)
	return !day.Before(a.StartDate) && !day.After(a.EndDate)
}
