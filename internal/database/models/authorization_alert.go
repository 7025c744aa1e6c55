package models

import (
	"time"

	"github.com/google/uuid"
)

// AuthorizationAlert is a derived signal raised by the authorization ledger
// when usage or expiry thresholds are crossed. At most one non-dismissed
// alert of a given type exists per authorization.
type AuthorizationAlert struct {
	BaseModel
	CompanyID       uuid.UUID     `json:"company_id" gorm:"type:uuid;not null;index"`
	AuthorizationID uuid.UUID     `json:"authorization_id" gorm:"type:uuid;not null;index:idx_auth_alerts_dedup"`
	AlertType       AlertType     `json:"alert_type" gorm:"type:varchar(20);not null;index:idx_auth_alerts_dedup"`
	Severity        AlertSeverity `json:"severity" gorm:"type:varchar(10);not null"`
	Message         string        `json:"message" gorm:"size:255;not null"`
	IsDismissed     bool          `json:"is_dismissed" gorm:"not null;default:false;index:idx_auth_alerts_dedup"`
	DismissedAt     *time.Time    `json:"dismissed_at,omitempty"`
	DismissedByID   *uuid.UUID    `json:"dismissed_by_id,omitempty" gorm:"type:uuid"`

	// Relationships
	Authorization Authorization `json:"authorization,omitempty" gorm:"foreignKey:AuthorizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for AuthorizationAlert
func (AuthorizationAlert) TableName() string {
	return "authorization_alerts"
}
