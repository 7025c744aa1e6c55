package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// AuditAction identifies the mutation an audit entry describes
type AuditAction string

const (
	AuditActionShiftCreated      AuditAction = "SHIFT_CREATED"
	AuditActionShiftStarted      AuditAction = "SHIFT_STARTED"
	AuditActionShiftCompleted    AuditAction = "SHIFT_COMPLETED"
	AuditActionShiftMissed       AuditAction = "SHIFT_MISSED"
	AuditActionShiftCancelled    AuditAction = "SHIFT_CANCELLED"
	AuditActionEVVCaptured       AuditAction = "EVV_CAPTURED"
	AuditActionSignatureCaptured AuditAction = "SIGNATURE_CAPTURED"
	AuditActionUnitsDeducted     AuditAction = "UNITS_DEDUCTED"
	AuditActionAlertDismissed    AuditAction = "ALERT_DISMISSED"
)

// AuditLog is a write-only record of a state mutation. Rows are written in
// the same transaction as the mutation they describe and are never updated.
type AuditLog struct {
	BaseModel
	CompanyID  uuid.UUID       `json:"company_id" gorm:"type:uuid;not null;index"`
	ActorID    uuid.UUID       `json:"actor_id" gorm:"type:uuid;not null"`
	Action     AuditAction     `json:"action" gorm:"type:varchar(40);not null"`
	EntityType string          `json:"entity_type" gorm:"size:40;not null"`
	EntityID   uuid.UUID       `json:"entity_id" gorm:"type:uuid;not null;index"`
	Changes    json.RawMessage `json:"changes" gorm:"type:jsonb"`
}

// TableName returns the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}
