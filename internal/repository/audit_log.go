package repository

import (
	"carebase-backend/internal/database/models"

	"gorm.io/gorm"
)

// AuditLogRepository is the write-only audit sink. Entries are inserted
// through the unit of work so they commit or roll back together with the
// mutation they describe.
type AuditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Record inserts an audit entry
func (r *AuditLogRepository) Record(entry *models.AuditLog) error {
	return r.db.Create(entry).Error
}
