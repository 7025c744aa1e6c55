package repository

import (
	"time"

	"carebase-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ShiftFilter narrows shift listings. Nil fields are ignored.
type ShiftFilter struct {
	CarerID  *uuid.UUID
	ClientID *uuid.UUID
	Status   *models.ShiftStatus
	From     *time.Time
	To       *time.Time
}

// ShiftRepositoryInterface defines the interface for shift repository operations
type ShiftRepositoryInterface interface {
	Create(shift *models.Shift) error
	GetByID(companyID, id uuid.UUID) (*models.Shift, error)
	GetActiveByCarerInWindow(companyID, carerID uuid.UUID, start, end time.Time) ([]models.Shift, error)
	List(companyID uuid.UUID, filter ShiftFilter, limit, offset int) ([]models.Shift, int64, error)
	Update(shift *models.Shift) error
}

// AuthorizationRepositoryInterface defines the interface for authorization repository operations
type AuthorizationRepositoryInterface interface {
	GetByID(companyID, id uuid.UUID) (*models.Authorization, error)
	// GetForDeductionLocked selects the ACTIVE in-window authorization with
	// the soonest end date for (client, serviceType) and locks the row for
	// the remainder of the transaction.
	GetForDeductionLocked(companyID, clientID uuid.UUID, serviceType string, at time.Time) (*models.Authorization, error)
	GetByClientID(companyID, clientID uuid.UUID) ([]models.Authorization, error)
	Update(authorization *models.Authorization) error
}

// AuthorizationAlertRepositoryInterface defines the interface for alert repository operations
type AuthorizationAlertRepositoryInterface interface {
	Create(alert *models.AuthorizationAlert) error
	GetByID(companyID, id uuid.UUID) (*models.AuthorizationAlert, error)
	// GetOpen returns the non-dismissed alert of the given type, or
	// gorm.ErrRecordNotFound when none is open.
	GetOpen(authorizationID uuid.UUID, alertType models.AlertType) (*models.AuthorizationAlert, error)
	HasOpen(authorizationID uuid.UUID, alertType models.AlertType) (bool, error)
	GetOpenByAuthorization(authorizationID uuid.UUID) ([]models.AuthorizationAlert, error)
	Update(alert *models.AuthorizationAlert) error
}

// EVVRecordRepositoryInterface defines the interface for EVV record repository operations
type EVVRecordRepositoryInterface interface {
	// UpsertForShift writes the capture for a shift, replacing any previous
	// one. A shift carries at most one EVV record.
	UpsertForShift(record *models.EVVRecord) error
	GetByShiftID(shiftID uuid.UUID) (*models.EVVRecord, error)
}

// ClientRepositoryInterface defines the interface for client repository operations
type ClientRepositoryInterface interface {
	GetByID(companyID, id uuid.UUID) (*models.Client, error)
}

// CarerRepositoryInterface defines the interface for carer repository operations
type CarerRepositoryInterface interface {
	GetByID(companyID, id uuid.UUID) (*models.Carer, error)
}

// AuditLogRepositoryInterface defines the interface for audit log writes.
// Entries must be written in the same transaction as the mutation they
// describe.
type AuditLogRepositoryInterface interface {
	Record(entry *models.AuditLog) error
}

// UnitOfWork runs a function against a transactional set of repositories.
// The whole function commits or rolls back as one atomic unit, making the
// subsystem's atomicity requirements an explicit contract.
type UnitOfWork interface {
	Do(fn func(r *Repos) error) error
}
