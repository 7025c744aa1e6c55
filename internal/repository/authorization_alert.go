package repository

import (
	"carebase-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthorizationAlertRepository handles database operations for authorization alerts
type AuthorizationAlertRepository struct {
	db *gorm.DB
}

// NewAuthorizationAlertRepository creates a new authorization alert repository
func NewAuthorizationAlertRepository(db *gorm.DB) *AuthorizationAlertRepository {
	return &AuthorizationAlertRepository{db: db}
}

// Create creates a new alert
func (r *AuthorizationAlertRepository) Create(alert *models.AuthorizationAlert) error {
	return r.db.Create(alert).Error
}

// GetByID retrieves an alert by ID scoped to the company
func (r *AuthorizationAlertRepository) GetByID(companyID, id uuid.UUID) (*models.AuthorizationAlert, error) {
	var alert models.AuthorizationAlert
	err := r.db.First(&alert, "id = ? AND company_id = ?", id, companyID).Error
	if err != nil {
		return nil, err
	}
	return &alert, nil
}

// GetOpen retrieves the non-dismissed alert of the given type for the
// authorization. The dedup index guarantees at most one exists.
func (r *AuthorizationAlertRepository) GetOpen(authorizationID uuid.UUID, alertType models.AlertType) (*models.AuthorizationAlert, error) {
	var alert models.AuthorizationAlert
	err := r.db.First(&alert, "authorization_id = ? AND alert_type = ? AND is_dismissed = false", authorizationID, alertType).Error
	if err != nil {
		return nil, err
	}
	return &alert, nil
}

// HasOpen reports whether a non-dismissed alert of the given type already
// exists for the authorization. The ledger checks this before inserting so
// repeated threshold crossings never stack duplicate alerts.
func (r *AuthorizationAlertRepository) HasOpen(authorizationID uuid.UUID, alertType models.AlertType) (bool, error) {
	var count int64
	err := r.db.Model(&models.AuthorizationAlert{}).
		Where("authorization_id = ? AND alert_type = ? AND is_dismissed = false", authorizationID, alertType).
		Count(&count).Error
	return count > 0, err
}

// GetOpenByAuthorization retrieves all non-dismissed alerts for an authorization
func (r *AuthorizationAlertRepository) GetOpenByAuthorization(authorizationID uuid.UUID) ([]models.AuthorizationAlert, error) {
	var alerts []models.AuthorizationAlert
	err := r.db.
		Where("authorization_id = ? AND is_dismissed = false", authorizationID).
		Order("created_at DESC").
		Find(&alerts).Error
	return alerts, err
}

// Update updates an alert
func (r *AuthorizationAlertRepository) Update(alert *models.AuthorizationAlert) error {
	return r.db.Save(alert).Error
}
