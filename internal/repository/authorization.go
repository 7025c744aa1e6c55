package repository

import (
	"time"

	"carebase-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AuthorizationRepository handles database operations for authorizations
type AuthorizationRepository struct {
	db *gorm.DB
}

// NewAuthorizationRepository creates a new authorization repository
func NewAuthorizationRepository(db *gorm.DB) *AuthorizationRepository {
	return &AuthorizationRepository{db: db}
}

// GetByID retrieves an authorization by ID scoped to the company
func (r *AuthorizationRepository) GetByID(companyID, id uuid.UUID) (*models.Authorization, error) {
	var authorization models.Authorization
	err := r.db.First(&authorization, "id = ? AND company_id = ?", id, companyID).Error
	if err != nil {
		return nil, err
	}
	return &authorization, nil
}

// GetForDeductionLocked selects the deduction target for (client, serviceType):
// ACTIVE, in window at the given instant, soonest end date first so quotas
// are consumed before they expire. The row is locked FOR UPDATE, serializing
// concurrent deductions against the same authorization.
func (r *AuthorizationRepository) GetForDeductionLocked(companyID, clientID uuid.UUID, serviceType string, at time.Time) (*models.Authorization, error) {
	day := at.UTC().Truncate(24 * time.Hour)

	var authorization models.Authorization
	err := r.db.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("company_id = ? AND client_id = ? AND service_type = ?", companyID, clientID, serviceType).
		Where("status = ?", models.AuthorizationStatusActive).
		Where("start_date <= ? AND end_date >= ?", day, day).
		Order("end_date ASC").
		First(&authorization).Error
	if err != nil {
		return nil, err
	}
	return &authorization, nil
}

// GetByClientID retrieves all authorizations for a client, soonest expiry first
func (r *AuthorizationRepository) GetByClientID(companyID, clientID uuid.UUID) ([]models.Authorization, error) {
	var authorizations []models.Authorization
	err := r.db.
		Where("company_id = ? AND client_id = ?", companyID, clientID).
		Order("end_date ASC").
		Find(&authorizations).Error
	return authorizations, err
}

// Update updates an authorization
func (r *AuthorizationRepository) Update(authorization *models.Authorization) error {
	return r.db.Save(authorization).Error
}
