package repository

import (
	"carebase-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CarerRepository handles database operations for carers
type CarerRepository struct {
	db *gorm.DB
}

// NewCarerRepository creates a new carer repository
func NewCarerRepository(db *gorm.DB) *CarerRepository {
	return &CarerRepository{db: db}
}

// GetByID retrieves a carer by ID scoped to the company
func (r *CarerRepository) GetByID(companyID, id uuid.UUID) (*models.Carer, error) {
	var carer models.Carer
	err := r.db.First(&carer, "id = ? AND company_id = ?", id, companyID).Error
	if err != nil {
		return nil, err
	}
	return &carer, nil
}
