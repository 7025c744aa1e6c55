package repository

import (
	"carebase-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientRepository handles database operations for clients
type ClientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// GetByID retrieves a client by ID scoped to the company
func (r *ClientRepository) GetByID(companyID, id uuid.UUID) (*models.Client, error) {
	var client models.Client
	err := r.db.First(&client, "id = ? AND company_id = ?", id, companyID).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}
