package models

import (
	"github.com/google/uuid"
)

// Carer is a caregiver employed by the company. Account and credential
// management is handled by the identity provider; the scheduling engine
// only needs the carer row for assignment and tenancy checks.
type Carer struct {
	BaseModel
	CompanyID uuid.UUID `json:"company_id" gorm:"type:uuid;not null;index" validate:"required"`
	FirstName string    `json:"first_name" gorm:"size:60;not null" validate:"required,max=60"`
	LastName  string    `json:"last_name" gorm:"size:60;not null" validate:"required,max=60"`
	Email     string    `json:"email" gorm:"size:120;uniqueIndex" validate:"required,email"`
	Role      Role      `json:"role" gorm:"type:varchar(20);not null;default:'carer'"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
}

// TableName returns the table name for Carer
func (Carer) TableName() string {
	return "carers"
}
