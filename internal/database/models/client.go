package models

import (
	"github.com/google/uuid"
)

// Client is a care recipient. The profile itself is owned by the intake
// context; this subsystem reads the registered location and geofence
// settings for EVV checks.
type Client struct {
	BaseModel
	CompanyID       uuid.UUID  `json:"company_id" gorm:"type:uuid;not null;index" validate:"required"`
	FirstName       string     `json:"first_name" gorm:"size:60;not null" validate:"required,max=60"`
	LastName        string     `json:"last_name" gorm:"size:60;not null" validate:"required,max=60"`
	Address         string     `json:"address" gorm:"size:255"`
	Latitude        *float64   `json:"latitude,omitempty"`
	Longitude       *float64   `json:"longitude,omitempty"`
	GeofenceRadius  float64    `json:"geofence_radius" gorm:"default:150"`
	GeofenceEnabled bool       `json:"geofence_enabled" gorm:"default:true"`
	SponsorID       *uuid.UUID `json:"sponsor_id,omitempty" gorm:"type:uuid"`
	IsActive        bool       `json:"is_active" gorm:"default:true"`
}

// TableName returns the table name for Client
func (Client) TableName() string {
	return "clients"
}

// HasRegisteredLocation reports whether the client profile carries
// coordinates usable for geofence checks
func (c *Client) HasRegisteredLocation() bool {
	return c.Latitude != nil && c.Longitude != nil
}
