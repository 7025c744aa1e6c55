package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"carebase-backend/internal/config"
	"carebase-backend/internal/database"
	"carebase-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Seed structures matching the YAML demo data files. Names reference
// other entities within the same file; UUIDs are generated on load.

type CarerData struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Email     string `yaml:"email"`
	Role      string `yaml:"role,omitempty"`
}

type ClientData struct {
	FirstName       string   `yaml:"first_name"`
	LastName        string   `yaml:"last_name"`
	Address         string   `yaml:"address,omitempty"`
	Latitude        *float64 `yaml:"latitude,omitempty"`
	Longitude       *float64 `yaml:"longitude,omitempty"`
	GeofenceRadius  float64  `yaml:"geofence_radius,omitempty"`
	GeofenceEnabled *bool    `yaml:"geofence_enabled,omitempty"`
}

type AuthorizationData struct {
	Client          string  `yaml:"client"` // "First Last" of a client above
	ServiceType     string  `yaml:"service_type"`
	UnitType        string  `yaml:"unit_type"`
	AuthorizedUnits float64 `yaml:"authorized_units"`
	UsedUnits       float64 `yaml:"used_units,omitempty"`
	StartDate       string  `yaml:"start_date"` // YYYY-MM-DD
	EndDate         string  `yaml:"end_date"`
	PayerName       string  `yaml:"payer_name,omitempty"`
	AuthorizationNo string  `yaml:"authorization_no,omitempty"`
}

type ShiftData struct {
	CarerEmail  string `yaml:"carer_email"`
	Client      string `yaml:"client"` // "First Last" of a client above
	ServiceType string `yaml:"service_type"`
	Start       string `yaml:"start"` // RFC3339
	End         string `yaml:"end"`
	Notes       string `yaml:"notes,omitempty"`
}

type CompanyData struct {
	Name           string              `yaml:"name"`
	Carers         []CarerData         `yaml:"carers"`
	Clients        []ClientData        `yaml:"clients"`
	Authorizations []AuthorizationData `yaml:"authorizations"`
	Shifts         []ShiftData         `yaml:"shifts"`
}

type SeedFile struct {
	Companies []CompanyData `yaml:"companies"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	path := "scripts/seed/demo_data.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	if err := seedFromFile(db, path); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Printf("Seeded demo data from %s", path)
}

func seedFromFile(db *gorm.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	for _, company := range seed.Companies {
		if err := seedCompany(db, company); err != nil {
			return fmt.Errorf("seed company %q: %w", company.Name, err)
		}
	}
	return nil
}

func seedCompany(db *gorm.DB, data CompanyData) error {
	companyID := uuid.New()
	log.Printf("Seeding company %q as %s", data.Name, companyID)

	carersByEmail := make(map[string]*models.Carer, len(data.Carers))
	for _, c := range data.Carers {
		role := models.Role(c.Role)
		if c.Role == "" {
			role = models.RoleCarer
		}
		if !role.IsValid() {
			return fmt.Errorf("carer %s: unknown role %q", c.Email, c.Role)
		}
		carer := &models.Carer{
			CompanyID: companyID,
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Email:     c.Email,
			Role:      role,
			IsActive:  true,
		}
		if err := db.Create(carer).Error; err != nil {
			return fmt.Errorf("create carer %s: %w", c.Email, err)
		}
		carersByEmail[c.Email] = carer
	}

	clientsByName := make(map[string]*models.Client, len(data.Clients))
	for _, c := range data.Clients {
		enabled := true
		if c.GeofenceEnabled != nil {
			enabled = *c.GeofenceEnabled
		}
		radius := c.GeofenceRadius
		if radius == 0 {
			radius = 150
		}
		client := &models.Client{
			CompanyID:       companyID,
			FirstName:       c.FirstName,
			LastName:        c.LastName,
			Address:         c.Address,
			Latitude:        c.Latitude,
			Longitude:       c.Longitude,
			GeofenceRadius:  radius,
			GeofenceEnabled: enabled,
			IsActive:        true,
		}
		if err := db.Create(client).Error; err != nil {
			return fmt.Errorf("create client %s %s: %w", c.FirstName, c.LastName, err)
		}
		clientsByName[c.FirstName+" "+c.LastName] = client
	}

	for _, a := range data.Authorizations {
		client, ok := clientsByName[a.Client]
		if !ok {
			return fmt.Errorf("authorization references unknown client %q", a.Client)
		}
		unitType := models.UnitType(a.UnitType)
		if !unitType.IsValid() {
			return fmt.Errorf("authorization for %q: unknown unit type %q", a.Client, a.UnitType)
		}
		startDate, err := time.Parse("2006-01-02", a.StartDate)
		if err != nil {
			return fmt.Errorf("authorization for %q: bad start_date: %w", a.Client, err)
		}
		endDate, err := time.Parse("2006-01-02", a.EndDate)
		if err != nil {
			return fmt.Errorf("authorization for %q: bad end_date: %w", a.Client, err)
		}
		authorization := &models.Authorization{
			CompanyID:       companyID,
			ClientID:        client.ID,
			ServiceType:     a.ServiceType,
			UnitType:        unitType,
			AuthorizedUnits: a.AuthorizedUnits,
			UsedUnits:       a.UsedUnits,
			StartDate:       startDate,
			EndDate:         endDate,
			Status:          models.AuthorizationStatusActive,
			PayerName:       a.PayerName,
			AuthorizationNo: a.AuthorizationNo,
		}
		if err := db.Create(authorization).Error; err != nil {
			return fmt.Errorf("create authorization for %q: %w", a.Client, err)
		}
	}

	for _, s := range data.Shifts {
		carer, ok := carersByEmail[s.CarerEmail]
		if !ok {
			return fmt.Errorf("shift references unknown carer %q", s.CarerEmail)
		}
		client, ok := clientsByName[s.Client]
		if !ok {
			return fmt.Errorf("shift references unknown client %q", s.Client)
		}
		start, err := time.Parse(time.RFC3339, s.Start)
		if err != nil {
			return fmt.Errorf("shift for %q: bad start: %w", s.CarerEmail, err)
		}
		end, err := time.Parse(time.RFC3339, s.End)
		if err != nil {
			return fmt.Errorf("shift for %q: bad end: %w", s.CarerEmail, err)
		}
		shift := &models.Shift{
			CompanyID:      companyID,
			CarerID:        carer.ID,
			ClientID:       client.ID,
			ServiceType:    s.ServiceType,
			ScheduledStart: start,
			ScheduledEnd:   end,
			Status:         models.ShiftStatusScheduled,
			Notes:          s.Notes,
			CreatedByID:    carer.ID,
		}
		if err := db.Create(shift).Error; err != nil {
			return fmt.Errorf("create shift for %q: %w", s.CarerEmail, err)
		}
	}

	return nil
}
