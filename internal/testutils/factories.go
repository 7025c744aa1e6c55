package testutils

import (
	"time"

	"carebase-backend/internal/database/models"

	"github.com/google/uuid"
)

// CarerFactory provides methods to create test Carer data
type CarerFactory struct{}

// NewCarerFactory creates a new CarerFactory
func NewCarerFactory() *CarerFactory {
	return &CarerFactory{}
}

// Create creates a test Carer with default values
func (f *CarerFactory) Create(companyID uuid.UUID) *models.Carer {
	return &models.Carer{
		CompanyID: companyID,
		FirstName: "Test",
		LastName:  "Carer",
		Email:     "carer-" + uuid.NewString()[:8] + "@example.com",
		Role:      models.RoleCarer,
		IsActive:  true,
	}
}

// ClientFactory provides methods to create test Client data
type ClientFactory struct{}

// NewClientFactory creates a new ClientFactory
func NewClientFactory() *ClientFactory {
	return &ClientFactory{}
}

// Create creates a test Client with a registered location and enabled geofence
func (f *ClientFactory) Create(companyID uuid.UUID) *models.Client {
	lat, lng := 32.0853, 34.7818
	return &models.Client{
		CompanyID:       companyID,
		FirstName:       "Test",
		LastName:        "Client",
		Address:         "1 Test Street",
		Latitude:        &lat,
		Longitude:       &lng,
		GeofenceRadius:  150,
		GeofenceEnabled: true,
		IsActive:        true,
	}
}

// WithoutLocation creates a client with no registered coordinates
func (f *ClientFactory) WithoutLocation(companyID uuid.UUID) *models.Client {
	client := f.Create(companyID)
	client.Latitude = nil
	client.Longitude = nil
	return client
}

// ShiftFactory provides methods to create test Shift data
type ShiftFactory struct{}

// NewShiftFactory creates a new ShiftFactory
func NewShiftFactory() *ShiftFactory {
	return &ShiftFactory{}
}

// Create creates a SCHEDULED test Shift in the given window
func (f *ShiftFactory) Create(companyID, carerID, clientID uuid.UUID, start, end time.Time) *models.Shift {
	return &models.Shift{
		CompanyID:      companyID,
		CarerID:        carerID,
		ClientID:       clientID,
		ServiceType:    "personal_care",
		ScheduledStart: start,
		ScheduledEnd:   end,
		Status:         models.ShiftStatusScheduled,
		CreatedByID:    uuid.New(),
	}
}

// InProgress creates an IN_PROGRESS test Shift whose actual start equals
// its scheduled start
func (f *ShiftFactory) InProgress(companyID, carerID, clientID uuid.UUID, start, end time.Time) *models.Shift {
	shift := f.Create(companyID, carerID, clientID, start, end)
	actualStart := start
	shift.Status = models.ShiftStatusInProgress
	shift.ActualStart = &actualStart
	return shift
}

// AuthorizationFactory provides methods to create test Authorization data
type AuthorizationFactory struct{}

// NewAuthorizationFactory creates a new AuthorizationFactory
func NewAuthorizationFactory() *AuthorizationFactory {
	return &AuthorizationFactory{}
}

// Create creates an ACTIVE hourly Authorization spanning 30 days either
// side of today
func (f *AuthorizationFactory) Create(companyID, clientID uuid.UUID, authorizedUnits float64) *models.Authorization {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	return &models.Authorization{
		CompanyID:       companyID,
		ClientID:        clientID,
		ServiceType:     "personal_care",
		UnitType:        models.UnitTypeHourly,
		AuthorizedUnits: authorizedUnits,
		UsedUnits:       0,
		StartDate:       today.AddDate(0, 0, -30),
		EndDate:         today.AddDate(0, 0, 30),
		Status:          models.AuthorizationStatusActive,
		PayerName:       "Test Payer",
		AuthorizationNo: "AUTH-" + uuid.NewString()[:8],
	}
}

// WithUnitType overrides the unit conversion policy
func (f *AuthorizationFactory) WithUnitType(companyID, clientID uuid.UUID, authorizedUnits float64, unitType models.UnitType) *models.Authorization {
	authorization := f.Create(companyID, clientID, authorizedUnits)
	authorization.UnitType = unitType
	return authorization
}

// Expiring creates an ACTIVE authorization ending the given number of days
// from today
func (f *AuthorizationFactory) Expiring(companyID, clientID uuid.UUID, authorizedUnits float64, daysUntilExpiry int) *models.Authorization {
	authorization := f.Create(companyID, clientID, authorizedUnits)
	today := time.Now().UTC().Truncate(24 * time.Hour)
	authorization.EndDate = today.AddDate(0, 0, daysUntilExpiry)
	return authorization
}

// FactorySet provides access to all factories
type FactorySet struct {
	Carer         *CarerFactory
	Client        *ClientFactory
	Shift         *ShiftFactory
	Authorization *AuthorizationFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Carer:         NewCarerFactory(),
		Client:        NewClientFactory(),
		Shift:         NewShiftFactory(),
		Authorization: NewAuthorizationFactory(),
	}
}
