package models

// ShiftStatus represents the lifecycle state of a scheduled shift
type ShiftStatus string

const (
	ShiftStatusScheduled  ShiftStatus = "SCHEDULED"
	ShiftStatusInProgress ShiftStatus = "IN_PROGRESS"
	ShiftStatusCompleted  ShiftStatus = "COMPLETED"
	ShiftStatusMissed     ShiftStatus = "MISSED"
	ShiftStatusCancelled  ShiftStatus = "CANCELLED"
)

// IsValid checks if the ShiftStatus is valid
func (s ShiftStatus) IsValid() bool {
	switch s {
	case ShiftStatusScheduled, ShiftStatusInProgress, ShiftStatusCompleted, ShiftStatusMissed, ShiftStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition may leave this state
func (s ShiftStatus) IsTerminal() bool {
	switch s {
	case ShiftStatusCompleted, ShiftStatusMissed, ShiftStatusCancelled:
		return true
	}
	return false
}

// IsActive reports whether a shift in this state occupies its time slot
// for conflict-detection purposes
func (s ShiftStatus) IsActive() bool {
	return s == ShiftStatusScheduled || s == ShiftStatusInProgress
}

// UnitType defines how worked time converts into authorization units
type UnitType string

const (
	UnitTypeHourly        UnitType = "HOURLY"
	UnitTypeQuarterHourly UnitType = "QUARTER_HOURLY"
	UnitTypeDaily         UnitType = "DAILY"
)

// IsValid checks if the UnitType is valid
func (u UnitType) IsValid() bool {
	switch u {
	case UnitTypeHourly, UnitTypeQuarterHourly, UnitTypeDaily:
		return true
	}
	return false
}

// AuthorizationStatus represents the status of an insurance authorization
type AuthorizationStatus string

const (
	AuthorizationStatusActive    AuthorizationStatus = "ACTIVE"
	AuthorizationStatusExhausted AuthorizationStatus = "EXHAUSTED"
	AuthorizationStatusExpired   AuthorizationStatus = "EXPIRED"
	AuthorizationStatusCancelled AuthorizationStatus = "CANCELLED"
)

// IsValid checks if the AuthorizationStatus is valid
func (s AuthorizationStatus) IsValid() bool {
	switch s {
	case AuthorizationStatusActive, AuthorizationStatusExhausted, AuthorizationStatusExpired, AuthorizationStatusCancelled:
		return true
	}
	return false
}

// AlertType identifies the condition an authorization alert signals
type AlertType string

const (
	AlertTypeLowUnits       AlertType = "LOW_UNITS"
	AlertTypeUnitsExhausted AlertType = "UNITS_EXHAUSTED"
	AlertTypeExpiringSoon   AlertType = "EXPIRING_SOON"
)

// IsValid checks if the AlertType is valid
func (t AlertType) IsValid() bool {
	switch t {
	case AlertTypeLowUnits, AlertTypeUnitsExhausted, AlertTypeExpiringSoon:
		return true
	}
	return false
}

// AlertSeverity grades an authorization alert
type AlertSeverity string

const (
	AlertSeverityWarning  AlertSeverity = "WARNING"
	AlertSeverityCritical AlertSeverity = "CRITICAL"
)

// IsValid checks if the AlertSeverity is valid
func (s AlertSeverity) IsValid() bool {
	return s == AlertSeverityWarning || s == AlertSeverityCritical
}

// MissedReason is the closed set of reasons a visit may be marked missed.
// Free-text reasons are rejected at the boundary; labels live in MissedReasonLabels.
type MissedReason string

const (
	MissedReasonClientUnavailable MissedReason = "CLIENT_UNAVAILABLE"
	MissedReasonClientRefused     MissedReason = "CLIENT_REFUSED"
	MissedReasonClientHospital    MissedReason = "CLIENT_HOSPITALIZED"
	MissedReasonCarerUnavailable  MissedReason = "CARER_UNAVAILABLE"
	MissedReasonCarerIllness      MissedReason = "CARER_ILLNESS"
	MissedReasonTransportFailure  MissedReason = "TRANSPORT_FAILURE"
	MissedReasonWeather           MissedReason = "WEATHER"
	MissedReasonEmergency         MissedReason = "EMERGENCY"
	MissedReasonOther             MissedReason = "OTHER"
)

// MissedReasonLabels maps reason codes to human-readable labels
var MissedReasonLabels = map[MissedReason]string{
	MissedReasonClientUnavailable: "Client unavailable",
	MissedReasonClientRefused:     "Client refused visit",
	MissedReasonClientHospital:    "Client hospitalized",
	MissedReasonCarerUnavailable:  "Carer unavailable",
	MissedReasonCarerIllness:      "Carer illness",
	MissedReasonTransportFailure:  "Transport failure",
	MissedReasonWeather:           "Severe weather",
	MissedReasonEmergency:         "Emergency",
	MissedReasonOther:             "Other",
}

// IsValid checks if the MissedReason is a known code
func (r MissedReason) IsValid() bool {
	_, ok := MissedReasonLabels[r]
	return ok
}

// Label returns the human-readable label for the reason code
func (r MissedReason) Label() string {
	return MissedReasonLabels[r]
}

// EVVSource is the channel an EVV location report arrived through
type EVVSource string

const (
	EVVSourceMobile EVVSource = "mobile"
	EVVSourceWeb    EVVSource = "web"
)

// IsValid checks if the EVVSource is valid
func (s EVVSource) IsValid() bool {
	return s == EVVSourceMobile || s == EVVSourceWeb
}

// Role is the acting user's role within a company, as asserted by the
// identity provider. Guard predicates over roles live in internal/auth.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleManager     Role = "manager"
	RoleCoordinator Role = "coordinator"
	RoleCarer       Role = "carer"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleCoordinator, RoleCarer:
		return true
	}
	return false
}
