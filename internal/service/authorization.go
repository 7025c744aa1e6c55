package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"carebase-backend/internal/auth"
	"carebase-backend/internal/database/models"
	apperrors "carebase-backend/internal/errors"
	"carebase-backend/internal/notify"
	"carebase-backend/internal/repository"
	"carebase-backend/internal/units"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AlertThresholds configures when the ledger raises alerts
type AlertThresholds struct {
	WarningPercent     float64
	CriticalPercent    float64
	ExpiryWarningDays  int
	ExpiryCriticalDays int
}

// DefaultAlertThresholds returns the standard 80/90 usage and 30/7 day
// expiry thresholds
func DefaultAlertThresholds() AlertThresholds {
	return AlertThresholds{
		WarningPercent:     80,
		CriticalPercent:    90,
		ExpiryWarningDays:  30,
		ExpiryCriticalDays: 7,
	}
}

// AuthorizationService is the authorization ledger: it meters unit
// consumption against a client's insurance authorizations, transitions
// their status and raises alerts as balances run low or expire.
type AuthorizationService struct {
	uow        repository.UnitOfWork
	notifier   notify.Notifier
	validator  *validator.Validate
	thresholds AlertThresholds
}

// NewAuthorizationService creates a new authorization service
func NewAuthorizationService(uow repository.UnitOfWork, notifier notify.Notifier, validator *validator.Validate, thresholds AlertThresholds) *AuthorizationService {
	return &AuthorizationService{
		uow:        uow,
		notifier:   notifier,
		validator:  validator,
		thresholds: thresholds,
	}
}

// DeductionResult reports the outcome of one unit deduction
type DeductionResult struct {
	AuthorizationID uuid.UUID                   `json:"authorization_id"`
	UnitType        models.UnitType             `json:"unit_type"`
	UnitsDeducted   float64                     `json:"units_deducted"`
	UsedUnits       float64                     `json:"used_units"`
	RemainingUnits  float64                     `json:"remaining_units"`
	UsagePercentage float64                     `json:"usage_percentage"`
	Exhausted       bool                        `json:"exhausted"`
	AlertsRaised    []models.AuthorizationAlert `json:"alerts_raised,omitempty"`
}

// DeductUnits consumes units from the client's authorization for the given
// service type. It runs against the caller's transaction-bound repositories
// so the deduction, its alerts and its audit entry commit atomically with
// the shift completion that triggered it.
//
// Selection picks the ACTIVE in-window authorization with the soonest end
// date and locks its row, so concurrent completions for the same client
// serialize and no deduction is lost. ErrNoActiveAuthorization is a normal
// outcome the caller must tolerate.
func (s *AuthorizationService) DeductUnits(r *repository.Repos, companyID, clientID uuid.UUID, serviceType string, hoursWorked float64, shiftID, actorID uuid.UUID) (*DeductionResult, error) {
	authorization, err := r.Authorizations.GetForDeductionLocked(companyID, clientID, serviceType, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoActiveAuthorization
		}
		return nil, fmt.Errorf("select authorization for deduction: %w", err)
	}

	unitsToDeduct := units.ForDuration(hoursWorked, authorization.UnitType)

	result := &DeductionResult{
		AuthorizationID: authorization.ID,
		UnitType:        authorization.UnitType,
		UnitsDeducted:   unitsToDeduct,
	}

	if unitsToDeduct > 0 {
		authorization.UsedUnits += unitsToDeduct
		if authorization.RemainingUnits() <= 0 && authorization.Status == models.AuthorizationStatusActive {
			// one-way transition; an exhausted authorization is never
			// silently reactivated here
			authorization.Status = models.AuthorizationStatusExhausted
		}
		if err := r.Authorizations.Update(authorization); err != nil {
			return nil, fmt.Errorf("update authorization: %w", err)
		}
	}

	result.UsedUnits = authorization.UsedUnits
	result.RemainingUnits = authorization.RemainingUnits()
	result.UsagePercentage = authorization.UsagePercentage()
	result.Exhausted = authorization.Status == models.AuthorizationStatusExhausted

	alerts, err := s.evaluateUsageAlerts(r, authorization)
	if err != nil {
		return nil, err
	}
	result.AlertsRaised = alerts

	changes, _ := json.Marshal(map[string]interface{}{
		"shift_id":        shiftID,
		"service_type":    serviceType,
		"hours_worked":    hoursWorked,
		"units_deducted":  unitsToDeduct,
		"used_units":      authorization.UsedUnits,
		"remaining_units": authorization.RemainingUnits(),
		"status":          authorization.Status,
	})
	if err := r.AuditLogs.Record(&models.AuditLog{
		CompanyID:  companyID,
		ActorID:    actorID,
		Action:     models.AuditActionUnitsDeducted,
		EntityType: "authorization",
		EntityID:   authorization.ID,
		Changes:    changes,
	}); err != nil {
		return nil, fmt.Errorf("record deduction audit: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"authorization_id": authorization.ID,
		"shift_id":         shiftID,
		"units_deducted":   unitsToDeduct,
		"remaining_units":  authorization.RemainingUnits(),
		"status":           authorization.Status,
	}).Info("authorization units deducted")

	return result, nil
}

// evaluateUsageAlerts raises LOW_UNITS and UNITS_EXHAUSTED alerts for the
// authorization's current usage, each deduplicated so at most one
// non-dismissed alert of a type exists at a time. An open WARNING is
// escalated rather than suppressed once usage crosses the critical
// threshold.
func (s *AuthorizationService) evaluateUsageAlerts(r *repository.Repos, authorization *models.Authorization) ([]models.AuthorizationAlert, error) {
	var raised []models.AuthorizationAlert

	usage := authorization.UsagePercentage()
	if usage >= s.thresholds.WarningPercent {
		severity := models.AlertSeverityWarning
		if usage >= s.thresholds.CriticalPercent {
			severity = models.AlertSeverityCritical
		}
		alert, err := s.raiseAlert(r, authorization, models.AlertTypeLowUnits, severity,
			fmt.Sprintf("authorization has used %.1f%% of %g units", usage, authorization.AuthorizedUnits))
		if err != nil {
			return nil, err
		}
		if alert != nil {
			raised = append(raised, *alert)
		}
	}

	if authorization.RemainingUnits() <= 0 {
		alert, err := s.raiseAlert(r, authorization, models.AlertTypeUnitsExhausted, models.AlertSeverityCritical,
			"authorization units are exhausted")
		if err != nil {
			return nil, err
		}
		if alert != nil {
			raised = append(raised, *alert)
		}
	}

	return raised, nil
}

// raiseAlert inserts an alert unless a non-dismissed one of the same type
// is already open, in which case a WARNING escalates to CRITICAL in place
// when the threshold tier has risen. Returns nil when deduplicated away.
//
// The read-then-insert is backed by the partial unique index on
// (authorization_id, alert_type) for non-dismissed rows; a writer that
// loses the insert race treats the violation as dedup.
func (s *AuthorizationService) raiseAlert(r *repository.Repos, authorization *models.Authorization, alertType models.AlertType, severity models.AlertSeverity, message string) (*models.AuthorizationAlert, error) {
	existing, err := r.Alerts.GetOpen(authorization.ID, alertType)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check open %s alert: %w", alertType, err)
	}
	if existing != nil {
		if existing.Severity == models.AlertSeverityWarning && severity == models.AlertSeverityCritical {
			existing.Severity = severity
			existing.Message = message
			if err := r.Alerts.Update(existing); err != nil {
				return nil, fmt.Errorf("escalate %s alert: %w", alertType, err)
			}
			return existing, nil
		}
		return nil, nil
	}

	alert := &models.AuthorizationAlert{
		CompanyID:       authorization.CompanyID,
		AuthorizationID: authorization.ID,
		AlertType:       alertType,
		Severity:        severity,
		Message:         message,
	}
	if err := r.Alerts.Create(alert); err != nil {
		if repository.IsUniqueViolation(err, "auth_alerts_one_open_per_type") {
			return nil, nil
		}
		return nil, fmt.Errorf("create %s alert: %w", alertType, err)
	}
	return alert, nil
}

// AuthorizationResponse is an authorization with computed usage stats
type AuthorizationResponse struct {
	ID              uuid.UUID                   `json:"id"`
	ClientID        uuid.UUID                   `json:"client_id"`
	ServiceType     string                      `json:"service_type"`
	UnitType        models.UnitType             `json:"unit_type"`
	AuthorizedUnits float64                     `json:"authorized_units"`
	UsedUnits       float64                     `json:"used_units"`
	RemainingUnits  float64                     `json:"remaining_units"`
	UsagePercentage float64                     `json:"usage_percentage"`
	StartDate       string                      `json:"start_date"`
	EndDate         string                      `json:"end_date"`
	DaysUntilExpiry int                         `json:"days_until_expiry"`
	Status          models.AuthorizationStatus  `json:"status"`
	PayerName       string                      `json:"payer_name,omitempty"`
	AuthorizationNo string                      `json:"authorization_no,omitempty"`
	OpenAlerts      []models.AuthorizationAlert `json:"open_alerts,omitempty"`
}

// AuthorizationListResponse lists a client's authorizations with usage stats
type AuthorizationListResponse struct {
	Authorizations []AuthorizationResponse `json:"authorizations"`
	Total          int                     `json:"total"`
}

// ListForClient returns the client's authorizations with computed usage
// statistics. Listing also reviews expiry: past-window ACTIVE
// authorizations transition to EXPIRED and near-expiry ones raise
// EXPIRING_SOON alerts (the periodic sweep owns the same review out of
// band).
func (s *AuthorizationService) ListForClient(actor *auth.Actor, clientID uuid.UUID) (*AuthorizationListResponse, error) {
	var response *AuthorizationListResponse
	var raised []models.AuthorizationAlert

	err := s.uow.Do(func(r *repository.Repos) error {
		if _, err := r.Clients.GetByID(actor.CompanyID, clientID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrClientNotFound
			}
			return fmt.Errorf("verify client: %w", err)
		}

		authorizations, err := r.Authorizations.GetByClientID(actor.CompanyID, clientID)
		if err != nil {
			return fmt.Errorf("list authorizations: %w", err)
		}

		now := time.Now()
		responses := make([]AuthorizationResponse, 0, len(authorizations))
		for i := range authorizations {
			authorization := &authorizations[i]
			alert, err := s.reviewExpiry(r, authorization, now)
			if err != nil {
				return err
			}
			if alert != nil {
				raised = append(raised, *alert)
			}

			openAlerts, err := r.Alerts.GetOpenByAuthorization(authorization.ID)
			if err != nil {
				return fmt.Errorf("list open alerts: %w", err)
			}

			responses = append(responses, toAuthorizationResponse(authorization, openAlerts, now))
		}

		response = &AuthorizationListResponse{Authorizations: responses, Total: len(responses)}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// fan out only after the transaction committed
	for i := range raised {
		s.notifier.Notify(notify.Event{
			Type:           notify.EventAuthorizationAlert,
			CompanyID:      actor.CompanyID,
			RecipientRoles: []models.Role{models.RoleAdmin, models.RoleManager, models.RoleCoordinator},
			Payload: map[string]interface{}{
				"alert_type": raised[i].AlertType,
				"severity":   raised[i].Severity,
				"message":    raised[i].Message,
			},
			EntityType: "authorization",
			EntityID:   raised[i].AuthorizationID,
		})
	}

	return response, nil
}

// reviewExpiry transitions past-window ACTIVE authorizations to EXPIRED
// and raises EXPIRING_SOON alerts inside the expiry warning windows.
func (s *AuthorizationService) reviewExpiry(r *repository.Repos, authorization *models.Authorization, now time.Time) (*models.AuthorizationAlert, error) {
	if authorization.Status != models.AuthorizationStatusActive {
		return nil, nil
	}

	day := now.UTC().Truncate(24 * time.Hour)
	if day.After(authorization.EndDate) {
		authorization.Status = models.AuthorizationStatusExpired
		if err := r.Authorizations.Update(authorization); err != nil {
			return nil, fmt.Errorf("expire authorization: %w", err)
		}
		return nil, nil
	}

	daysLeft := int(authorization.EndDate.Sub(day).Hours() / 24)
	if daysLeft > s.thresholds.ExpiryWarningDays {
		return nil, nil
	}
	severity := models.AlertSeverityWarning
	if daysLeft <= s.thresholds.ExpiryCriticalDays {
		severity = models.AlertSeverityCritical
	}
	return s.raiseAlert(r, authorization, models.AlertTypeExpiringSoon, severity,
		fmt.Sprintf("authorization expires in %d days", daysLeft))
}

// AlertResponse is an authorization alert as returned to callers
type AlertResponse struct {
	ID              uuid.UUID            `json:"id"`
	AuthorizationID uuid.UUID            `json:"authorization_id"`
	AlertType       models.AlertType     `json:"alert_type"`
	Severity        models.AlertSeverity `json:"severity"`
	Message         string               `json:"message"`
	IsDismissed     bool                 `json:"is_dismissed"`
}

// DismissAlert marks an alert dismissed, reopening the dedup window for
// its type. Manager tier only.
func (s *AuthorizationService) DismissAlert(actor *auth.Actor, alertID uuid.UUID) (*AlertResponse, error) {
	if !auth.CanDismissAlert(actor.Role) {
		return nil, apperrors.NewForbiddenError("only schedule managers may dismiss authorization alerts")
	}

	var response *AlertResponse
	err := s.uow.Do(func(r *repository.Repos) error {
		alert, err := r.Alerts.GetByID(actor.CompanyID, alertID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrAlertNotFound
			}
			return fmt.Errorf("load alert: %w", err)
		}
		if alert.IsDismissed {
			response = toAlertResponse(alert)
			return nil
		}

		now := time.Now()
		alert.IsDismissed = true
		alert.DismissedAt = &now
		alert.DismissedByID = &actor.UserID
		if err := r.Alerts.Update(alert); err != nil {
			return fmt.Errorf("dismiss alert: %w", err)
		}

		changes, _ := json.Marshal(map[string]interface{}{"alert_type": alert.AlertType})
		if err := r.AuditLogs.Record(&models.AuditLog{
			CompanyID:  actor.CompanyID,
			ActorID:    actor.UserID,
			Action:     models.AuditActionAlertDismissed,
			EntityType: "authorization_alert",
			EntityID:   alert.ID,
			Changes:    changes,
		}); err != nil {
			return fmt.Errorf("record dismiss audit: %w", err)
		}

		response = toAlertResponse(alert)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

func toAlertResponse(alert *models.AuthorizationAlert) *AlertResponse {
	return &AlertResponse{
		ID:              alert.ID,
		AuthorizationID: alert.AuthorizationID,
		AlertType:       alert.AlertType,
		Severity:        alert.Severity,
		Message:         alert.Message,
		IsDismissed:     alert.IsDismissed,
	}
}

func toAuthorizationResponse(authorization *models.Authorization, openAlerts []models.AuthorizationAlert, now time.Time) AuthorizationResponse {
	day := now.UTC().Truncate(24 * time.Hour)
	daysLeft := int(authorization.EndDate.Sub(day).Hours() / 24)
	if daysLeft < 0 {
		daysLeft = 0
	}
	return AuthorizationResponse{
		ID:              authorization.ID,
		ClientID:        authorization.ClientID,
		ServiceType:     authorization.ServiceType,
		UnitType:        authorization.UnitType,
		AuthorizedUnits: authorization.AuthorizedUnits,
		UsedUnits:       authorization.UsedUnits,
		RemainingUnits:  authorization.RemainingUnits(),
		UsagePercentage: authorization.UsagePercentage(),
		StartDate:       authorization.StartDate.Format("2006-01-02"),
		EndDate:         authorization.EndDate.Format("2006-01-02"),
		DaysUntilExpiry: daysLeft,
		Status:          authorization.Status,
		PayerName:       authorization.PayerName,
		AuthorizationNo: authorization.AuthorizationNo,
		OpenAlerts:      openAlerts,
	}
}
