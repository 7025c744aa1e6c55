package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"carebase-backend/internal/auth"
	"carebase-backend/internal/database/models"
	apperrors "carebase-backend/internal/errors"
	"carebase-backend/internal/geofence"
	"carebase-backend/internal/notify"
	"carebase-backend/internal/repository"
	"carebase-backend/internal/scheduling"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Ledger is the slice of the authorization service the shift lifecycle
// needs: deducting units inside the completion transaction.
type Ledger interface {
	DeductUnits(r *repository.Repos, companyID, clientID uuid.UUID, serviceType string, hoursWorked float64, shiftID, actorID uuid.UUID) (*DeductionResult, error)
}

// ShiftService orchestrates the shift lifecycle: conflict-free scheduling,
// EVV capture, signature capture, completion with unit deduction, missed
// marking and cancellation.
type ShiftService struct {
	uow       repository.UnitOfWork
	ledger    Ledger
	notifier  notify.Notifier
	validator *validator.Validate
}

// NewShiftService creates a new shift service
func NewShiftService(uow repository.UnitOfWork, ledger Ledger, notifier notify.Notifier, validator *validator.Validate) *ShiftService {
	return &ShiftService{
		uow:       uow,
		ledger:    ledger,
		notifier:  notifier,
		validator: validator,
	}
}

// CreateShiftRequest represents the request to schedule a shift
type CreateShiftRequest struct {
	CarerID        uuid.UUID `json:"carer_id" validate:"required"`
	ClientID       uuid.UUID `json:"client_id" validate:"required"`
	ServiceType    string    `json:"service_type" validate:"required,max=80"`
	ScheduledStart time.Time `json:"scheduled_start" validate:"required"`
	ScheduledEnd   time.Time `json:"scheduled_end" validate:"required"`
	Notes          string    `json:"notes,omitempty"`
}

// BulkCreateShiftRequest schedules a recurring weekly pattern over a date
// range. Each generated slot runs the same conflict check as a single
// create; colliding slots are skipped and reported, not silently adjusted.
type BulkCreateShiftRequest struct {
	CarerID         uuid.UUID      `json:"carer_id" validate:"required"`
	ClientID        uuid.UUID      `json:"client_id" validate:"required"`
	ServiceType     string         `json:"service_type" validate:"required,max=80"`
	FromDate        time.Time      `json:"from_date" validate:"required"`
	ToDate          time.Time      `json:"to_date" validate:"required"`
	Weekdays        []time.Weekday `json:"weekdays" validate:"required,min=1"`
	StartTime       string         `json:"start_time" validate:"required"`
	DurationMinutes int            `json:"duration_minutes" validate:"required,min=15,max=1440"`
	Notes           string         `json:"notes,omitempty"`
}

// CompleteShiftRequest represents the request to complete a shift
type CompleteShiftRequest struct {
	ActualEnd *time.Time `json:"actual_end,omitempty"`
}

// MarkMissedRequest represents the request to mark a shift missed
type MarkMissedRequest struct {
	Reason models.MissedReason `json:"reason" validate:"required"`
	Notes  string              `json:"notes,omitempty"`
}

// CaptureEVVRequest is a reported location for electronic visit verification
type CaptureEVVRequest struct {
	Latitude       *float64         `json:"latitude,omitempty"`
	Longitude      *float64         `json:"longitude,omitempty"`
	AccuracyMeters float64          `json:"accuracy_meters,omitempty"`
	Source         models.EVVSource `json:"source" validate:"required"`
}

// CaptureSignatureRequest carries the client's signature image data
type CaptureSignatureRequest struct {
	Signature string `json:"signature" validate:"required"`
}

// ShiftResponse represents a shift as returned to callers
type ShiftResponse struct {
	ID              uuid.UUID            `json:"id"`
	CompanyID       uuid.UUID            `json:"company_id"`
	CarerID         uuid.UUID            `json:"carer_id"`
	ClientID        uuid.UUID            `json:"client_id"`
	ServiceType     string               `json:"service_type"`
	ScheduledStart  time.Time            `json:"scheduled_start"`
	ScheduledEnd    time.Time            `json:"scheduled_end"`
	ActualStart     *time.Time           `json:"actual_start,omitempty"`
	ActualEnd       *time.Time           `json:"actual_end,omitempty"`
	Status          models.ShiftStatus   `json:"status"`
	Notes           string               `json:"notes,omitempty"`
	HasSignature    bool                 `json:"has_signature"`
	MissedReason    *models.MissedReason `json:"missed_reason,omitempty"`
	MissedAt        *time.Time           `json:"missed_at,omitempty"`
	EVVRecord       *models.EVVRecord    `json:"evv_record,omitempty"`
}

// CompleteShiftResponse pairs the completed shift with the advisory
// deduction outcome. Deduction is nil when no authorization covered the
// visit.
type CompleteShiftResponse struct {
	Shift     ShiftResponse    `json:"shift"`
	Deduction *DeductionResult `json:"deduction,omitempty"`
}

// SkippedSlot reports a bulk-scheduling slot that could not be created
type SkippedSlot struct {
	ScheduledStart time.Time `json:"scheduled_start"`
	ScheduledEnd   time.Time `json:"scheduled_end"`
	Reason         string    `json:"reason"`
}

// BulkCreateShiftResponse reports created and skipped slots
type BulkCreateShiftResponse struct {
	Created []ShiftResponse `json:"created"`
	Skipped []SkippedSlot   `json:"skipped"`
}

// ShiftListRequest narrows and paginates shift listings
type ShiftListRequest struct {
	CarerID  *uuid.UUID
	ClientID *uuid.UUID
	Status   *models.ShiftStatus
	From     *time.Time
	To       *time.Time
	Page     int
	PageSize int
}

// ShiftListResponse is a paginated list of shifts
type ShiftListResponse struct {
	Shifts   []ShiftResponse `json:"shifts"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create schedules a new shift. Requires schedule-management permission,
// a forward time range and a conflict-free interval for the carer. The
// conflict check and the insert run in one transaction, backed by the
// store-level carer/time-range exclusion constraint, so concurrent
// requests cannot double-book.
func (s *ShiftService) Create(actor *auth.Actor, req *CreateShiftRequest) (*ShiftResponse, error) {
	if !auth.CanManageSchedule(actor.Role) {
		return nil, apperrors.NewForbiddenError("only schedule managers may create shifts")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if !req.ScheduledEnd.After(req.ScheduledStart) {
		return nil, apperrors.NewValidationError("scheduled_end", "must be after scheduled_start")
	}

	var response *ShiftResponse
	err := s.uow.Do(func(r *repository.Repos) error {
		shift, err := s.createInTx(r, actor, req)
		if err != nil {
			return err
		}
		response = toShiftResponse(shift)
		return nil
	})
	if err != nil {
		return nil, mapConstraintConflict(err, req.CarerID)
	}
	return response, nil
}

// createInTx runs the guarded create inside the caller's transaction
func (s *ShiftService) createInTx(r *repository.Repos, actor *auth.Actor, req *CreateShiftRequest) (*models.Shift, error) {
	if _, err := r.Carers.GetByID(actor.CompanyID, req.CarerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCarerNotFound
		}
		return nil, fmt.Errorf("verify carer: %w", err)
	}
	if _, err := r.Clients.GetByID(actor.CompanyID, req.ClientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, fmt.Errorf("verify client: %w", err)
	}

	existing, err := r.Shifts.GetActiveByCarerInWindow(actor.CompanyID, req.CarerID, req.ScheduledStart, req.ScheduledEnd)
	if err != nil {
		return nil, fmt.Errorf("load carer shifts: %w", err)
	}
	if conflict := scheduling.FindConflict(req.CarerID, req.ScheduledStart, req.ScheduledEnd, existing); conflict != nil {
		return nil, apperrors.NewScheduleConflictError(req.CarerID, conflict.ID)
	}

	shift := &models.Shift{
		CompanyID:      actor.CompanyID,
		CarerID:        req.CarerID,
		ClientID:       req.ClientID,
		ServiceType:    req.ServiceType,
		ScheduledStart: req.ScheduledStart,
		ScheduledEnd:   req.ScheduledEnd,
		Status:         models.ShiftStatusScheduled,
		Notes:          req.Notes,
		CreatedByID:    actor.UserID,
	}
	if err := r.Shifts.Create(shift); err != nil {
		return nil, fmt.Errorf("create shift: %w", err)
	}

	if err := s.audit(r, actor, models.AuditActionShiftCreated, shift, map[string]interface{}{
		"carer_id":        shift.CarerID,
		"client_id":       shift.ClientID,
		"scheduled_start": shift.ScheduledStart,
		"scheduled_end":   shift.ScheduledEnd,
	}); err != nil {
		return nil, err
	}
	return shift, nil
}

// BulkCreate schedules a weekly recurring pattern. Slots are created in
// independent transactions so one collision does not void the rest; every
// skipped slot is reported with its reason.
func (s *ShiftService) BulkCreate(actor *auth.Actor, req *BulkCreateShiftRequest) (*BulkCreateShiftResponse, error) {
	if !auth.CanManageSchedule(actor.Role) {
		return nil, apperrors.NewForbiddenError("only schedule managers may create shifts")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if req.ToDate.Before(req.FromDate) {
		return nil, apperrors.NewValidationError("to_date", "must not be before from_date")
	}
	startHour, startMinute, err := parseClock(req.StartTime)
	if err != nil {
		return nil, apperrors.NewValidationError("start_time", err.Error())
	}
	wanted := make(map[time.Weekday]bool, len(req.Weekdays))
	for _, day := range req.Weekdays {
		if day < time.Sunday || day > time.Saturday {
			return nil, apperrors.NewValidationError("weekdays", "unknown weekday")
		}
		wanted[day] = true
	}

	response := &BulkCreateShiftResponse{}
	for day := req.FromDate; !day.After(req.ToDate); day = day.AddDate(0, 0, 1) {
		if !wanted[day.Weekday()] {
			continue
		}
		slotStart := time.Date(day.Year(), day.Month(), day.Day(), startHour, startMinute, 0, 0, day.Location())
		slotEnd := slotStart.Add(time.Duration(req.DurationMinutes) * time.Minute)

		created, err := s.Create(actor, &CreateShiftRequest{
			CarerID:        req.CarerID,
			ClientID:       req.ClientID,
			ServiceType:    req.ServiceType,
			ScheduledStart: slotStart,
			ScheduledEnd:   slotEnd,
			Notes:          req.Notes,
		})
		if err != nil {
			response.Skipped = append(response.Skipped, SkippedSlot{
				ScheduledStart: slotStart,
				ScheduledEnd:   slotEnd,
				Reason:         err.Error(),
			})
			continue
		}
		response.Created = append(response.Created, *created)
	}
	return response, nil
}

// GetByID retrieves a shift
func (s *ShiftService) GetByID(actor *auth.Actor, id uuid.UUID) (*ShiftResponse, error) {
	var response *ShiftResponse
	err := s.uow.Do(func(r *repository.Repos) error {
		shift, err := s.loadShift(r, actor, id)
		if err != nil {
			return err
		}
		response = toShiftResponse(shift)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// List retrieves shifts with filters and pagination. Carers only see
// their own shifts.
func (s *ShiftService) List(actor *auth.Actor, req *ShiftListRequest) (*ShiftListResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 || pageSize > 500 {
		pageSize = 50
	}

	filter := repository.ShiftFilter{
		CarerID:  req.CarerID,
		ClientID: req.ClientID,
		Status:   req.Status,
		From:     req.From,
		To:       req.To,
	}
	if actor.Role == models.RoleCarer {
		carerID := actor.UserID
		filter.CarerID = &carerID
	}

	var response *ShiftListResponse
	err := s.uow.Do(func(r *repository.Repos) error {
		shifts, total, err := r.Shifts.List(actor.CompanyID, filter, pageSize, (page-1)*pageSize)
		if err != nil {
			return fmt.Errorf("list shifts: %w", err)
		}
		responses := make([]ShiftResponse, 0, len(shifts))
		for i := range shifts {
			responses = append(responses, *toShiftResponse(&shifts[i]))
		}
		response = &ShiftListResponse{Shifts: responses, Total: total, Page: page, PageSize: pageSize}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// Start transitions a SCHEDULED shift to IN_PROGRESS and stamps the
// actual start time
func (s *ShiftService) Start(actor *auth.Actor, id uuid.UUID) (*ShiftResponse, error) {
	var response *ShiftResponse
	err := s.uow.Do(func(r *repository.Repos) error {
		shift, err := s.loadShift(r, actor, id)
		if err != nil {
			return err
		}
		if !auth.CanCompleteShift(actor.Role, shift.CarerID == actor.UserID) {
			return apperrors.NewForbiddenError("only the assigned carer or a schedule manager may start this shift")
		}
		if shift.Status != models.ShiftStatusScheduled {
			return apperrors.NewInvalidStateError("shift", string(shift.Status), "start")
		}

		now := time.Now()
		shift.Status = models.ShiftStatusInProgress
		shift.ActualStart = &now
		if err := r.Shifts.Update(shift); err != nil {
			return fmt.Errorf("start shift: %w", err)
		}
		if err := s.audit(r, actor, models.AuditActionShiftStarted, shift, map[string]interface{}{
			"actual_start": now,
		}); err != nil {
			return err
		}
		response = toShiftResponse(shift)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// Complete transitions an IN_PROGRESS shift to COMPLETED and meters the
// worked hours against the client's authorization. The deduction is
// advisory: a visit without authorization coverage still completes.
func (s *ShiftService) Complete(actor *auth.Actor, id uuid.UUID, req *CompleteShiftRequest) (*CompleteShiftResponse, error) {
	var response *CompleteShiftResponse
	var raised []models.AuthorizationAlert

	err := s.uow.Do(func(r *repository.Repos) error {
		shift, err := s.loadShift(r, actor, id)
		if err != nil {
			return err
		}
		if !auth.CanCompleteShift(actor.Role, shift.CarerID == actor.UserID) {
			return apperrors.NewForbiddenError("only the assigned carer or a schedule manager may complete this shift")
		}
		if shift.Status != models.ShiftStatusInProgress {
			return apperrors.NewInvalidStateError("shift", string(shift.Status), "complete")
		}

		now := time.Now()
		actualEnd := now
		if req != nil && req.ActualEnd != nil {
			actualEnd = *req.ActualEnd
		}
		shift.Status = models.ShiftStatusCompleted
		shift.ActualEnd = &actualEnd

		hoursWorked := shift.HoursWorked()
		if err := r.Shifts.Update(shift); err != nil {
			return fmt.Errorf("complete shift: %w", err)
		}

		deduction, err := s.ledger.DeductUnits(r, actor.CompanyID, shift.ClientID, shift.ServiceType, hoursWorked, shift.ID, actor.UserID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNoActiveAuthorization) {
				logrus.WithFields(logrus.Fields{
					"shift_id":     shift.ID,
					"client_id":    shift.ClientID,
					"service_type": shift.ServiceType,
				}).Info("shift completed without active authorization")
				deduction = nil
			} else {
				return err
			}
		}
		if deduction != nil {
			raised = deduction.AlertsRaised
		}

		if err := s.audit(r, actor, models.AuditActionShiftCompleted, shift, map[string]interface{}{
			"actual_end":   actualEnd,
			"hours_worked": hoursWorked,
		}); err != nil {
			return err
		}

		response = &CompleteShiftResponse{Shift: *toShiftResponse(shift), Deduction: deduction}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyAlerts(actor.CompanyID, raised)
	return response, nil
}

// MarkMissed transitions a SCHEDULED or IN_PROGRESS shift to MISSED with a
// reason from the closed reason list, then fans out notifications to the
// company's supervisors and the client's sponsor.
func (s *ShiftService) MarkMissed(actor *auth.Actor, id uuid.UUID, req *MarkMissedRequest) (*ShiftResponse, error) {
	if req == nil || !req.Reason.IsValid() {
		return nil, apperrors.NewValidationError("reason", "must be a known missed-visit reason code")
	}

	var response *ShiftResponse
	var sponsorID *uuid.UUID

	err := s.uow.Do(func(r *repository.Repos) error {
		shift, err := s.loadShift(r, actor, id)
		if err != nil {
			return err
		}
		if !auth.CanMarkMissed(actor.Role, shift.CarerID == actor.UserID) {
			return apperrors.NewForbiddenError("only the assigned carer or a schedule manager may mark this shift missed")
		}
		if !shift.Status.IsActive() {
			return apperrors.NewInvalidStateError("shift", string(shift.Status), "mark missed")
		}

		now := time.Now()
		reason := req.Reason
		shift.Status = models.ShiftStatusMissed
		shift.MissedReason = &reason
		shift.MissedAt = &now
		shift.MissedByID = &actor.UserID
		if req.Notes != "" {
			shift.Notes = req.Notes
		}
		if err := r.Shifts.Update(shift); err != nil {
			return fmt.Errorf("mark shift missed: %w", err)
		}

		if client, err := r.Clients.GetByID(actor.CompanyID, shift.ClientID); err == nil {
			sponsorID = client.SponsorID
		}

		if err := s.audit(r, actor, models.AuditActionShiftMissed, shift, map[string]interface{}{
			"missed_reason": reason,
			"missed_at":     now,
		}); err != nil {
			return err
		}
		response = toShiftResponse(shift)
		return nil
	})
	if err != nil {
		return nil, err
	}

	event := notify.Event{
		Type:           notify.EventShiftMissed,
		CompanyID:      actor.CompanyID,
		RecipientRoles: []models.Role{models.RoleAdmin, models.RoleManager, models.RoleCoordinator},
		Payload: map[string]interface{}{
			"reason":       req.Reason,
			"reason_label": req.Reason.Label(),
			"shift_id":     id,
		},
		EntityType: "shift",
		EntityID:   id,
	}
	if sponsorID != nil {
		event.RecipientIDs = append(event.RecipientIDs, *sponsorID)
	}
	s.notifier.Notify(event)

	return response, nil
}

// Cancel transitions a SCHEDULED shift to CANCELLED. Manager tier only.
func (s *ShiftService) Cancel(actor *auth.Actor, id uuid.UUID) (*ShiftResponse, error) {
	if !auth.CanCancelShift(actor.Role) {
		return nil, apperrors.NewForbiddenError("only schedule managers may cancel shifts")
	}

	var response *ShiftResponse
	err := s.uow.Do(func(r *repository.Repos) error {
		shift, err := s.loadShift(r, actor, id)
		if err != nil {
			return err
		}
		if shift.Status != models.ShiftStatusScheduled {
			return apperrors.NewInvalidStateError("shift", string(shift.Status), "cancel")
		}

		shift.Status = models.ShiftStatusCancelled
		if err := r.Shifts.Update(shift); err != nil {
			return fmt.Errorf("cancel shift: %w", err)
		}
		if err := s.audit(r, actor, models.AuditActionShiftCancelled, shift, nil); err != nil {
			return err
		}
		response = toShiftResponse(shift)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// CaptureEVV validates the reported location against the client's
// registered geofence and writes the shift's EVV record. Only the
// assigned carer may report and only while the shift is IN_PROGRESS.
func (s *ShiftService) CaptureEVV(actor *auth.Actor, id uuid.UUID, req *CaptureEVVRequest) (*models.EVVRecord, error) {
	if req == nil || !req.Source.IsValid() {
		return nil, apperrors.NewValidationError("source", "must be mobile or web")
	}

	var record *models.EVVRecord
	err := s.uow.Do(func(r *repository.Repos) error {
		shift, err := s.loadShift(r, actor, id)
		if err != nil {
			return err
		}
		if !auth.CanCaptureEVV(shift.CarerID == actor.UserID) {
			return apperrors.NewForbiddenError("only the assigned carer may capture EVV")
		}
		if shift.Status != models.ShiftStatusInProgress {
			return apperrors.NewInvalidStateError("shift", string(shift.Status), "capture EVV for")
		}

		client, err := r.Clients.GetByID(actor.CompanyID, shift.ClientID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrClientNotFound
			}
			return fmt.Errorf("load client: %w", err)
		}

		record = s.buildEVVRecord(actor, shift, client, req)
		if err := r.EVVRecords.UpsertForShift(record); err != nil {
			return fmt.Errorf("store EVV record: %w", err)
		}

		if err := s.audit(r, actor, models.AuditActionEVVCaptured, shift, map[string]interface{}{
			"status":               record.Status,
			"is_within_geofence":   record.IsWithinGeofence,
			"distance_from_client": record.DistanceFromClient,
		}); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// buildEVVRecord maps the reported location onto a stored EVV verdict.
// Geofence-disabled or location-less clients yield NOT_REQUIRED; missing
// or malformed coordinates yield LOCATION_UNAVAILABLE; otherwise the
// geofence validator decides COMPLIANT vs OUT_OF_RANGE.
func (s *ShiftService) buildEVVRecord(actor *auth.Actor, shift *models.Shift, client *models.Client, req *CaptureEVVRequest) *models.EVVRecord {
	record := &models.EVVRecord{
		CompanyID:      actor.CompanyID,
		ShiftID:        shift.ID,
		AccuracyMeters: req.AccuracyMeters,
		CapturedAt:     time.Now(),
		Source:         req.Source,
		CapturedByID:   actor.UserID,
	}
	if req.Latitude != nil {
		record.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		record.Longitude = *req.Longitude
	}

	if !client.GeofenceEnabled || !client.HasRegisteredLocation() {
		record.Status = models.EVVStatusNotRequired
		return record
	}
	record.GeofenceRadius = client.GeofenceRadius

	if req.Latitude == nil || req.Longitude == nil {
		record.Status = models.EVVStatusLocationUnavailable
		return record
	}

	result, err := geofence.Validate(
		geofence.Location{Latitude: *req.Latitude, Longitude: *req.Longitude, AccuracyMeters: req.AccuracyMeters},
		geofence.ClientGeofence{Latitude: *client.Latitude, Longitude: *client.Longitude, RadiusMeters: client.GeofenceRadius},
	)
	if err != nil {
		record.Status = models.EVVStatusLocationUnavailable
		return record
	}

	record.Status = models.EVVStatus(result.Status)
	record.IsWithinGeofence = result.IsWithinGeofence
	record.DistanceFromClient = result.DistanceMeters
	record.GeofenceRadius = result.RadiusMeters
	return record
}

// CaptureSignature stores the client's signature on an IN_PROGRESS shift.
// Only the assigned carer, who is with the client, may submit it.
func (s *ShiftService) CaptureSignature(actor *auth.Actor, id uuid.UUID, req *CaptureSignatureRequest) (*ShiftResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("signature", "is required")
	}

	var response *ShiftResponse
	err := s.uow.Do(func(r *repository.Repos) error {
		shift, err := s.loadShift(r, actor, id)
		if err != nil {
			return err
		}
		if !auth.CanCaptureSignature(shift.CarerID == actor.UserID) {
			return apperrors.NewForbiddenError("only the assigned carer may capture the client signature")
		}
		if shift.Status != models.ShiftStatusInProgress {
			return apperrors.NewInvalidStateError("shift", string(shift.Status), "capture signature for")
		}

		now := time.Now()
		shift.ClientSignature = req.Signature
		shift.SignedAt = &now
		if err := r.Shifts.Update(shift); err != nil {
			return fmt.Errorf("store signature: %w", err)
		}
		if err := s.audit(r, actor, models.AuditActionSignatureCaptured, shift, nil); err != nil {
			return err
		}
		response = toShiftResponse(shift)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (s *ShiftService) loadShift(r *repository.Repos, actor *auth.Actor, id uuid.UUID) (*models.Shift, error) {
	shift, err := r.Shifts.GetByID(actor.CompanyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("load shift: %w", err)
	}
	return shift, nil
}

func (s *ShiftService) audit(r *repository.Repos, actor *auth.Actor, action models.AuditAction, shift *models.Shift, changes map[string]interface{}) error {
	var payload json.RawMessage
	if changes != nil {
		payload, _ = json.Marshal(changes)
	}
	if err := r.AuditLogs.Record(&models.AuditLog{
		CompanyID:  actor.CompanyID,
		ActorID:    actor.UserID,
		Action:     action,
		EntityType: "shift",
		EntityID:   shift.ID,
		Changes:    payload,
	}); err != nil {
		return fmt.Errorf("record %s audit: %w", action, err)
	}
	return nil
}

func (s *ShiftService) notifyAlerts(companyID uuid.UUID, alerts []models.AuthorizationAlert) {
	for i := range alerts {
		s.notifier.Notify(notify.Event{
			Type:           notify.EventAuthorizationAlert,
			CompanyID:      companyID,
			RecipientRoles: []models.Role{models.RoleAdmin, models.RoleManager, models.RoleCoordinator},
			Payload: map[string]interface{}{
				"alert_type": alerts[i].AlertType,
				"severity":   alerts[i].Severity,
				"message":    alerts[i].Message,
			},
			EntityType: "authorization",
			EntityID:   alerts[i].AuthorizationID,
		})
	}
}

// mapConstraintConflict converts a violation of the carer/time-range
// exclusion constraint, which only fires when two create transactions
// race, into the same ScheduleConflictError the in-transaction check
// produces. The colliding shift id is unknown in that path.
func mapConstraintConflict(err error, carerID uuid.UUID) error {
	if repository.IsExclusionViolation(err, "shifts_carer_no_overlap") {
		return apperrors.NewScheduleConflictError(carerID, uuid.Nil)
	}
	return err
}

func parseClock(value string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, 0, fmt.Errorf("must be HH:MM")
	}
	return t.Hour(), t.Minute(), nil
}

func toShiftResponse(shift *models.Shift) *ShiftResponse {
	return &ShiftResponse{
		ID:             shift.ID,
		CompanyID:      shift.CompanyID,
		CarerID:        shift.CarerID,
		ClientID:       shift.ClientID,
		ServiceType:    shift.ServiceType,
		ScheduledStart: shift.ScheduledStart,
		ScheduledEnd:   shift.ScheduledEnd,
		ActualStart:    shift.ActualStart,
		ActualEnd:      shift.ActualEnd,
		Status:         shift.Status,
		Notes:          shift.Notes,
		HasSignature:   shift.ClientSignature != "",
		MissedReason:   shift.MissedReason,
		MissedAt:       shift.MissedAt,
		EVVRecord:      shift.EVVRecord,
	}
}
