package service

import (
	"sync"
	"time"

	"carebase-backend/internal/database/models"
	"carebase-backend/internal/notify"
	"carebase-backend/internal/repository"
	"carebase-backend/internal/scheduling"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// memStore is an in-memory stand-in for the database used by the service
// suites. Repository behavior it reproduces (tenancy scoping, soonest end
// date selection, dedup lookups) mirrors the real query implementations.
type memStore struct {
	mu             sync.Mutex
	shifts         map[uuid.UUID]*models.Shift
	authorizations map[uuid.UUID]*models.Authorization
	alerts         map[uuid.UUID]*models.AuthorizationAlert
	evvRecords     map[uuid.UUID]*models.EVVRecord // keyed by shift id
	clients        map[uuid.UUID]*models.Client
	carers         map[uuid.UUID]*models.Carer
	auditLogs      []models.AuditLog
}

func newMemStore() *memStore {
	return &memStore{
		shifts:         make(map[uuid.UUID]*models.Shift),
		authorizations: make(map[uuid.UUID]*models.Authorization),
		alerts:         make(map[uuid.UUID]*models.AuthorizationAlert),
		evvRecords:     make(map[uuid.UUID]*models.EVVRecord),
		clients:        make(map[uuid.UUID]*models.Client),
		carers:         make(map[uuid.UUID]*models.Carer),
	}
}

func (s *memStore) addClient(c *models.Client) *models.Client {
	c.ID = uuid.New()
	s.clients[c.ID] = c
	return c
}

func (s *memStore) addCarer(c *models.Carer) *models.Carer {
	c.ID = uuid.New()
	s.carers[c.ID] = c
	return c
}

func (s *memStore) addShift(sh *models.Shift) *models.Shift {
	sh.ID = uuid.New()
	s.shifts[sh.ID] = sh
	return sh
}

func (s *memStore) addAuthorization(a *models.Authorization) *models.Authorization {
	a.ID = uuid.New()
	s.authorizations[a.ID] = a
	return a
}

func (s *memStore) repos() *repository.Repos {
	return &repository.Repos{
		Shifts:         &memShiftRepo{store: s},
		Authorizations: &memAuthorizationRepo{store: s},
		Alerts:         &memAlertRepo{store: s},
		EVVRecords:     &memEVVRepo{store: s},
		Clients:        &memClientRepo{store: s},
		Carers:         &memCarerRepo{store: s},
		AuditLogs:      &memAuditRepo{store: s},
	}
}

func (s *memStore) auditActions() []models.AuditAction {
	actions := make([]models.AuditAction, 0, len(s.auditLogs))
	for _, entry := range s.auditLogs {
		actions = append(actions, entry.Action)
	}
	return actions
}

func (s *memStore) openAlerts(authorizationID uuid.UUID, alertType models.AlertType) []*models.AuthorizationAlert {
	var open []*models.AuthorizationAlert
	for _, alert := range s.alerts {
		if alert.AuthorizationID == authorizationID && alert.AlertType == alertType && !alert.IsDismissed {
			open = append(open, alert)
		}
	}
	return open
}

// memUnitOfWork runs the function against the shared store. There is no
// rollback; suites assert on the error path before inspecting state.
type memUnitOfWork struct {
	store *memStore
}

func (u *memUnitOfWork) Do(fn func(r *repository.Repos) error) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	return fn(u.store.repos())
}

type memShiftRepo struct{ store *memStore }

func (r *memShiftRepo) Create(shift *models.Shift) error {
	shift.ID = uuid.New()
	r.store.shifts[shift.ID] = shift
	return nil
}

func (r *memShiftRepo) GetByID(companyID, id uuid.UUID) (*models.Shift, error) {
	shift, ok := r.store.shifts[id]
	if !ok || shift.CompanyID != companyID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *shift
	return &copied, nil
}

func (r *memShiftRepo) GetActiveByCarerInWindow(companyID, carerID uuid.UUID, start, end time.Time) ([]models.Shift, error) {
	var out []models.Shift
	for _, shift := range r.store.shifts {
		if shift.CompanyID != companyID || shift.CarerID != carerID || !shift.Status.IsActive() {
			continue
		}
		if scheduling.Overlaps(shift.ScheduledStart, shift.ScheduledEnd, start, end) {
			out = append(out, *shift)
		}
	}
	return out, nil
}

func (r *memShiftRepo) List(companyID uuid.UUID, filter repository.ShiftFilter, limit, offset int) ([]models.Shift, int64, error) {
	var out []models.Shift
	for _, shift := range r.store.shifts {
		if shift.CompanyID != companyID {
			continue
		}
		if filter.CarerID != nil && shift.CarerID != *filter.CarerID {
			continue
		}
		if filter.ClientID != nil && shift.ClientID != *filter.ClientID {
			continue
		}
		if filter.Status != nil && shift.Status != *filter.Status {
			continue
		}
		out = append(out, *shift)
	}
	return out, int64(len(out)), nil
}

func (r *memShiftRepo) Update(shift *models.Shift) error {
	copied := *shift
	r.store.shifts[shift.ID] = &copied
	return nil
}

type memAuthorizationRepo struct{ store *memStore }

func (r *memAuthorizationRepo) GetByID(companyID, id uuid.UUID) (*models.Authorization, error) {
	authorization, ok := r.store.authorizations[id]
	if !ok || authorization.CompanyID != companyID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *authorization
	return &copied, nil
}

func (r *memAuthorizationRepo) GetForDeductionLocked(companyID, clientID uuid.UUID, serviceType string, at time.Time) (*models.Authorization, error) {
	var best *models.Authorization
	for _, authorization := range r.store.authorizations {
		if authorization.CompanyID != companyID || authorization.ClientID != clientID {
			continue
		}
		if authorization.ServiceType != serviceType || authorization.Status != models.AuthorizationStatusActive {
			continue
		}
		if !authorization.InWindow(at) {
			continue
		}
		if best == nil || authorization.EndDate.Before(best.EndDate) {
			best = authorization
		}
	}
	if best == nil {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *best
	return &copied, nil
}

func (r *memAuthorizationRepo) GetByClientID(companyID, clientID uuid.UUID) ([]models.Authorization, error) {
	var out []models.Authorization
	for _, authorization := range r.store.authorizations {
		if authorization.CompanyID == companyID && authorization.ClientID == clientID {
			out = append(out, *authorization)
		}
	}
	return out, nil
}

func (r *memAuthorizationRepo) Update(authorization *models.Authorization) error {
	copied := *authorization
	r.store.authorizations[authorization.ID] = &copied
	return nil
}

type memAlertRepo struct{ store *memStore }

// Create enforces the same partial unique index the database installs:
// at most one non-dismissed alert per (authorization, type).
func (r *memAlertRepo) Create(alert *models.AuthorizationAlert) error {
	if len(r.store.openAlerts(alert.AuthorizationID, alert.AlertType)) > 0 {
		return &pgconn.PgError{Code: "23505", ConstraintName: "auth_alerts_one_open_per_type"}
	}
	alert.ID = uuid.New()
	copied := *alert
	r.store.alerts[alert.ID] = &copied
	return nil
}

func (r *memAlertRepo) GetByID(companyID, id uuid.UUID) (*models.AuthorizationAlert, error) {
	alert, ok := r.store.alerts[id]
	if !ok || alert.CompanyID != companyID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *alert
	return &copied, nil
}

func (r *memAlertRepo) GetOpen(authorizationID uuid.UUID, alertType models.AlertType) (*models.AuthorizationAlert, error) {
	open := r.store.openAlerts(authorizationID, alertType)
	if len(open) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *open[0]
	return &copied, nil
}

func (r *memAlertRepo) HasOpen(authorizationID uuid.UUID, alertType models.AlertType) (bool, error) {
	return len(r.store.openAlerts(authorizationID, alertType)) > 0, nil
}

func (r *memAlertRepo) GetOpenByAuthorization(authorizationID uuid.UUID) ([]models.AuthorizationAlert, error) {
	var out []models.AuthorizationAlert
	for _, alert := range r.store.alerts {
		if alert.AuthorizationID == authorizationID && !alert.IsDismissed {
			out = append(out, *alert)
		}
	}
	return out, nil
}

func (r *memAlertRepo) Update(alert *models.AuthorizationAlert) error {
	copied := *alert
	r.store.alerts[alert.ID] = &copied
	return nil
}

type memEVVRepo struct{ store *memStore }

func (r *memEVVRepo) UpsertForShift(record *models.EVVRecord) error {
	if existing, ok := r.store.evvRecords[record.ShiftID]; ok {
		record.ID = existing.ID
	} else {
		record.ID = uuid.New()
	}
	copied := *record
	r.store.evvRecords[record.ShiftID] = &copied
	return nil
}

func (r *memEVVRepo) GetByShiftID(shiftID uuid.UUID) (*models.EVVRecord, error) {
	record, ok := r.store.evvRecords[shiftID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *record
	return &copied, nil
}

type memClientRepo struct{ store *memStore }

func (r *memClientRepo) GetByID(companyID, id uuid.UUID) (*models.Client, error) {
	client, ok := r.store.clients[id]
	if !ok || client.CompanyID != companyID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *client
	return &copied, nil
}

type memCarerRepo struct{ store *memStore }

func (r *memCarerRepo) GetByID(companyID, id uuid.UUID) (*models.Carer, error) {
	carer, ok := r.store.carers[id]
	if !ok || carer.CompanyID != companyID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *carer
	return &copied, nil
}

type memAuditRepo struct{ store *memStore }

func (r *memAuditRepo) Record(entry *models.AuditLog) error {
	entry.ID = uuid.New()
	r.store.auditLogs = append(r.store.auditLogs, *entry)
	return nil
}

// recordingNotifier captures notification events for assertions
type recordingNotifier struct {
	mu     sync.Mutex
	events []notify.Event
}

func (n *recordingNotifier) Notify(event notify.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *recordingNotifier) eventsOfType(eventType string) []notify.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []notify.Event
	for _, event := range n.events {
		if event.Type == eventType {
			out = append(out, event)
		}
	}
	return out
}
