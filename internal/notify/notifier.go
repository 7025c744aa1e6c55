// Package notify is the outward notification fan-out. Delivery (push,
// email, SMS) is owned by an external collaborator; this subsystem only
// emits events and never fails an operation because a notification could
// not be sent.
package notify

import (
	"carebase-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Event types emitted by the scheduling engine
const (
	EventShiftMissed        = "SHIFT_MISSED"
	EventAuthorizationAlert = "AUTHORIZATION_ALERT"
)

// Event is a notification request
type Event struct {
	Type           string                 `json:"type"`
	CompanyID      uuid.UUID              `json:"company_id"`
	RecipientRoles []models.Role          `json:"recipient_roles,omitempty"`
	RecipientIDs   []uuid.UUID            `json:"recipient_ids,omitempty"`
	Payload        map[string]interface{} `json:"payload,omitempty"`
	EntityType     string                 `json:"entity_type"`
	EntityID       uuid.UUID              `json:"entity_id"`
}

// Notifier delivers events. Implementations must be fire-and-forget:
// delivery failures are logged, never propagated.
type Notifier interface {
	Notify(event Event)
}

// LogNotifier emits events as structured log lines. It stands in for the
// real delivery collaborator in development and tests.
type LogNotifier struct{}

// NewLogNotifier creates a log-backed notifier
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Notify logs the event
func (n *LogNotifier) Notify(event Event) {
	logrus.WithFields(logrus.Fields{
		"event_type":      event.Type,
		"company_id":      event.CompanyID,
		"recipient_roles": event.RecipientRoles,
		"recipient_ids":   event.RecipientIDs,
		"entity_type":     event.EntityType,
		"entity_id":       event.EntityID,
	}).Info("notification emitted")
}
