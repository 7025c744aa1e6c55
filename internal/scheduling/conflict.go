// Package scheduling decides whether a proposed shift interval collides
// with a carer's existing shifts. Intervals are half-open [start, end):
// back-to-back shifts never conflict.
package scheduling

import (
	"time"

	"carebase-backend/internal/database/models"

	"github.com/google/uuid"
)

// FindConflict returns the first existing shift that overlaps the proposed
// interval for the given carer, or nil when the interval is free. Only
// SCHEDULED and IN_PROGRESS shifts occupy their slot; completed, missed and
// cancelled shifts never conflict, nor do shifts of other carers.
func FindConflict(carerID uuid.UUID, proposedStart, proposedEnd time.Time, existing []models.Shift) *models.Shift {
	for i := range existing {
		shift := &existing[i]
		if shift.CarerID != carerID {
			continue
		}
		if !shift.Status.IsActive() {
			continue
		}
		if Overlaps(shift.ScheduledStart, shift.ScheduledEnd, proposedStart, proposedEnd) {
			return shift
		}
	}
	return nil
}

// HasConflict reports whether the proposed interval overlaps any active
// shift for the carer
func HasConflict(carerID uuid.UUID, proposedStart, proposedEnd time.Time, existing []models.Shift) bool {
	return FindConflict(carerID, proposedStart, proposedEnd, existing) != nil
}

// Overlaps reports whether two half-open intervals share at least one
// instant: aStart < bEnd && aEnd > bStart
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
