package scheduling_test

import (
	"testing"
	"time"

	"carebase-backend/internal/database/models"
	"carebase-backend/internal/scheduling"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 9, hour, min, 0, 0, time.UTC)
}

func existingShift(carerID uuid.UUID, start, end time.Time, status models.ShiftStatus) models.Shift {
	return models.Shift{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		CarerID:        carerID,
		ScheduledStart: start,
		ScheduledEnd:   end,
		Status:         status,
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name     string
		aStart   time.Time
		aEnd     time.Time
		bStart   time.Time
		bEnd     time.Time
		expected bool
	}{
		{"partial overlap", at(9, 0), at(10, 0), at(9, 30), at(10, 30), true},
		{"containment", at(9, 0), at(12, 0), at(10, 0), at(11, 0), true},
		{"identical", at(9, 0), at(10, 0), at(9, 0), at(10, 0), true},
		{"back to back", at(9, 0), at(10, 0), at(10, 0), at(11, 0), false},
		{"back to back reversed", at(10, 0), at(11, 0), at(9, 0), at(10, 0), false},
		{"disjoint", at(9, 0), at(10, 0), at(14, 0), at(15, 0), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, scheduling.Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
			assert.Equal(t, tc.expected, scheduling.Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd))
		})
	}
}

func TestFindConflictOverlappingShift(t *testing.T) {
	carerID := uuid.New()
	existing := []models.Shift{
		existingShift(carerID, at(9, 0), at(10, 0), models.ShiftStatusScheduled),
	}

	// 09:30-10:30 collides with the 09:00-10:00 shift
	conflict := scheduling.FindConflict(carerID, at(9, 30), at(10, 30), existing)
	require.NotNil(t, conflict)
	assert.Equal(t, existing[0].ID, conflict.ID)

	// 10:00-11:00 touches the boundary only and is allowed
	assert.Nil(t, scheduling.FindConflict(carerID, at(10, 0), at(11, 0), existing))
	assert.False(t, scheduling.HasConflict(carerID, at(10, 0), at(11, 0), existing))
}

func TestFindConflictIgnoresOtherCarers(t *testing.T) {
	carerID := uuid.New()
	existing := []models.Shift{
		existingShift(uuid.New(), at(9, 0), at(17, 0), models.ShiftStatusScheduled),
	}
	assert.Nil(t, scheduling.FindConflict(carerID, at(9, 0), at(10, 0), existing))
}

func TestFindConflictIgnoresTerminalStatuses(t *testing.T) {
	carerID := uuid.New()
	for _, status := range []models.ShiftStatus{models.ShiftStatusCompleted, models.ShiftStatusMissed, models.ShiftStatusCancelled} {
		existing := []models.Shift{existingShift(carerID, at(9, 0), at(10, 0), status)}
		assert.Nil(t, scheduling.FindConflict(carerID, at(9, 0), at(10, 0), existing), "status %s should not conflict", status)
	}
}

func TestFindConflictInProgressShiftOccupiesSlot(t *testing.T) {
	carerID := uuid.New()
	existing := []models.Shift{
		existingShift(carerID, at(9, 0), at(10, 0), models.ShiftStatusInProgress),
	}
	assert.True(t, scheduling.HasConflict(carerID, at(9, 45), at(11, 0), existing))
}

func TestFindConflictReturnsFirstCollision(t *testing.T) {
	carerID := uuid.New()
	existing := []models.Shift{
		existingShift(carerID, at(8, 0), at(9, 0), models.ShiftStatusScheduled),
		existingShift(carerID, at(9, 0), at(10, 0), models.ShiftStatusScheduled),
		existingShift(carerID, at(10, 0), at(11, 0), models.ShiftStatusScheduled),
	}
	conflict := scheduling.FindConflict(carerID, at(9, 30), at(10, 30), existing)
	require.NotNil(t, conflict)
	assert.Equal(t, existing[1].ID, conflict.ID)
}
