// Package units converts worked-hours durations into authorization units
// according to the unit-type policy of the consuming authorization.
package units

import (
	"math"

	"carebase-backend/internal/database/models"
)

// ForDuration converts hours worked into units for the given unit type.
//
// HOURLY rounds up to the nearest quarter-hour. QUARTER_HOURLY counts
// started 15-minute blocks. DAILY consumes exactly one unit for any
// positive duration; per-diem programs do not meter partial days.
// Round-up is deliberate: it matches payer quarter-hour billing
// conventions. Zero or negative durations are a no-op, not an error.
func ForDuration(hoursWorked float64, unitType models.UnitType) float64 {
	if hoursWorked <= 0 || math.IsNaN(hoursWorked) {
		return 0
	}

	switch unitType {
	case models.UnitTypeHourly:
		return math.Ceil(hoursWorked*4) / 4
	case models.UnitTypeQuarterHourly:
		return math.Ceil(hoursWorked * 4)
	case models.UnitTypeDaily:
		return 1
	default:
		return 0
	}
}
