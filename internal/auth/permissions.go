package auth

import (
	"carebase-backend/internal/database/models"
)

// Permission predicates for the shift state machine. Keeping the guards
// here, rather than as role string comparisons inside handlers, makes the
// state machine's authorization rules testable in isolation.

// managerTier reports whether the role may administer schedules and
// authorizations for the whole company
func managerTier(role models.Role) bool {
	switch role {
	case models.RoleAdmin, models.RoleManager, models.RoleCoordinator:
		return true
	}
	return false
}

// CanManageSchedule reports whether the role may create, update or bulk
// schedule shifts
func CanManageSchedule(role models.Role) bool {
	return managerTier(role)
}

// CanCancelShift reports whether the role may cancel a scheduled shift
func CanCancelShift(role models.Role) bool {
	return managerTier(role)
}

// CanMarkMissed reports whether the actor may mark a shift missed: the
// assigned carer, or any manager-tier role
func CanMarkMissed(role models.Role, isAssignedCarer bool) bool {
	return isAssignedCarer || managerTier(role)
}

// CanCompleteShift reports whether the actor may start or complete a
// shift: the assigned carer, or any manager-tier role
func CanCompleteShift(role models.Role, isAssignedCarer bool) bool {
	return isAssignedCarer || managerTier(role)
}

// CanCaptureEVV reports whether the actor may submit an EVV location for
// the shift. Only the assigned carer is physically present, so only they
// may report.
func CanCaptureEVV(isAssignedCarer bool) bool {
	return isAssignedCarer
}

// CanCaptureSignature reports whether the actor may submit the client's
// signature for the shift
func CanCaptureSignature(isAssignedCarer bool) bool {
	return isAssignedCarer
}

// CanDismissAlert reports whether the role may dismiss authorization alerts
func CanDismissAlert(role models.Role) bool {
	return managerTier(role)
}
