package auth_test

import (
	"testing"

	"carebase-backend/internal/auth"
	"carebase-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
)

func TestCanManageSchedule(t *testing.T) {
	cases := []struct {
		role     models.Role
		expected bool
	}{
		{models.RoleAdmin, true},
		{models.RoleManager, true},
		{models.RoleCoordinator, true},
		{models.RoleCarer, false},
		{models.Role("sponsor"), false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, auth.CanManageSchedule(tc.role), "role %s", tc.role)
		assert.Equal(t, tc.expected, auth.CanCancelShift(tc.role), "role %s", tc.role)
		assert.Equal(t, tc.expected, auth.CanDismissAlert(tc.role), "role %s", tc.role)
	}
}

func TestCanMarkMissed(t *testing.T) {
	// assigned carer may always mark their own shift missed
	assert.True(t, auth.CanMarkMissed(models.RoleCarer, true))
	// unassigned carer may not
	assert.False(t, auth.CanMarkMissed(models.RoleCarer, false))
	// manager tier may mark any shift missed
	assert.True(t, auth.CanMarkMissed(models.RoleManager, false))
	assert.True(t, auth.CanMarkMissed(models.RoleAdmin, false))
	assert.True(t, auth.CanMarkMissed(models.RoleCoordinator, false))
}

func TestCanCompleteShift(t *testing.T) {
	assert.True(t, auth.CanCompleteShift(models.RoleCarer, true))
	assert.False(t, auth.CanCompleteShift(models.RoleCarer, false))
	assert.True(t, auth.CanCompleteShift(models.RoleManager, false))
}

func TestEVVAndSignatureRequireAssignedCarer(t *testing.T) {
	assert.True(t, auth.CanCaptureEVV(true))
	assert.False(t, auth.CanCaptureEVV(false))
	assert.True(t, auth.CanCaptureSignature(true))
	assert.False(t, auth.CanCaptureSignature(false))
}
