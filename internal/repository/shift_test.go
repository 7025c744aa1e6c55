//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"carebase-backend/internal/database/models"
	"carebase-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// ShiftRepositoryTestSuite tests the ShiftRepository against Postgres
type ShiftRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ShiftRepository
	factories     *testutils.FactorySet

	companyID uuid.UUID
	carer     *models.Carer
	client    *models.Client
}

// SetupSuite runs before all tests in the suite
func (suite *ShiftRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewShiftRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ShiftRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ShiftRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.companyID = uuid.New()
	suite.carer = suite.factories.Carer.Create(suite.companyID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.carer).Error)
	suite.client = suite.factories.Client.Create(suite.companyID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.client).Error)
}

// TearDownTest runs after each test
func (suite *ShiftRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ShiftRepositoryTestSuite) newShift(start, end time.Time) *models.Shift {
	return suite.factories.Shift.Create(suite.companyID, suite.carer.ID, suite.client.ID, start, end)
}

func (suite *ShiftRepositoryTestSuite) TestCreate() {
	start := time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)
	shift := suite.newShift(start, start.Add(3*time.Hour))

	err := suite.repo.Create(shift)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, shift.ID)
	suite.NotZero(shift.CreatedAt)
}

func (suite *ShiftRepositoryTestSuite) TestGetByIDScopedToCompany() {
	start := time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)
	shift := suite.newShift(start, start.Add(3*time.Hour))
	suite.Require().NoError(suite.repo.Create(shift))

	found, err := suite.repo.GetByID(suite.companyID, shift.ID)
	suite.NoError(err)
	suite.Equal(shift.ID, found.ID)

	_, err = suite.repo.GetByID(uuid.New(), shift.ID)
	suite.Error(err)
}

func (suite *ShiftRepositoryTestSuite) TestGetActiveByCarerInWindow() {
	start := time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)
	shift := suite.newShift(start, start.Add(3*time.Hour))
	suite.Require().NoError(suite.repo.Create(shift))

	// overlapping window
	found, err := suite.repo.GetActiveByCarerInWindow(suite.companyID, suite.carer.ID, start.Add(time.Hour), start.Add(4*time.Hour))
	suite.NoError(err)
	suite.Len(found, 1)

	// back-to-back window shares only the boundary instant
	found, err = suite.repo.GetActiveByCarerInWindow(suite.companyID, suite.carer.ID, start.Add(3*time.Hour), start.Add(5*time.Hour))
	suite.NoError(err)
	suite.Empty(found)

	// terminal statuses release the slot
	shift.Status = models.ShiftStatusCancelled
	suite.Require().NoError(suite.repo.Update(shift))
	found, err = suite.repo.GetActiveByCarerInWindow(suite.companyID, suite.carer.ID, start, start.Add(3*time.Hour))
	suite.NoError(err)
	suite.Empty(found)
}

func (suite *ShiftRepositoryTestSuite) TestExclusionConstraintBlocksOverlap() {
	start := time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)
	suite.Require().NoError(suite.repo.Create(suite.newShift(start, start.Add(3*time.Hour))))

	// overlapping insert violates shifts_carer_no_overlap even without the
	// application-level check
	err := suite.repo.Create(suite.newShift(start.Add(time.Hour), start.Add(4*time.Hour)))
	suite.Require().Error(err)
	suite.True(IsExclusionViolation(err, "shifts_carer_no_overlap"))

	// back-to-back insert is allowed ([start, end) ranges)
	suite.NoError(suite.repo.Create(suite.newShift(start.Add(3*time.Hour), start.Add(5*time.Hour))))

	// a cancelled shift no longer blocks the window
	cancelled := suite.newShift(start.Add(24*time.Hour), start.Add(26*time.Hour))
	suite.Require().NoError(suite.repo.Create(cancelled))
	cancelled.Status = models.ShiftStatusCancelled
	suite.Require().NoError(suite.repo.Update(cancelled))
	suite.NoError(suite.repo.Create(suite.newShift(start.Add(24*time.Hour), start.Add(26*time.Hour))))
}

func (suite *ShiftRepositoryTestSuite) TestListFilters() {
	start := time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)
	first := suite.newShift(start, start.Add(2*time.Hour))
	suite.Require().NoError(suite.repo.Create(first))
	second := suite.newShift(start.Add(24*time.Hour), start.Add(26*time.Hour))
	suite.Require().NoError(suite.repo.Create(second))

	all, total, err := suite.repo.List(suite.companyID, ShiftFilter{}, 50, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(all, 2)

	status := models.ShiftStatusScheduled
	byStatus, total, err := suite.repo.List(suite.companyID, ShiftFilter{Status: &status}, 50, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(byStatus, 2)

	windowEnd := start.Add(3 * time.Hour)
	inWindow, total, err := suite.repo.List(suite.companyID, ShiftFilter{To: &windowEnd}, 50, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(first.ID, inWindow[0].ID)

	_, total, err = suite.repo.List(uuid.New(), ShiftFilter{}, 50, 0)
	suite.NoError(err)
	suite.Zero(total)
}

func TestShiftRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftRepositoryTestSuite))
}
