package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"carebase-backend/internal/api/handlers"
	"carebase-backend/internal/auth"
	"carebase-backend/internal/database/models"
	apperrors "carebase-backend/internal/errors"
	"carebase-backend/internal/mocks"
	"carebase-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ShiftHandlerTestSuite defines the test suite for ShiftHandler
type ShiftHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockShiftSvc *mocks.MockShiftServiceInterface
	handler      *handlers.ShiftHandler
	router       *gin.Engine
	actor        *auth.Actor
}

func (suite *ShiftHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockShiftSvc = mocks.NewMockShiftServiceInterface(suite.ctrl)
	suite.handler = handlers.NewShiftHandler(suite.mockShiftSvc)

	suite.actor = &auth.Actor{
		UserID:    uuid.New(),
		CompanyID: uuid.New(),
		Role:      models.RoleManager,
	}

	suite.router = gin.New()
	suite.router.Use(func(c *gin.Context) {
		c.Set("actor", suite.actor)
		c.Next()
	})
	suite.router.POST("/shifts", suite.handler.CreateShift)
	suite.router.GET("/shifts", suite.handler.ListShifts)
	suite.router.GET("/shifts/:id", suite.handler.GetShift)
	suite.router.POST("/shifts/:id/start", suite.handler.StartShift)
	suite.router.POST("/shifts/:id/complete", suite.handler.CompleteShift)
	suite.router.POST("/shifts/:id/missed", suite.handler.MarkShiftMissed)
	suite.router.POST("/shifts/:id/cancel", suite.handler.CancelShift)
	suite.router.POST("/shifts/:id/evv", suite.handler.CaptureEVV)
}

func (suite *ShiftHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ShiftHandlerTestSuite) postJSON(path string, body interface{}) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	assert.NoError(suite.T(), err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ShiftHandlerTestSuite) TestCreateShift_Success() {
	start := time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)
	resp := &service.ShiftResponse{
		ID:             uuid.New(),
		CarerID:        uuid.New(),
		ClientID:       uuid.New(),
		ServiceType:    "personal_care",
		ScheduledStart: start,
		ScheduledEnd:   start.Add(3 * time.Hour),
		Status:         models.ShiftStatusScheduled,
	}
	suite.mockShiftSvc.EXPECT().Create(suite.actor, gomock.Any()).Return(resp, nil)

	w := suite.postJSON("/shifts", service.CreateShiftRequest{
		CarerID:        resp.CarerID,
		ClientID:       resp.ClientID,
		ServiceType:    "personal_care",
		ScheduledStart: start,
		ScheduledEnd:   start.Add(3 * time.Hour),
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.ShiftResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), resp.ID, got.ID)
	assert.Equal(suite.T(), models.ShiftStatusScheduled, got.Status)
}

func (suite *ShiftHandlerTestSuite) TestCreateShift_Conflict() {
	suite.mockShiftSvc.EXPECT().Create(suite.actor, gomock.Any()).
		Return(nil, apperrors.NewScheduleConflictError(uuid.New(), uuid.New()))

	start := time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)
	w := suite.postJSON("/shifts", service.CreateShiftRequest{
		CarerID:        uuid.New(),
		ClientID:       uuid.New(),
		ServiceType:    "personal_care",
		ScheduledStart: start,
		ScheduledEnd:   start.Add(time.Hour),
	})

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *ShiftHandlerTestSuite) TestCreateShift_InvalidBody() {
	req := httptest.NewRequest(http.MethodPost, "/shifts", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ShiftHandlerTestSuite) TestListShifts_StatusFilter() {
	status := models.ShiftStatusScheduled
	suite.mockShiftSvc.EXPECT().List(suite.actor, gomock.Any()).
		DoAndReturn(func(_ *auth.Actor, req *service.ShiftListRequest) (*service.ShiftListResponse, error) {
			assert.NotNil(suite.T(), req.Status)
			assert.Equal(suite.T(), status, *req.Status)
			return &service.ShiftListResponse{Page: 1, PageSize: 50}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/shifts?status=SCHEDULED", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *ShiftHandlerTestSuite) TestListShifts_UnknownStatus() {
	req := httptest.NewRequest(http.MethodGet, "/shifts?status=NAPPING", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ShiftHandlerTestSuite) TestGetShift_NotFound() {
	id := uuid.New()
	suite.mockShiftSvc.EXPECT().GetByID(suite.actor, id).Return(nil, apperrors.ErrShiftNotFound)

	req := httptest.NewRequest(http.MethodGet, "/shifts/"+id.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ShiftHandlerTestSuite) TestGetShift_InvalidID() {
	req := httptest.NewRequest(http.MethodGet, "/shifts/not-a-uuid", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ShiftHandlerTestSuite) TestStartShift_InvalidState() {
	id := uuid.New()
	suite.mockShiftSvc.EXPECT().Start(suite.actor, id).
		Return(nil, apperrors.NewInvalidStateError("shift", "COMPLETED", "start"))

	req := httptest.NewRequest(http.MethodPost, "/shifts/"+id.String()+"/start", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *ShiftHandlerTestSuite) TestCompleteShift_Success() {
	id := uuid.New()
	resp := &service.CompleteShiftResponse{
		Shift: service.ShiftResponse{ID: id, Status: models.ShiftStatusCompleted},
		Deduction: &service.DeductionResult{
			AuthorizationID: uuid.New(),
			UnitType:        models.UnitTypeHourly,
			UnitsDeducted:   2.25,
			RemainingUnits:  97.75,
		},
	}
	suite.mockShiftSvc.EXPECT().Complete(suite.actor, id, gomock.Any()).Return(resp, nil)

	req := httptest.NewRequest(http.MethodPost, "/shifts/"+id.String()+"/complete", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.CompleteShiftResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), models.ShiftStatusCompleted, got.Shift.Status)
	assert.NotNil(suite.T(), got.Deduction)
	assert.InDelta(suite.T(), 2.25, got.Deduction.UnitsDeducted, 1e-9)
}

func (suite *ShiftHandlerTestSuite) TestMarkShiftMissed_BadReason() {
	id := uuid.New()
	suite.mockShiftSvc.EXPECT().MarkMissed(suite.actor, id, gomock.Any()).
		Return(nil, apperrors.NewValidationError("reason", "must be a known missed-visit reason code"))

	w := suite.postJSON("/shifts/"+id.String()+"/missed", service.MarkMissedRequest{Reason: "NO_SUCH_REASON"})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ShiftHandlerTestSuite) TestCancelShift_Forbidden() {
	id := uuid.New()
	suite.mockShiftSvc.EXPECT().Cancel(suite.actor, id).
		Return(nil, apperrors.NewForbiddenError("only schedule managers may cancel shifts"))

	req := httptest.NewRequest(http.MethodPost, "/shifts/"+id.String()+"/cancel", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func (suite *ShiftHandlerTestSuite) TestCaptureEVV_Success() {
	id := uuid.New()
	lat, lng := 32.0853, 34.7818
	record := &models.EVVRecord{
		ShiftID:            id,
		Status:             models.EVVStatusCompliant,
		IsWithinGeofence:   true,
		DistanceFromClient: 42.5,
	}
	suite.mockShiftSvc.EXPECT().CaptureEVV(suite.actor, id, gomock.Any()).Return(record, nil)

	w := suite.postJSON("/shifts/"+id.String()+"/evv", service.CaptureEVVRequest{
		Latitude:  &lat,
		Longitude: &lng,
		Source:    models.EVVSourceMobile,
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got models.EVVRecord
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), models.EVVStatusCompliant, got.Status)
	assert.True(suite.T(), got.IsWithinGeofence)
}

func (suite *ShiftHandlerTestSuite) TestUnauthenticatedRequestRejected() {
	bare := gin.New()
	bare.POST("/shifts", suite.handler.CreateShift)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/shifts", bytes.NewReader([]byte("{}")))
	bare.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func TestShiftHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftHandlerTestSuite))
}
