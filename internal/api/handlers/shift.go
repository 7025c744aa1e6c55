package handlers

import (
	"net/http"
	"strconv"
	"time"

	"carebase-backend/internal/auth"
	"carebase-backend/internal/database/models"
	"carebase-backend/internal/logger"
	"carebase-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ShiftHandler handles HTTP requests for shift lifecycle operations
type ShiftHandler struct {
	shiftService service.ShiftServiceInterface
}

// NewShiftHandler creates a new shift handler
func NewShiftHandler(shiftService service.ShiftServiceInterface) *ShiftHandler {
	return &ShiftHandler{shiftService: shiftService}
}

func requireActor(c *gin.Context) (*auth.Actor, bool) {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return nil, false
	}
	return actor, true
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " format"})
		return uuid.Nil, false
	}
	return id, true
}

// CreateShift handles POST /shifts
// @Summary Schedule a shift
// @Description Schedule a new shift for a carer and client. Rejected when the carer already has an overlapping non-terminal shift.
// @Tags shifts
// @Accept json
// @Produce json
// @Param shift body service.CreateShiftRequest true "Shift to schedule"
// @Success 201 {object} service.ShiftResponse "Shift scheduled"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Insufficient role"
// @Failure 404 {object} map[string]interface{} "Carer or client not found"
// @Failure 409 {object} map[string]interface{} "Schedule conflict"
// @Security BearerAuth
// @Router /shifts [post]
func (h *ShiftHandler) CreateShift(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req service.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.shiftService.Create(actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.FromRequest(c).WithField("shift_id", resp.ID).Info("shift scheduled")
	c.JSON(http.StatusCreated, resp)
}

// BulkCreateShifts handles POST /shifts/bulk
// @Summary Schedule a recurring weekly pattern
// @Description Generate shifts for the selected weekdays across a date range. Slots colliding with existing shifts are skipped and reported.
// @Tags shifts
// @Accept json
// @Produce json
// @Param pattern body service.BulkCreateShiftRequest true "Recurring pattern"
// @Success 201 {object} service.BulkCreateShiftResponse "Created and skipped slots"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Insufficient role"
// @Security BearerAuth
// @Router /shifts/bulk [post]
func (h *ShiftHandler) BulkCreateShifts(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req service.BulkCreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.shiftService.BulkCreate(actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListShifts handles GET /shifts
// @Summary List shifts
// @Description List shifts with optional filters. Carers only see their own shifts.
// @Tags shifts
// @Produce json
// @Param carer_id query string false "Filter by carer"
// @Param client_id query string false "Filter by client"
// @Param status query string false "Filter by status"
// @Param from query string false "Window start (RFC3339)"
// @Param to query string false "Window end (RFC3339)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(50)
// @Success 200 {object} service.ShiftListResponse "Shifts"
// @Failure 400 {object} map[string]interface{} "Invalid filter"
// @Security BearerAuth
// @Router /shifts [get]
func (h *ShiftHandler) ListShifts(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	req := service.ShiftListRequest{}
	req.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	req.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "50"))

	if raw := c.Query("carer_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid carer_id format"})
			return
		}
		req.CarerID = &id
	}
	if raw := c.Query("client_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client_id format"})
			return
		}
		req.ClientID = &id
	}
	if raw := c.Query("status"); raw != "" {
		status := models.ShiftStatus(raw)
		if !status.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown shift status"})
			return
		}
		req.Status = &status
	}
	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from timestamp, expected RFC3339"})
			return
		}
		req.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to timestamp, expected RFC3339"})
			return
		}
		req.To = &to
	}

	resp, err := h.shiftService.List(actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetShift handles GET /shifts/:id
// @Summary Get a shift
// @Description Get a single shift with its EVV record
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID"
// @Success 200 {object} service.ShiftResponse "Shift"
// @Failure 404 {object} map[string]interface{} "Shift not found"
// @Security BearerAuth
// @Router /shifts/{id} [get]
func (h *ShiftHandler) GetShift(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.shiftService.GetByID(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// StartShift handles POST /shifts/:id/start
// @Summary Start a shift
// @Description Transition a SCHEDULED shift to IN_PROGRESS
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID"
// @Success 200 {object} service.ShiftResponse "Shift started"
// @Failure 403 {object} map[string]interface{} "Not the assigned carer"
// @Failure 404 {object} map[string]interface{} "Shift not found"
// @Failure 409 {object} map[string]interface{} "Shift is not SCHEDULED"
// @Security BearerAuth
// @Router /shifts/{id}/start [post]
func (h *ShiftHandler) StartShift(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.shiftService.Start(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CompleteShift handles POST /shifts/:id/complete
// @Summary Complete a shift
// @Description Transition an IN_PROGRESS shift to COMPLETED and deduct authorization units for the worked hours
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID"
// @Param completion body service.CompleteShiftRequest false "Completion details"
// @Success 200 {object} service.CompleteShiftResponse "Shift completed"
// @Failure 403 {object} map[string]interface{} "Not the assigned carer"
// @Failure 404 {object} map[string]interface{} "Shift not found"
// @Failure 409 {object} map[string]interface{} "Shift is not IN_PROGRESS"
// @Security BearerAuth
// @Router /shifts/{id}/complete [post]
func (h *ShiftHandler) CompleteShift(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.CompleteShiftRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}
	}

	resp, err := h.shiftService.Complete(actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.FromRequest(c).WithField("shift_id", id).Info("shift completed")
	c.JSON(http.StatusOK, resp)
}

// MarkShiftMissed handles POST /shifts/:id/missed
// @Summary Mark a shift missed
// @Description Transition a SCHEDULED or IN_PROGRESS shift to MISSED with a reason code
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID"
// @Param reason body service.MarkMissedRequest true "Missed reason"
// @Success 200 {object} service.ShiftResponse "Shift marked missed"
// @Failure 400 {object} map[string]interface{} "Unknown reason code"
// @Failure 404 {object} map[string]interface{} "Shift not found"
// @Failure 409 {object} map[string]interface{} "Shift already terminal"
// @Security BearerAuth
// @Router /shifts/{id}/missed [post]
func (h *ShiftHandler) MarkShiftMissed(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.MarkMissedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.shiftService.MarkMissed(actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CancelShift handles POST /shifts/:id/cancel
// @Summary Cancel a shift
// @Description Transition a SCHEDULED shift to CANCELLED, freeing its time slot
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID"
// @Success 200 {object} service.ShiftResponse "Shift cancelled"
// @Failure 403 {object} map[string]interface{} "Insufficient role"
// @Failure 404 {object} map[string]interface{} "Shift not found"
// @Failure 409 {object} map[string]interface{} "Shift is not SCHEDULED"
// @Security BearerAuth
// @Router /shifts/{id}/cancel [post]
func (h *ShiftHandler) CancelShift(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.shiftService.Cancel(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CaptureEVV handles POST /shifts/:id/evv
// @Summary Capture EVV location
// @Description Verify the reported location against the client's geofence and store the shift's EVV record
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID"
// @Param location body service.CaptureEVVRequest true "Reported location"
// @Success 200 {object} models.EVVRecord "EVV record"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Not the assigned carer"
// @Failure 404 {object} map[string]interface{} "Shift not found"
// @Failure 409 {object} map[string]interface{} "Shift is not IN_PROGRESS"
// @Security BearerAuth
// @Router /shifts/{id}/evv [post]
func (h *ShiftHandler) CaptureEVV(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.CaptureEVVRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	record, err := h.shiftService.CaptureEVV(actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.FromRequest(c).WithFields(map[string]interface{}{
		"shift_id":   id,
		"evv_status": record.Status,
	}).Info("EVV captured")
	c.JSON(http.StatusOK, record)
}

// CaptureSignature handles POST /shifts/:id/signature
// @Summary Capture client signature
// @Description Store the client's signature for an IN_PROGRESS shift
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID"
// @Param signature body service.CaptureSignatureRequest true "Signature data"
// @Success 200 {object} service.ShiftResponse "Signature stored"
// @Failure 403 {object} map[string]interface{} "Not the assigned carer"
// @Failure 404 {object} map[string]interface{} "Shift not found"
// @Failure 409 {object} map[string]interface{} "Shift is not IN_PROGRESS"
// @Security BearerAuth
// @Router /shifts/{id}/signature [post]
func (h *ShiftHandler) CaptureSignature(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.CaptureSignatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.shiftService.CaptureSignature(actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
