package handlers

import (
	"net/http"

	"carebase-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthorizationHandler handles HTTP requests for authorization usage and alerts
type AuthorizationHandler struct {
	authorizationService service.AuthorizationServiceInterface
}

// NewAuthorizationHandler creates a new authorization handler
func NewAuthorizationHandler(authorizationService service.AuthorizationServiceInterface) *AuthorizationHandler {
	return &AuthorizationHandler{authorizationService: authorizationService}
}

// ListClientAuthorizations handles GET /clients/:id/authorizations
// @Summary List a client's authorizations
// @Description List the client's insurance authorizations with usage statistics and open alerts
// @Tags authorizations
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} service.AuthorizationListResponse "Authorizations"
// @Failure 404 {object} map[string]interface{} "Client not found"
// @Security BearerAuth
// @Router /clients/{id}/authorizations [get]
func (h *AuthorizationHandler) ListClientAuthorizations(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	clientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.authorizationService.ListForClient(actor, clientID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DismissAlert handles PATCH /alerts/:id/dismiss
// @Summary Dismiss an authorization alert
// @Description Mark an alert dismissed so a recurrence of its condition may raise a fresh one
// @Tags authorizations
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} service.AlertResponse "Alert dismissed"
// @Failure 403 {object} map[string]interface{} "Insufficient role"
// @Failure 404 {object} map[string]interface{} "Alert not found"
// @Security BearerAuth
// @Router /alerts/{id}/dismiss [patch]
func (h *AuthorizationHandler) DismissAlert(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	alertID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.authorizationService.DismissAlert(actor, alertID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
