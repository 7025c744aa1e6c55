package service

import (
	"carebase-backend/internal/auth"
	"carebase-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ShiftServiceInterface defines the contract for shift lifecycle operations
type ShiftServiceInterface interface {
	Create(actor *auth.Actor, req *CreateShiftRequest) (*ShiftResponse, error)
	BulkCreate(actor *auth.Actor, req *BulkCreateShiftRequest) (*BulkCreateShiftResponse, error)
	GetByID(actor *auth.Actor, id uuid.UUID) (*ShiftResponse, error)
	List(actor *auth.Actor, req *ShiftListRequest) (*ShiftListResponse, error)
	Start(actor *auth.Actor, id uuid.UUID) (*ShiftResponse, error)
	Complete(actor *auth.Actor, id uuid.UUID, req *CompleteShiftRequest) (*CompleteShiftResponse, error)
	MarkMissed(actor *auth.Actor, id uuid.UUID, req *MarkMissedRequest) (*ShiftResponse, error)
	Cancel(actor *auth.Actor, id uuid.UUID) (*ShiftResponse, error)
	CaptureEVV(actor *auth.Actor, id uuid.UUID, req *CaptureEVVRequest) (*models.EVVRecord, error)
	CaptureSignature(actor *auth.Actor, id uuid.UUID, req *CaptureSignatureRequest) (*ShiftResponse, error)
}

// AuthorizationServiceInterface defines the contract for the
// authorization ledger
type AuthorizationServiceInterface interface {
	ListForClient(actor *auth.Actor, clientID uuid.UUID) (*AuthorizationListResponse, error)
	DismissAlert(actor *auth.Actor, alertID uuid.UUID) (*AlertResponse, error)
}
