package request

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type ClaimGiftCertificateRequest struct {
	Code          string     `json:"code" binding:"required"`
	CustomerID    *uuid.UUID `json:"customer_id,omitempty"`
	WalkInName    *string    `json:"walk_in_name,omitempty"`
	Branch        string     `json:"branch" binding:"required"`
	AppointmentAt time.Time  `json:"appointment_at" binding:"required"`
	Notes         string     `json:"notes"`
}

func (r ClaimGiftCertificateRequest) GetWalkInName() *string {
	if r.WalkInName == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.WalkInName)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
