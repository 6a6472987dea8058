package request

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type ServiceSelectionRequest struct {
	ServiceID uuid.UUID `json:"service_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

type SetSelectionRequest struct {
	SetID    uuid.UUID `json:"set_id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,min=1"`
}

type CreateBookingRequest struct {
	CustomerID         *uuid.UUID                `json:"customer_id,omitempty"`
	WalkInName         *string                   `json:"walk_in_name,omitempty"`
	Branch             string                    `json:"branch" binding:"required"`
	AppointmentAt      time.Time                 `json:"appointment_at" binding:"required"`
	Notes              string                    `json:"notes"`
	Services           []ServiceSelectionRequest `json:"services"`
	Sets               []SetSelectionRequest     `json:"sets"`
	VoucherCode        *string                   `json:"voucher_code,omitempty"`
	GrandDiscountCents *int64                    `json:"grand_discount_cents,omitempty"`
}

func (r CreateBookingRequest) GetVoucherCode() *string {
	if r.VoucherCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.VoucherCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (r CreateBookingRequest) GetWalkInName() *string {
	if r.WalkInName == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.WalkInName)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type SetGrandDiscountRequest struct {
	GrandDiscountCents int64 `json:"grand_discount_cents" binding:"min=0"`
}
