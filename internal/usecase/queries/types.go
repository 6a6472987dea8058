package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type InstanceView struct {
	ID         uuid.UUID  `json:"id"`
	BookingID  uuid.UUID  `json:"booking_id"`
	ServiceID  uuid.UUID  `json:"service_id"`
	PriceCents int64      `json:"price_cents"`
	Sequence   int        `json:"sequence"`
	Status     string     `json:"status"`
	ClaimedBy  *uuid.UUID `json:"claimed_by,omitempty"`
	ClaimedAt  *time.Time `json:"claimed_at,omitempty"`
	ServedBy   *uuid.UUID `json:"served_by,omitempty"`
	ServedAt   *time.Time `json:"served_at,omitempty"`
	Version    int64      `json:"version"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type TotalsView struct {
	SubtotalCents      int64 `json:"subtotal_cents"`
	GrandDiscountCents int64 `json:"grand_discount_cents"`
	GrandTotalCents    int64 `json:"grand_total_cents"`
	ServedCount        int   `json:"served_count"`
	RemainingCount     int   `json:"remaining_count"`
}

type BookingView struct {
	ID            uuid.UUID      `json:"id"`
	CustomerID    *uuid.UUID     `json:"customer_id,omitempty"`
	WalkInName    *string        `json:"walk_in_name,omitempty"`
	Branch        string         `json:"branch"`
	AppointmentAt time.Time      `json:"appointment_at"`
	Status        string         `json:"status"`
	Notes         string         `json:"notes"`
	VoucherID     *uuid.UUID     `json:"voucher_id,omitempty"`
	Totals        TotalsView     `json:"totals"`
	Instances     []InstanceView `json:"instances"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type BookingListItem struct {
	ID            uuid.UUID `json:"id"`
	Branch        string    `json:"branch"`
	AppointmentAt time.Time `json:"appointment_at"`
	Status        string    `json:"status"`
	TotalCents    int64     `json:"total_cents"`
	ServedCount   int       `json:"served_count"`
	InstanceCount int       `json:"instance_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// CommissionRow is one served instance attributed to a staff member. The
// basis comes from the set item's adjusted price when present, otherwise the
// service's standard price; it never reflects the bundle's sale price.
type CommissionRow struct {
	InstanceID  uuid.UUID `json:"instance_id"`
	BookingID   uuid.UUID `json:"booking_id"`
	ServiceID   uuid.UUID `json:"service_id"`
	ServiceName string    `json:"service_name"`
	ServedAt    time.Time `json:"served_at"`
	BasisCents  int64     `json:"basis_cents"`
}

type CommissionReport struct {
	StaffID         uuid.UUID       `json:"staff_id"`
	From            time.Time       `json:"from"`
	To              time.Time       `json:"to"`
	Rows            []CommissionRow `json:"rows"`
	TotalBasisCents int64           `json:"total_basis_cents"`
}
