package response

import (
	"time"

	"salonflow/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type TotalsResponse struct {
	SubtotalCents      int64 `json:"subtotalCents"`
	GrandDiscountCents int64 `json:"grandDiscountCents"`
	GrandTotalCents    int64 `json:"grandTotalCents"`
	ServedCount        int   `json:"servedCount"`
	RemainingCount     int   `json:"remainingCount"`
}

type BookingResponse struct {
	ID            uuid.UUID          `json:"id"`
	CustomerID    *uuid.UUID         `json:"customerId,omitempty"`
	WalkInName    *string            `json:"walkInName,omitempty"`
	Branch        string             `json:"branch"`
	AppointmentAt time.Time          `json:"appointmentAt"`
	Status        string             `json:"status"`
	Notes         string             `json:"notes"`
	VoucherID     *uuid.UUID         `json:"voucherId,omitempty"`
	Totals        TotalsResponse     `json:"totals"`
	Instances     []InstanceResponse `json:"instances"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

type BookingListResponse struct {
	ID            uuid.UUID `json:"id"`
	Branch        string    `json:"branch"`
	AppointmentAt time.Time `json:"appointmentAt"`
	Status        string    `json:"status"`
	TotalCents    int64     `json:"totalCents"`
	ServedCount   int       `json:"servedCount"`
	InstanceCount int       `json:"instanceCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromBookingListItem(rm *queries.BookingListItem) *BookingListResponse {
	var resp BookingListResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}
