package response

import (
	"time"

	"salonflow/internal/domain/booking"
	"salonflow/internal/domain/fulfillment"
	"salonflow/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type InstanceResponse struct {
	ID         uuid.UUID  `json:"id"`
	BookingID  uuid.UUID  `json:"bookingId"`
	ServiceID  uuid.UUID  `json:"serviceId"`
	PriceCents int64      `json:"priceCents"`
	Sequence   int        `json:"sequence"`
	Status     string     `json:"status"`
	ClaimedBy  *uuid.UUID `json:"claimedBy,omitempty"`
	ClaimedAt  *time.Time `json:"claimedAt,omitempty"`
	ServedBy   *uuid.UUID `json:"servedBy,omitempty"`
	ServedAt   *time.Time `json:"servedAt,omitempty"`
	Version    int64      `json:"version"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func FromInstanceView(rm *queries.InstanceView) *InstanceResponse {
	var resp InstanceResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

// BookingProgressResponse is the live view a watching device renders: the
// aggregate's current totals plus every instance snapshot.
type BookingProgressResponse struct {
	BookingID       uuid.UUID           `json:"bookingId"`
	Status          string              `json:"status"`
	SubtotalCents   int64               `json:"subtotalCents"`
	GrandTotalCents int64               `json:"grandTotalCents"`
	ServedCount     int                 `json:"servedCount"`
	RemainingCount  int                 `json:"remainingCount"`
	Instances       []*InstanceResponse `json:"instances"`
}

func FromBookingSnapshot(b *booking.Booking) *BookingProgressResponse {
	totals := b.Recompute()
	instances := b.Instances()
	out := make([]*InstanceResponse, len(instances))
	for i := range instances {
		out[i] = FromInstance(&instances[i])
	}
	return &BookingProgressResponse{
		BookingID:       b.ID(),
		Status:          b.Status().String(),
		SubtotalCents:   totals.SubtotalCents,
		GrandTotalCents: totals.GrandTotalCents,
		ServedCount:     totals.ServedCount,
		RemainingCount:  totals.RemainingCount,
		Instances:       out,
	}
}

func FromInstance(in *fulfillment.Instance) *InstanceResponse {
	return &InstanceResponse{
		ID:         in.ID,
		BookingID:  in.BookingID,
		ServiceID:  in.ServiceID,
		PriceCents: in.PriceCents,
		Sequence:   in.Sequence,
		Status:     in.Status.String(),
		ClaimedBy:  in.ClaimedBy,
		ClaimedAt:  in.ClaimedAt,
		ServedBy:   in.ServedBy,
		ServedAt:   in.ServedAt,
		Version:    in.Version,
		UpdatedAt:  in.UpdatedAt,
	}
}
