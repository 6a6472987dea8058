//go:build unit || e2e

package builder

import (
	"time"

	"salonflow/internal/domain/booking"
	"salonflow/internal/domain/fulfillment"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	CustomerID    *uuid.UUID
	WalkInName    *string
	Branch        booking.Branch
	AppointmentAt time.Time
	Notes         string
	ServiceLines  []booking.ServiceLine
	SetLines      []booking.SetLine
	Instances     []fulfillment.Instance
}

func NewBookingBuilder() *BookingBuilder {
	customerID := uuid.New()
	return &BookingBuilder{
		CustomerID:    &customerID,
		Branch:        booking.BranchMain,
		AppointmentAt: time.Now().Add(24 * time.Hour),
		Notes:         "",
		ServiceLines: []booking.ServiceLine{
			{ServiceID: uuid.New(), UnitPriceCents: 1500, Quantity: 1},
		},
	}
}

func (b *BookingBuilder) WithCustomerID(id *uuid.UUID) *BookingBuilder {
	b.CustomerID = id
	return b
}

func (b *BookingBuilder) WithWalkInName(name string) *BookingBuilder {
	b.WalkInName = &name
	return b
}

func (b *BookingBuilder) WithBranch(branch booking.Branch) *BookingBuilder {
	b.Branch = branch
	return b
}

func (b *BookingBuilder) WithServiceLines(lines ...booking.ServiceLine) *BookingBuilder {
	b.ServiceLines = lines
	return b
}

func (b *BookingBuilder) WithSetLines(lines ...booking.SetLine) *BookingBuilder {
	b.SetLines = lines
	return b
}

func (b *BookingBuilder) WithInstances(instances ...fulfillment.Instance) *BookingBuilder {
	b.Instances = instances
	return b
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	bk, err := booking.NewBooking(
		b.CustomerID,
		b.WalkInName,
		b.Branch,
		b.AppointmentAt,
		b.Notes,
		b.ServiceLines,
		b.SetLines,
	)
	if err != nil {
		return nil, err
	}
	if len(b.Instances) > 0 {
		bk.AttachInstances(b.Instances)
	}
	return bk, nil
}

// InstanceFor builds an unclaimed instance belonging to the given booking.
func InstanceFor(bookingID uuid.UUID, sequence int, priceCents int64) fulfillment.Instance {
	return fulfillment.Instance{
		ID:         uuid.New(),
		BookingID:  bookingID,
		ServiceID:  uuid.New(),
		PriceCents: priceCents,
		Sequence:   sequence,
		Status:     fulfillment.StatusUnclaimed,
		Version:    1,
		UpdatedAt:  time.Now(),
	}
}
