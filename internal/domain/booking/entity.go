package booking

import (
	"errors"
	"time"

	"salonflow/internal/domain/fulfillment"
	"salonflow/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrNoServiceLines  = errors.New("booking requires at least one service or set line")
	ErrNoCustomer      = errors.New("booking requires a customer reference or a walk-in name")
	ErrInvalidBranch   = errors.New("invalid branch")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrCancelBlocked   = errors.New("booking has served instances")
	ErrInvalidStatus   = errors.New("invalid booking status transition")
	ErrNotAllServed    = errors.New("booking has unserved instances")
	ErrBookingFinished = errors.New("booking is in a terminal status")
)

// ServiceLine is a priced selection of one service. UnitPriceCents is
// snapshotted from the catalog at creation time.
type ServiceLine struct {
	ServiceID      uuid.UUID
	UnitPriceCents int64
	Quantity       int
}

// SetLine is a priced selection of one service set at its bundle sale price.
type SetLine struct {
	SetID          uuid.UUID
	SalePriceCents int64
	Quantity       int
}

// Totals is the derived money and progress state of a booking, recomputed
// after every booking or instance mutation.
type Totals struct {
	SubtotalCents      int64
	GrandDiscountCents int64
	GrandTotalCents    int64
	ServedCount        int
	RemainingCount     int
}

// Booking aggregates the service/set selection, its fulfillment instances and
// the discount state. Cancellation is refused while any instance is served.
type Booking struct {
	id                 uuid.UUID
	customerID         *uuid.UUID
	walkInName         *string
	branch             Branch
	appointmentAt      time.Time
	status             Status
	notes              string
	serviceLines       []ServiceLine
	setLines           []SetLine
	voucherID          *uuid.UUID
	grandDiscountCents int64
	instances          []fulfillment.Instance
	createdAt          time.Time
	updatedAt          time.Time
}

func NewBooking(
	customerID *uuid.UUID,
	walkInName *string,
	branch Branch,
	appointmentAt time.Time,
	notes string,
	serviceLines []ServiceLine,
	setLines []SetLine,
) (*Booking, error) {
	if customerID == nil && (walkInName == nil || *walkInName == "") {
		return nil, ErrNoCustomer
	}
	if !branch.IsValid() {
		return nil, ErrInvalidBranch
	}
	if len(serviceLines) == 0 && len(setLines) == 0 {
		return nil, ErrNoServiceLines
	}
	for _, l := range serviceLines {
		if l.UnitPriceCents < 0 || l.Quantity <= 0 {
			return nil, ErrNegativePrice
		}
	}
	for _, l := range setLines {
		if l.SalePriceCents < 0 || l.Quantity <= 0 {
			return nil, ErrNegativePrice
		}
	}

	return &Booking{
		id:            uuid.New(),
		customerID:    customerID,
		walkInName:    walkInName,
		branch:        branch,
		appointmentAt: appointmentAt,
		status:        StatusPending,
		notes:         notes,
		serviceLines:  serviceLines,
		setLines:      setLines,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	customerID *uuid.UUID,
	walkInName *string,
	branch Branch,
	appointmentAt time.Time,
	status Status,
	notes string,
	serviceLines []ServiceLine,
	setLines []SetLine,
	voucherID *uuid.UUID,
	grandDiscountCents int64,
	instances []fulfillment.Instance,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:                 id,
		customerID:         customerID,
		walkInName:         walkInName,
		branch:             branch,
		appointmentAt:      appointmentAt,
		status:             status,
		notes:              notes,
		serviceLines:       serviceLines,
		setLines:           setLines,
		voucherID:          voucherID,
		grandDiscountCents: grandDiscountCents,
		instances:          instances,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// AttachInstances sets the expanded fulfillment instances. A booking must
// never persist with zero instances; expansion and creation are atomic.
func (b *Booking) AttachInstances(instances []fulfillment.Instance) {
	b.instances = instances
}

// ApplyVoucher sets the grand discount from a voucher's flat value. Vouchers
// replace any previously applied discount, they never stack.
func (b *Booking) ApplyVoucher(voucherID uuid.UUID, discountCents int64) error {
	if discountCents < 0 {
		return ErrNegativePrice
	}
	id := voucherID
	b.voucherID = &id
	b.grandDiscountCents = discountCents
	return nil
}

// SetGrandDiscount records a manually entered flat discount.
func (b *Booking) SetGrandDiscount(cents int64) error {
	if cents < 0 {
		return ErrNegativePrice
	}
	b.grandDiscountCents = cents
	return nil
}

// Recompute derives the booking's totals from its lines and instances.
func (b *Booking) Recompute() Totals {
	services := make([]pricing.Line, len(b.serviceLines))
	for i, l := range b.serviceLines {
		services[i] = pricing.Line{UnitPriceCents: l.UnitPriceCents, Quantity: l.Quantity}
	}
	sets := make([]pricing.Line, len(b.setLines))
	for i, l := range b.setLines {
		sets[i] = pricing.Line{UnitPriceCents: l.SalePriceCents, Quantity: l.Quantity}
	}

	subtotal := pricing.SubtotalCents(services, sets)
	served := 0
	for _, in := range b.instances {
		if in.Status == fulfillment.StatusServed {
			served++
		}
	}

	return Totals{
		SubtotalCents:      subtotal,
		GrandDiscountCents: b.grandDiscountCents,
		GrandTotalCents:    pricing.GrandTotalCents(subtotal, b.grandDiscountCents),
		ServedCount:        served,
		RemainingCount:     len(b.instances) - served,
	}
}

// HasServedInstance reports whether any instance has been served; such
// bookings cannot be cancelled or hard-deleted.
func (b *Booking) HasServedInstance() bool {
	for _, in := range b.instances {
		if in.Status == fulfillment.StatusServed {
			return true
		}
	}
	return false
}

// Cancel transitions the booking to cancelled, refused while any instance is
// served or the booking is already terminal.
func (b *Booking) Cancel() error {
	if b.status.IsTerminal() {
		return ErrBookingFinished
	}
	if b.HasServedInstance() {
		return ErrCancelBlocked
	}
	b.status = StatusCancelled
	return nil
}

// Confirm moves a pending booking into confirmed.
func (b *Booking) Confirm() error {
	if b.status != StatusPending {
		return ErrInvalidStatus
	}
	b.status = StatusConfirmed
	return nil
}

// Start moves a confirmed booking into in_progress.
func (b *Booking) Start() error {
	if b.status != StatusConfirmed {
		return ErrInvalidStatus
	}
	b.status = StatusInProgress
	return nil
}

// Complete finishes an in-progress booking once every instance is served.
func (b *Booking) Complete() error {
	if b.status != StatusInProgress {
		return ErrInvalidStatus
	}
	for _, in := range b.instances {
		if in.Status != fulfillment.StatusServed {
			return ErrNotAllServed
		}
	}
	b.status = StatusCompleted
	return nil
}

// Clone returns a deep copy. Callers that cache a booking and mutate it from
// a feed goroutine must hand out clones, never the cached pointer.
func (b *Booking) Clone() *Booking {
	clone := *b
	clone.serviceLines = append([]ServiceLine(nil), b.serviceLines...)
	clone.setLines = append([]SetLine(nil), b.setLines...)
	clone.instances = append([]fulfillment.Instance(nil), b.instances...)
	return &clone
}

// MergeInstance replaces the held snapshot of one instance if the incoming
// one is newer. Returns false for duplicates and reordered deliveries.
func (b *Booking) MergeInstance(snapshot fulfillment.Instance) bool {
	for i, in := range b.instances {
		if in.ID == snapshot.ID {
			if !snapshot.NewerThan(in) {
				return false
			}
			b.instances[i] = snapshot
			return true
		}
	}
	return false
}

func (b *Booking) ID() uuid.UUID                    { return b.id }
func (b *Booking) CustomerID() *uuid.UUID           { return b.customerID }
func (b *Booking) WalkInName() *string              { return b.walkInName }
func (b *Booking) Branch() Branch                   { return b.branch }
func (b *Booking) AppointmentAt() time.Time         { return b.appointmentAt }
func (b *Booking) Status() Status                   { return b.status }
func (b *Booking) Notes() string                    { return b.notes }
func (b *Booking) ServiceLines() []ServiceLine      { return b.serviceLines }
func (b *Booking) SetLines() []SetLine              { return b.setLines }
func (b *Booking) VoucherID() *uuid.UUID            { return b.voucherID }
func (b *Booking) GrandDiscountCents() int64        { return b.grandDiscountCents }
func (b *Booking) Instances() []fulfillment.Instance { return b.instances }
func (b *Booking) CreatedAt() time.Time             { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time             { return b.updatedAt }
