package commands

import (
	"context"
	"time"

	"salonflow/internal/domain/booking"
	"salonflow/internal/domain/fulfillment"
	"salonflow/internal/domain/pricing"
	"salonflow/internal/domain/voucher"
	"salonflow/internal/infra"
	"salonflow/internal/infra/db"
	"salonflow/internal/pkg/clock"
	"salonflow/internal/pkg/errs"
	"salonflow/internal/usecase/shared"

	"github.com/google/uuid"
)

type ServiceSelection struct {
	ServiceID uuid.UUID
	Quantity  int
}

type SetSelection struct {
	SetID    uuid.UUID
	Quantity int
}

type CreateBookingParams struct {
	CustomerID         *uuid.UUID
	WalkInName         *string
	Branch             string
	AppointmentAt      time.Time
	Notes              string
	Services           []ServiceSelection
	Sets               []SetSelection
	VoucherCode        *string
	GrandDiscountCents *int64
}

type BookingCommands interface {
	Create(ctx context.Context, params CreateBookingParams) (uuid.UUID, error)
	Cancel(ctx context.Context, bookingID uuid.UUID) error
	Confirm(ctx context.Context, bookingID uuid.UUID) error
	Start(ctx context.Context, bookingID uuid.UUID) error
	Complete(ctx context.Context, bookingID uuid.UUID) error
	SetGrandDiscount(ctx context.Context, bookingID uuid.UUID, discountCents int64) error
}

type bookingCommands struct {
	dbtx     db.DBTX
	txm      shared.TxManager
	bookings BookingRepository
	vouchers VoucherRepository
	catalog  CatalogReads
	voucherQ VoucherReads
	clock    clock.Clock
}

func NewBookingCommands(
	dbtx db.DBTX,
	txm shared.TxManager,
	bookings BookingRepository,
	vouchers VoucherRepository,
	catalog CatalogReads,
	voucherQ VoucherReads,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommands{
		dbtx:     dbtx,
		txm:      txm,
		bookings: bookings,
		vouchers: vouchers,
		catalog:  catalog,
		voucherQ: voucherQ,
		clock:    clk,
	}
}

// Create snapshots catalog prices into lines, expands the fulfillment
// instances and persists everything in one transaction. When a voucher is
// applied its consumption commits atomically with the booking, so the code
// can never be spent without the booking existing or vice versa.
func (u *bookingCommands) Create(ctx context.Context, params CreateBookingParams) (uuid.UUID, error) {
	lines, setSnapshots, err := u.resolveLines(ctx, params)
	if err != nil {
		return uuid.Nil, err
	}

	b, err := booking.NewBooking(
		params.CustomerID,
		params.WalkInName,
		booking.Branch(params.Branch),
		params.AppointmentAt,
		params.Notes,
		lines.services,
		lines.sets,
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var voucherID *uuid.UUID
	if params.VoucherCode != nil {
		v, err := u.resolveVoucher(ctx, *params.VoucherCode)
		if err != nil {
			return uuid.Nil, err
		}
		if err := b.ApplyVoucher(v.ID, v.DiscountCents); err != nil {
			return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		id := v.ID
		voucherID = &id
	} else if params.GrandDiscountCents != nil {
		if err := b.SetGrandDiscount(*params.GrandDiscountCents); err != nil {
			return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	b.AttachInstances(expandInstances(b, setSnapshots, u.clock.Now()))

	var bookingID uuid.UUID
	err = u.txm.RunWithRetry(ctx, func(tx db.DBTX) error {
		id, err := u.bookings.Create(ctx, tx, b)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if voucherID != nil {
			if err := u.vouchers.Consume(ctx, tx, *voucherID); err != nil {
				if infra.IsKind(err, infra.KindConflict) {
					return errs.Mark(err, errs.ErrInvalidCode)
				}
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}
		bookingID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return bookingID, nil
}

func (u *bookingCommands) Cancel(ctx context.Context, bookingID uuid.UUID) error {
	err := u.bookings.CancelGuarded(ctx, u.dbtx, bookingID)
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrBookingNotFound)
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, errs.ErrCancelBlocked)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}

func (u *bookingCommands) Confirm(ctx context.Context, bookingID uuid.UUID) error {
	return u.moveStatus(ctx, bookingID, booking.StatusPending, booking.StatusConfirmed)
}

func (u *bookingCommands) Start(ctx context.Context, bookingID uuid.UUID) error {
	return u.moveStatus(ctx, bookingID, booking.StatusConfirmed, booking.StatusInProgress)
}

// Complete re-validates the all-served gate through the aggregate before the
// guarded status write, inside one transaction so a concurrent unserve
// between check and write still loses to the status CAS.
func (u *bookingCommands) Complete(ctx context.Context, bookingID uuid.UUID) error {
	return u.txm.Run(ctx, func(tx db.DBTX) error {
		b, err := u.bookings.FindByID(ctx, tx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrBookingNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := b.Complete(); err != nil {
			return errs.Mark(err, errs.ErrInvalidStatus)
		}
		if err := u.bookings.UpdateStatusGuarded(ctx, tx, bookingID, booking.StatusInProgress, booking.StatusCompleted); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, errs.ErrInvalidStatus)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (u *bookingCommands) SetGrandDiscount(ctx context.Context, bookingID uuid.UUID, discountCents int64) error {
	return u.txm.RunWithRetry(ctx, func(tx db.DBTX) error {
		b, err := u.bookings.FindByID(ctx, tx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrBookingNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := b.SetGrandDiscount(discountCents); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		totals := b.Recompute()
		if err := u.bookings.UpdateFinalTotal(ctx, tx, bookingID, totals.GrandTotalCents); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (u *bookingCommands) moveStatus(ctx context.Context, bookingID uuid.UUID, from, to booking.Status) error {
	err := u.bookings.UpdateStatusGuarded(ctx, u.dbtx, bookingID, from, to)
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrBookingNotFound)
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, errs.ErrInvalidStatus)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}

type resolvedLines struct {
	services []booking.ServiceLine
	sets     []booking.SetLine
}

func (u *bookingCommands) resolveLines(ctx context.Context, params CreateBookingParams) (resolvedLines, map[uuid.UUID]*shared.ServiceSetSnapshot, error) {
	var lines resolvedLines
	for _, sel := range params.Services {
		svc, err := u.catalog.ServiceByID(ctx, sel.ServiceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return lines, nil, errs.Mark(err, errs.ErrServiceNotFound)
			}
			return lines, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		lines.services = append(lines.services, booking.ServiceLine{
			ServiceID:      svc.ID,
			UnitPriceCents: svc.PriceCents,
			Quantity:       sel.Quantity,
		})
	}

	setSnapshots := make(map[uuid.UUID]*shared.ServiceSetSnapshot, len(params.Sets))
	for _, sel := range params.Sets {
		set, err := u.catalog.ServiceSetByID(ctx, sel.SetID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return lines, nil, errs.Mark(err, errs.ErrServiceSetNotFound)
			}
			return lines, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		setSnapshots[set.ID] = set
		lines.sets = append(lines.sets, booking.SetLine{
			SetID:          set.ID,
			SalePriceCents: set.SalePriceCents,
			Quantity:       sel.Quantity,
		})
	}
	return lines, setSnapshots, nil
}

func (u *bookingCommands) resolveVoucher(ctx context.Context, rawCode string) (*shared.VoucherSnapshot, error) {
	code, err := voucher.NewCode(rawCode)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCode)
	}
	v, err := u.voucherQ.FindByCode(ctx, code.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrInvalidCode)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if v.Used {
		return nil, errs.Mark(errs.New("voucher already used"), errs.ErrInvalidCode)
	}
	return v, nil
}

// expandInstances turns lines into individually fulfillable instances. A
// quantity-N line produces N instances. Set constituents are expanded per
// set purchase, each priced at its commission basis (the adjusted price when
// present, else the standard price) so commission never sees the bundle
// sale price.
func expandInstances(b *booking.Booking, sets map[uuid.UUID]*shared.ServiceSetSnapshot, now time.Time) []fulfillment.Instance {
	var out []fulfillment.Instance
	seq := 1

	appendInstance := func(serviceID uuid.UUID, priceCents int64) {
		out = append(out, fulfillment.Instance{
			ID:         uuid.New(),
			BookingID:  b.ID(),
			ServiceID:  serviceID,
			PriceCents: priceCents,
			Sequence:   seq,
			Status:     fulfillment.StatusUnclaimed,
			Version:    1,
			UpdatedAt:  now,
		})
		seq++
	}

	for _, l := range b.ServiceLines() {
		for i := 0; i < l.Quantity; i++ {
			appendInstance(l.ServiceID, l.UnitPriceCents)
		}
	}
	for _, l := range b.SetLines() {
		set, ok := sets[l.SetID]
		if !ok {
			continue
		}
		for i := 0; i < l.Quantity; i++ {
			for _, item := range set.Items {
				basis := pricing.CommissionBasisCents(pricing.SetItem{
					StandardPriceCents: item.StandardPriceCents,
					AdjustedPriceCents: item.AdjustedPriceCents,
				})
				appendInstance(item.ServiceID, basis)
			}
		}
	}
	return out
}
