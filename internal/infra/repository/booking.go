package repository

import (
	"context"
	"errors"
	"time"

	"salonflow/internal/domain/booking"
	"salonflow/internal/domain/fulfillment"
	"salonflow/internal/infra"
	"salonflow/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingRepository struct {
	instances *InstanceRepository
}

func NewBookingRepository(instances *InstanceRepository) *BookingRepository {
	return &BookingRepository{instances: instances}
}

// Create persists the booking, its priced lines and its expanded instances in
// one statement batch. Callers run it inside a transaction; a booking must
// never exist with zero or partial instances.
func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	totals := b.Recompute()

	_, err := dbtx.Exec(ctx, `
		INSERT INTO bookings (
			id, customer_id, walk_in_name, branch, appointment_at, status, notes,
			voucher_id, grand_discount_cents, final_total_cents, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())`,
		b.ID(), b.CustomerID(), b.WalkInName(), b.Branch(), b.AppointmentAt(), b.Status(),
		b.Notes(), b.VoucherID(), b.GrandDiscountCents(), totals.GrandTotalCents)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to create booking", err)
	}

	for _, l := range b.ServiceLines() {
		_, err := dbtx.Exec(ctx, `
			INSERT INTO booking_service_lines (booking_id, service_id, unit_price_cents, quantity)
			VALUES ($1, $2, $3, $4)`,
			b.ID(), l.ServiceID, l.UnitPriceCents, l.Quantity)
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to create booking service line", err)
		}
	}
	for _, l := range b.SetLines() {
		_, err := dbtx.Exec(ctx, `
			INSERT INTO booking_set_lines (booking_id, set_id, sale_price_cents, quantity)
			VALUES ($1, $2, $3, $4)`,
			b.ID(), l.SetID, l.SalePriceCents, l.Quantity)
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to create booking set line", err)
		}
	}

	for _, in := range b.Instances() {
		_, err := dbtx.Exec(ctx, `
			INSERT INTO service_instances (
				id, booking_id, service_id, price_cents, sequence, status, version, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, 1, now())`,
			in.ID, b.ID(), in.ServiceID, in.PriceCents, in.Sequence, in.Status)
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to create service instance", err)
		}
	}

	return b.ID(), nil
}

// FindByID reconstructs the full aggregate including lines and instances.
func (r *BookingRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row := dbtx.QueryRow(ctx, `
		SELECT id, customer_id, walk_in_name, branch, appointment_at, status, notes,
		       voucher_id, grand_discount_cents, created_at, updated_at
		FROM bookings
		WHERE id = $1`, id)

	var (
		bookingID            uuid.UUID
		customerID           *uuid.UUID
		walkInName           *string
		branch               booking.Branch
		appointmentAt        time.Time
		status               booking.Status
		notes                string
		voucherID            *uuid.UUID
		grandDiscountCents   int64
		createdAt, updatedAt time.Time
	)
	err := row.Scan(&bookingID, &customerID, &walkInName, &branch, &appointmentAt, &status,
		&notes, &voucherID, &grandDiscountCents, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find booking", err)
	}

	serviceLines, setLines, err := r.findLines(ctx, dbtx, bookingID)
	if err != nil {
		return nil, err
	}

	instances, err := r.instances.FindByBooking(ctx, dbtx, bookingID)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		bookingID, customerID, walkInName, branch, appointmentAt, status, notes,
		serviceLines, setLines, voucherID, grandDiscountCents, instances,
		createdAt, updatedAt,
	), nil
}

// CancelGuarded is the conditional cancel transition: it refuses terminal
// bookings and any booking with a served instance, in one atomic statement.
func (r *BookingRepository) CancelGuarded(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE bookings
		SET status = $1, updated_at = now()
		WHERE id = $2
		  AND status NOT IN ($3, $4, $5)
		  AND NOT EXISTS (
			SELECT 1 FROM service_instances si
			WHERE si.booking_id = $2 AND si.status = $6
		  )`,
		booking.StatusCancelled, id,
		booking.StatusCancelled, booking.StatusCompleted, booking.StatusNoShow,
		fulfillment.StatusServed)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to cancel booking", err)
	}
	if tag.RowsAffected() == 0 {
		if _, findErr := r.FindByID(ctx, dbtx, id); findErr != nil {
			return findErr
		}
		return infra.WrapRepoErr(infra.KindConflict, "booking cannot be cancelled", nil)
	}
	return nil
}

// UpdateStatusGuarded performs a compare-and-swap status transition.
func (r *BookingRepository) UpdateStatusGuarded(ctx context.Context, dbtx db.DBTX, id uuid.UUID, from, to booking.Status) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE bookings
		SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3`,
		to, id, from)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		if _, findErr := r.FindByID(ctx, dbtx, id); findErr != nil {
			return findErr
		}
		return infra.WrapRepoErr(infra.KindConflict, "booking status changed concurrently", nil)
	}
	return nil
}

// UpdateFinalTotal caches the recomputed grand total on the booking row.
func (r *BookingRepository) UpdateFinalTotal(ctx context.Context, dbtx db.DBTX, id uuid.UUID, finalTotalCents int64) error {
	_, err := dbtx.Exec(ctx, `
		UPDATE bookings
		SET final_total_cents = $1, updated_at = now()
		WHERE id = $2`,
		finalTotalCents, id)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update booking total", err)
	}
	return nil
}

func (r *BookingRepository) findLines(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID) ([]booking.ServiceLine, []booking.SetLine, error) {
	rows, err := dbtx.Query(ctx, `
		SELECT service_id, unit_price_cents, quantity
		FROM booking_service_lines
		WHERE booking_id = $1`, bookingID)
	if err != nil {
		return nil, nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read booking service lines", err)
	}
	defer rows.Close()

	var serviceLines []booking.ServiceLine
	for rows.Next() {
		var l booking.ServiceLine
		if err := rows.Scan(&l.ServiceID, &l.UnitPriceCents, &l.Quantity); err != nil {
			return nil, nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan booking service line", err)
		}
		serviceLines = append(serviceLines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read booking service lines", err)
	}

	setRows, err := dbtx.Query(ctx, `
		SELECT set_id, sale_price_cents, quantity
		FROM booking_set_lines
		WHERE booking_id = $1`, bookingID)
	if err != nil {
		return nil, nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read booking set lines", err)
	}
	defer setRows.Close()

	var setLines []booking.SetLine
	for setRows.Next() {
		var l booking.SetLine
		if err := setRows.Scan(&l.SetID, &l.SalePriceCents, &l.Quantity); err != nil {
			return nil, nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan booking set line", err)
		}
		setLines = append(setLines, l)
	}
	if err := setRows.Err(); err != nil {
		return nil, nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read booking set lines", err)
	}

	return serviceLines, setLines, nil
}
