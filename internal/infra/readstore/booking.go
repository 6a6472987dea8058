package readstore

import (
	"context"
	"errors"

	"salonflow/internal/domain/pricing"
	"salonflow/internal/infra"
	"salonflow/internal/infra/db"
	"salonflow/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, customer_id, walk_in_name, branch, appointment_at, status, notes,
		       voucher_id, grand_discount_cents, created_at, updated_at
		FROM bookings
		WHERE id = $1`, id)

	var view queries.BookingView
	err := row.Scan(&view.ID, &view.CustomerID, &view.WalkInName, &view.Branch,
		&view.AppointmentAt, &view.Status, &view.Notes, &view.VoucherID,
		&view.Totals.GrandDiscountCents, &view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find booking", err)
	}

	subtotal, err := r.subtotal(ctx, id)
	if err != nil {
		return nil, err
	}

	instances, err := r.findInstances(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Instances = instances

	served := 0
	for _, in := range instances {
		if in.Status == "served" {
			served++
		}
	}

	view.Totals.SubtotalCents = subtotal
	view.Totals.GrandTotalCents = pricing.GrandTotalCents(subtotal, view.Totals.GrandDiscountCents)
	view.Totals.ServedCount = served
	view.Totals.RemainingCount = len(instances) - served

	return &view, nil
}

func (r *BookingReadStore) FindByBranch(ctx context.Context, branch string, limit int) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT b.id, b.branch, b.appointment_at, b.status,
		       COALESCE(b.final_total_cents, 0),
		       COUNT(si.id) FILTER (WHERE si.status = 'served'),
		       COUNT(si.id),
		       b.created_at
		FROM bookings b
		LEFT JOIN service_instances si ON si.booking_id = b.id
		WHERE b.branch = $1
		GROUP BY b.id
		ORDER BY b.appointment_at DESC
		LIMIT $2`, branch, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list bookings", err)
	}
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		err := rows.Scan(&item.ID, &item.Branch, &item.AppointmentAt, &item.Status,
			&item.TotalCents, &item.ServedCount, &item.InstanceCount, &item.CreatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan booking list item", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list bookings", err)
	}
	return items, nil
}

// subtotal sums service lines at snapshotted unit prices and set lines at
// bundle sale prices; constituent service prices never participate.
func (r *BookingReadStore) subtotal(ctx context.Context, bookingID uuid.UUID) (int64, error) {
	row := r.db.QueryRow(ctx, `
		SELECT COALESCE((
			SELECT SUM(unit_price_cents * quantity)
			FROM booking_service_lines WHERE booking_id = $1
		), 0) + COALESCE((
			SELECT SUM(sale_price_cents * quantity)
			FROM booking_set_lines WHERE booking_id = $1
		), 0)`, bookingID)

	var subtotal int64
	if err := row.Scan(&subtotal); err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to compute booking subtotal", err)
	}
	return subtotal, nil
}

func (r *BookingReadStore) findInstances(ctx context.Context, bookingID uuid.UUID) ([]queries.InstanceView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, booking_id, service_id, price_cents, sequence, status,
		       claimed_by, claimed_at, served_by, served_at, version, updated_at
		FROM service_instances
		WHERE booking_id = $1
		ORDER BY sequence`, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read booking instances", err)
	}
	defer rows.Close()

	var instances []queries.InstanceView
	for rows.Next() {
		var in queries.InstanceView
		err := rows.Scan(&in.ID, &in.BookingID, &in.ServiceID, &in.PriceCents, &in.Sequence,
			&in.Status, &in.ClaimedBy, &in.ClaimedAt, &in.ServedBy, &in.ServedAt,
			&in.Version, &in.UpdatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan booking instance", err)
		}
		instances = append(instances, in)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read booking instances", err)
	}
	return instances, nil
}
