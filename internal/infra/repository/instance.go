package repository

import (
	"context"
	"errors"

	"salonflow/internal/domain/fulfillment"
	"salonflow/internal/infra"
	"salonflow/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type InstanceRepository struct{}

func NewInstanceRepository() *InstanceRepository {
	return &InstanceRepository{}
}

const instanceColumns = `
	id, booking_id, service_id, price_cents, sequence, status,
	claimed_by, claimed_at, served_by, served_at, version, updated_at`

func (r *InstanceRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*fulfillment.Instance, error) {
	row := dbtx.QueryRow(ctx, `
		SELECT `+instanceColumns+`
		FROM service_instances
		WHERE id = $1`, id)

	instance, err := scanInstance(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "service instance not found", err)
		}
		return nil, infra.WrapRepoErr(infra.ClassifyDBError(err), "failed to find service instance", err)
	}
	return instance, nil
}

func (r *InstanceRepository) FindByBooking(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID) ([]fulfillment.Instance, error) {
	rows, err := dbtx.Query(ctx, `
		SELECT `+instanceColumns+`
		FROM service_instances
		WHERE booking_id = $1
		ORDER BY sequence`, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list service instances", err)
	}
	defer rows.Close()

	var instances []fulfillment.Instance
	for rows.Next() {
		instance, err := scanInstance(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan service instance", err)
		}
		instances = append(instances, *instance)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read service instances", err)
	}
	return instances, nil
}

// ConditionalTransition writes next only if the row still matches the
// expected status and claimant; a lost race updates zero rows and surfaces
// as KindConflict instead of silently overwriting the winner.
func (r *InstanceRepository) ConditionalTransition(
	ctx context.Context,
	dbtx db.DBTX,
	expectedStatus fulfillment.Status,
	expectedClaimant *uuid.UUID,
	next fulfillment.Instance,
) (*fulfillment.Instance, error) {
	row := dbtx.QueryRow(ctx, `
		UPDATE service_instances
		SET status     = $1,
		    claimed_by = $2,
		    claimed_at = $3,
		    served_by  = $4,
		    served_at  = $5,
		    version    = version + 1,
		    updated_at = now()
		WHERE id = $6
		  AND status = $7
		  AND claimed_by IS NOT DISTINCT FROM $8
		RETURNING `+instanceColumns,
		next.Status, next.ClaimedBy, next.ClaimedAt, next.ServedBy, next.ServedAt,
		next.ID, expectedStatus, expectedClaimant)

	updated, err := scanInstance(row)
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, infra.WrapRepoErr(infra.ClassifyDBError(err), "failed to transition service instance", err)
	}

	// Zero rows: distinguish a missing instance from a lost race.
	if _, findErr := r.FindByID(ctx, dbtx, next.ID); findErr != nil {
		return nil, findErr
	}
	return nil, infra.WrapRepoErr(infra.KindConflict, "service instance state changed concurrently", err)
}

func scanInstance(row pgx.Row) (*fulfillment.Instance, error) {
	var in fulfillment.Instance
	err := row.Scan(
		&in.ID, &in.BookingID, &in.ServiceID, &in.PriceCents, &in.Sequence, &in.Status,
		&in.ClaimedBy, &in.ClaimedAt, &in.ServedBy, &in.ServedAt, &in.Version, &in.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &in, nil
}
