package readstore

import (
	"context"
	"time"

	"salonflow/internal/infra"
	"salonflow/internal/infra/db"
	"salonflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type CommissionReadStore struct {
	db db.DBTX
}

func NewCommissionReadStore(dbtx db.DBTX) *CommissionReadStore {
	return &CommissionReadStore{db: dbtx}
}

// FindServedByStaff lists instances served by one staff member in a period.
// The commission basis falls back from the set item's adjusted price to the
// service's standard price; the bundle sale price is never the basis.
func (r *CommissionReadStore) FindServedByStaff(ctx context.Context, staffID uuid.UUID, from, to time.Time) ([]queries.CommissionRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT si.id, si.booking_id, si.service_id, s.name, si.served_at,
		       COALESCE(ssi.adjusted_price_cents, s.price_cents)
		FROM service_instances si
		JOIN services s ON s.id = si.service_id
		LEFT JOIN booking_set_lines bsl ON bsl.booking_id = si.booking_id
		LEFT JOIN service_set_items ssi
		       ON ssi.set_id = bsl.set_id AND ssi.service_id = si.service_id
		WHERE si.served_by = $1
		  AND si.status = 'served'
		  AND si.served_at >= $2
		  AND si.served_at < $3
		ORDER BY si.served_at`, staffID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read staff commissions", err)
	}
	defer rows.Close()

	var result []queries.CommissionRow
	for rows.Next() {
		var row queries.CommissionRow
		err := rows.Scan(&row.InstanceID, &row.BookingID, &row.ServiceID,
			&row.ServiceName, &row.ServedAt, &row.BasisCents)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan commission row", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read staff commissions", err)
	}
	return result, nil
}
