package readstore

import (
	"context"
	"errors"

	"salonflow/internal/infra"
	"salonflow/internal/infra/db"
	"salonflow/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CatalogReadStore serves the write side's price snapshots for services and
// service sets. Prices are read here once at booking creation and frozen onto
// the booking's lines and instances.
type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(dbtx db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: dbtx}
}

func (r *CatalogReadStore) ServiceByID(ctx context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, price_cents, duration_min, active
		FROM services
		WHERE id = $1`, id)

	var s shared.ServiceSnapshot
	if err := row.Scan(&s.ID, &s.Name, &s.PriceCents, &s.DurationMin, &s.Active); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "service not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find service", err)
	}
	return &s, nil
}

func (r *CatalogReadStore) ServiceSetByID(ctx context.Context, id uuid.UUID) (*shared.ServiceSetSnapshot, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, sale_price_cents, active
		FROM service_sets
		WHERE id = $1`, id)

	var set shared.ServiceSetSnapshot
	if err := row.Scan(&set.ID, &set.Name, &set.SalePriceCents, &set.Active); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "service set not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find service set", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT ssi.service_id, s.price_cents, ssi.adjusted_price_cents
		FROM service_set_items ssi
		JOIN services s ON s.id = ssi.service_id
		WHERE ssi.set_id = $1
		ORDER BY ssi.position`, id)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read service set items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item shared.SetItemSnapshot
		if err := rows.Scan(&item.ServiceID, &item.StandardPriceCents, &item.AdjustedPriceCents); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan service set item", err)
		}
		set.Items = append(set.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read service set items", err)
	}

	return &set, nil
}
