package readstore

import (
	"context"
	"errors"

	"salonflow/internal/infra"
	"salonflow/internal/infra/db"
	"salonflow/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
)

type VoucherReadStore struct {
	db db.DBTX
}

func NewVoucherReadStore(dbtx db.DBTX) *VoucherReadStore {
	return &VoucherReadStore{db: dbtx}
}

// FindByCode looks up a voucher by its normalized code. Callers normalize
// before lookup; the store never matches case-insensitively.
func (r *VoucherReadStore) FindByCode(ctx context.Context, code string) (*shared.VoucherSnapshot, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, code, discount_cents, used
		FROM vouchers
		WHERE code = $1`, code)

	var v shared.VoucherSnapshot
	if err := row.Scan(&v.ID, &v.Code, &v.DiscountCents, &v.Used); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "voucher not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find voucher by code", err)
	}
	return &v, nil
}
