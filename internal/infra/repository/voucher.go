package repository

import (
	"context"

	"salonflow/internal/infra"
	"salonflow/internal/infra/db"

	"github.com/google/uuid"
)

type VoucherRepository struct{}

func NewVoucherRepository() *VoucherRepository {
	return &VoucherRepository{}
}

// Consume flips the voucher to used, conditioned on it still being unused.
// Runs inside the booking-creation transaction; a concurrent consumption
// surfaces as KindConflict and rolls the whole creation back.
func (r *VoucherRepository) Consume(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE vouchers
		SET used = true, used_at = now()
		WHERE id = $1 AND used = false`, id)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to consume voucher", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindConflict, "voucher already used", nil)
	}
	return nil
}
