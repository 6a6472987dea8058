package commands

import (
	"context"

	"salonflow/internal/domain/voucher"
	"salonflow/internal/infra"
	"salonflow/internal/pkg/errs"

	"github.com/google/uuid"
)

type VoucherCheckResult struct {
	VoucherID     uuid.UUID
	Code          string
	DiscountCents int64
}

type VoucherCommands interface {
	Check(ctx context.Context, rawCode string) (*VoucherCheckResult, error)
}

type voucherCommands struct {
	vouchers VoucherReads
}

func NewVoucherCommands(vouchers VoucherReads) VoucherCommands {
	return &voucherCommands{vouchers: vouchers}
}

// Check validates a code without consuming it. Malformed, unknown and
// already-used codes are indistinguishable to the caller; consumption itself
// only happens inside booking creation.
func (u *voucherCommands) Check(ctx context.Context, rawCode string) (*VoucherCheckResult, error) {
	code, err := voucher.NewCode(rawCode)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCode)
	}

	v, err := u.vouchers.FindByCode(ctx, code.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrInvalidCode)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if v.Used {
		return nil, errs.Mark(errs.New("voucher already used"), errs.ErrInvalidCode)
	}

	return &VoucherCheckResult{
		VoucherID:     v.ID,
		Code:          v.Code,
		DiscountCents: v.DiscountCents,
	}, nil
}
