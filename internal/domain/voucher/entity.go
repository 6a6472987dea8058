package voucher

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNegativeDiscount = errors.New("voucher discount cannot be negative")
	ErrAlreadyUsed      = errors.New("voucher has already been used")
)

// Voucher is a single-use flat discount. Applying it sets the booking's grand
// discount to DiscountCents (replacing any prior discount) and consumption is
// atomic with booking creation. Consumption is irreversible; editing the
// booking afterwards never re-releases the voucher.
type Voucher struct {
	id            uuid.UUID
	code          Code
	discountCents int64
	used          bool
	createdAt     time.Time
}

func NewVoucher(id uuid.UUID, code string, discountCents int64, used bool) (*Voucher, error) {
	voucherCode, err := NewCode(code)
	if err != nil {
		return nil, err
	}
	if discountCents < 0 {
		return nil, ErrNegativeDiscount
	}
	return &Voucher{
		id:            id,
		code:          voucherCode,
		discountCents: discountCents,
		used:          used,
	}, nil
}

// ValidateUsage rejects vouchers that have already been consumed.
func (v *Voucher) ValidateUsage() error {
	if v.used {
		return ErrAlreadyUsed
	}
	return nil
}

func (v *Voucher) ID() uuid.UUID        { return v.id }
func (v *Voucher) Code() Code           { return v.code }
func (v *Voucher) DiscountCents() int64 { return v.discountCents }
func (v *Voucher) Used() bool           { return v.used }
func (v *Voucher) CreatedAt() time.Time { return v.createdAt }
