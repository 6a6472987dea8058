//go:build unit

package voucher_test

import (
	"testing"

	"salonflow/internal/domain/voucher"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCode(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  string
		errIs error
	}{
		{name: "canonical form", raw: "BF1234", want: "BF1234"},
		{name: "lowercase is normalized", raw: "bf1234", want: "BF1234"},
		{name: "surrounding whitespace is trimmed", raw: "  bfA9Z1  ", want: "BFA9Z1"},
		{name: "letters allowed in suffix", raw: "BFABCD", want: "BFABCD"},
		{name: "wrong prefix", raw: "GC1234", errIs: voucher.ErrInvalidCodeFormat},
		{name: "too short", raw: "BF123", errIs: voucher.ErrInvalidCodeFormat},
		{name: "too long", raw: "BF12345", errIs: voucher.ErrInvalidCodeFormat},
		{name: "symbol in suffix", raw: "BF12-4", errIs: voucher.ErrInvalidCodeFormat},
		{name: "empty", raw: "", errIs: voucher.ErrInvalidCodeFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := voucher.NewCode(tt.raw)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestVoucherUsage(t *testing.T) {
	t.Run("unused voucher validates", func(t *testing.T) {
		v, err := voucher.NewVoucher(uuid.New(), "BF1234", 500, false)
		require.NoError(t, err)
		assert.NoError(t, v.ValidateUsage())
		assert.Equal(t, int64(500), v.DiscountCents())
	})

	t.Run("used voucher is rejected", func(t *testing.T) {
		v, err := voucher.NewVoucher(uuid.New(), "BF1234", 500, true)
		require.NoError(t, err)
		assert.ErrorIs(t, v.ValidateUsage(), voucher.ErrAlreadyUsed)
	})

	t.Run("negative discount is rejected", func(t *testing.T) {
		_, err := voucher.NewVoucher(uuid.New(), "BF1234", -100, false)
		assert.Error(t, err)
	})
}
