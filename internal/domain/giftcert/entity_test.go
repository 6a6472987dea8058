//go:build unit

package giftcert_test

import (
	"testing"
	"time"

	"salonflow/internal/domain/giftcert"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeCert(t *testing.T, mutate func(*certParams)) *giftcert.GiftCertificate {
	t.Helper()
	p := &certParams{
		code:   "GC1234",
		status: giftcert.StatusActive,
		services: []giftcert.BundledService{
			{ServiceID: uuid.New(), Quantity: 1},
		},
	}
	if mutate != nil {
		mutate(p)
	}
	cert, err := giftcert.NewGiftCertificate(uuid.New(), p.code, p.status, p.services, p.sets, p.customerID, p.expiresAt)
	require.NoError(t, err)
	return cert
}

type certParams struct {
	code       string
	status     giftcert.Status
	services   []giftcert.BundledService
	sets       []giftcert.BundledSet
	customerID *uuid.UUID
	expiresAt  *time.Time
}

func TestGiftCertificateCode(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  string
		errIs error
	}{
		{name: "canonical form", raw: "GC1234", want: "GC1234"},
		{name: "lowercase is normalized", raw: "gc1234", want: "GC1234"},
		{name: "whitespace trimmed", raw: " gcAB12 ", want: "GCAB12"},
		{name: "voucher prefix rejected", raw: "BF1234", errIs: giftcert.ErrInvalidCodeFormat},
		{name: "too short", raw: "GC12", errIs: giftcert.ErrInvalidCodeFormat},
		{name: "empty", raw: "", errIs: giftcert.ErrInvalidCodeFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := giftcert.NewCode(tt.raw)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestEmptyBundleRejected(t *testing.T) {
	_, err := giftcert.NewGiftCertificate(uuid.New(), "GC1234", giftcert.StatusActive, nil, nil, nil, nil)
	assert.ErrorIs(t, err, giftcert.ErrEmptyBundle)
}

func TestValidateClaimableAt(t *testing.T) {
	now := time.Now()

	t.Run("active and unexpired", func(t *testing.T) {
		cert := activeCert(t, nil)
		assert.NoError(t, cert.ValidateClaimableAt(now))
	})

	t.Run("used certificate", func(t *testing.T) {
		cert := activeCert(t, func(p *certParams) { p.status = giftcert.StatusUsed })
		assert.ErrorIs(t, cert.ValidateClaimableAt(now), giftcert.ErrNotClaimable)
	})

	t.Run("expired status", func(t *testing.T) {
		cert := activeCert(t, func(p *certParams) { p.status = giftcert.StatusExpired })
		assert.ErrorIs(t, cert.ValidateClaimableAt(now), giftcert.ErrNotClaimable)
	})

	t.Run("active but past expiry", func(t *testing.T) {
		expired := now.Add(-time.Hour)
		cert := activeCert(t, func(p *certParams) { p.expiresAt = &expired })
		assert.ErrorIs(t, cert.ValidateClaimableAt(now), giftcert.ErrNotClaimable)
	})

	t.Run("expiry in the future", func(t *testing.T) {
		future := now.Add(time.Hour)
		cert := activeCert(t, func(p *certParams) { p.expiresAt = &future })
		assert.NoError(t, cert.ValidateClaimableAt(now))
	})
}

func TestValidateCustomer(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	t.Run("unbound certificate accepts anyone", func(t *testing.T) {
		cert := activeCert(t, nil)
		assert.NoError(t, cert.ValidateCustomer(&other))
		assert.NoError(t, cert.ValidateCustomer(nil))
	})

	t.Run("bound certificate requires the owner", func(t *testing.T) {
		cert := activeCert(t, func(p *certParams) { p.customerID = &owner })
		assert.NoError(t, cert.ValidateCustomer(&owner))
		assert.ErrorIs(t, cert.ValidateCustomer(&other), giftcert.ErrWrongCustomer)
		assert.ErrorIs(t, cert.ValidateCustomer(nil), giftcert.ErrWrongCustomer)
	})
}
