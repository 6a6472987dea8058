//go:build unit

package booking_test

import (
	"testing"
	"time"

	"salonflow/internal/domain/booking"
	"salonflow/internal/domain/fulfillment"
	"salonflow/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookingValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*builder.BookingBuilder)
		errIs  error
	}{
		{
			name:   "valid booking",
			mutate: func(*builder.BookingBuilder) {},
		},
		{
			name: "walk-in without customer reference",
			mutate: func(b *builder.BookingBuilder) {
				b.WithCustomerID(nil).WithWalkInName("Maria")
			},
		},
		{
			name: "no customer and no walk-in name",
			mutate: func(b *builder.BookingBuilder) {
				b.WithCustomerID(nil)
			},
			errIs: booking.ErrNoCustomer,
		},
		{
			name: "no lines at all",
			mutate: func(b *builder.BookingBuilder) {
				b.ServiceLines = nil
				b.SetLines = nil
			},
			errIs: booking.ErrNoServiceLines,
		},
		{
			name: "unknown branch",
			mutate: func(b *builder.BookingBuilder) {
				b.WithBranch(booking.Branch("downtown"))
			},
			errIs: booking.ErrInvalidBranch,
		},
		{
			name: "negative unit price",
			mutate: func(b *builder.BookingBuilder) {
				b.WithServiceLines(booking.ServiceLine{ServiceID: uuid.New(), UnitPriceCents: -1, Quantity: 1})
			},
			errIs: booking.ErrNegativePrice,
		},
		{
			name: "zero quantity",
			mutate: func(b *builder.BookingBuilder) {
				b.WithServiceLines(booking.ServiceLine{ServiceID: uuid.New(), UnitPriceCents: 100, Quantity: 0})
			},
			errIs: booking.ErrNegativePrice,
		},
		{
			name: "set lines alone are enough",
			mutate: func(b *builder.BookingBuilder) {
				b.ServiceLines = nil
				b.WithSetLines(booking.SetLine{SetID: uuid.New(), SalePriceCents: 2500, Quantity: 1})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bb := builder.NewBookingBuilder()
			tt.mutate(bb)
			got, err := bb.BuildDomain()
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, booking.StatusPending, got.Status())
		})
	}
}

func TestRecompute(t *testing.T) {
	bb := builder.NewBookingBuilder().
		WithServiceLines(
			booking.ServiceLine{ServiceID: uuid.New(), UnitPriceCents: 500, Quantity: 2},
			booking.ServiceLine{ServiceID: uuid.New(), UnitPriceCents: 600, Quantity: 1},
		)
	b, err := bb.BuildDomain()
	require.NoError(t, err)

	totals := b.Recompute()
	assert.Equal(t, int64(1600), totals.SubtotalCents)
	assert.Equal(t, int64(1600), totals.GrandTotalCents)

	require.NoError(t, b.SetGrandDiscount(2000))
	totals = b.Recompute()
	assert.Equal(t, int64(0), totals.GrandTotalCents, "grand total floors at zero")

	served := builder.InstanceFor(b.ID(), 1, 500)
	served.Status = fulfillment.StatusServed
	staff := uuid.New()
	served.ClaimedBy = &staff
	served.ServedBy = &staff
	b.AttachInstances([]fulfillment.Instance{served, builder.InstanceFor(b.ID(), 2, 500), builder.InstanceFor(b.ID(), 3, 600)})

	totals = b.Recompute()
	assert.Equal(t, 1, totals.ServedCount)
	assert.Equal(t, 2, totals.RemainingCount)
}

func TestApplyVoucherReplacesDiscount(t *testing.T) {
	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)

	require.NoError(t, b.SetGrandDiscount(300))
	require.NoError(t, b.ApplyVoucher(uuid.New(), 500))

	totals := b.Recompute()
	assert.Equal(t, int64(500), totals.GrandDiscountCents, "voucher replaces manual discount, never stacks")
	assert.NotNil(t, b.VoucherID())

	assert.ErrorIs(t, b.ApplyVoucher(uuid.New(), -1), booking.ErrNegativePrice)
	assert.ErrorIs(t, b.SetGrandDiscount(-1), booking.ErrNegativePrice)
}

func TestCancelGuards(t *testing.T) {
	t.Run("cancel without served instances", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		b.AttachInstances([]fulfillment.Instance{builder.InstanceFor(b.ID(), 1, 1500)})

		require.NoError(t, b.Cancel())
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})

	t.Run("cancel refused once an instance is served", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		served := builder.InstanceFor(b.ID(), 1, 1500)
		served.Status = fulfillment.StatusServed
		staff := uuid.New()
		served.ClaimedBy = &staff
		served.ServedBy = &staff
		b.AttachInstances([]fulfillment.Instance{served})

		assert.ErrorIs(t, b.Cancel(), booking.ErrCancelBlocked)
		assert.Equal(t, booking.StatusPending, b.Status())
	})

	t.Run("cancel refused on terminal booking", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.Cancel())

		assert.ErrorIs(t, b.Cancel(), booking.ErrBookingFinished)
	})
}

func TestStatusWorkflow(t *testing.T) {
	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)

	instance := builder.InstanceFor(b.ID(), 1, 1500)
	b.AttachInstances([]fulfillment.Instance{instance})

	assert.ErrorIs(t, b.Start(), booking.ErrInvalidStatus)
	assert.ErrorIs(t, b.Complete(), booking.ErrInvalidStatus)

	require.NoError(t, b.Confirm())
	assert.ErrorIs(t, b.Confirm(), booking.ErrInvalidStatus)

	require.NoError(t, b.Start())
	assert.ErrorIs(t, b.Complete(), booking.ErrNotAllServed)

	served := instance
	served.Status = fulfillment.StatusServed
	staff := uuid.New()
	served.ClaimedBy = &staff
	served.ServedBy = &staff
	served.Version = instance.Version + 1
	require.True(t, b.MergeInstance(served))

	require.NoError(t, b.Complete())
	assert.Equal(t, booking.StatusCompleted, b.Status())
	assert.True(t, b.Status().IsTerminal())
}

func TestMergeInstanceVersionGating(t *testing.T) {
	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)

	instance := builder.InstanceFor(b.ID(), 1, 1500)
	instance.Version = 3
	b.AttachInstances([]fulfillment.Instance{instance})

	stale := instance
	stale.Status = fulfillment.StatusClaimed
	stale.Version = 2
	assert.False(t, b.MergeInstance(stale), "older snapshot must not merge")

	duplicate := instance
	assert.False(t, b.MergeInstance(duplicate), "equal version must not merge")

	newer := instance
	newer.Status = fulfillment.StatusClaimed
	staff := uuid.New()
	newer.ClaimedBy = &staff
	newer.ClaimedAt = timePtr(time.Now())
	newer.Version = 4
	assert.True(t, b.MergeInstance(newer))
	assert.Equal(t, fulfillment.StatusClaimed, b.Instances()[0].Status)

	unknown := builder.InstanceFor(b.ID(), 2, 500)
	assert.False(t, b.MergeInstance(unknown), "unknown instance is ignored")
}

func timePtr(t time.Time) *time.Time {
	return &t
}
