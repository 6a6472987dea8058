//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"salonflow/internal/infra"
	"salonflow/internal/infra/db"
	"salonflow/internal/pkg/clock"
	"salonflow/internal/pkg/errs"
	"salonflow/internal/usecase/commands"
	"salonflow/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVoucherRepo struct {
	conflict bool
	consumed []uuid.UUID
}

func (f *fakeVoucherRepo) Consume(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if f.conflict {
		return infra.WrapRepoErr(infra.KindConflict, "voucher already consumed", nil)
	}
	f.consumed = append(f.consumed, id)
	return nil
}

type bookingFixture struct {
	serviceID uuid.UUID
	setID     uuid.UUID
	itemA     uuid.UUID
	itemB     uuid.UUID
	voucherID uuid.UUID
	bookings  *fakeBookingRepo
	vouchers  *fakeVoucherRepo
	cmds      commands.BookingCommands
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	f := &bookingFixture{
		serviceID: uuid.New(),
		setID:     uuid.New(),
		itemA:     uuid.New(),
		itemB:     uuid.New(),
		voucherID: uuid.New(),
		bookings:  &fakeBookingRepo{},
		vouchers:  &fakeVoucherRepo{},
	}
	adjusted := int64(1800)
	catalog := &fakeCatalogReads{
		services: map[uuid.UUID]*shared.ServiceSnapshot{
			f.serviceID: {ID: f.serviceID, Name: "Cut", PriceCents: 3000, Active: true},
		},
		sets: map[uuid.UUID]*shared.ServiceSetSnapshot{
			f.setID: {
				ID:             f.setID,
				Name:           "Refresh",
				SalePriceCents: 5000,
				Items: []shared.SetItemSnapshot{
					{ServiceID: f.itemA, StandardPriceCents: 2000},
					{ServiceID: f.itemB, StandardPriceCents: 4000, AdjustedPriceCents: &adjusted},
				},
				Active: true,
			},
		},
	}
	voucherReads := &fakeVoucherReads{byCode: map[string]*shared.VoucherSnapshot{
		"BF1234": {ID: f.voucherID, Code: "BF1234", DiscountCents: 1500},
	}}
	f.cmds = commands.NewBookingCommands(
		nil, fakeTxManager{}, f.bookings, f.vouchers, catalog, voucherReads, clock.NewRealClock(),
	)
	return f
}

func (f *bookingFixture) createParams() commands.CreateBookingParams {
	customerID := uuid.New()
	return commands.CreateBookingParams{
		CustomerID:    &customerID,
		Branch:        "main",
		AppointmentAt: time.Now().Add(24 * time.Hour),
		Services:      []commands.ServiceSelection{{ServiceID: f.serviceID, Quantity: 2}},
		Sets:          []commands.SetSelection{{SetID: f.setID, Quantity: 1}},
	}
}

func TestCreateBookingExpandsInstances(t *testing.T) {
	f := newBookingFixture(t)

	id, err := f.cmds.Create(context.Background(), f.createParams())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	require.Len(t, f.bookings.created, 1)
	created := f.bookings.created[0]

	totals := created.Recompute()
	assert.Equal(t, int64(2*3000+5000), totals.SubtotalCents)

	// Quantity-2 service expands to 2 instances at the snapshotted unit
	// price; the set expands per item at each item's commission basis.
	instances := created.Instances()
	require.Len(t, instances, 4)
	prices := map[uuid.UUID][]int64{}
	for _, in := range instances {
		prices[in.ServiceID] = append(prices[in.ServiceID], in.PriceCents)
	}
	assert.ElementsMatch(t, []int64{3000, 3000}, prices[f.serviceID])
	assert.ElementsMatch(t, []int64{2000}, prices[f.itemA])
	assert.ElementsMatch(t, []int64{1800}, prices[f.itemB], "adjusted price wins over standard")
}

func TestCreateBookingConsumesVoucher(t *testing.T) {
	f := newBookingFixture(t)

	params := f.createParams()
	code := "bf1234"
	params.VoucherCode = &code

	_, err := f.cmds.Create(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{f.voucherID}, f.vouchers.consumed,
		"voucher consumption commits with the booking")
	require.Len(t, f.bookings.created, 1)
	assert.Equal(t, int64(1500), f.bookings.created[0].GrandDiscountCents())
}

func TestCreateBookingVoucherConsumeConflict(t *testing.T) {
	f := newBookingFixture(t)
	f.vouchers.conflict = true

	params := f.createParams()
	code := "BF1234"
	params.VoucherCode = &code

	_, err := f.cmds.Create(context.Background(), params)
	assert.ErrorIs(t, err, errs.ErrInvalidCode,
		"a code spent by a concurrent booking reads as invalid, aborting the transaction")
}

func TestCreateBookingUnknownService(t *testing.T) {
	f := newBookingFixture(t)

	params := f.createParams()
	params.Services = []commands.ServiceSelection{{ServiceID: uuid.New(), Quantity: 1}}

	_, err := f.cmds.Create(context.Background(), params)
	assert.ErrorIs(t, err, errs.ErrServiceNotFound)
}
