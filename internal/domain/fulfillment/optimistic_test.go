//go:build unit

package fulfillment_test

import (
	"testing"
	"time"

	"salonflow/internal/domain/fulfillment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimisticViewPrefersPending(t *testing.T) {
	confirmed := unclaimedInstance()
	opt := fulfillment.NewOptimistic(confirmed)
	assert.Equal(t, fulfillment.SyncConfirmed, opt.State())
	assert.Equal(t, confirmed, opt.View())

	staged, err := fulfillment.Claim(confirmed, alice, time.Now())
	require.NoError(t, err)
	opt.Stage(staged)

	assert.Equal(t, fulfillment.SyncPending, opt.State())
	assert.Equal(t, fulfillment.StatusClaimed, opt.View().Status)
}

func TestOptimisticConfirmIsVersionGated(t *testing.T) {
	confirmed := unclaimedInstance()
	confirmed.Version = 3
	opt := fulfillment.NewOptimistic(confirmed)

	stale := confirmed
	stale.Status = fulfillment.StatusClaimed
	stale.Version = 3
	assert.False(t, opt.Confirm(stale), "equal version must not merge")

	older := confirmed
	older.Version = 2
	assert.False(t, opt.Confirm(older), "older version must not merge")

	newer := confirmed
	newer.Status = fulfillment.StatusClaimed
	newer.ClaimedBy = &alice
	newer.Version = 4
	assert.True(t, opt.Confirm(newer))
	assert.Equal(t, fulfillment.SyncConfirmed, opt.State())
	assert.Equal(t, fulfillment.StatusClaimed, opt.View().Status)
}

func TestOptimisticConfirmClearsPending(t *testing.T) {
	confirmed := unclaimedInstance()
	opt := fulfillment.NewOptimistic(confirmed)

	staged, err := fulfillment.Claim(confirmed, alice, time.Now())
	require.NoError(t, err)
	opt.Stage(staged)

	authoritative := staged
	authoritative.Version = confirmed.Version + 1
	require.True(t, opt.Confirm(authoritative))

	assert.Equal(t, fulfillment.SyncConfirmed, opt.State())
	assert.Equal(t, authoritative, opt.View())
}

func TestOptimisticReject(t *testing.T) {
	confirmed := unclaimedInstance()
	opt := fulfillment.NewOptimistic(confirmed)

	staged, err := fulfillment.Claim(confirmed, alice, time.Now())
	require.NoError(t, err)
	opt.Stage(staged)

	opt.Reject()

	assert.Equal(t, fulfillment.SyncRejected, opt.State())
	assert.Equal(t, confirmed, opt.View(), "view rolls back to last confirmed snapshot")
}

func TestOptimisticDuplicateDeliveries(t *testing.T) {
	confirmed := unclaimedInstance()
	opt := fulfillment.NewOptimistic(confirmed)

	update := confirmed
	update.Status = fulfillment.StatusClaimed
	update.ClaimedBy = &alice
	update.Version = confirmed.Version + 1

	assert.True(t, opt.Confirm(update))
	assert.False(t, opt.Confirm(update), "duplicate delivery is a no-op")
	assert.Equal(t, update, opt.View())
}
