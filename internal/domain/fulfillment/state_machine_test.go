//go:build unit

package fulfillment_test

import (
	"math/rand"
	"testing"
	"time"

	"salonflow/internal/domain/fulfillment"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alice = uuid.New()
	bob   = uuid.New()
)

func unclaimedInstance() fulfillment.Instance {
	return fulfillment.Instance{
		ID:         uuid.New(),
		BookingID:  uuid.New(),
		ServiceID:  uuid.New(),
		PriceCents: 1500,
		Sequence:   1,
		Status:     fulfillment.StatusUnclaimed,
		Version:    1,
		UpdatedAt:  time.Now(),
	}
}

func claimedBy(actor uuid.UUID) fulfillment.Instance {
	in, err := fulfillment.Claim(unclaimedInstance(), actor, time.Now())
	if err != nil {
		panic(err)
	}
	return in
}

func servedBy(actor uuid.UUID) fulfillment.Instance {
	in, err := fulfillment.Serve(claimedBy(actor), actor, time.Now())
	if err != nil {
		panic(err)
	}
	return in
}

func TestTransitionTable(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name   string
		start  fulfillment.Instance
		action fulfillment.Action
		actor  uuid.UUID
		want   fulfillment.Status
		errIs  error
	}{
		{name: "claim unclaimed", start: unclaimedInstance(), action: fulfillment.ActionClaim, actor: alice, want: fulfillment.StatusClaimed},
		{name: "claim own claimed instance", start: claimedBy(alice), action: fulfillment.ActionClaim, actor: alice, errIs: fulfillment.ErrInvalidTransition},
		{name: "claim someone else's claimed instance", start: claimedBy(alice), action: fulfillment.ActionClaim, actor: bob, errIs: fulfillment.ErrAlreadyClaimed},
		{name: "claim served instance", start: servedBy(alice), action: fulfillment.ActionClaim, actor: bob, errIs: fulfillment.ErrInvalidTransition},

		{name: "unclaim own claim", start: claimedBy(alice), action: fulfillment.ActionUnclaim, actor: alice, want: fulfillment.StatusUnclaimed},
		{name: "unclaim someone else's claim", start: claimedBy(alice), action: fulfillment.ActionUnclaim, actor: bob, errIs: fulfillment.ErrNotOwner},
		{name: "unclaim unclaimed", start: unclaimedInstance(), action: fulfillment.ActionUnclaim, actor: alice, errIs: fulfillment.ErrInvalidTransition},
		{name: "unclaim served", start: servedBy(alice), action: fulfillment.ActionUnclaim, actor: alice, errIs: fulfillment.ErrInvalidTransition},

		{name: "serve own claim", start: claimedBy(alice), action: fulfillment.ActionServe, actor: alice, want: fulfillment.StatusServed},
		{name: "serve someone else's claim", start: claimedBy(alice), action: fulfillment.ActionServe, actor: bob, errIs: fulfillment.ErrNotOwner},
		{name: "serve unclaimed", start: unclaimedInstance(), action: fulfillment.ActionServe, actor: alice, errIs: fulfillment.ErrInvalidTransition},
		{name: "serve served", start: servedBy(alice), action: fulfillment.ActionServe, actor: alice, errIs: fulfillment.ErrInvalidTransition},

		{name: "unserve by claimant", start: servedBy(alice), action: fulfillment.ActionUnserve, actor: alice, want: fulfillment.StatusClaimed},
		{name: "unserve by non-owner", start: servedBy(alice), action: fulfillment.ActionUnserve, actor: bob, errIs: fulfillment.ErrNotOwner},
		{name: "unserve claimed", start: claimedBy(alice), action: fulfillment.ActionUnserve, actor: alice, errIs: fulfillment.ErrInvalidTransition},
		{name: "unserve unclaimed", start: unclaimedInstance(), action: fulfillment.ActionUnserve, actor: alice, errIs: fulfillment.ErrInvalidTransition},

		{name: "unknown action", start: unclaimedInstance(), action: fulfillment.Action("finish"), actor: alice, errIs: fulfillment.ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fulfillment.Apply(tt.start, tt.action, tt.actor, now)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Status)
			assert.True(t, got.ClaimantConsistent())
		})
	}
}

func TestClaimSetsOwnership(t *testing.T) {
	now := time.Now()
	got, err := fulfillment.Claim(unclaimedInstance(), alice, now)
	require.NoError(t, err)

	assert.True(t, got.IsClaimedBy(alice))
	require.NotNil(t, got.ClaimedAt)
	assert.Equal(t, now, *got.ClaimedAt)
	assert.Nil(t, got.ServedBy)
}

func TestUnserveKeepsClaim(t *testing.T) {
	got, err := fulfillment.Unserve(servedBy(alice), alice)
	require.NoError(t, err)

	assert.Equal(t, fulfillment.StatusClaimed, got.Status)
	assert.True(t, got.IsClaimedBy(alice))
	assert.Nil(t, got.ServedBy)
	assert.Nil(t, got.ServedAt)
}

func TestFailedTransitionLeavesInputUntouched(t *testing.T) {
	start := claimedBy(alice)
	snapshot := start

	_, err := fulfillment.Claim(start, bob, time.Now())
	require.ErrorIs(t, err, fulfillment.ErrAlreadyClaimed)

	if diff := cmp.Diff(snapshot, start); diff != "" {
		t.Fatalf("input mutated by failed transition (-want +got):\n%s", diff)
	}
}

// The claimant invariant must hold after any sequence of transitions, whether
// each one was accepted or rejected.
func TestClaimantConsistentUnderRandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	actors := []uuid.UUID{alice, bob, uuid.New()}
	actions := []fulfillment.Action{
		fulfillment.ActionClaim,
		fulfillment.ActionUnclaim,
		fulfillment.ActionServe,
		fulfillment.ActionUnserve,
	}

	for run := 0; run < 100; run++ {
		in := unclaimedInstance()
		for step := 0; step < 50; step++ {
			action := actions[rng.Intn(len(actions))]
			actor := actors[rng.Intn(len(actors))]

			next, err := fulfillment.Apply(in, action, actor, time.Now())
			if err != nil {
				continue
			}
			in = next
			require.True(t, in.ClaimantConsistent(),
				"run %d step %d: status %s with claimant %v", run, step, in.Status, in.ClaimedBy)
			if in.Status == fulfillment.StatusServed {
				require.NotNil(t, in.ServedBy)
			}
		}
	}
}

// Two stylists working one booking: claim, serve, revert, reassign.
func TestTwoStylistScenario(t *testing.T) {
	now := time.Now()
	in := unclaimedInstance()

	in, err := fulfillment.Claim(in, alice, now)
	require.NoError(t, err)

	_, err = fulfillment.Claim(in, bob, now)
	require.ErrorIs(t, err, fulfillment.ErrAlreadyClaimed)

	in, err = fulfillment.Serve(in, alice, now)
	require.NoError(t, err)

	in, err = fulfillment.Unserve(in, alice)
	require.NoError(t, err)
	assert.True(t, in.IsClaimedBy(alice))

	in, err = fulfillment.Unclaim(in, alice)
	require.NoError(t, err)

	in, err = fulfillment.Claim(in, bob, now)
	require.NoError(t, err)
	assert.True(t, in.IsClaimedBy(bob))
}
