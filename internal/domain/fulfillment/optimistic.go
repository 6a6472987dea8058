package fulfillment

type SyncState string

const (
	SyncConfirmed SyncState = "confirmed"
	SyncPending   SyncState = "pending"
	SyncRejected  SyncState = "rejected"
)

// Optimistic wraps an instance with the local-first update discipline: a
// transition is applied locally as pending, then either confirmed by the
// authoritative store response (or a change-feed snapshot) or rolled back on
// conflict. The view always prefers the pending snapshot so the UI reflects
// the staff member's own action immediately.
//
// Optimistic is not safe for concurrent use; the owner serializes access.
type Optimistic struct {
	confirmed Instance
	pending   *Instance
	state     SyncState
}

func NewOptimistic(confirmed Instance) Optimistic {
	return Optimistic{confirmed: confirmed, state: SyncConfirmed}
}

// View returns the snapshot callers should render.
func (o Optimistic) View() Instance {
	if o.pending != nil {
		return *o.pending
	}
	return o.confirmed
}

func (o Optimistic) State() SyncState {
	return o.state
}

// Stage records a locally applied transition awaiting store acknowledgement.
func (o *Optimistic) Stage(next Instance) {
	staged := next
	o.pending = &staged
	o.state = SyncPending
}

// Confirm merges an authoritative snapshot. Stale snapshots (version not
// newer than the held one) are ignored so duplicate or reordered feed
// deliveries cannot roll state backwards.
func (o *Optimistic) Confirm(snapshot Instance) bool {
	if !snapshot.NewerThan(o.confirmed) {
		return false
	}
	o.confirmed = snapshot
	o.pending = nil
	o.state = SyncConfirmed
	return true
}

// Reject drops the pending snapshot after a lost race; the caller should
// refresh and may retry against the new state.
func (o *Optimistic) Reject() {
	o.pending = nil
	o.state = SyncRejected
}
