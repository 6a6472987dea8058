package fulfillment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("transition not allowed from current state")
	ErrNotOwner          = errors.New("actor does not hold the claim")
	ErrAlreadyClaimed    = errors.New("instance already claimed by another actor")
)

type Action string

const (
	ActionClaim   Action = "claim"
	ActionUnclaim Action = "unclaim"
	ActionServe   Action = "serve"
	ActionUnserve Action = "unserve"
)

// Claim assigns an unclaimed instance to actor. Claiming an instance already
// held by someone else fails with ErrAlreadyClaimed; this is the race the
// coordinator's conditional writes must win or lose cleanly.
func Claim(in Instance, actor uuid.UUID, now time.Time) (Instance, error) {
	switch in.Status {
	case StatusUnclaimed:
		out := in
		out.Status = StatusClaimed
		out.ClaimedBy = &actor
		out.ClaimedAt = &now
		return out, nil
	case StatusClaimed:
		if in.IsClaimedBy(actor) {
			return Instance{}, ErrInvalidTransition
		}
		return Instance{}, ErrAlreadyClaimed
	default:
		return Instance{}, ErrInvalidTransition
	}
}

// Unclaim releases a claim before service. Only the claimant may release.
func Unclaim(in Instance, actor uuid.UUID) (Instance, error) {
	if in.Status != StatusClaimed {
		return Instance{}, ErrInvalidTransition
	}
	if !in.IsClaimedBy(actor) {
		return Instance{}, ErrNotOwner
	}
	out := in
	out.Status = StatusUnclaimed
	out.ClaimedBy = nil
	out.ClaimedAt = nil
	return out, nil
}

// Serve marks a claimed instance as delivered by its claimant.
func Serve(in Instance, actor uuid.UUID, now time.Time) (Instance, error) {
	if in.Status != StatusClaimed {
		return Instance{}, ErrInvalidTransition
	}
	if !in.IsClaimedBy(actor) {
		return Instance{}, ErrNotOwner
	}
	out := in
	out.Status = StatusServed
	out.ServedBy = &actor
	out.ServedAt = &now
	return out, nil
}

// Unserve reverts a served instance back to claimed. The claim and its
// claimant survive the round trip. Either the claimant or the server may
// revert.
func Unserve(in Instance, actor uuid.UUID) (Instance, error) {
	if in.Status != StatusServed {
		return Instance{}, ErrInvalidTransition
	}
	if !in.IsClaimedBy(actor) && !in.IsServedBy(actor) {
		return Instance{}, ErrNotOwner
	}
	out := in
	out.Status = StatusClaimed
	out.ServedBy = nil
	out.ServedAt = nil
	return out, nil
}

// Apply dispatches an action by name. Unknown actions are invalid transitions.
func Apply(in Instance, action Action, actor uuid.UUID, now time.Time) (Instance, error) {
	switch action {
	case ActionClaim:
		return Claim(in, actor, now)
	case ActionUnclaim:
		return Unclaim(in, actor)
	case ActionServe:
		return Serve(in, actor, now)
	case ActionUnserve:
		return Unserve(in, actor)
	default:
		return Instance{}, ErrInvalidTransition
	}
}
