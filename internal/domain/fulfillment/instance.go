package fulfillment

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusUnclaimed Status = "unclaimed"
	StatusClaimed   Status = "claimed"
	StatusServed    Status = "served"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusUnclaimed, StatusClaimed, StatusServed:
		return true
	default:
		return false
	}
}

// Instance is an immutable snapshot of one fulfillable unit of a purchased
// service. A service line with quantity 3 produces 3 instances. PriceCents is
// snapshotted at booking creation and never follows later catalog changes.
//
// Version is bumped by the store on every successful conditional write; it is
// the ordering key used when merging change-feed snapshots.
type Instance struct {
	ID         uuid.UUID
	BookingID  uuid.UUID
	ServiceID  uuid.UUID
	PriceCents int64
	Sequence   int
	Status     Status
	ClaimedBy  *uuid.UUID
	ClaimedAt  *time.Time
	ServedBy   *uuid.UUID
	ServedAt   *time.Time
	Version    int64
	UpdatedAt  time.Time
}

// ClaimantConsistent reports whether the claimed_by field agrees with the
// status: non-nil exactly when the instance is claimed or served.
func (i Instance) ClaimantConsistent() bool {
	switch i.Status {
	case StatusClaimed, StatusServed:
		return i.ClaimedBy != nil
	default:
		return i.ClaimedBy == nil
	}
}

// NewerThan reports whether this snapshot supersedes other. Change-feed
// delivery is at-least-once and unordered, so merges must compare versions.
func (i Instance) NewerThan(other Instance) bool {
	return i.Version > other.Version
}

func (i Instance) IsClaimedBy(actor uuid.UUID) bool {
	return i.ClaimedBy != nil && *i.ClaimedBy == actor
}

func (i Instance) IsServedBy(actor uuid.UUID) bool {
	return i.ServedBy != nil && *i.ServedBy == actor
}
