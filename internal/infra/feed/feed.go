// Package feed carries service-instance change notifications between staff
// devices. Delivery is best-effort and at-least-once; consumers must tolerate
// duplicates and reordering, which the coordinator does by comparing snapshot
// versions before merging.
package feed

import (
	"time"

	"github.com/google/uuid"
)

// InstanceEvent is the wire form of one instance snapshot.
type InstanceEvent struct {
	InstanceID uuid.UUID  `json:"instance_id"`
	BookingID  uuid.UUID  `json:"booking_id"`
	ServiceID  uuid.UUID  `json:"service_id"`
	PriceCents int64      `json:"price_cents"`
	Sequence   int        `json:"sequence"`
	Status     string     `json:"status"`
	ClaimedBy  *uuid.UUID `json:"claimed_by,omitempty"`
	ClaimedAt  *time.Time `json:"claimed_at,omitempty"`
	ServedBy   *uuid.UUID `json:"served_by,omitempty"`
	ServedAt   *time.Time `json:"served_at,omitempty"`
	Version    int64      `json:"version"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
