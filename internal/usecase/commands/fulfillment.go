package commands

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"salonflow/internal/domain/booking"
	"salonflow/internal/domain/fulfillment"
	"salonflow/internal/infra"
	"salonflow/internal/infra/feed"
	"salonflow/internal/pkg/clock"
	"salonflow/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TransitionParams struct {
	InstanceID uuid.UUID
	Action     fulfillment.Action
	ActorID    uuid.UUID
}

type FulfillmentCoordinator interface {
	Transition(ctx context.Context, params TransitionParams) (*fulfillment.Instance, error)
	WatchBooking(ctx context.Context, bookingID uuid.UUID) error
	SnapshotBooking(ctx context.Context, bookingID uuid.UUID) (*booking.Booking, error)
}

// fulfillmentCoordinator drives every instance transition through the same
// pipeline: load, apply the pure state machine, stage the result as a pending
// local snapshot, then attempt the conditional store write. The store is the
// single arbiter of races; a rejected write rolls the local snapshot back and
// surfaces a conflict the caller can refresh from.
type fulfillmentCoordinator struct {
	pool       *pgxpool.Pool
	instances  InstanceStore
	bookings   BookingRepository
	publisher  FeedPublisher
	subscriber FeedSubscriber
	clock      clock.Clock

	// mu guards local and watched and every mutation of the entries they
	// hold. Transitions run on request goroutines while feed deliveries
	// arrive on the consumer goroutine, so no Optimistic or watched
	// aggregate may be touched without it.
	mu      sync.Mutex
	local   map[uuid.UUID]*fulfillment.Optimistic
	watched map[uuid.UUID]*booking.Booking
}

func NewFulfillmentCoordinator(
	pool *pgxpool.Pool,
	instances InstanceStore,
	bookings BookingRepository,
	publisher FeedPublisher,
	subscriber FeedSubscriber,
	clk clock.Clock,
) FulfillmentCoordinator {
	return &fulfillmentCoordinator{
		pool:       pool,
		instances:  instances,
		bookings:   bookings,
		publisher:  publisher,
		subscriber: subscriber,
		clock:      clk,
		local:      make(map[uuid.UUID]*fulfillment.Optimistic),
		watched:    make(map[uuid.UUID]*booking.Booking),
	}
}

func (c *fulfillmentCoordinator) Transition(ctx context.Context, params TransitionParams) (*fulfillment.Instance, error) {
	current, err := c.instances.FindByID(ctx, c.pool, params.InstanceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrInstanceNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	next, err := fulfillment.Apply(*current, params.Action, params.ActorID, c.clock.Now())
	if err != nil {
		return nil, markTransitionErr(err)
	}

	c.stageLocal(*current, next)

	stored, err := c.conditionalWrite(ctx, current, next)
	if err != nil {
		c.rejectLocal(current.ID)
		if infra.IsKind(err, infra.KindConflict) {
			if params.Action == fulfillment.ActionClaim {
				return nil, errs.Mark(err, errs.ErrAlreadyClaimed)
			}
			return nil, errs.Mark(err, errs.ErrStaleState)
		}
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrInstanceNotFound)
		}
		if infra.IsKind(err, infra.KindUnavailable) {
			return nil, errs.Mark(err, errs.ErrTransientIO)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	c.confirmLocal(*stored)

	if err := c.publisher.PublishInstance(ctx, toEvent(*stored)); err != nil {
		// Other devices converge on their next refresh; the write itself won.
		slog.Warn("failed to publish instance event",
			"instance_id", stored.ID, "error", err)
	}

	return stored, nil
}

// conditionalWrite retries once on a transient store outage. Anything past
// one retry is surfaced so the staged local snapshot can be rolled back.
func (c *fulfillmentCoordinator) conditionalWrite(ctx context.Context, current *fulfillment.Instance, next fulfillment.Instance) (*fulfillment.Instance, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		stored, err := c.instances.ConditionalTransition(ctx, c.pool, current.Status, current.ClaimedBy, next)
		if err == nil {
			return stored, nil
		}
		lastErr = err
		if !infra.IsKind(err, infra.KindUnavailable) {
			return nil, err
		}
	}
	return nil, lastErr
}

// WatchBooking loads the aggregate and subscribes to its change feed so
// remote transitions get merged into the cached copy as they arrive.
func (c *fulfillmentCoordinator) WatchBooking(ctx context.Context, bookingID uuid.UUID) error {
	b, err := c.bookings.FindByID(ctx, c.pool, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrBookingNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	c.mu.Lock()
	c.watched[bookingID] = b
	c.mu.Unlock()

	if err := c.subscriber.Subscribe(ctx, bookingID, c.onInstanceEvent); err != nil {
		return errs.Mark(err, errs.ErrTransientIO)
	}
	return nil
}

// SnapshotBooking returns a copy of the watched aggregate, falling back to a
// fresh load. A copy, because the cached aggregate keeps changing under feed
// deliveries after this returns.
func (c *fulfillmentCoordinator) SnapshotBooking(ctx context.Context, bookingID uuid.UUID) (*booking.Booking, error) {
	c.mu.Lock()
	if b, ok := c.watched[bookingID]; ok {
		snapshot := b.Clone()
		c.mu.Unlock()
		return snapshot, nil
	}
	c.mu.Unlock()

	b, err := c.bookings.FindByID(ctx, c.pool, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return b, nil
}

// onInstanceEvent merges a feed snapshot. Delivery is at-least-once and
// unordered; both merge targets gate on version so duplicates and stale
// snapshots are dropped.
func (c *fulfillmentCoordinator) onInstanceEvent(event feed.InstanceEvent) {
	c.confirmLocal(fromEvent(event))
}

// stageLocal records the transition as pending under the coordinator lock.
func (c *fulfillmentCoordinator) stageLocal(current, next fulfillment.Instance) {
	c.mu.Lock()
	defer c.mu.Unlock()

	opt, ok := c.local[current.ID]
	if !ok {
		o := fulfillment.NewOptimistic(current)
		opt = &o
		c.local[current.ID] = opt
	}
	opt.Stage(next)
}

func (c *fulfillmentCoordinator) rejectLocal(instanceID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if opt, ok := c.local[instanceID]; ok {
		opt.Reject()
	}
}

// confirmLocal merges an authoritative snapshot into both the per-instance
// optimistic state and the watched aggregate, both version-gated.
func (c *fulfillmentCoordinator) confirmLocal(snapshot fulfillment.Instance) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if opt, ok := c.local[snapshot.ID]; ok {
		opt.Confirm(snapshot)
	} else {
		o := fulfillment.NewOptimistic(snapshot)
		c.local[snapshot.ID] = &o
	}
	if b, ok := c.watched[snapshot.BookingID]; ok {
		b.MergeInstance(snapshot)
	}
}

func markTransitionErr(err error) error {
	switch {
	case errors.Is(err, fulfillment.ErrAlreadyClaimed):
		return errs.Mark(err, errs.ErrAlreadyClaimed)
	case errors.Is(err, fulfillment.ErrNotOwner):
		return errs.Mark(err, errs.ErrNotOwner)
	default:
		return errs.Mark(err, errs.ErrInvalidTransition)
	}
}

func toEvent(in fulfillment.Instance) feed.InstanceEvent {
	return feed.InstanceEvent{
		InstanceID: in.ID,
		BookingID:  in.BookingID,
		ServiceID:  in.ServiceID,
		PriceCents: in.PriceCents,
		Sequence:   in.Sequence,
		Status:     in.Status.String(),
		ClaimedBy:  in.ClaimedBy,
		ClaimedAt:  in.ClaimedAt,
		ServedBy:   in.ServedBy,
		ServedAt:   in.ServedAt,
		Version:    in.Version,
		UpdatedAt:  in.UpdatedAt,
	}
}

func fromEvent(event feed.InstanceEvent) fulfillment.Instance {
	return fulfillment.Instance{
		ID:         event.InstanceID,
		BookingID:  event.BookingID,
		ServiceID:  event.ServiceID,
		PriceCents: event.PriceCents,
		Sequence:   event.Sequence,
		Status:     fulfillment.Status(event.Status),
		ClaimedBy:  event.ClaimedBy,
		ClaimedAt:  event.ClaimedAt,
		ServedBy:   event.ServedBy,
		ServedAt:   event.ServedAt,
		Version:    event.Version,
		UpdatedAt:  event.UpdatedAt,
	}
}
