package commands

import (
	"context"

	"salonflow/internal/domain/booking"
	"salonflow/internal/domain/fulfillment"
	"salonflow/internal/infra/db"
	"salonflow/internal/infra/feed"
	"salonflow/internal/usecase/shared"

	"github.com/google/uuid"
)

// Write-side collaborator contracts, implemented by internal/infra.

type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*booking.Booking, error)
	CancelGuarded(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
	UpdateStatusGuarded(ctx context.Context, dbtx db.DBTX, id uuid.UUID, from, to booking.Status) error
	UpdateFinalTotal(ctx context.Context, dbtx db.DBTX, id uuid.UUID, finalTotalCents int64) error
}

// InstanceStore is the conditional-write surface every fulfillment transition
// goes through. ConditionalTransition applies next only while the row still
// matches the expected status and claimant, so a losing racer always observes
// a conflict instead of overwriting the winner.
type InstanceStore interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*fulfillment.Instance, error)
	ConditionalTransition(
		ctx context.Context,
		dbtx db.DBTX,
		expectedStatus fulfillment.Status,
		expectedClaimant *uuid.UUID,
		next fulfillment.Instance,
	) (*fulfillment.Instance, error)
}

type VoucherRepository interface {
	Consume(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type GiftCertificateRepository interface {
	MarkUsed(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type CatalogReads interface {
	ServiceByID(ctx context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error)
	ServiceSetByID(ctx context.Context, id uuid.UUID) (*shared.ServiceSetSnapshot, error)
}

type VoucherReads interface {
	FindByCode(ctx context.Context, code string) (*shared.VoucherSnapshot, error)
}

type GiftCertificateReads interface {
	FindByCode(ctx context.Context, code string) (*shared.GiftCertificateSnapshot, error)
	FindByID(ctx context.Context, id uuid.UUID) (*shared.GiftCertificateSnapshot, error)
}

// FeedPublisher fans successful transitions out to other staff devices.
type FeedPublisher interface {
	PublishInstance(ctx context.Context, event feed.InstanceEvent) error
}

// FeedSubscriber delivers other devices' transitions for one booking.
type FeedSubscriber interface {
	Subscribe(ctx context.Context, bookingID uuid.UUID, handler func(feed.InstanceEvent)) error
}
