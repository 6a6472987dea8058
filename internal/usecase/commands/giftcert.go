package commands

import (
	"context"
	"time"

	"salonflow/internal/domain/booking"
	"salonflow/internal/domain/fulfillment"
	"salonflow/internal/domain/giftcert"
	"salonflow/internal/domain/pricing"
	"salonflow/internal/infra"
	"salonflow/internal/infra/db"
	"salonflow/internal/pkg/clock"
	"salonflow/internal/pkg/errs"
	"salonflow/internal/usecase/shared"

	"github.com/google/uuid"
)

type GiftCertificateCheckResult struct {
	CertificateID uuid.UUID
	Code          string
	Services      []shared.CertificateServiceSnapshot
	Sets          []shared.CertificateSetSnapshot
	ExpiresAt     *time.Time
}

type ClaimGiftCertificateParams struct {
	Code          string
	CustomerID    *uuid.UUID
	WalkInName    *string
	Branch        string
	AppointmentAt time.Time
	Notes         string
}

type GiftCertificateCommands interface {
	Check(ctx context.Context, rawCode string) (*GiftCertificateCheckResult, error)
	Claim(ctx context.Context, params ClaimGiftCertificateParams) (uuid.UUID, error)
}

type giftCertificateCommands struct {
	txm      shared.TxManager
	bookings BookingRepository
	certs    GiftCertificateRepository
	certQ    GiftCertificateReads
	catalog  CatalogReads
	clock    clock.Clock
}

func NewGiftCertificateCommands(
	txm shared.TxManager,
	bookings BookingRepository,
	certs GiftCertificateRepository,
	certQ GiftCertificateReads,
	catalog CatalogReads,
	clk clock.Clock,
) GiftCertificateCommands {
	return &giftCertificateCommands{
		txm:      txm,
		bookings: bookings,
		certs:    certs,
		certQ:    certQ,
		catalog:  catalog,
		clock:    clk,
	}
}

// Check is the read-only first phase of redemption: it validates the code and
// returns the bundle contents so staff can review before claiming. Nothing is
// consumed here.
func (u *giftCertificateCommands) Check(ctx context.Context, rawCode string) (*GiftCertificateCheckResult, error) {
	cert, err := u.load(ctx, rawCode)
	if err != nil {
		return nil, err
	}
	if err := cert.entity.ValidateClaimableAt(u.clock.Now()); err != nil {
		return nil, errs.Mark(err, errs.ErrNotClaimable)
	}

	return &GiftCertificateCheckResult{
		CertificateID: cert.snapshot.ID,
		Code:          cert.snapshot.Code,
		Services:      cert.snapshot.Services,
		Sets:          cert.snapshot.Sets,
		ExpiresAt:     cert.snapshot.ExpiresAt,
	}, nil
}

// Claim is the second phase: flip the certificate to used and create the
// redemption booking in one transaction. The booking lines carry zero payable
// price because the bundle was prepaid, while the instances keep catalog
// prices so commission accrues normally when they are served. The used flip
// is a compare-and-set on the active status, so two devices racing the same
// code produce exactly one booking.
func (u *giftCertificateCommands) Claim(ctx context.Context, params ClaimGiftCertificateParams) (uuid.UUID, error) {
	cert, err := u.load(ctx, params.Code)
	if err != nil {
		return uuid.Nil, err
	}
	now := u.clock.Now()
	if err := cert.entity.ValidateClaimableAt(now); err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrNotClaimable)
	}
	if err := cert.entity.ValidateCustomer(params.CustomerID); err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrNotClaimable)
	}

	b, instances, err := u.buildRedemption(ctx, cert.snapshot, params, now)
	if err != nil {
		return uuid.Nil, err
	}
	b.AttachInstances(instances)

	var bookingID uuid.UUID
	err = u.txm.RunWithRetry(ctx, func(tx db.DBTX) error {
		if err := u.certs.MarkUsed(ctx, tx, cert.snapshot.ID); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, errs.ErrNotClaimable)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		id, err := u.bookings.Create(ctx, tx, b)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		bookingID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return bookingID, nil
}

type loadedCertificate struct {
	snapshot *shared.GiftCertificateSnapshot
	entity   *giftcert.GiftCertificate
}

func (u *giftCertificateCommands) load(ctx context.Context, rawCode string) (*loadedCertificate, error) {
	code, err := giftcert.NewCode(rawCode)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCode)
	}

	snapshot, err := u.certQ.FindByCode(ctx, code.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrInvalidCode)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	services := make([]giftcert.BundledService, len(snapshot.Services))
	for i, s := range snapshot.Services {
		services[i] = giftcert.BundledService{ServiceID: s.ServiceID, Quantity: s.Quantity}
	}
	sets := make([]giftcert.BundledSet, len(snapshot.Sets))
	for i, s := range snapshot.Sets {
		sets[i] = giftcert.BundledSet{SetID: s.SetID, Quantity: s.Quantity}
	}

	entity, err := giftcert.NewGiftCertificate(
		snapshot.ID,
		snapshot.Code,
		giftcert.Status(snapshot.Status),
		services,
		sets,
		snapshot.CustomerID,
		snapshot.ExpiresAt,
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCode)
	}
	return &loadedCertificate{snapshot: snapshot, entity: entity}, nil
}

func (u *giftCertificateCommands) buildRedemption(
	ctx context.Context,
	snapshot *shared.GiftCertificateSnapshot,
	params ClaimGiftCertificateParams,
	now time.Time,
) (*booking.Booking, []fulfillment.Instance, error) {
	var serviceLines []booking.ServiceLine
	var setLines []booking.SetLine
	var instancePrices []instancePrice

	for _, bundled := range snapshot.Services {
		svc, err := u.catalog.ServiceByID(ctx, bundled.ServiceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, nil, errs.Mark(err, errs.ErrServiceNotFound)
			}
			return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		serviceLines = append(serviceLines, booking.ServiceLine{
			ServiceID:      svc.ID,
			UnitPriceCents: 0,
			Quantity:       bundled.Quantity,
		})
		for i := 0; i < bundled.Quantity; i++ {
			instancePrices = append(instancePrices, instancePrice{serviceID: svc.ID, priceCents: svc.PriceCents})
		}
	}

	for _, bundled := range snapshot.Sets {
		set, err := u.catalog.ServiceSetByID(ctx, bundled.SetID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, nil, errs.Mark(err, errs.ErrServiceSetNotFound)
			}
			return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		setLines = append(setLines, booking.SetLine{
			SetID:          set.ID,
			SalePriceCents: 0,
			Quantity:       bundled.Quantity,
		})
		for i := 0; i < bundled.Quantity; i++ {
			for _, item := range set.Items {
				basis := pricing.CommissionBasisCents(pricing.SetItem{
					StandardPriceCents: item.StandardPriceCents,
					AdjustedPriceCents: item.AdjustedPriceCents,
				})
				instancePrices = append(instancePrices, instancePrice{serviceID: item.ServiceID, priceCents: basis})
			}
		}
	}

	b, err := booking.NewBooking(
		params.CustomerID,
		params.WalkInName,
		booking.Branch(params.Branch),
		params.AppointmentAt,
		params.Notes,
		serviceLines,
		setLines,
	)
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	instances := make([]fulfillment.Instance, len(instancePrices))
	for i, p := range instancePrices {
		instances[i] = fulfillment.Instance{
			ID:         uuid.New(),
			BookingID:  b.ID(),
			ServiceID:  p.serviceID,
			PriceCents: p.priceCents,
			Sequence:   i + 1,
			Status:     fulfillment.StatusUnclaimed,
			Version:    1,
			UpdatedAt:  now,
		}
	}
	return b, instances, nil
}

type instancePrice struct {
	serviceID  uuid.UUID
	priceCents int64
}
