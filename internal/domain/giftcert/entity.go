package giftcert

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCodeFormat = errors.New("invalid gift certificate code format")
	ErrNotClaimable      = errors.New("gift certificate is not claimable")
	ErrWrongCustomer     = errors.New("gift certificate is bound to another customer")
	ErrEmptyBundle       = errors.New("gift certificate has no bundled items")
)

// Gift certificate codes are issued as GC followed by 4 uppercase alphanumerics.
var codeRegex = regexp.MustCompile(`^GC[A-Z0-9]{4}$`)

type Code string

func NewCode(raw string) (Code, error) {
	normalized := strings.TrimSpace(strings.ToUpper(raw))
	if !codeRegex.MatchString(normalized) {
		return Code(""), ErrInvalidCodeFormat
	}
	return Code(normalized), nil
}

func (c Code) String() string {
	return string(c)
}

// BundledService is one prepaid service entitlement on a certificate.
type BundledService struct {
	ServiceID uuid.UUID
	Quantity  int
}

// BundledSet is one prepaid service-set entitlement on a certificate.
type BundledSet struct {
	SetID    uuid.UUID
	Quantity int
}

// GiftCertificate is a prepaid bundle of services and sets. Claiming redeems
// the code into a new booking pre-populated with the bundle at zero
// incremental charge and flips the certificate to used; both halves succeed
// or neither persists.
type GiftCertificate struct {
	id         uuid.UUID
	code       Code
	status     Status
	services   []BundledService
	sets       []BundledSet
	customerID *uuid.UUID
	expiresAt  *time.Time
	createdAt  time.Time
}

func NewGiftCertificate(
	id uuid.UUID,
	code string,
	status Status,
	services []BundledService,
	sets []BundledSet,
	customerID *uuid.UUID,
	expiresAt *time.Time,
) (*GiftCertificate, error) {
	certCode, err := NewCode(code)
	if err != nil {
		return nil, err
	}
	if len(services) == 0 && len(sets) == 0 {
		return nil, ErrEmptyBundle
	}
	return &GiftCertificate{
		id:         id,
		code:       certCode,
		status:     status,
		services:   services,
		sets:       sets,
		customerID: customerID,
		expiresAt:  expiresAt,
	}, nil
}

// IsExpiredAt reports whether the certificate's expiry has passed, regardless
// of the stored status.
func (g *GiftCertificate) IsExpiredAt(t time.Time) bool {
	return g.expiresAt != nil && t.After(*g.expiresAt)
}

// ValidateClaimableAt rejects certificates that are not active or whose
// expiry has passed even if the stored status was never flipped.
func (g *GiftCertificate) ValidateClaimableAt(t time.Time) error {
	if g.status != StatusActive {
		return ErrNotClaimable
	}
	if g.IsExpiredAt(t) {
		return ErrNotClaimable
	}
	return nil
}

// ValidateCustomer enforces the optional customer binding.
func (g *GiftCertificate) ValidateCustomer(customerID *uuid.UUID) error {
	if g.customerID == nil {
		return nil
	}
	if customerID == nil || *customerID != *g.customerID {
		return ErrWrongCustomer
	}
	return nil
}

func (g *GiftCertificate) ID() uuid.UUID              { return g.id }
func (g *GiftCertificate) Code() Code                 { return g.code }
func (g *GiftCertificate) Status() Status             { return g.status }
func (g *GiftCertificate) Services() []BundledService { return g.services }
func (g *GiftCertificate) Sets() []BundledSet         { return g.sets }
func (g *GiftCertificate) CustomerID() *uuid.UUID     { return g.customerID }
func (g *GiftCertificate) ExpiresAt() *time.Time      { return g.expiresAt }
func (g *GiftCertificate) CreatedAt() time.Time       { return g.createdAt }
