package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types (CQRS separation)
type ServiceSnapshot struct {
	ID          uuid.UUID
	Name        string
	PriceCents  int64
	DurationMin int
	Active      bool
}

type SetItemSnapshot struct {
	ServiceID          uuid.UUID
	StandardPriceCents int64
	AdjustedPriceCents *int64
}

type ServiceSetSnapshot struct {
	ID             uuid.UUID
	Name           string
	SalePriceCents int64
	Items          []SetItemSnapshot
	Active         bool
}

type VoucherSnapshot struct {
	ID            uuid.UUID
	Code          string
	DiscountCents int64
	Used          bool
}

type CertificateServiceSnapshot struct {
	ServiceID uuid.UUID
	Quantity  int
}

type CertificateSetSnapshot struct {
	SetID    uuid.UUID
	Quantity int
}

type GiftCertificateSnapshot struct {
	ID         uuid.UUID
	Code       string
	Status     string
	Services   []CertificateServiceSnapshot
	Sets       []CertificateSetSnapshot
	CustomerID *uuid.UUID
	ExpiresAt  *time.Time
}
