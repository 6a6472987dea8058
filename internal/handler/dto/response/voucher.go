package response

import (
	"time"

	"salonflow/internal/usecase/commands"

	"github.com/google/uuid"
)

type VoucherCheckResponse struct {
	VoucherID     uuid.UUID `json:"voucherId"`
	Code          string    `json:"code"`
	DiscountCents int64     `json:"discountCents"`
}

func FromVoucherCheck(result *commands.VoucherCheckResult) *VoucherCheckResponse {
	return &VoucherCheckResponse{
		VoucherID:     result.VoucherID,
		Code:          result.Code,
		DiscountCents: result.DiscountCents,
	}
}

type CertificateServiceResponse struct {
	ServiceID uuid.UUID `json:"serviceId"`
	Quantity  int       `json:"quantity"`
}

type CertificateSetResponse struct {
	SetID    uuid.UUID `json:"setId"`
	Quantity int       `json:"quantity"`
}

type GiftCertificateCheckResponse struct {
	CertificateID uuid.UUID                    `json:"certificateId"`
	Code          string                       `json:"code"`
	Services      []CertificateServiceResponse `json:"services"`
	Sets          []CertificateSetResponse     `json:"sets"`
	ExpiresAt     *time.Time                   `json:"expiresAt,omitempty"`
}

func FromGiftCertificateCheck(result *commands.GiftCertificateCheckResult) *GiftCertificateCheckResponse {
	services := make([]CertificateServiceResponse, len(result.Services))
	for i, s := range result.Services {
		services[i] = CertificateServiceResponse{ServiceID: s.ServiceID, Quantity: s.Quantity}
	}
	sets := make([]CertificateSetResponse, len(result.Sets))
	for i, s := range result.Sets {
		sets[i] = CertificateSetResponse{SetID: s.SetID, Quantity: s.Quantity}
	}
	return &GiftCertificateCheckResponse{
		CertificateID: result.CertificateID,
		Code:          result.Code,
		Services:      services,
		Sets:          sets,
		ExpiresAt:     result.ExpiresAt,
	}
}
