package response

import (
	"time"

	"salonflow/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CommissionRowResponse struct {
	InstanceID  uuid.UUID `json:"instanceId"`
	BookingID   uuid.UUID `json:"bookingId"`
	ServiceID   uuid.UUID `json:"serviceId"`
	ServiceName string    `json:"serviceName"`
	ServedAt    time.Time `json:"servedAt"`
	BasisCents  int64     `json:"basisCents"`
}

type CommissionReportResponse struct {
	StaffID         uuid.UUID               `json:"staffId"`
	From            time.Time               `json:"from"`
	To              time.Time               `json:"to"`
	Rows            []CommissionRowResponse `json:"rows"`
	TotalBasisCents int64                   `json:"totalBasisCents"`
}

func FromCommissionReport(rm *queries.CommissionReport) *CommissionReportResponse {
	var resp CommissionReportResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}
