package queries

import (
	"context"
	"time"

	"salonflow/internal/pkg/errs"

	"github.com/google/uuid"
)

type CommissionQueries interface {
	StaffReport(ctx context.Context, staffID uuid.UUID, from, to time.Time) (*CommissionReport, error)
}

type CommissionReadStore interface {
	FindServedByStaff(ctx context.Context, staffID uuid.UUID, from, to time.Time) ([]CommissionRow, error)
}

type commissionQueriesImpl struct {
	store CommissionReadStore
}

func NewCommissionQueries(store CommissionReadStore) CommissionQueries {
	return &commissionQueriesImpl{store: store}
}

func (q *commissionQueriesImpl) StaffReport(ctx context.Context, staffID uuid.UUID, from, to time.Time) (*CommissionReport, error) {
	rows, err := q.store.FindServedByStaff(ctx, staffID, from, to)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	var total int64
	for _, r := range rows {
		total += r.BasisCents
	}

	return &CommissionReport{
		StaffID:         staffID,
		From:            from,
		To:              to,
		Rows:            rows,
		TotalBasisCents: total,
	}, nil
}
