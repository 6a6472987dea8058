package readstore

import (
	"context"
	"errors"

	"salonflow/internal/infra"
	"salonflow/internal/infra/db"
	"salonflow/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type GiftCertificateReadStore struct {
	db db.DBTX
}

func NewGiftCertificateReadStore(dbtx db.DBTX) *GiftCertificateReadStore {
	return &GiftCertificateReadStore{db: dbtx}
}

func (r *GiftCertificateReadStore) FindByCode(ctx context.Context, code string) (*shared.GiftCertificateSnapshot, error) {
	return r.find(ctx, `code = $1`, code)
}

func (r *GiftCertificateReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.GiftCertificateSnapshot, error) {
	return r.find(ctx, `id = $1`, id)
}

func (r *GiftCertificateReadStore) find(ctx context.Context, where string, arg any) (*shared.GiftCertificateSnapshot, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, code, status, customer_id, expires_at
		FROM gift_certificates
		WHERE `+where, arg)

	var cert shared.GiftCertificateSnapshot
	if err := row.Scan(&cert.ID, &cert.Code, &cert.Status, &cert.CustomerID, &cert.ExpiresAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "gift certificate not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find gift certificate", err)
	}

	serviceRows, err := r.db.Query(ctx, `
		SELECT service_id, quantity
		FROM gift_certificate_services
		WHERE certificate_id = $1`, cert.ID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read certificate services", err)
	}
	defer serviceRows.Close()

	for serviceRows.Next() {
		var item shared.CertificateServiceSnapshot
		if err := serviceRows.Scan(&item.ServiceID, &item.Quantity); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan certificate service", err)
		}
		cert.Services = append(cert.Services, item)
	}
	if err := serviceRows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read certificate services", err)
	}

	setRows, err := r.db.Query(ctx, `
		SELECT set_id, quantity
		FROM gift_certificate_sets
		WHERE certificate_id = $1`, cert.ID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read certificate sets", err)
	}
	defer setRows.Close()

	for setRows.Next() {
		var item shared.CertificateSetSnapshot
		if err := setRows.Scan(&item.SetID, &item.Quantity); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan certificate set", err)
		}
		cert.Sets = append(cert.Sets, item)
	}
	if err := setRows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read certificate sets", err)
	}

	return &cert, nil
}
