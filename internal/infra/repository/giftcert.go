package repository

import (
	"context"

	"salonflow/internal/domain/giftcert"
	"salonflow/internal/infra"
	"salonflow/internal/infra/db"

	"github.com/google/uuid"
)

type GiftCertificateRepository struct{}

func NewGiftCertificateRepository() *GiftCertificateRepository {
	return &GiftCertificateRepository{}
}

// MarkUsed flips an active certificate to used, conditioned on it still being
// active. Runs inside the claim transaction so the booking and the flip
// persist together or not at all.
func (r *GiftCertificateRepository) MarkUsed(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE gift_certificates
		SET status = $1, used_at = now()
		WHERE id = $2 AND status = $3`,
		giftcert.StatusUsed, id, giftcert.StatusActive)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to mark gift certificate used", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindConflict, "gift certificate is not active", nil)
	}
	return nil
}
