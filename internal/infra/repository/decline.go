package repository

import (
	"context"
	"time"

	"rfq-offer-service/internal/infra"
	"rfq-offer-service/internal/infra/db"

	"github.com/google/uuid"
)

const (
	declineExists = `SELECT EXISTS (SELECT 1 FROM rfq_declines WHERE rfq_id = $1 AND supplier_id = $2)`
	insertDecline = `INSERT INTO rfq_declines (rfq_id, supplier_id, declined_at) VALUES ($1, $2, $3)
	ON CONFLICT (rfq_id, supplier_id) DO NOTHING`
)

type DeclineRepository struct{}

func NewDeclineRepository() *DeclineRepository {
	return &DeclineRepository{}
}

func (r *DeclineRepository) Exists(ctx context.Context, tx db.DBTX, rfqID, supplierID uuid.UUID) (bool, error) {
	return DeclineExists(ctx, tx, rfqID, supplierID)
}

func (r *DeclineRepository) Create(ctx context.Context, tx db.DBTX, rfqID, supplierID uuid.UUID, at time.Time) error {
	if _, err := tx.Exec(ctx, insertDecline, rfqID, supplierID, at); err != nil {
		return infra.WrapRepoErr("failed to record decline", err)
	}
	return nil
}

func DeclineExists(ctx context.Context, conn db.DBTX, rfqID, supplierID uuid.UUID) (bool, error) {
	var exists bool
	if err := conn.QueryRow(ctx, declineExists, rfqID, supplierID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check decline", err)
	}
	return exists, nil
}
