package readstore

import (
	"context"
	"time"

	"rfq-offer-service/internal/domain/offer"
	"rfq-offer-service/internal/domain/rfq"
	"rfq-offer-service/internal/infra/db"
	"rfq-offer-service/internal/infra/repository"

	"github.com/google/uuid"
)

const (
	canonicalOffer = repository.SelectOffers + `
	WHERE rfq_id = $1 AND supplier_id = $2 AND superseded_at IS NULL`

	supersededOffers = repository.SelectOffers + `
	WHERE rfq_id = $1 AND supplier_id = $2 AND superseded_at IS NOT NULL
	ORDER BY version_number`
)

// RFQReadStore serves the supplier-facing reads. It takes no locks.
type RFQReadStore struct{}

func NewRFQReadStore() *RFQReadStore {
	return &RFQReadStore{}
}

func (s *RFQReadStore) FindRFQ(ctx context.Context, conn db.DBTX, id uuid.UUID) (*rfq.RFQ, time.Time, error) {
	return repository.LoadRFQ(ctx, conn, id, false)
}

func (s *RFQReadStore) FindCanonicalOffer(ctx context.Context, conn db.DBTX, rfqID, supplierID uuid.UUID) (*offer.Offer, error) {
	offers, err := repository.QueryOffers(ctx, conn, canonicalOffer, rfqID, supplierID)
	if err != nil {
		return nil, err
	}
	if len(offers) == 0 {
		return nil, nil
	}
	return &offers[0], nil
}

func (s *RFQReadStore) ListSupersededOffers(ctx context.Context, conn db.DBTX, rfqID, supplierID uuid.UUID) ([]offer.Offer, error) {
	return repository.QueryOffers(ctx, conn, supersededOffers, rfqID, supplierID)
}

func (s *RFQReadStore) IsDeclined(ctx context.Context, conn db.DBTX, rfqID, supplierID uuid.UUID) (bool, error) {
	return repository.DeclineExists(ctx, conn, rfqID, supplierID)
}
