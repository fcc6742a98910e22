package repository

import (
	"context"
	"time"

	"rfq-offer-service/internal/domain/offer"
	"rfq-offer-service/internal/infra"
	"rfq-offer-service/internal/infra/db"
	"rfq-offer-service/internal/infra/repository/converter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SelectOffers is the head of every query passed to QueryOffers.
const SelectOffers = `SELECT ` + converter.OfferColumns + ` FROM offers`

const (
	lockCanonicalOffer = SelectOffers + `
	WHERE rfq_id = $1 AND supplier_id = $2 AND superseded_at IS NULL
	FOR UPDATE`

	supersedeOffer = `UPDATE offers SET superseded_at = $2 WHERE id = $1 AND superseded_at IS NULL`

	insertOffer = `INSERT INTO offers (
	id, rfq_id, supplier_id, version_number, status, total_amount, delivery_fee,
	delivery_window_start, delivery_window_end, payment_terms, notes, expires_at, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	insertLinePrice = `INSERT INTO offer_line_prices (` + converter.LinePriceColumns + `) VALUES ($1, $2, $3, $4, $5)`

	selectLinePrices = `SELECT ` + converter.LinePriceColumns + ` FROM offer_line_prices
	WHERE offer_id = ANY($1::uuid[]) ORDER BY offer_id, line_index`
)

type OfferRepository struct{}

func NewOfferRepository() *OfferRepository {
	return &OfferRepository{}
}

func (r *OfferRepository) LockCanonical(ctx context.Context, tx db.DBTX, rfqID, supplierID uuid.UUID) (*offer.Offer, error) {
	offers, err := QueryOffers(ctx, tx, lockCanonicalOffer, rfqID, supplierID)
	if err != nil {
		return nil, err
	}
	if len(offers) == 0 {
		return nil, nil
	}
	return &offers[0], nil
}

// Supersede stamps the canonical row. Touching no row means another
// transaction already superseded it.
func (r *OfferRepository) Supersede(ctx context.Context, tx db.DBTX, offerID uuid.UUID, at time.Time) error {
	tag, err := tx.Exec(ctx, supersedeOffer, offerID, at)
	if err != nil {
		return infra.WrapRepoErr("failed to supersede offer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("offer already superseded", nil, infra.KindConflict)
	}
	return nil
}

func (r *OfferRepository) Create(ctx context.Context, tx db.DBTX, o *offer.Offer) error {
	p := converter.OfferToCreateParams(o)
	_, err := tx.Exec(ctx, insertOffer,
		p.ID, p.RFQID, p.SupplierID, p.VersionNumber, p.Status, p.TotalAmount, p.DeliveryFee,
		p.DeliveryWindowStart, p.DeliveryWindowEnd, p.PaymentTerms, p.Notes, p.ExpiresAt, p.CreatedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to create offer", err)
	}

	for _, lp := range converter.LinePricesToCreateParams(o.ID, o.LinePrices) {
		if _, err := tx.Exec(ctx, insertLinePrice, lp.OfferID, lp.LineIndex, lp.UnitPrice, lp.TotalPrice, lp.Notes); err != nil {
			return infra.WrapRepoErr("failed to create offer line price", err)
		}
	}
	return nil
}

// QueryOffers runs an offers select built on OfferColumns and attaches the
// line prices of every returned offer.
func QueryOffers(ctx context.Context, conn db.DBTX, query string, args ...any) ([]offer.Offer, error) {
	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query offers", err)
	}
	headers, err := pgx.CollectRows(rows, pgx.RowToStructByName[converter.OfferRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan offers", err)
	}
	if len(headers) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, len(headers))
	for i, h := range headers {
		ids[i] = h.ID
	}
	rows, err = conn.Query(ctx, selectLinePrices, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query offer line prices", err)
	}
	lineRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[converter.LinePriceRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan offer line prices", err)
	}
	byOffer := converter.GroupLinePrices(lineRows)

	offers := make([]offer.Offer, 0, len(headers))
	for _, h := range headers {
		o, err := converter.OfferToDomain(h, byOffer[h.ID])
		if err != nil {
			return nil, infra.WrapRepoErr("stored offer is invalid", err, infra.KindDBFailure)
		}
		offers = append(offers, *o)
	}
	return offers, nil
}
