package queries

import (
	"context"
	"time"

	"rfq-offer-service/internal/domain/offer"
	"rfq-offer-service/internal/domain/rfq"
	"rfq-offer-service/internal/infra"
	"rfq-offer-service/internal/infra/db"
	"rfq-offer-service/internal/pkg/clock"
	"rfq-offer-service/internal/pkg/errs"
	"rfq-offer-service/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrRFQNotFound = errs.New("rfq not found")

// SupplierRFQView is an RFQ as one supplier sees it: the line set plus that
// supplier's canonical offer, if any.
type SupplierRFQView struct {
	RFQ           *rfq.RFQ
	CreatedAt     time.Time
	ExistingOffer *offer.Offer
	Declined      bool
}

func (v *SupplierRFQView) HasExistingOffer() bool {
	return v.ExistingOffer != nil
}

type RFQReadStore interface {
	FindRFQ(ctx context.Context, conn db.DBTX, id uuid.UUID) (*rfq.RFQ, time.Time, error)
	FindCanonicalOffer(ctx context.Context, conn db.DBTX, rfqID, supplierID uuid.UUID) (*offer.Offer, error)
	ListSupersededOffers(ctx context.Context, conn db.DBTX, rfqID, supplierID uuid.UUID) ([]offer.Offer, error)
	IsDeclined(ctx context.Context, conn db.DBTX, rfqID, supplierID uuid.UUID) (bool, error)
}

type RFQQueries interface {
	GetForSupplier(ctx context.Context, supplierID, rfqID uuid.UUID) (*SupplierRFQView, error)
	ListOfferHistory(ctx context.Context, supplierID, rfqID uuid.UUID) (offer.History, error)
}

type rfqQueriesImpl struct {
	uow   shared.UnitOfWork
	store RFQReadStore
	clock clock.Clock
}

func NewRFQQueries(uow shared.UnitOfWork, store RFQReadStore, clk clock.Clock) RFQQueries {
	return &rfqQueriesImpl{uow: uow, store: store, clock: clk}
}

// GetForSupplier reads the RFQ, canonical offer and decline flag from one
// snapshot so a concurrent revise is never seen half-applied.
func (q *rfqQueriesImpl) GetForSupplier(ctx context.Context, supplierID, rfqID uuid.UUID) (*SupplierRFQView, error) {
	view := &SupplierRFQView{}
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx db.DBTX) error {
		r, createdAt, err := q.store.FindRFQ(ctx, tx, rfqID)
		if err != nil {
			return err
		}
		view.RFQ = r
		view.CreatedAt = createdAt

		existing, err := q.store.FindCanonicalOffer(ctx, tx, rfqID, supplierID)
		if err != nil {
			return err
		}
		if existing != nil {
			existing.Status = existing.EffectiveStatus(q.clock.Now())
		}
		view.ExistingOffer = existing

		view.Declined, err = q.store.IsDeclined(ctx, tx, rfqID, supplierID)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRFQNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *rfqQueriesImpl) ListOfferHistory(ctx context.Context, supplierID, rfqID uuid.UUID) (offer.History, error) {
	var history offer.History
	err := q.uow.WithDB(ctx, func(ctx context.Context, conn db.DBTX) error {
		if _, _, err := q.store.FindRFQ(ctx, conn, rfqID); err != nil {
			return err
		}
		offers, err := q.store.ListSupersededOffers(ctx, conn, rfqID, supplierID)
		if err != nil {
			return err
		}
		history = offer.NewHistory(offers)
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRFQNotFound
		}
		return nil, err
	}
	return history, nil
}
