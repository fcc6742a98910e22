package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"rfq-offer-service/internal/domain/offer"
	"rfq-offer-service/internal/domain/rfq"
	"rfq-offer-service/internal/infra"
	"rfq-offer-service/internal/pkg/clock"
	"rfq-offer-service/internal/pkg/config"
	"rfq-offer-service/internal/pkg/errs"
	"rfq-offer-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrRFQNotFound             = errs.New("rfq not found")
	ErrRFQClosed               = errs.New("rfq is closed for offers")
	ErrRFQDeclined             = errs.New("rfq was declined by this supplier")
	ErrInvalidOffer            = errs.New("invalid offer")
	ErrOfferFinalized          = errs.New("offer is final and cannot be revised")
	ErrVersionConflict         = errs.New("offer was revised concurrently")
	ErrOfferAccepted           = errs.New("rfq with an accepted offer cannot be declined")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type SubmitOfferResult struct {
	OfferID       uuid.UUID
	VersionNumber int
	Revised       bool
}

type OfferCommands interface {
	// SubmitOffer creates version 1 or revises the canonical offer. The
	// caller does not pick the version; it is assigned under a row lock.
	SubmitOffer(ctx context.Context, supplierID, rfqID uuid.UUID, sub offer.Submission) (*SubmitOfferResult, error)
	DeclineRFQ(ctx context.Context, supplierID, rfqID uuid.UUID) error
}

type offerCommandsImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	tolerance decimal.Decimal
}

func NewOfferCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) (OfferCommands, error) {
	tol, err := cfg.Negotiation.Tolerance()
	if err != nil {
		return nil, err
	}
	return &offerCommandsImpl{uow: uow, clock: clk, tolerance: tol}, nil
}

func (uc *offerCommandsImpl) SubmitOffer(ctx context.Context, supplierID, rfqID uuid.UUID, sub offer.Submission) (*SubmitOfferResult, error) {
	var result *SubmitOfferResult

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		r, err := uc.loadRFQ(ctx, tx, rfqID)
		if err != nil {
			return err
		}
		if !r.IsOpen() {
			return ErrRFQClosed
		}

		declined, err := tx.Declines().Exists(ctx, tx.DB(), rfqID, supplierID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if declined {
			return ErrRFQDeclined
		}

		if err := sub.Validate(r.Lines, now, uc.tolerance); err != nil {
			return errs.Mark(err, ErrInvalidOffer)
		}

		current, err := tx.Offers().LockCanonical(ctx, tx.DB(), rfqID, supplierID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if current != nil {
			if err := current.CanRevise(now); err != nil {
				return errs.Mark(err, ErrOfferFinalized)
			}
			if err := tx.Offers().Supersede(ctx, tx.DB(), current.ID, now); err != nil {
				if infra.IsKind(err, infra.KindConflict) {
					return errs.Mark(err, ErrVersionConflict)
				}
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		created := offer.FromSubmission(uuid.New(), rfqID, supplierID, sub, offer.NextVersion(current), now)
		if err := tx.Offers().Create(ctx, tx.DB(), created); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrVersionConflict)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		topic := shared.TopicOfferSubmitted
		if current != nil {
			topic = shared.TopicOfferRevised
		}
		event := shared.OfferEvent{
			RFQID:         rfqID,
			BuyerID:       r.BuyerID,
			SupplierID:    supplierID,
			OfferID:       &created.ID,
			VersionNumber: created.VersionNumber,
			TotalAmount:   created.TotalAmount.StringFixed(2),
			OccurredAt:    now,
		}
		if err := uc.enqueue(ctx, tx, topic, event, now); err != nil {
			return err
		}

		result = &SubmitOfferResult{
			OfferID:       created.ID,
			VersionNumber: created.VersionNumber,
			Revised:       current != nil,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("offer submitted",
		"rfq_id", rfqID,
		"supplier_id", supplierID,
		"offer_id", result.OfferID,
		"version", result.VersionNumber,
		"revised", result.Revised)
	return result, nil
}

func (uc *offerCommandsImpl) DeclineRFQ(ctx context.Context, supplierID, rfqID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		r, err := uc.loadRFQ(ctx, tx, rfqID)
		if err != nil {
			return err
		}

		current, err := tx.Offers().LockCanonical(ctx, tx.DB(), rfqID, supplierID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if current != nil && current.Status == offer.StatusAccepted {
			return ErrOfferAccepted
		}

		exists, err := tx.Declines().Exists(ctx, tx.DB(), rfqID, supplierID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if exists {
			return nil
		}
		if err := tx.Declines().Create(ctx, tx.DB(), rfqID, supplierID, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		event := shared.OfferEvent{
			RFQID:      rfqID,
			BuyerID:    r.BuyerID,
			SupplierID: supplierID,
			OccurredAt: now,
		}
		return uc.enqueue(ctx, tx, shared.TopicRFQDeclined, event, now)
	})
}

func (uc *offerCommandsImpl) loadRFQ(ctx context.Context, tx shared.Tx, rfqID uuid.UUID) (*rfq.RFQ, error) {
	r, err := tx.RFQs().FindByID(ctx, tx.DB(), rfqID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRFQNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return r, nil
}

func (uc *offerCommandsImpl) enqueue(ctx context.Context, tx shared.Tx, topic string, event shared.OfferEvent, runAt time.Time) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to marshal notification payload")
	}
	if err := tx.Notifications().CreateJob(ctx, tx.DB(), shared.NotificationKindEmail, topic, payload, runAt); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
