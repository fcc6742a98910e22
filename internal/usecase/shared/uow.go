package shared

import (
	"context"
	"time"

	"rfq-offer-service/internal/domain/offer"
	"rfq-offer-service/internal/domain/rfq"
	"rfq-offer-service/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	RFQs() RFQRepository
	Offers() OfferRepository
	Declines() DeclineRepository
	Notifications() NotificationRepository
	DB() db.DBTX
}

type RFQRepository interface {
	// FindByID loads the RFQ with its lines and holds a share lock on the
	// header row for the rest of the transaction.
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*rfq.RFQ, error)
}

type OfferRepository interface {
	// LockCanonical returns the active offer of the pair, locked FOR UPDATE,
	// or nil when the supplier has not offered yet.
	LockCanonical(ctx context.Context, tx db.DBTX, rfqID, supplierID uuid.UUID) (*offer.Offer, error)
	Supersede(ctx context.Context, tx db.DBTX, offerID uuid.UUID, at time.Time) error
	Create(ctx context.Context, tx db.DBTX, o *offer.Offer) error
}

type DeclineRepository interface {
	Exists(ctx context.Context, tx db.DBTX, rfqID, supplierID uuid.UUID) (bool, error)
	Create(ctx context.Context, tx db.DBTX, rfqID, supplierID uuid.UUID, at time.Time) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
