package offer

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LinePrice struct {
	LineIndex  int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
	Notes      *string
}

// Offer is a persisted quotation. The store owns VersionNumber, CreatedAt
// and SupersededAt; the negotiation side only ever reads them.
type Offer struct {
	ID                  uuid.UUID
	RFQID               uuid.UUID
	SupplierID          uuid.UUID
	LinePrices          []LinePrice
	TotalAmount         decimal.Decimal
	DeliveryWindowStart time.Time
	DeliveryWindowEnd   time.Time
	PaymentTerms        PaymentTerms
	DeliveryFee         decimal.Decimal
	Notes               *string
	ExpiresAt           time.Time
	Status              Status
	VersionNumber       int
	CreatedAt           time.Time
	SupersededAt        *time.Time
}

// IsCanonical is true for the active version of an RFQ+supplier pair.
func (o *Offer) IsCanonical() bool {
	return o.SupersededAt == nil
}

// EffectiveStatus folds the timeout into the status: a pending offer past
// its expiry is expired even if the store has not flipped it yet.
func (o *Offer) EffectiveStatus(now time.Time) Status {
	if o.Status == StatusPending && !now.Before(o.ExpiresAt) {
		return StatusExpired
	}
	return o.Status
}

func (o *Offer) CanRevise(now time.Time) error {
	if o.EffectiveStatus(now).IsTerminal() {
		return ErrOfferFinalized
	}
	return nil
}

func (o *Offer) LinePriceFor(lineIndex int) (LinePrice, bool) {
	for _, lp := range o.LinePrices {
		if lp.LineIndex == lineIndex {
			return lp, true
		}
	}
	return LinePrice{}, false
}

// NextVersion is the version a new submission gets given the canonical
// offer (nil when none exists).
func NextVersion(current *Offer) int {
	if current == nil {
		return 1
	}
	return current.VersionNumber + 1
}

// FromSubmission builds the row the store inserts for a create or revise.
func FromSubmission(id, rfqID, supplierID uuid.UUID, s Submission, version int, now time.Time) *Offer {
	lines := make([]LinePrice, len(s.LinePrices))
	copy(lines, s.LinePrices)
	return &Offer{
		ID:                  id,
		RFQID:               rfqID,
		SupplierID:          supplierID,
		LinePrices:          lines,
		TotalAmount:         s.TotalAmount,
		DeliveryWindowStart: s.DeliveryWindowStart,
		DeliveryWindowEnd:   s.DeliveryWindowEnd,
		PaymentTerms:        s.PaymentTerms,
		DeliveryFee:         s.DeliveryFee,
		Notes:               s.Notes,
		ExpiresAt:           s.ExpiresAt,
		Status:              StatusPending,
		VersionNumber:       version,
		CreatedAt:           now,
	}
}
