//go:build unit || e2e

package builder

import (
	"time"

	"rfq-offer-service/internal/domain/money"
	domoffer "rfq-offer-service/internal/domain/offer"
	domrfq "rfq-offer-service/internal/domain/rfq"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OfferBuilder struct {
	ID            uuid.UUID
	RFQID         uuid.UUID
	SupplierID    uuid.UUID
	LinePrices    []domoffer.LinePrice
	DeliveryFee   decimal.Decimal
	WindowStart   time.Time
	WindowEnd     time.Time
	PaymentTerms  domoffer.PaymentTerms
	Notes         *string
	ExpiresAt     time.Time
	Status        domoffer.Status
	VersionNumber int
	CreatedAt     time.Time
	SupersededAt  *time.Time
}

// NewOfferBuilder prices the default RFQBuilder lines at 10.50 and 5.00.
func NewOfferBuilder() *OfferBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	note := "x"
	start := time.Date(now.Year(), now.Month(), now.Day(), 9, 0, 0, 0, time.UTC).AddDate(0, 0, 3)
	return &OfferBuilder{
		ID:         uuid.New(),
		RFQID:      uuid.New(),
		SupplierID: uuid.New(),
		LinePrices: []domoffer.LinePrice{
			{LineIndex: 0, UnitPrice: decimal.RequireFromString("10.50"), TotalPrice: decimal.RequireFromString("31.50"), Notes: &note},
			{LineIndex: 1, UnitPrice: decimal.RequireFromString("5.00"), TotalPrice: decimal.RequireFromString("10.00")},
		},
		DeliveryFee:   decimal.RequireFromString("20.00"),
		WindowStart:   start,
		WindowEnd:     start.Add(3 * time.Hour),
		PaymentTerms:  domoffer.PaymentNet7,
		ExpiresAt:     now.Add(48 * time.Hour),
		Status:        domoffer.StatusPending,
		VersionNumber: 1,
		CreatedAt:     now,
	}
}

func (o *OfferBuilder) With(mutate func(*OfferBuilder)) *OfferBuilder {
	mutate(o)
	return o
}

func (o *OfferBuilder) total() decimal.Decimal {
	sum := o.DeliveryFee
	for _, lp := range o.LinePrices {
		sum = sum.Add(lp.TotalPrice)
	}
	return money.Round(sum)
}

func (o *OfferBuilder) BuildDomain() *domoffer.Offer {
	lines := make([]domoffer.LinePrice, len(o.LinePrices))
	copy(lines, o.LinePrices)
	return &domoffer.Offer{
		ID:                  o.ID,
		RFQID:               o.RFQID,
		SupplierID:          o.SupplierID,
		LinePrices:          lines,
		TotalAmount:         o.total(),
		DeliveryWindowStart: o.WindowStart,
		DeliveryWindowEnd:   o.WindowEnd,
		PaymentTerms:        o.PaymentTerms,
		DeliveryFee:         o.DeliveryFee,
		Notes:               o.Notes,
		ExpiresAt:           o.ExpiresAt,
		Status:              o.Status,
		VersionNumber:       o.VersionNumber,
		CreatedAt:           o.CreatedAt,
		SupersededAt:        o.SupersededAt,
	}
}

func (o *OfferBuilder) BuildSubmission() domoffer.Submission {
	lines := make([]domoffer.LinePrice, len(o.LinePrices))
	copy(lines, o.LinePrices)
	return domoffer.Submission{
		LinePrices:          lines,
		TotalAmount:         o.total(),
		DeliveryWindowStart: o.WindowStart,
		DeliveryWindowEnd:   o.WindowEnd,
		PaymentTerms:        o.PaymentTerms,
		DeliveryFee:         o.DeliveryFee,
		Notes:               o.Notes,
		ExpiresAt:           o.ExpiresAt,
	}
}

// ForRFQ takes the RFQ id and prices each of its lines at unitPrice.
func (o *OfferBuilder) ForRFQ(r *domrfq.RFQ, unitPrice string) *OfferBuilder {
	o.RFQID = r.ID
	p := decimal.RequireFromString(unitPrice)
	o.LinePrices = o.LinePrices[:0]
	for _, l := range r.Lines {
		o.LinePrices = append(o.LinePrices, domoffer.LinePrice{
			LineIndex:  l.Index,
			UnitPrice:  p,
			TotalPrice: money.Round(p.Mul(l.Quantity)),
		})
	}
	return o
}

func (o *OfferBuilder) WithRFQID(id uuid.UUID) *OfferBuilder {
	o.RFQID = id
	return o
}

func (o *OfferBuilder) WithSupplierID(id uuid.UUID) *OfferBuilder {
	o.SupplierID = id
	return o
}

func (o *OfferBuilder) WithLinePrices(lps ...domoffer.LinePrice) *OfferBuilder {
	o.LinePrices = lps
	return o
}

func (o *OfferBuilder) WithDeliveryFee(fee string) *OfferBuilder {
	o.DeliveryFee = decimal.RequireFromString(fee)
	return o
}

func (o *OfferBuilder) WithStatus(status domoffer.Status) *OfferBuilder {
	o.Status = status
	return o
}

func (o *OfferBuilder) WithVersion(v int) *OfferBuilder {
	o.VersionNumber = v
	return o
}

func (o *OfferBuilder) WithExpiresAt(t time.Time) *OfferBuilder {
	o.ExpiresAt = t
	return o
}

func (o *OfferBuilder) WithNotes(notes string) *OfferBuilder {
	o.Notes = &notes
	return o
}

func (o *OfferBuilder) AsSuperseded(at time.Time) *OfferBuilder {
	o.SupersededAt = &at
	return o
}
