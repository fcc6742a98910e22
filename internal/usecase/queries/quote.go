package queries

import (
	"context"

	"rfq-offer-service/internal/domain/offer"
	"rfq-offer-service/internal/domain/pricing"
	"rfq-offer-service/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidQuote = errs.New("invalid quote input")

// QuoteLineInput is one line's edit. When both fields are set the unit
// price is applied first and the subtotal second, so the subtotal drives.
type QuoteLineInput struct {
	LineIndex int
	UnitPrice *string
	Subtotal  *string
	Notes     *string
}

type QuoteInput struct {
	// FromExisting seeds the drafts from the canonical offer, as a revision
	// would, before applying Lines.
	FromExisting bool
	Lines        []QuoteLineInput
	DeliveryFee  string
}

type QuoteLine struct {
	LineIndex     int
	Description   string
	Quantity      decimal.Decimal
	Unit          string
	UnitPriceText string
	SubtotalText  string
	Subtotal      decimal.Decimal
	Driving       pricing.Field
	Priced        bool
	Notes         string
}

type Quote struct {
	Lines       []QuoteLine
	DeliveryFee decimal.Decimal
	Total       decimal.Decimal
	// Ready is true when every line is priced above zero.
	Ready bool
}

type QuoteQueries interface {
	Preview(ctx context.Context, supplierID, rfqID uuid.UUID, in QuoteInput) (*Quote, error)
}

type quoteQueriesImpl struct {
	rfqs RFQQueries
}

func NewQuoteQueries(rfqs RFQQueries) QuoteQueries {
	return &quoteQueriesImpl{rfqs: rfqs}
}

// Preview runs the same ledger, calculator and aggregator as the supplier
// client, without persisting anything.
func (q *quoteQueriesImpl) Preview(ctx context.Context, supplierID, rfqID uuid.UUID, in QuoteInput) (*Quote, error) {
	view, err := q.rfqs.GetForSupplier(ctx, supplierID, rfqID)
	if err != nil {
		return nil, err
	}

	var seed *offer.Offer
	if in.FromExisting {
		seed = view.ExistingOffer
	}
	ledger, err := pricing.InitDraft(view.RFQ.Lines, seed)
	if err != nil {
		return nil, err
	}

	for _, li := range in.Lines {
		if li.UnitPrice != nil {
			if err := ledger.SetUnitPrice(li.LineIndex, *li.UnitPrice); err != nil {
				return nil, errs.Mark(err, ErrInvalidQuote)
			}
		}
		if li.Subtotal != nil {
			if err := ledger.SetSubtotal(li.LineIndex, *li.Subtotal); err != nil {
				return nil, errs.Mark(err, ErrInvalidQuote)
			}
		}
		if li.Notes != nil {
			if err := ledger.SetNote(li.LineIndex, *li.Notes); err != nil {
				return nil, errs.Mark(err, ErrInvalidQuote)
			}
		}
	}

	drafts := ledger.Drafts()
	fee := pricing.ParseDeliveryFee(in.DeliveryFee)
	quote := &Quote{
		Lines:       make([]QuoteLine, 0, len(drafts)),
		DeliveryFee: fee,
		Total:       pricing.CalculateTotal(drafts, view.RFQ.Lines, fee),
		Ready:       true,
	}
	for _, d := range drafts {
		line, _ := view.RFQ.LineByIndex(d.LineIndex)
		priced := d.IsPriced()
		quote.Ready = quote.Ready && priced
		quote.Lines = append(quote.Lines, QuoteLine{
			LineIndex:     d.LineIndex,
			Description:   line.Description,
			Quantity:      line.Quantity,
			Unit:          line.Unit,
			UnitPriceText: d.UnitPriceText(),
			SubtotalText:  d.SubtotalText(),
			Subtotal:      d.Subtotal(),
			Driving:       d.Driving(),
			Priced:        priced,
			Notes:         d.Notes,
		})
	}
	return quote, nil
}
