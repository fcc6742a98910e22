package pricing

import (
	"rfq-offer-service/internal/domain/money"
	"rfq-offer-service/internal/domain/offer"
	"rfq-offer-service/internal/domain/rfq"

	"github.com/shopspring/decimal"
)

// CalculateTotal sums unit_price × quantity over every line (0 for lines
// without a valid price), adds the delivery fee (0 if negative) and rounds
// once. The live display and the submit payload both go through here so the
// two always agree.
func CalculateTotal(drafts []LinePriceDraft, lines []rfq.Line, deliveryFee decimal.Decimal) decimal.Decimal {
	qty := rfq.QuantityByIndex(lines)
	sum := decimal.Zero
	for _, d := range drafts {
		q, ok := qty[d.LineIndex]
		if !ok {
			continue
		}
		p, ok := d.UnitPrice()
		if !ok {
			continue
		}
		sum = sum.Add(p.Mul(q))
	}
	if deliveryFee.IsPositive() {
		sum = sum.Add(deliveryFee)
	}
	return money.Round(sum)
}

// ParseDeliveryFee reads the fee input; blank, malformed or negative input
// counts as 0.
func ParseDeliveryFee(raw string) decimal.Decimal {
	fee, ok := money.ParseNonNegative(raw)
	if !ok {
		return decimal.Zero
	}
	return fee
}

// LinePrices converts priced drafts into the payload's line prices, in line
// order. Callers validate first; unpriced drafts would be sent at 0.
func LinePrices(drafts []LinePriceDraft) []offer.LinePrice {
	out := make([]offer.LinePrice, 0, len(drafts))
	for _, d := range drafts {
		p, _ := d.UnitPrice()
		lp := offer.LinePrice{
			LineIndex:  d.LineIndex,
			UnitPrice:  p,
			TotalPrice: d.Subtotal(),
		}
		if d.Notes != "" {
			n := d.Notes
			lp.Notes = &n
		}
		out = append(out, lp)
	}
	return out
}
