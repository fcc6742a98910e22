package pricing

import (
	"rfq-offer-service/internal/domain/money"

	"github.com/shopspring/decimal"
)

// LinePriceDraft is the supplier's in-progress pricing of one RFQ line.
type LinePriceDraft struct {
	LineIndex int
	Quantity  decimal.Decimal
	Input     PriceInput
	Notes     string
}

func newDraft(lineIndex int, quantity decimal.Decimal) LinePriceDraft {
	return LinePriceDraft{
		LineIndex: lineIndex,
		Quantity:  quantity,
		Input:     Unpriced{},
	}
}

// UnitPrice returns the current valid unit price, if any.
func (d LinePriceDraft) UnitPrice() (decimal.Decimal, bool) {
	switch in := d.Input.(type) {
	case FromUnitPrice:
		return in.Value, true
	case FromSubtotal:
		if in.UnitPrice != nil {
			return *in.UnitPrice, true
		}
		return decimal.Zero, false
	case Unpriced, InvalidUnitPrice, nil:
		return decimal.Zero, false
	default:
		return decimal.Zero, false
	}
}

// IsPriced is the submit gate: a valid unit price strictly above zero.
func (d LinePriceDraft) IsPriced() bool {
	p, ok := d.UnitPrice()
	return ok && p.IsPositive()
}

// amount is unit_price × quantity without rounding, 0 when unpriced.
func (d LinePriceDraft) amount() decimal.Decimal {
	p, ok := d.UnitPrice()
	if !ok {
		return decimal.Zero
	}
	return p.Mul(d.Quantity)
}

// Subtotal is the display derivation round(unit_price × quantity, 2).
func (d LinePriceDraft) Subtotal() decimal.Decimal {
	return money.Round(d.amount())
}

func (d LinePriceDraft) Driving() Field {
	switch d.Input.(type) {
	case FromUnitPrice, InvalidUnitPrice:
		return FieldUnitPrice
	case FromSubtotal:
		return FieldSubtotal
	default:
		return FieldNone
	}
}

// UnitPriceText is what the unit price input shows.
func (d LinePriceDraft) UnitPriceText() string {
	switch in := d.Input.(type) {
	case FromUnitPrice:
		return in.Raw
	case InvalidUnitPrice:
		return in.Raw
	case FromSubtotal:
		if in.UnitPrice == nil {
			return ""
		}
		return in.UnitPrice.StringFixed(money.Places)
	default:
		return ""
	}
}

// SubtotalText is what the subtotal input shows: the literal text right
// after a subtotal edit, otherwise the fresh derivation.
func (d LinePriceDraft) SubtotalText() string {
	switch in := d.Input.(type) {
	case FromSubtotal:
		return in.Raw
	case FromUnitPrice:
		return d.Subtotal().StringFixed(money.Places)
	default:
		return ""
	}
}
