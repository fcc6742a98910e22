package pricing

import (
	"strings"

	"rfq-offer-service/internal/domain/money"
)

// ApplyUnitPrice makes the unit price the driving field. A value that is not
// a non-negative decimal is kept as raw text and prices the line at 0.
func ApplyUnitPrice(d LinePriceDraft, raw string) LinePriceDraft {
	v, ok := money.Parse(raw)
	switch {
	case !ok && strings.TrimSpace(raw) == "":
		d.Input = Unpriced{}
	case !ok || v.IsNegative():
		d.Input = InvalidUnitPrice{Raw: raw}
	default:
		d.Input = FromUnitPrice{Raw: raw, Value: v}
	}
	return d
}

// ApplySubtotal makes the subtotal the driving field and derives the unit
// price as round(subtotal / quantity, 2).
//
// Blank or malformed text clears the unit price but is still recorded so the
// field shows what was typed. A negative subtotal, or any valid subtotal on a
// zero-quantity line, leaves the draft untouched.
func ApplySubtotal(d LinePriceDraft, raw string) LinePriceDraft {
	v, ok := money.Parse(raw)
	if !ok {
		d.Input = FromSubtotal{Raw: raw}
		return d
	}
	if v.IsNegative() {
		return d
	}
	if d.Quantity.IsZero() {
		return d
	}
	unit := money.Round(v.Div(d.Quantity))
	d.Input = FromSubtotal{Raw: raw, UnitPrice: &unit}
	return d
}
