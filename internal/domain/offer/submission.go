package offer

import (
	"fmt"
	"time"

	"rfq-offer-service/internal/domain/money"
	"rfq-offer-service/internal/domain/rfq"

	"github.com/shopspring/decimal"
)

// Submission is the create-or-revise request body. The store decides which
// of the two it is from its own state.
type Submission struct {
	LinePrices          []LinePrice
	TotalAmount         decimal.Decimal
	DeliveryWindowStart time.Time
	DeliveryWindowEnd   time.Time
	PaymentTerms        PaymentTerms
	DeliveryFee         decimal.Decimal
	Notes               *string
	ExpiresAt           time.Time
}

// Validate checks the Offer invariants against the RFQ line set. tol bounds
// the allowed rounding drift on line totals and the grand total. The grand
// total may be either the sum of the rounded line totals or the unrounded
// line amounts rounded once, so per-line rounding drift never accumulates
// past tol.
func (s Submission) Validate(lines []rfq.Line, now time.Time, tol decimal.Decimal) error {
	if len(s.LinePrices) != len(lines) {
		return invariant("line_prices", fmt.Sprintf("expected %d line prices, got %d", len(lines), len(s.LinePrices)))
	}

	qty := rfq.QuantityByIndex(lines)
	seen := make(map[int]struct{}, len(s.LinePrices))
	sum := decimal.Zero
	exact := decimal.Zero
	for _, lp := range s.LinePrices {
		q, ok := qty[lp.LineIndex]
		if !ok {
			return invariant("line_prices", fmt.Sprintf("line %d is not part of the rfq", lp.LineIndex))
		}
		if _, dup := seen[lp.LineIndex]; dup {
			return invariant("line_prices", fmt.Sprintf("line %d priced more than once", lp.LineIndex))
		}
		seen[lp.LineIndex] = struct{}{}

		if !lp.UnitPrice.IsPositive() {
			return invariant("line_prices", fmt.Sprintf("line %d unit price must be greater than zero", lp.LineIndex))
		}
		amount := lp.UnitPrice.Mul(q)
		exact = exact.Add(amount)
		expected := money.Round(amount)
		if !money.WithinTolerance(lp.TotalPrice, expected, tol) {
			return invariant("line_prices", fmt.Sprintf("line %d total %s does not match %s", lp.LineIndex, lp.TotalPrice, expected))
		}
		sum = sum.Add(lp.TotalPrice)
	}

	if s.DeliveryFee.IsNegative() {
		return invariant("delivery_fee", "must not be negative")
	}
	roundedOnce := money.Round(exact.Add(s.DeliveryFee))
	if !money.WithinTolerance(s.TotalAmount, sum.Add(s.DeliveryFee), tol) &&
		!money.WithinTolerance(s.TotalAmount, roundedOnce, tol) {
		return invariant("total_amount", fmt.Sprintf("%s does not match line totals plus delivery fee %s", s.TotalAmount, sum.Add(s.DeliveryFee)))
	}
	if !s.DeliveryWindowStart.Before(s.DeliveryWindowEnd) {
		return invariant("delivery_window", "start must be before end")
	}
	if !s.PaymentTerms.IsValid() {
		return invariant("payment_terms", ErrInvalidPaymentTerms.Error())
	}
	if !s.ExpiresAt.After(now) {
		return invariant("expires_at", "must be in the future")
	}
	return nil
}
