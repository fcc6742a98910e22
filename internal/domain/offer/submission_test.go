//go:build unit

package offer_test

import (
	"testing"
	"time"

	"rfq-offer-service/internal/domain/offer"
	"rfq-offer-service/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmissionValidate(t *testing.T) {
	lines := builder.NewRFQBuilder().BuildDomain().Lines
	tol := decimal.RequireFromString("0.01")
	now := time.Now()

	tests := []struct {
		name   string
		mutate func(*offer.Submission)
		field  string
	}{
		{name: "valid", mutate: func(*offer.Submission) {}},
		{
			name:   "total within a cent",
			mutate: func(s *offer.Submission) { s.TotalAmount = s.TotalAmount.Add(decimal.RequireFromString("0.01")) },
		},
		{
			name:   "missing line",
			mutate: func(s *offer.Submission) { s.LinePrices = s.LinePrices[:1] },
			field:  "line_prices",
		},
		{
			name:   "unknown line",
			mutate: func(s *offer.Submission) { s.LinePrices[1].LineIndex = 5 },
			field:  "line_prices",
		},
		{
			name:   "duplicate line",
			mutate: func(s *offer.Submission) { s.LinePrices[1] = s.LinePrices[0] },
			field:  "line_prices",
		},
		{
			name: "zero unit price",
			mutate: func(s *offer.Submission) {
				s.LinePrices[1].UnitPrice = decimal.Zero
				s.LinePrices[1].TotalPrice = decimal.Zero
			},
			field: "line_prices",
		},
		{
			name:   "line total off",
			mutate: func(s *offer.Submission) { s.LinePrices[0].TotalPrice = decimal.RequireFromString("31.60") },
			field:  "line_prices",
		},
		{
			name:   "negative fee",
			mutate: func(s *offer.Submission) { s.DeliveryFee = decimal.RequireFromString("-1") },
			field:  "delivery_fee",
		},
		{
			name:   "total off",
			mutate: func(s *offer.Submission) { s.TotalAmount = decimal.RequireFromString("100") },
			field:  "total_amount",
		},
		{
			name:   "window reversed",
			mutate: func(s *offer.Submission) { s.DeliveryWindowEnd = s.DeliveryWindowStart },
			field:  "delivery_window",
		},
		{
			name:   "bad payment terms",
			mutate: func(s *offer.Submission) { s.PaymentTerms = "net_30" },
			field:  "payment_terms",
		},
		{
			name:   "already expired",
			mutate: func(s *offer.Submission) { s.ExpiresAt = now.Add(-time.Second) },
			field:  "expires_at",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := builder.NewOfferBuilder().BuildSubmission()
			tt.mutate(&s)

			err := s.Validate(lines, now, tol)
			if tt.field == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, offer.ErrInvalidSubmission)
			var inv *offer.InvariantError
			require.ErrorAs(t, err, &inv)
			assert.Equal(t, tt.field, inv.Field)
		})
	}
}

func TestSubmissionValidateTotalRoundedOnce(t *testing.T) {
	b := builder.NewRFQBuilder().WithLines()
	prices := make([]offer.LinePrice, 0, 5)
	for i := 0; i < 5; i++ {
		b.WithLine(i, "1.5", "kg")
		prices = append(prices, offer.LinePrice{
			LineIndex:  i,
			UnitPrice:  decimal.RequireFromString("0.33"),
			TotalPrice: decimal.RequireFromString("0.50"),
		})
	}
	lines := b.BuildDomain().Lines
	tol := decimal.RequireFromString("0.01")
	now := time.Now()

	s := builder.NewOfferBuilder().BuildSubmission()
	s.LinePrices = prices
	s.DeliveryFee = decimal.Zero

	for _, total := range []string{"2.48", "2.50"} {
		s.TotalAmount = decimal.RequireFromString(total)
		assert.NoError(t, s.Validate(lines, now, tol), total)
	}

	s.TotalAmount = decimal.RequireFromString("2.53")
	var inv *offer.InvariantError
	require.ErrorAs(t, s.Validate(lines, now, tol), &inv)
	assert.Equal(t, "total_amount", inv.Field)
}
