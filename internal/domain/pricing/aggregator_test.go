//go:build unit

package pricing_test

import (
	"testing"

	"rfq-offer-service/internal/domain/offer"
	"rfq-offer-service/internal/domain/pricing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateTotal(t *testing.T) {
	t.Run("two line scenario with delivery fee totals 100.00", func(t *testing.T) {
		rfqLines := lines("3", "2")
		l, err := pricing.InitDraft(rfqLines, nil)
		require.NoError(t, err)

		require.NoError(t, l.SetUnitPrice(0, "10.00"))
		require.NoError(t, l.SetSubtotal(1, "50.00"))

		total := pricing.CalculateTotal(l.Drafts(), rfqLines, pricing.ParseDeliveryFee("20.00"))
		assert.Equal(t, "100.00", total.StringFixed(2))
		assert.True(t, dec("100").Equal(total))
	})

	t.Run("sum of unit × qty plus fee for mixed valid and invalid lines", func(t *testing.T) {
		rfqLines := lines("3", "2", "1.5", "4")
		l, err := pricing.InitDraft(rfqLines, nil)
		require.NoError(t, err)

		require.NoError(t, l.SetUnitPrice(0, "1.005"))
		require.NoError(t, l.SetUnitPrice(1, "oops"))
		require.NoError(t, l.SetSubtotal(2, "10"))
		// line 3 left unpriced

		// 3.015 + 0 + 6.67*1.5 (=10.005) + 0 + 2.5 = 15.52
		total := pricing.CalculateTotal(l.Drafts(), rfqLines, dec("2.5"))
		assert.True(t, dec("15.52").Equal(total), "got %s", total)
	})

	t.Run("rounds once over the unrounded sum", func(t *testing.T) {
		rfqLines := lines("1", "1", "1")
		l, err := pricing.InitDraft(rfqLines, nil)
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			require.NoError(t, l.SetUnitPrice(i, "0.004"))
		}

		total := pricing.CalculateTotal(l.Drafts(), rfqLines, decimal.Zero)
		assert.True(t, dec("0.01").Equal(total), "got %s", total)
	})

	t.Run("delivery fee input", func(t *testing.T) {
		cases := map[string]string{
			"":      "0",
			"abc":   "0",
			"-3":    "0",
			"12.5":  "12.5",
			" 7.25": "7.25",
		}
		for raw, want := range cases {
			assert.True(t, dec(want).Equal(pricing.ParseDeliveryFee(raw)), "fee %q", raw)
		}

		rfqLines := lines("1")
		l, err := pricing.InitDraft(rfqLines, nil)
		require.NoError(t, err)
		require.NoError(t, l.SetUnitPrice(0, "5"))
		assert.True(t, dec("5").Equal(pricing.CalculateTotal(l.Drafts(), rfqLines, dec("-4"))))
	})

	t.Run("empty draft totals the fee", func(t *testing.T) {
		rfqLines := lines("3", "2")
		l, err := pricing.InitDraft(rfqLines, nil)
		require.NoError(t, err)

		assert.True(t, dec("9.99").Equal(pricing.CalculateTotal(l.Drafts(), rfqLines, dec("9.99"))))
	})
}

func TestLinePrices(t *testing.T) {
	rfqLines := lines("3", "2")
	l, err := pricing.InitDraft(rfqLines, nil)
	require.NoError(t, err)
	require.NoError(t, l.SetUnitPrice(0, "10.00"))
	require.NoError(t, l.SetSubtotal(1, "50.00"))
	require.NoError(t, l.SetNote(0, "x"))

	note := "x"
	want := []offer.LinePrice{
		{LineIndex: 0, UnitPrice: dec("10.00"), TotalPrice: dec("30.00"), Notes: &note},
		{LineIndex: 1, UnitPrice: dec("25.00"), TotalPrice: dec("50.00")},
	}

	got := pricing.LinePrices(l.Drafts())
	diff := cmp.Diff(want, got, cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }))
	assert.Empty(t, diff)

	var sum decimal.Decimal
	for _, lp := range got {
		sum = sum.Add(lp.TotalPrice)
	}
	assert.True(t, sum.Add(dec("20")).Equal(pricing.CalculateTotal(l.Drafts(), rfqLines, dec("20"))))
}
