//go:build unit

package offer_test

import (
	"testing"
	"time"

	"rfq-offer-service/internal/domain/offer"
	"rfq-offer-service/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfferLifecycle(t *testing.T) {
	now := time.Now()

	t.Run("pending past expiry is expired", func(t *testing.T) {
		o := builder.NewOfferBuilder().WithExpiresAt(now.Add(-time.Minute)).BuildDomain()
		assert.Equal(t, offer.StatusExpired, o.EffectiveStatus(now))
		assert.ErrorIs(t, o.CanRevise(now), offer.ErrOfferFinalized)
	})

	t.Run("pending within expiry can be revised", func(t *testing.T) {
		o := builder.NewOfferBuilder().WithExpiresAt(now.Add(time.Hour)).BuildDomain()
		assert.Equal(t, offer.StatusPending, o.EffectiveStatus(now))
		assert.NoError(t, o.CanRevise(now))
	})

	t.Run("terminal statuses are immutable", func(t *testing.T) {
		for _, s := range []offer.Status{offer.StatusAccepted, offer.StatusRejected, offer.StatusExpired} {
			o := builder.NewOfferBuilder().WithStatus(s).BuildDomain()
			assert.True(t, s.IsTerminal())
			assert.ErrorIs(t, o.CanRevise(now), offer.ErrOfferFinalized, s)
		}
	})

	t.Run("canonical until superseded", func(t *testing.T) {
		o := builder.NewOfferBuilder().BuildDomain()
		assert.True(t, o.IsCanonical())
		o = builder.NewOfferBuilder().AsSuperseded(now).BuildDomain()
		assert.False(t, o.IsCanonical())
	})

	t.Run("next version", func(t *testing.T) {
		assert.Equal(t, 1, offer.NextVersion(nil))
		assert.Equal(t, 4, offer.NextVersion(builder.NewOfferBuilder().WithVersion(3).BuildDomain()))
	})

	t.Run("from submission starts pending", func(t *testing.T) {
		sub := builder.NewOfferBuilder().BuildSubmission()
		id, rfqID, supplierID := uuid.New(), uuid.New(), uuid.New()

		o := offer.FromSubmission(id, rfqID, supplierID, sub, 2, now)

		assert.Equal(t, offer.StatusPending, o.Status)
		assert.Equal(t, 2, o.VersionNumber)
		assert.Nil(t, o.SupersededAt)
		assert.Equal(t, now, o.CreatedAt)
		assert.True(t, sub.TotalAmount.Equal(o.TotalAmount))
		sub.LinePrices[0].LineIndex = 99
		assert.Equal(t, 0, o.LinePrices[0].LineIndex)
		lp, ok := o.LinePriceFor(1)
		require.True(t, ok)
		assert.Equal(t, "5", lp.UnitPrice.String())
	})
}

func TestHistory(t *testing.T) {
	v2 := *builder.NewOfferBuilder().WithVersion(2).BuildDomain()
	v1 := *builder.NewOfferBuilder().WithVersion(1).BuildDomain()
	v3 := *builder.NewOfferBuilder().WithVersion(3).BuildDomain()

	h := offer.NewHistory([]offer.Offer{v2, v3, v1})

	require.Len(t, h, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{h[0].VersionNumber, h[1].VersionNumber, h[2].VersionNumber})
	latest, ok := h.Latest()
	require.True(t, ok)
	assert.Equal(t, 3, latest.VersionNumber)
	_, ok = h.ByVersion(2)
	assert.True(t, ok)
	_, ok = h.ByVersion(9)
	assert.False(t, ok)

	_, ok = offer.NewHistory(nil).Latest()
	assert.False(t, ok)
}

func TestTerms(t *testing.T) {
	p, err := offer.ParsePaymentTerms("net_7")
	require.NoError(t, err)
	assert.Equal(t, offer.PaymentNet7, p)
	_, err = offer.ParsePaymentTerms("net_30")
	assert.ErrorIs(t, err, offer.ErrInvalidPaymentTerms)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for hours, want := range map[int]time.Time{
		24:  now.Add(24 * time.Hour),
		48:  now.Add(48 * time.Hour),
		72:  now.Add(72 * time.Hour),
		168: now.Add(7 * 24 * time.Hour),
	} {
		w, err := offer.ParseExpiryWindow(hours)
		require.NoError(t, err)
		assert.Equal(t, want, w.ExpiresAt(now))
	}
	_, err = offer.ParseExpiryWindow(12)
	assert.ErrorIs(t, err, offer.ErrInvalidExpiryWindow)
	assert.Equal(t, offer.Expiry48h, offer.DefaultExpiryWindow)
	assert.Equal(t, offer.PaymentCOD, offer.DefaultPaymentTerms)
}
