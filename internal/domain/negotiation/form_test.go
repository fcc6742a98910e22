//go:build unit

package negotiation_test

import (
	"testing"
	"time"

	"rfq-offer-service/internal/domain/negotiation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeSlot(t *testing.T) {
	s, err := negotiation.ParseTimeSlot(" 08:00 - 12:30 ")
	require.NoError(t, err)
	assert.Equal(t, 8*time.Hour, s.From)
	assert.Equal(t, 12*time.Hour+30*time.Minute, s.To)
	assert.Equal(t, "08:00-12:30", s.String())

	for _, bad := range []string{"", "08:00", "12:00-08:00", "08:00-08:00", "8am-noon", "25:00-26:00"} {
		_, err := negotiation.ParseTimeSlot(bad)
		assert.ErrorIs(t, err, negotiation.ErrInvalidTimeSlot, bad)
	}
}

func TestParseDate(t *testing.T) {
	d, err := negotiation.ParseDate("2026-02-28")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-28", d.String())

	for _, bad := range []string{"2026-02-30", "28/02/2026", "tomorrow"} {
		_, err := negotiation.ParseDate(bad)
		assert.ErrorIs(t, err, negotiation.ErrInvalidDeliveryDate, bad)
	}
}

func TestFormDeliveryWindow(t *testing.T) {
	f := negotiation.NewForm()
	_, _, ok := f.DeliveryWindow(time.UTC)
	assert.False(t, ok)

	d, err := negotiation.ParseDate("2026-06-01")
	require.NoError(t, err)
	s, err := negotiation.ParseTimeSlot("13:00-17:00")
	require.NoError(t, err)
	f.DeliveryDate = &d
	f.DeliverySlot = &s

	start, end, ok := f.DeliveryWindow(time.UTC)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 6, 1, 13, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 6, 1, 17, 0, 0, 0, time.UTC), end)

	f.DeliveryFeeRaw = "-5"
	assert.True(t, f.DeliveryFee().IsZero())
}
