package negotiation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"rfq-offer-service/internal/domain/offer"
	"rfq-offer-service/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDeliveryDate = errors.New("delivery date must be YYYY-MM-DD")
	ErrInvalidTimeSlot     = errors.New("delivery time must be HH:MM-HH:MM with start before end")
)

const dateLayout = "2006-01-02"

// TimeSlot is a delivery time range within a day, as offsets from midnight.
type TimeSlot struct {
	From time.Duration
	To   time.Duration
}

func ParseTimeSlot(s string) (TimeSlot, error) {
	from, to, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	f, err := parseClock(from)
	if err != nil {
		return TimeSlot{}, err
	}
	t, err := parseClock(to)
	if err != nil {
		return TimeSlot{}, err
	}
	if f >= t {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{From: f, To: t}, nil
}

func parseClock(s string) (time.Duration, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, ErrInvalidTimeSlot
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

func (s TimeSlot) String() string {
	return fmt.Sprintf("%s-%s", formatClock(s.From), formatClock(s.To))
}

func formatClock(d time.Duration) string {
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}

// Date is a calendar day with no time-of-day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDeliveryDate
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Date) At(offset time.Duration, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc).Add(offset)
}

// Form holds the offer-level fields edited next to the line drafts.
type Form struct {
	DeliveryFeeRaw string
	DeliveryDate   *Date
	DeliverySlot   *TimeSlot
	PaymentTerms   offer.PaymentTerms
	Expiry         offer.ExpiryWindow
	Notes          string
}

func NewForm() Form {
	return Form{
		PaymentTerms: offer.DefaultPaymentTerms,
		Expiry:       offer.DefaultExpiryWindow,
	}
}

// formFromOffer pre-fills a revision with the canonical offer's terms.
func formFromOffer(o *offer.Offer, loc *time.Location) Form {
	f := NewForm()
	f.DeliveryFeeRaw = o.DeliveryFee.StringFixed(2)
	if o.PaymentTerms.IsValid() {
		f.PaymentTerms = o.PaymentTerms
	}
	if o.Notes != nil {
		f.Notes = *o.Notes
	}
	start := o.DeliveryWindowStart.In(loc)
	end := o.DeliveryWindowEnd.In(loc)
	if !o.DeliveryWindowStart.IsZero() && sameDay(start, end) && start.Before(end) {
		date := Date{Year: start.Year(), Month: start.Month(), Day: start.Day()}
		midnight := date.At(0, loc)
		slot := TimeSlot{From: start.Sub(midnight), To: end.Sub(midnight)}
		f.DeliveryDate = &date
		f.DeliverySlot = &slot
	}
	return f
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func (f Form) DeliveryFee() decimal.Decimal {
	return pricing.ParseDeliveryFee(f.DeliveryFeeRaw)
}

// DeliveryWindow combines date and slot; ok is false until both are set.
func (f Form) DeliveryWindow(loc *time.Location) (start, end time.Time, ok bool) {
	if f.DeliveryDate == nil || f.DeliverySlot == nil {
		return time.Time{}, time.Time{}, false
	}
	return f.DeliveryDate.At(f.DeliverySlot.From, loc), f.DeliveryDate.At(f.DeliverySlot.To, loc), true
}
