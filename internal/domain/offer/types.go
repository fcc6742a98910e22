package offer

import (
	"strconv"
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusExpired  Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusExpired:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further revision is possible.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusAccepted, StatusRejected, StatusExpired:
		return true
	default:
		return false
	}
}

type PaymentTerms string

const (
	PaymentCOD        PaymentTerms = "cod"
	PaymentNet7       PaymentTerms = "net_7"
	PaymentAdvance100 PaymentTerms = "advance_100"
)

const DefaultPaymentTerms = PaymentCOD

func (p PaymentTerms) String() string {
	return string(p)
}

func (p PaymentTerms) IsValid() bool {
	switch p {
	case PaymentCOD, PaymentNet7, PaymentAdvance100:
		return true
	default:
		return false
	}
}

func ParsePaymentTerms(s string) (PaymentTerms, error) {
	p := PaymentTerms(s)
	if !p.IsValid() {
		return "", ErrInvalidPaymentTerms
	}
	return p, nil
}

// ExpiryWindow is how long an offer stays open, in hours.
type ExpiryWindow int

const (
	Expiry24h  ExpiryWindow = 24
	Expiry48h  ExpiryWindow = 48
	Expiry72h  ExpiryWindow = 72
	Expiry168h ExpiryWindow = 168
)

const DefaultExpiryWindow = Expiry48h

func (w ExpiryWindow) IsValid() bool {
	switch w {
	case Expiry24h, Expiry48h, Expiry72h, Expiry168h:
		return true
	default:
		return false
	}
}

func (w ExpiryWindow) Duration() time.Duration {
	return time.Duration(w) * time.Hour
}

// ExpiresAt is evaluated once, at submit time, from wall-clock now.
func (w ExpiryWindow) ExpiresAt(now time.Time) time.Time {
	return now.Add(w.Duration())
}

func (w ExpiryWindow) String() string {
	return strconv.Itoa(int(w)) + "h"
}

func ParseExpiryWindow(hours int) (ExpiryWindow, error) {
	w := ExpiryWindow(hours)
	if !w.IsValid() {
		return 0, ErrInvalidExpiryWindow
	}
	return w, nil
}
