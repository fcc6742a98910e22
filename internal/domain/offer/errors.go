package offer

import "errors"

var (
	ErrInvalidPaymentTerms = errors.New("payment terms must be one of cod, net_7, advance_100")
	ErrInvalidExpiryWindow = errors.New("expiry window must be 24, 48, 72 or 168 hours")
	ErrOfferFinalized      = errors.New("offer is final and can no longer be revised")
	ErrInvalidSubmission   = errors.New("offer submission violates offer invariants")
)

// InvariantError names the first broken invariant of a submission.
type InvariantError struct {
	Field  string
	Reason string
}

func (e *InvariantError) Error() string {
	return e.Field + ": " + e.Reason
}

func (e *InvariantError) Unwrap() error {
	return ErrInvalidSubmission
}

func invariant(field, reason string) error {
	return &InvariantError{Field: field, Reason: reason}
}
