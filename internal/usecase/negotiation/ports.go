package negotiation

import (
	"context"
	"fmt"

	"rfq-offer-service/internal/domain/offer"
	"rfq-offer-service/internal/domain/rfq"
	"rfq-offer-service/internal/pkg/errs"

	"github.com/google/uuid"
)

// RFQSnapshot is the store's canonical view of one RFQ for the calling
// supplier.
type RFQSnapshot struct {
	RFQ              *rfq.RFQ
	HasExistingOffer bool
	ExistingOffer    *offer.Offer
	Declined         bool
}

// OfferStore is the order/offer store as seen from the supplier side.
// SubmitOffer reports only success or failure; version numbers and
// supersession stamps are read back with FetchRFQ.
type OfferStore interface {
	FetchRFQ(ctx context.Context, rfqID uuid.UUID) (*RFQSnapshot, error)
	FetchOfferHistory(ctx context.Context, rfqID uuid.UUID) (offer.History, error)
	SubmitOffer(ctx context.Context, rfqID uuid.UUID, sub offer.Submission) error
	DeclineRFQ(ctx context.Context, rfqID uuid.UUID) error
}

var (
	ErrSubmission = errs.New("offer submission failed")
	ErrFetch      = errs.New("offer store fetch failed")
)

// SubmissionError is a store-side rejection or transport failure on submit.
// The draft is left open and unchanged.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submit offer: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

func (e *SubmissionError) Is(target error) bool {
	return target == ErrSubmission
}

const (
	ResourceRFQ     = "rfq"
	ResourceHistory = "history"
)

// FetchError is a failed read. An RFQ fetch failure is fatal to the session;
// a history fetch failure only leaves the history empty.
type FetchError struct {
	Resource string
	Fatal    bool
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Resource, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}
