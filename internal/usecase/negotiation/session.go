package negotiation

import (
	"context"
	"log/slog"
	"sync"
	"time"

	domneg "rfq-offer-service/internal/domain/negotiation"
	"rfq-offer-service/internal/domain/offer"
	"rfq-offer-service/internal/domain/pricing"
	"rfq-offer-service/internal/domain/rfq"
	"rfq-offer-service/internal/pkg/clock"
	"rfq-offer-service/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var errInconsistentSnapshot = errs.New("store reported an existing offer but sent none")

// Session drives one supplier's negotiation on one RFQ against an
// OfferStore. Edits are expected from a single caller; only the history
// fetch runs in the background.
type Session struct {
	store    OfferStore
	clock    clock.Clock
	logger   *slog.Logger
	workflow *domneg.Workflow
	rfqID    uuid.UUID

	mu           sync.Mutex
	history      offer.History
	historyErr   error
	historyReady chan struct{}
}

func NewSession(store OfferStore, clk clock.Clock, logger *slog.Logger, loc *time.Location) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		store:    store,
		clock:    clk,
		logger:   logger,
		workflow: domneg.NewWorkflow(loc),
	}
}

// Open fetches the RFQ and enters Drafting, ViewingOffer or Declined.
func (s *Session) Open(ctx context.Context, rfqID uuid.UUID) error {
	s.rfqID = rfqID
	return s.Reload(ctx)
}

// Reload re-reads canonical state from the store, discarding any open draft.
func (s *Session) Reload(ctx context.Context) error {
	snap, err := s.store.FetchRFQ(ctx, s.rfqID)
	if err != nil {
		return &FetchError{Resource: ResourceRFQ, Fatal: true, Err: err}
	}
	if snap == nil || snap.RFQ == nil {
		return &FetchError{Resource: ResourceRFQ, Fatal: true, Err: domneg.ErrNotLoaded}
	}
	if snap.HasExistingOffer && snap.ExistingOffer == nil {
		return &FetchError{Resource: ResourceRFQ, Fatal: true, Err: errInconsistentSnapshot}
	}

	from := s.workflow.Phase()
	if err := s.workflow.Load(snap.RFQ, snap.ExistingOffer, snap.Declined); err != nil {
		return err
	}
	s.logTransition(from, "load")
	return nil
}

func (s *Session) logTransition(from domneg.Phase, event string) {
	s.logger.Debug("negotiation phase changed",
		"rfq_id", s.rfqID,
		"event", event,
		"from", from,
		"to", s.workflow.Phase())
}

func (s *Session) Phase() domneg.Phase {
	return s.workflow.Phase()
}

func (s *Session) RFQ() *rfq.RFQ {
	return s.workflow.RFQ()
}

func (s *Session) Canonical() *offer.Offer {
	return s.workflow.Canonical()
}

// BeginRevision opens a draft seeded from the canonical offer and starts
// loading the offer history in the background. The revision does not wait
// for the history.
func (s *Session) BeginRevision(ctx context.Context) error {
	from := s.workflow.Phase()
	if err := s.workflow.BeginRevision(s.clock.Now()); err != nil {
		return err
	}
	s.logTransition(from, "revise")

	ready := make(chan struct{})
	s.mu.Lock()
	s.history = nil
	s.historyErr = nil
	s.historyReady = ready
	s.mu.Unlock()

	go s.loadHistory(context.WithoutCancel(ctx), s.rfqID, ready)
	return nil
}

func (s *Session) loadHistory(ctx context.Context, rfqID uuid.UUID, ready chan struct{}) {
	defer close(ready)

	h, err := s.store.FetchOfferHistory(ctx, rfqID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.historyReady != ready {
		return
	}
	if err != nil {
		s.historyErr = &FetchError{Resource: ResourceHistory, Fatal: false, Err: err}
		s.logger.Warn("offer history unavailable", "rfq_id", rfqID, "error", err)
		return
	}
	s.history = h
}

// HistoryReady is closed once the latest history fetch has finished, or
// immediately if none was started.
func (s *Session) HistoryReady() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.historyReady == nil {
		done := make(chan struct{})
		close(done)
		return done
	}
	return s.historyReady
}

// History returns what the last fetch produced. The error is a non-fatal
// FetchError; the history is then empty.
func (s *Session) History() (offer.History, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history, s.historyErr
}

func (s *Session) CancelRevision() error {
	from := s.workflow.Phase()
	if err := s.workflow.CancelRevision(); err != nil {
		return err
	}
	s.logTransition(from, "cancel")
	return nil
}

func (s *Session) SetUnitPrice(lineIndex int, raw string) error {
	return s.workflow.SetUnitPrice(lineIndex, raw)
}

func (s *Session) SetSubtotal(lineIndex int, raw string) error {
	return s.workflow.SetSubtotal(lineIndex, raw)
}

func (s *Session) SetNote(lineIndex int, text string) error {
	return s.workflow.SetNote(lineIndex, text)
}

func (s *Session) SetDeliveryFee(raw string) error {
	return s.workflow.SetDeliveryFee(raw)
}

func (s *Session) SetDeliveryDate(raw string) error {
	return s.workflow.SetDeliveryDate(raw)
}

func (s *Session) SetDeliverySlot(raw string) error {
	return s.workflow.SetDeliverySlot(raw)
}

func (s *Session) SetPaymentTerms(raw string) error {
	return s.workflow.SetPaymentTerms(raw)
}

func (s *Session) SetExpiry(hours int) error {
	return s.workflow.SetExpiry(hours)
}

func (s *Session) SetNotes(text string) error {
	return s.workflow.SetNotes(text)
}

func (s *Session) Drafts() []pricing.LinePriceDraft {
	return s.workflow.Drafts()
}

func (s *Session) Form() domneg.Form {
	return s.workflow.Form()
}

func (s *Session) Total() decimal.Decimal {
	return s.workflow.Total()
}

// Submit validates locally, sends the payload, and on success re-fetches
// the RFQ so the canonical offer and its version come from the store.
//
// A ValidationError means nothing was sent. A SubmissionError leaves the
// draft open for an explicit retry. A FetchError after a successful submit
// leaves the session in Submitted; call Reload to recover.
func (s *Session) Submit(ctx context.Context) error {
	from := s.workflow.Phase()
	sub, err := s.workflow.BeginSubmit(s.clock.Now())
	if err != nil {
		return err
	}
	s.logTransition(from, "submit")

	if err := s.store.SubmitOffer(ctx, s.rfqID, sub); err != nil {
		_ = s.workflow.SubmitFailed()
		s.logTransition(domneg.PhaseSubmitting, "submit_failed")
		return &SubmissionError{Err: err}
	}
	_ = s.workflow.SubmitSucceeded()
	s.logTransition(domneg.PhaseSubmitting, "submitted")

	return s.Reload(ctx)
}

// Decline is terminal: no further offers on this RFQ from this supplier.
func (s *Session) Decline(ctx context.Context) error {
	if s.workflow.Phase() == domneg.PhaseSubmitting {
		return domneg.ErrInvalidTransition
	}
	if err := s.store.DeclineRFQ(ctx, s.rfqID); err != nil {
		return errs.Wrap(err, "decline rfq")
	}
	from := s.workflow.Phase()
	_ = s.workflow.Declined()
	s.logTransition(from, "decline")
	return nil
}
