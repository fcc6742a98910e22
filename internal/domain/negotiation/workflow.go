package negotiation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"rfq-offer-service/internal/domain/offer"
	"rfq-offer-service/internal/domain/pricing"
	"rfq-offer-service/internal/domain/rfq"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidTransition = errors.New("invalid negotiation transition")
	ErrNotEditing        = errors.New("no offer draft is open")
	ErrNotLoaded         = errors.New("rfq has not been loaded")
)

type Phase string

const (
	PhaseNoOffer      Phase = "no_offer"
	PhaseDrafting     Phase = "drafting"
	PhaseViewingOffer Phase = "viewing_offer"
	PhaseRevising     Phase = "revising"
	PhaseSubmitting   Phase = "submitting"
	PhaseSubmitted    Phase = "submitted"
	PhaseDeclined     Phase = "declined"
)

func (p Phase) String() string {
	return string(p)
}

// IsEditing is true while a draft form is open.
func (p Phase) IsEditing() bool {
	return p == PhaseDrafting || p == PhaseRevising
}

// Workflow is the supplier-side offer state machine for one RFQ. It holds no
// version numbers of its own: after a submit the caller reloads it from the
// store.
type Workflow struct {
	loc       *time.Location
	phase     Phase
	resume    Phase
	rfq       *rfq.RFQ
	canonical *offer.Offer
	ledger    *pricing.Ledger
	form      Form
}

func NewWorkflow(loc *time.Location) *Workflow {
	if loc == nil {
		loc = time.UTC
	}
	return &Workflow{loc: loc, phase: PhaseNoOffer}
}

// Load replaces the workflow state with a fresh view of the RFQ. Any open
// draft is discarded. With no canonical offer the form opens immediately.
func (w *Workflow) Load(r *rfq.RFQ, canonical *offer.Offer, declined bool) error {
	if r == nil {
		return ErrNotLoaded
	}
	if w.phase == PhaseSubmitting {
		return fmt.Errorf("%w: cannot reload while submitting", ErrInvalidTransition)
	}
	w.rfq = r
	w.canonical = canonical
	w.teardown()

	switch {
	case declined:
		w.phase = PhaseDeclined
	case canonical != nil:
		w.phase = PhaseViewingOffer
	default:
		ledger, err := pricing.InitDraft(r.Lines, nil)
		if err != nil {
			return err
		}
		w.ledger = ledger
		w.form = NewForm()
		w.phase = PhaseDrafting
	}
	return nil
}

func (w *Workflow) Phase() Phase {
	return w.phase
}

func (w *Workflow) RFQ() *rfq.RFQ {
	return w.rfq
}

// Canonical is the active offer as last loaded from the store.
func (w *Workflow) Canonical() *offer.Offer {
	return w.canonical
}

func (w *Workflow) Location() *time.Location {
	return w.loc
}

// BeginRevision opens a draft seeded from the canonical offer. Terminal
// offers cannot be revised.
func (w *Workflow) BeginRevision(now time.Time) error {
	if w.phase != PhaseViewingOffer || w.canonical == nil {
		return fmt.Errorf("%w: revise from %s", ErrInvalidTransition, w.phase)
	}
	if err := w.canonical.CanRevise(now); err != nil {
		return err
	}
	ledger, err := pricing.InitDraft(w.rfq.Lines, w.canonical)
	if err != nil {
		return err
	}
	w.ledger = ledger
	w.form = formFromOffer(w.canonical, w.loc)
	w.phase = PhaseRevising
	return nil
}

// CancelRevision drops every draft edit and returns to the canonical offer.
func (w *Workflow) CancelRevision() error {
	if w.phase != PhaseRevising {
		return fmt.Errorf("%w: cancel from %s", ErrInvalidTransition, w.phase)
	}
	w.teardown()
	w.phase = PhaseViewingOffer
	return nil
}

func (w *Workflow) teardown() {
	w.ledger = nil
	w.form = Form{}
	w.resume = ""
}

func (w *Workflow) requireEditing() error {
	if !w.phase.IsEditing() || w.ledger == nil {
		return ErrNotEditing
	}
	return nil
}

func (w *Workflow) SetUnitPrice(lineIndex int, raw string) error {
	if err := w.requireEditing(); err != nil {
		return err
	}
	return w.ledger.SetUnitPrice(lineIndex, raw)
}

func (w *Workflow) SetSubtotal(lineIndex int, raw string) error {
	if err := w.requireEditing(); err != nil {
		return err
	}
	return w.ledger.SetSubtotal(lineIndex, raw)
}

func (w *Workflow) SetNote(lineIndex int, text string) error {
	if err := w.requireEditing(); err != nil {
		return err
	}
	return w.ledger.SetNote(lineIndex, text)
}

func (w *Workflow) SetDeliveryFee(raw string) error {
	if err := w.requireEditing(); err != nil {
		return err
	}
	w.form.DeliveryFeeRaw = raw
	return nil
}

// SetDeliveryDate accepts YYYY-MM-DD; blank clears the selection.
func (w *Workflow) SetDeliveryDate(raw string) error {
	if err := w.requireEditing(); err != nil {
		return err
	}
	if strings.TrimSpace(raw) == "" {
		w.form.DeliveryDate = nil
		return nil
	}
	d, err := ParseDate(raw)
	if err != nil {
		return err
	}
	w.form.DeliveryDate = &d
	return nil
}

// SetDeliverySlot accepts HH:MM-HH:MM; blank clears the selection.
func (w *Workflow) SetDeliverySlot(raw string) error {
	if err := w.requireEditing(); err != nil {
		return err
	}
	if strings.TrimSpace(raw) == "" {
		w.form.DeliverySlot = nil
		return nil
	}
	s, err := ParseTimeSlot(raw)
	if err != nil {
		return err
	}
	w.form.DeliverySlot = &s
	return nil
}

func (w *Workflow) SetPaymentTerms(raw string) error {
	if err := w.requireEditing(); err != nil {
		return err
	}
	p, err := offer.ParsePaymentTerms(raw)
	if err != nil {
		return err
	}
	w.form.PaymentTerms = p
	return nil
}

func (w *Workflow) SetExpiry(hours int) error {
	if err := w.requireEditing(); err != nil {
		return err
	}
	e, err := offer.ParseExpiryWindow(hours)
	if err != nil {
		return err
	}
	w.form.Expiry = e
	return nil
}

func (w *Workflow) SetNotes(text string) error {
	if err := w.requireEditing(); err != nil {
		return err
	}
	w.form.Notes = text
	return nil
}

// Drafts returns the open drafts in line order, nil when no form is open.
func (w *Workflow) Drafts() []pricing.LinePriceDraft {
	if w.ledger == nil {
		return nil
	}
	return w.ledger.Drafts()
}

func (w *Workflow) Form() Form {
	return w.form
}

// Total is the live running total of the open draft.
func (w *Workflow) Total() decimal.Decimal {
	if w.ledger == nil {
		return decimal.Zero
	}
	return pricing.CalculateTotal(w.ledger.Drafts(), w.rfq.Lines, w.form.DeliveryFee())
}

// BeginSubmit validates the open draft and, if it passes, moves to
// Submitting and returns the payload. On a ValidationError nothing changes.
func (w *Workflow) BeginSubmit(now time.Time) (offer.Submission, error) {
	if err := w.requireEditing(); err != nil {
		return offer.Submission{}, err
	}
	drafts := w.ledger.Drafts()
	if err := Validate(drafts, w.form); err != nil {
		return offer.Submission{}, err
	}
	start, end, _ := w.form.DeliveryWindow(w.loc)

	sub := offer.Submission{
		LinePrices:          pricing.LinePrices(drafts),
		TotalAmount:         pricing.CalculateTotal(drafts, w.rfq.Lines, w.form.DeliveryFee()),
		DeliveryWindowStart: start,
		DeliveryWindowEnd:   end,
		PaymentTerms:        w.form.PaymentTerms,
		DeliveryFee:         w.form.DeliveryFee(),
		ExpiresAt:           w.form.Expiry.ExpiresAt(now),
	}
	if notes := strings.TrimSpace(w.form.Notes); notes != "" {
		sub.Notes = &notes
	}

	w.resume = w.phase
	w.phase = PhaseSubmitting
	return sub, nil
}

// SubmitFailed reopens the form with every edit intact.
func (w *Workflow) SubmitFailed() error {
	if w.phase != PhaseSubmitting {
		return fmt.Errorf("%w: submit failed from %s", ErrInvalidTransition, w.phase)
	}
	w.phase = w.resume
	w.resume = ""
	return nil
}

// SubmitSucceeded closes the form. The new canonical offer is only known
// after the next Load.
func (w *Workflow) SubmitSucceeded() error {
	if w.phase != PhaseSubmitting {
		return fmt.Errorf("%w: submit succeeded from %s", ErrInvalidTransition, w.phase)
	}
	w.teardown()
	w.phase = PhaseSubmitted
	return nil
}

// Declined is terminal for this supplier on this RFQ.
func (w *Workflow) Declined() error {
	if w.phase == PhaseSubmitting {
		return fmt.Errorf("%w: decline while submitting", ErrInvalidTransition)
	}
	w.teardown()
	w.phase = PhaseDeclined
	return nil
}
