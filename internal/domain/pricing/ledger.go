package pricing

import (
	"errors"
	"fmt"

	"rfq-offer-service/internal/domain/money"
	"rfq-offer-service/internal/domain/offer"
	"rfq-offer-service/internal/domain/rfq"
)

var (
	ErrLineMismatch = errors.New("existing offer references a line that is not in the rfq")
	ErrUnknownLine  = errors.New("no draft for line index")
)

// LineMismatchError means the stored offer and the RFQ disagree on the line
// set. It is surfaced rather than dropping the orphan price.
type LineMismatchError struct {
	LineIndex int
}

func (e *LineMismatchError) Error() string {
	return fmt.Sprintf("existing offer prices line %d, which is not part of the rfq", e.LineIndex)
}

func (e *LineMismatchError) Unwrap() error {
	return ErrLineMismatch
}

// Ledger holds one draft per RFQ line, keyed by line index and iterated in
// RFQ line order.
type Ledger struct {
	order  []int
	drafts map[int]*LinePriceDraft
}

// InitDraft opens a draft for every line. When existing is set the drafts
// are seeded from its line prices and notes.
func InitDraft(lines []rfq.Line, existing *offer.Offer) (*Ledger, error) {
	l := &Ledger{
		order:  make([]int, 0, len(lines)),
		drafts: make(map[int]*LinePriceDraft, len(lines)),
	}
	for _, line := range lines {
		d := newDraft(line.Index, line.Quantity)
		l.order = append(l.order, line.Index)
		l.drafts[line.Index] = &d
	}

	if existing == nil {
		return l, nil
	}

	for _, lp := range existing.LinePrices {
		d, ok := l.drafts[lp.LineIndex]
		if !ok {
			return nil, &LineMismatchError{LineIndex: lp.LineIndex}
		}
		d.Input = FromUnitPrice{Raw: money.Format(lp.UnitPrice), Value: lp.UnitPrice}
		if lp.Notes != nil {
			d.Notes = *lp.Notes
		}
	}
	return l, nil
}

func (l *Ledger) SetUnitPrice(lineIndex int, raw string) error {
	d, ok := l.drafts[lineIndex]
	if !ok {
		return fmt.Errorf("%w %d", ErrUnknownLine, lineIndex)
	}
	*d = ApplyUnitPrice(*d, raw)
	return nil
}

func (l *Ledger) SetSubtotal(lineIndex int, raw string) error {
	d, ok := l.drafts[lineIndex]
	if !ok {
		return fmt.Errorf("%w %d", ErrUnknownLine, lineIndex)
	}
	*d = ApplySubtotal(*d, raw)
	return nil
}

func (l *Ledger) SetNote(lineIndex int, text string) error {
	d, ok := l.drafts[lineIndex]
	if !ok {
		return fmt.Errorf("%w %d", ErrUnknownLine, lineIndex)
	}
	d.Notes = text
	return nil
}

func (l *Ledger) Draft(lineIndex int) (LinePriceDraft, bool) {
	d, ok := l.drafts[lineIndex]
	if !ok {
		return LinePriceDraft{}, false
	}
	return *d, true
}

// Drafts returns copies in RFQ line order.
func (l *Ledger) Drafts() []LinePriceDraft {
	out := make([]LinePriceDraft, 0, len(l.order))
	for _, idx := range l.order {
		out = append(out, *l.drafts[idx])
	}
	return out
}

func (l *Ledger) Len() int {
	return len(l.order)
}
