package rfq

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidLineIndex = errors.New("line index must be non-negative")
	ErrDuplicateLine    = errors.New("duplicate line index")
	ErrInvalidQuantity  = errors.New("quantity must be greater than zero")
	ErrEmptyDescription = errors.New("line description cannot be empty")
	ErrInvalidRFQStatus = errors.New("invalid rfq status")
	ErrRFQWithoutLines  = errors.New("rfq must have at least one line")
)

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusClosed:
		return true
	default:
		return false
	}
}

// Line is one requested item. It is issued by the buyer and never changed
// by the supplier side.
type Line struct {
	Index       int
	Description string
	Quantity    decimal.Decimal
	Unit        string
	SpecNotes   *string
}

func NewLine(index int, description string, quantity decimal.Decimal, unit string, specNotes *string) (Line, error) {
	if index < 0 {
		return Line{}, ErrInvalidLineIndex
	}
	if description == "" {
		return Line{}, ErrEmptyDescription
	}
	if !quantity.IsPositive() {
		return Line{}, ErrInvalidQuantity
	}
	return Line{
		Index:       index,
		Description: description,
		Quantity:    quantity,
		Unit:        unit,
		SpecNotes:   specNotes,
	}, nil
}

type RFQ struct {
	ID              uuid.UUID
	BuyerID         uuid.UUID
	Title           string
	DeliveryAddress string
	Status          Status
	Lines           []Line
}

func Reconstruct(id, buyerID uuid.UUID, title, deliveryAddress string, status Status, lines []Line) (*RFQ, error) {
	if !status.IsValid() {
		return nil, ErrInvalidRFQStatus
	}
	if err := ValidateLines(lines); err != nil {
		return nil, err
	}
	return &RFQ{
		ID:              id,
		BuyerID:         buyerID,
		Title:           title,
		DeliveryAddress: deliveryAddress,
		Status:          status,
		Lines:           lines,
	}, nil
}

func (r *RFQ) IsOpen() bool {
	return r.Status == StatusOpen
}

func (r *RFQ) LineByIndex(index int) (Line, bool) {
	for _, l := range r.Lines {
		if l.Index == index {
			return l, true
		}
	}
	return Line{}, false
}

// ValidateLines checks the line set is non-empty and its indices unique.
func ValidateLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrRFQWithoutLines
	}
	seen := make(map[int]struct{}, len(lines))
	for _, l := range lines {
		if l.Index < 0 {
			return ErrInvalidLineIndex
		}
		if _, dup := seen[l.Index]; dup {
			return ErrDuplicateLine
		}
		seen[l.Index] = struct{}{}
	}
	return nil
}

// QuantityByIndex indexes line quantities for lookups during pricing.
func QuantityByIndex(lines []Line) map[int]decimal.Decimal {
	m := make(map[int]decimal.Decimal, len(lines))
	for _, l := range lines {
		m[l.Index] = l.Quantity
	}
	return m
}
