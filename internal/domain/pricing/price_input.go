package pricing

import "github.com/shopspring/decimal"

// PriceInput records which side of subtotal = unit_price × quantity the
// supplier last edited. Exactly one variant is held per line, so at most one
// field drives the other at any time.
type PriceInput interface {
	isPriceInput()
}

// Unpriced: nothing entered yet.
type Unpriced struct{}

// InvalidUnitPrice keeps a unit price the supplier typed that is not a
// non-negative decimal, so it can be shown back verbatim.
type InvalidUnitPrice struct {
	Raw string
}

// FromUnitPrice: unit price is authoritative; subtotal is derived.
type FromUnitPrice struct {
	Raw   string
	Value decimal.Decimal
}

// FromSubtotal: the subtotal text is shown exactly as typed and the unit
// price is derived from it. UnitPrice is nil when Raw did not parse.
type FromSubtotal struct {
	Raw       string
	UnitPrice *decimal.Decimal
}

func (Unpriced) isPriceInput()         {}
func (InvalidUnitPrice) isPriceInput() {}
func (FromUnitPrice) isPriceInput()    {}
func (FromSubtotal) isPriceInput()     {}

type Field string

const (
	FieldNone      Field = "none"
	FieldUnitPrice Field = "unit_price"
	FieldSubtotal  Field = "subtotal"
)
