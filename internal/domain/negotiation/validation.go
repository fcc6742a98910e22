package negotiation

import (
	"errors"
	"fmt"

	"rfq-offer-service/internal/domain/pricing"
)

var ErrValidation = errors.New("offer is not ready to submit")

type Rule string

const (
	RuleLineUnitPrice Rule = "line_unit_price"
	RuleDeliveryDate  Rule = "delivery_date"
	RuleDeliveryTime  Rule = "delivery_time"
)

// ValidationError names the first submit rule that failed. Nothing is sent
// to the store when it is returned.
type ValidationError struct {
	Rule      Rule
	LineIndex int
	Message   string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Validate applies the submit gate in order: every line priced above zero,
// then delivery date, then delivery time. Payment terms, notes and expiry
// always have usable defaults and are not checked.
func Validate(drafts []pricing.LinePriceDraft, form Form) error {
	for _, d := range drafts {
		if !d.IsPriced() {
			return &ValidationError{
				Rule:      RuleLineUnitPrice,
				LineIndex: d.LineIndex,
				Message:   fmt.Sprintf("line %d needs a unit price greater than zero", d.LineIndex),
			}
		}
	}
	if form.DeliveryDate == nil {
		return &ValidationError{Rule: RuleDeliveryDate, LineIndex: -1, Message: "select a delivery date"}
	}
	if form.DeliverySlot == nil {
		return &ValidationError{Rule: RuleDeliveryTime, LineIndex: -1, Message: "select a delivery time"}
	}
	return nil
}
