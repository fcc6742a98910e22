package request

import "rfq-offer-service/internal/usecase/queries"

type QuoteLineRequest struct {
	LineIndex *int    `json:"line_index" binding:"required,min=0"`
	UnitPrice *string `json:"unit_price,omitempty"`
	Subtotal  *string `json:"subtotal,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

type QuoteRequest struct {
	FromExisting bool               `json:"from_existing"`
	Lines        []QuoteLineRequest `json:"lines" binding:"dive"`
	DeliveryFee  string             `json:"delivery_fee"`
}

func (r QuoteRequest) ToInput() queries.QuoteInput {
	lines := make([]queries.QuoteLineInput, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = queries.QuoteLineInput{
			LineIndex: *l.LineIndex,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal,
			Notes:     l.Notes,
		}
	}
	return queries.QuoteInput{
		FromExisting: r.FromExisting,
		Lines:        lines,
		DeliveryFee:  r.DeliveryFee,
	}
}
