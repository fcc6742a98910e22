package response

import (
	"rfq-offer-service/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type QuoteLineResponse struct {
	LineIndex   int             `json:"line_index"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitPrice   string          `json:"unit_price"`
	Subtotal    string          `json:"subtotal"`
	LineTotal   string          `json:"line_total"`
	Driving     string          `json:"driving"`
	Priced      bool            `json:"priced"`
	Notes       string          `json:"notes,omitempty"`
}

type QuoteResponse struct {
	Lines       []QuoteLineResponse `json:"lines"`
	DeliveryFee string              `json:"delivery_fee"`
	Total       string              `json:"total"`
	Ready       bool                `json:"ready"`
}

func FromQuote(q *queries.Quote) *QuoteResponse {
	lines := make([]QuoteLineResponse, len(q.Lines))
	for i, l := range q.Lines {
		lines[i] = QuoteLineResponse{
			LineIndex:   l.LineIndex,
			Description: l.Description,
			Quantity:    l.Quantity,
			Unit:        l.Unit,
			UnitPrice:   l.UnitPriceText,
			Subtotal:    l.SubtotalText,
			LineTotal:   l.Subtotal.StringFixed(2),
			Driving:     string(l.Driving),
			Priced:      l.Priced,
			Notes:       l.Notes,
		}
	}
	return &QuoteResponse{
		Lines:       lines,
		DeliveryFee: q.DeliveryFee.StringFixed(2),
		Total:       q.Total.StringFixed(2),
		Ready:       q.Ready,
	}
}
