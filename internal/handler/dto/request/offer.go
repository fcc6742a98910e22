package request

import (
	"strings"
	"time"

	"rfq-offer-service/internal/domain/offer"

	"github.com/shopspring/decimal"
)

type LinePriceRequest struct {
	LineIndex  *int             `json:"line_index" binding:"required,min=0"`
	UnitPrice  *decimal.Decimal `json:"unit_price" binding:"required"`
	TotalPrice *decimal.Decimal `json:"total_price" binding:"required"`
	Notes      *string          `json:"notes,omitempty"`
}

// SubmitOfferRequest is the create-or-revise body. It carries no version:
// the store decides from its own state.
type SubmitOfferRequest struct {
	LinePrices          []LinePriceRequest `json:"line_prices" binding:"required,min=1,dive"`
	TotalAmount         *decimal.Decimal   `json:"total_amount" binding:"required"`
	DeliveryWindowStart time.Time          `json:"delivery_window_start" binding:"required"`
	DeliveryWindowEnd   time.Time          `json:"delivery_window_end" binding:"required"`
	PaymentTerms        string             `json:"payment_terms" binding:"required,oneof=cod net_7 advance_100"`
	DeliveryFee         *decimal.Decimal   `json:"delivery_fee" binding:"required"`
	Notes               *string            `json:"notes,omitempty"`
	ExpiresAt           time.Time          `json:"expires_at" binding:"required"`
}

func (r SubmitOfferRequest) ToSubmission() offer.Submission {
	lps := make([]offer.LinePrice, len(r.LinePrices))
	for i, lp := range r.LinePrices {
		lps[i] = offer.LinePrice{
			LineIndex:  *lp.LineIndex,
			UnitPrice:  *lp.UnitPrice,
			TotalPrice: *lp.TotalPrice,
			Notes:      trimmedOrNil(lp.Notes),
		}
	}
	return offer.Submission{
		LinePrices:          lps,
		TotalAmount:         *r.TotalAmount,
		DeliveryWindowStart: r.DeliveryWindowStart,
		DeliveryWindowEnd:   r.DeliveryWindowEnd,
		PaymentTerms:        offer.PaymentTerms(r.PaymentTerms),
		DeliveryFee:         *r.DeliveryFee,
		Notes:               trimmedOrNil(r.Notes),
		ExpiresAt:           r.ExpiresAt,
	}
}

// FromSubmission builds the wire body the supplier client sends.
func FromSubmission(s offer.Submission) SubmitOfferRequest {
	lps := make([]LinePriceRequest, len(s.LinePrices))
	for i, lp := range s.LinePrices {
		idx, unit, total := lp.LineIndex, lp.UnitPrice, lp.TotalPrice
		lps[i] = LinePriceRequest{LineIndex: &idx, UnitPrice: &unit, TotalPrice: &total, Notes: lp.Notes}
	}
	total, fee := s.TotalAmount, s.DeliveryFee
	return SubmitOfferRequest{
		LinePrices:          lps,
		TotalAmount:         &total,
		DeliveryWindowStart: s.DeliveryWindowStart,
		DeliveryWindowEnd:   s.DeliveryWindowEnd,
		PaymentTerms:        s.PaymentTerms.String(),
		DeliveryFee:         &fee,
		Notes:               s.Notes,
		ExpiresAt:           s.ExpiresAt,
	}
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
