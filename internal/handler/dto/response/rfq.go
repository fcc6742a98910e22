package response

import (
	"time"

	"rfq-offer-service/internal/domain/rfq"
	"rfq-offer-service/internal/usecase/negotiation"
	"rfq-offer-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RFQLineResponse struct {
	Index       int             `json:"index"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	SpecNotes   *string         `json:"spec_notes,omitempty"`
}

type RFQResponse struct {
	ID               uuid.UUID         `json:"id"`
	BuyerID          uuid.UUID         `json:"buyer_id"`
	Title            string            `json:"title"`
	DeliveryAddress  string            `json:"delivery_address"`
	Status           string            `json:"status"`
	CreatedAt        time.Time         `json:"created_at"`
	Lines            []RFQLineResponse `json:"lines"`
	HasExistingOffer bool              `json:"has_existing_offer"`
	ExistingOffer    *OfferResponse    `json:"existing_offer"`
	Declined         bool              `json:"declined"`
}

func FromSupplierRFQView(v *queries.SupplierRFQView) (*RFQResponse, error) {
	existing, err := FromOffer(v.ExistingOffer)
	if err != nil {
		return nil, err
	}
	lines := make([]RFQLineResponse, len(v.RFQ.Lines))
	for i, l := range v.RFQ.Lines {
		lines[i] = RFQLineResponse{
			Index:       l.Index,
			Description: l.Description,
			Quantity:    l.Quantity,
			Unit:        l.Unit,
			SpecNotes:   l.SpecNotes,
		}
	}
	return &RFQResponse{
		ID:               v.RFQ.ID,
		BuyerID:          v.RFQ.BuyerID,
		Title:            v.RFQ.Title,
		DeliveryAddress:  v.RFQ.DeliveryAddress,
		Status:           v.RFQ.Status.String(),
		CreatedAt:        v.CreatedAt,
		Lines:            lines,
		HasExistingOffer: v.HasExistingOffer(),
		ExistingOffer:    existing,
		Declined:         v.Declined,
	}, nil
}

// ToSnapshot rebuilds the RFQ on the client side. Lines go through the
// same constructors as on the server so a malformed response is rejected.
func (r *RFQResponse) ToSnapshot() (*negotiation.RFQSnapshot, error) {
	lines := make([]rfq.Line, 0, len(r.Lines))
	for _, l := range r.Lines {
		line, err := rfq.NewLine(l.Index, l.Description, l.Quantity, l.Unit, l.SpecNotes)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	rq, err := rfq.Reconstruct(r.ID, r.BuyerID, r.Title, r.DeliveryAddress, rfq.Status(r.Status), lines)
	if err != nil {
		return nil, err
	}
	return &negotiation.RFQSnapshot{
		RFQ:              rq,
		HasExistingOffer: r.HasExistingOffer,
		ExistingOffer:    r.ExistingOffer.ToDomain(),
		Declined:         r.Declined,
	}, nil
}
