package response

import (
	"time"

	"rfq-offer-service/internal/domain/offer"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type LinePriceResponse struct {
	LineIndex  int             `json:"line_index"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Notes      *string         `json:"notes,omitempty"`
}

type OfferResponse struct {
	ID                  uuid.UUID           `json:"id"`
	RFQID               uuid.UUID           `json:"rfq_id"`
	SupplierID          uuid.UUID           `json:"supplier_id"`
	LinePrices          []LinePriceResponse `json:"line_prices"`
	TotalAmount         decimal.Decimal     `json:"total_amount"`
	DeliveryWindowStart time.Time           `json:"delivery_window_start"`
	DeliveryWindowEnd   time.Time           `json:"delivery_window_end"`
	PaymentTerms        string              `json:"payment_terms"`
	DeliveryFee         decimal.Decimal     `json:"delivery_fee"`
	Notes               *string             `json:"notes,omitempty"`
	ExpiresAt           time.Time           `json:"expires_at"`
	Status              string              `json:"status"`
	VersionNumber       int                 `json:"version_number"`
	CreatedAt           time.Time           `json:"created_at"`
	SupersededAt        *time.Time          `json:"superseded_at"`
}

type SubmitOfferResponse struct {
	Status string `json:"status"`
}

var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: decimal.Decimal{},
			Fn: func(src any) (any, error) {
				return src.(decimal.Decimal), nil
			},
		},
		{
			SrcType: offer.StatusPending,
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(offer.Status).String(), nil
			},
		},
		{
			SrcType: offer.PaymentCOD,
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(offer.PaymentTerms).String(), nil
			},
		},
	},
}

func FromOffer(o *offer.Offer) (*OfferResponse, error) {
	if o == nil {
		return nil, nil
	}
	res := &OfferResponse{}
	if err := copier.CopyWithOption(res, o, copyOption); err != nil {
		return nil, err
	}
	if res.LinePrices == nil {
		res.LinePrices = []LinePriceResponse{}
	}
	return res, nil
}

func FromHistory(h offer.History) ([]*OfferResponse, error) {
	res := make([]*OfferResponse, 0, len(h))
	for i := range h {
		o, err := FromOffer(&h[i])
		if err != nil {
			return nil, err
		}
		res = append(res, o)
	}
	return res, nil
}

// ToDomain is the supplier client's view of a stored offer.
func (r *OfferResponse) ToDomain() *offer.Offer {
	if r == nil {
		return nil
	}
	lps := make([]offer.LinePrice, len(r.LinePrices))
	for i, lp := range r.LinePrices {
		lps[i] = offer.LinePrice{
			LineIndex:  lp.LineIndex,
			UnitPrice:  lp.UnitPrice,
			TotalPrice: lp.TotalPrice,
			Notes:      lp.Notes,
		}
	}
	return &offer.Offer{
		ID:                  r.ID,
		RFQID:               r.RFQID,
		SupplierID:          r.SupplierID,
		LinePrices:          lps,
		TotalAmount:         r.TotalAmount,
		DeliveryWindowStart: r.DeliveryWindowStart,
		DeliveryWindowEnd:   r.DeliveryWindowEnd,
		PaymentTerms:        offer.PaymentTerms(r.PaymentTerms),
		DeliveryFee:         r.DeliveryFee,
		Notes:               r.Notes,
		ExpiresAt:           r.ExpiresAt,
		Status:              offer.Status(r.Status),
		VersionNumber:       r.VersionNumber,
		CreatedAt:           r.CreatedAt,
		SupersededAt:        r.SupersededAt,
	}
}

func HistoryToDomain(items []*OfferResponse) offer.History {
	offers := make([]offer.Offer, 0, len(items))
	for _, it := range items {
		if it != nil {
			offers = append(offers, *it.ToDomain())
		}
	}
	return offer.NewHistory(offers)
}
