//go:build unit || e2e

package builder

import (
	domrfq "rfq-offer-service/internal/domain/rfq"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RFQBuilder struct {
	ID              uuid.UUID
	BuyerID         uuid.UUID
	Title           string
	DeliveryAddress string
	Status          domrfq.Status
	Lines           []domrfq.Line
}

// NewRFQBuilder starts from two lines: 3 bags of cement and 2 tons of sand.
func NewRFQBuilder() *RFQBuilder {
	return &RFQBuilder{
		ID:              uuid.New(),
		BuyerID:         uuid.New(),
		Title:           "Site 14 foundation materials",
		DeliveryAddress: "14 Quarry Road",
		Status:          domrfq.StatusOpen,
		Lines: []domrfq.Line{
			{Index: 0, Description: "Portland cement 50kg", Quantity: decimal.NewFromInt(3), Unit: "bag"},
			{Index: 1, Description: "Washed river sand", Quantity: decimal.NewFromInt(2), Unit: "ton"},
		},
	}
}

func (r *RFQBuilder) With(mutate func(*RFQBuilder)) *RFQBuilder {
	mutate(r)
	return r
}

func (r *RFQBuilder) BuildDomain() *domrfq.RFQ {
	lines := make([]domrfq.Line, len(r.Lines))
	copy(lines, r.Lines)
	return &domrfq.RFQ{
		ID:              r.ID,
		BuyerID:         r.BuyerID,
		Title:           r.Title,
		DeliveryAddress: r.DeliveryAddress,
		Status:          r.Status,
		Lines:           lines,
	}
}

func (r *RFQBuilder) WithID(id uuid.UUID) *RFQBuilder {
	r.ID = id
	return r
}

func (r *RFQBuilder) WithStatus(status domrfq.Status) *RFQBuilder {
	r.Status = status
	return r
}

func (r *RFQBuilder) WithLines(lines ...domrfq.Line) *RFQBuilder {
	r.Lines = lines
	return r
}

func (r *RFQBuilder) WithLine(index int, quantity string, unit string) *RFQBuilder {
	r.Lines = append(r.Lines, domrfq.Line{
		Index:       index,
		Description: "Line " + unit,
		Quantity:    decimal.RequireFromString(quantity),
		Unit:        unit,
	})
	return r
}

func (r *RFQBuilder) AsClosed() *RFQBuilder {
	r.Status = domrfq.StatusClosed
	return r
}
