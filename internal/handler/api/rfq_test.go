//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"time"

	"rfq-offer-service/internal/domain/offer"
	resdto "rfq-offer-service/internal/handler/dto/response"
	"rfq-offer-service/internal/pkg/errs"
	"rfq-offer-service/internal/usecase/queries"
	"rfq-offer-service/tests/common/builder"
	"rfq-offer-service/tests/common/httptest"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var performRequest = httptest.PerformRequest

func (s *HandlerTestSuite) TestGetRFQ() {
	r := builder.NewRFQBuilder().WithID(s.rfqID).BuildDomain()
	existing := builder.NewOfferBuilder().ForRFQ(r, "10.00").WithSupplierID(s.supplierID).WithVersion(2).BuildDomain()

	s.Run("success: returns lines and canonical offer", func() {
		view := &queries.SupplierRFQView{RFQ: r, CreatedAt: time.Now().UTC(), ExistingOffer: existing}
		s.mockRFQs.EXPECT().GetForSupplier(gomock.Any(), s.supplierID, s.rfqID).Return(view, nil)

		rec := performRequest(s.T(), s.router, http.MethodGet, s.rfqURL, nil, s.token)

		var body resdto.RFQResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Content-Type": "application/json; charset=utf-8"})
		s.Equal(s.rfqID, body.ID)
		s.Len(body.Lines, 2)
		s.True(body.HasExistingOffer)
		s.Require().NotNil(body.ExistingOffer)
		s.Equal(2, body.ExistingOffer.VersionNumber)
		s.True(decimal.RequireFromString("70.00").Equal(body.ExistingOffer.TotalAmount))
		s.False(body.Declined)
	})

	s.Run("success: no offer yet", func() {
		view := &queries.SupplierRFQView{RFQ: r, CreatedAt: time.Now().UTC()}
		s.mockRFQs.EXPECT().GetForSupplier(gomock.Any(), s.supplierID, s.rfqID).Return(view, nil)

		rec := performRequest(s.T(), s.router, http.MethodGet, s.rfqURL, nil, s.token)

		var body resdto.RFQResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.HasExistingOffer)
		s.Nil(body.ExistingOffer)
	})

	s.Run("invalid id returns 400", func() {
		rec := performRequest(s.T(), s.router, http.MethodGet, "/api/rfqs/not-a-uuid", nil, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("not found returns 404", func() {
		s.mockRFQs.EXPECT().GetForSupplier(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, queries.ErrRFQNotFound)
		rec := performRequest(s.T(), s.router, http.MethodGet, s.rfqURL, nil, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "RFQ not found")
	})

	s.Run("store failure returns 500", func() {
		s.mockRFQs.EXPECT().GetForSupplier(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
		rec := performRequest(s.T(), s.router, http.MethodGet, s.rfqURL, nil, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *HandlerTestSuite) TestHistory() {
	r := builder.NewRFQBuilder().WithID(s.rfqID).BuildDomain()
	at := time.Now().UTC().Truncate(time.Second)
	v1 := *builder.NewOfferBuilder().ForRFQ(r, "9.00").WithVersion(1).AsSuperseded(at).BuildDomain()
	v2 := *builder.NewOfferBuilder().ForRFQ(r, "9.50").WithVersion(2).AsSuperseded(at.Add(time.Minute)).BuildDomain()

	s.Run("success: versions ascending", func() {
		s.mockRFQs.EXPECT().ListOfferHistory(gomock.Any(), s.supplierID, s.rfqID).Return(offer.History{v1, v2}, nil)

		rec := performRequest(s.T(), s.router, http.MethodGet, s.historyURL, nil, s.token)

		var body []resdto.OfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal(1, body[0].VersionNumber)
		s.Equal(2, body[1].VersionNumber)
		s.NotNil(body[0].SupersededAt)
	})

	s.Run("empty history is an empty array", func() {
		s.mockRFQs.EXPECT().ListOfferHistory(gomock.Any(), s.supplierID, s.rfqID).Return(nil, nil)
		rec := performRequest(s.T(), s.router, http.MethodGet, s.historyURL, nil, s.token)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("unknown rfq returns 404", func() {
		s.mockRFQs.EXPECT().ListOfferHistory(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, queries.ErrRFQNotFound)
		rec := performRequest(s.T(), s.router, http.MethodGet, s.historyURL, nil, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "RFQ not found")
	})
}

func (s *HandlerTestSuite) TestQuote() {
	unit := "25.00"
	sub := "50"
	reqBody := map[string]any{
		"lines": []map[string]any{
			{"line_index": 0, "unit_price": unit},
			{"line_index": 1, "subtotal": sub},
		},
		"delivery_fee": "20",
	}

	s.Run("success: returns display values and total", func() {
		quote := &queries.Quote{
			Lines: []queries.QuoteLine{
				{LineIndex: 0, Quantity: decimal.NewFromInt(3), UnitPriceText: "25.00", SubtotalText: "75.00", Subtotal: decimal.RequireFromString("75"), Priced: true},
				{LineIndex: 1, Quantity: decimal.NewFromInt(2), UnitPriceText: "25.00", SubtotalText: "50", Subtotal: decimal.RequireFromString("50"), Priced: true},
			},
			DeliveryFee: decimal.NewFromInt(20),
			Total:       decimal.RequireFromString("145"),
			Ready:       true,
		}
		s.mockQuotes.EXPECT().
			Preview(gomock.Any(), s.supplierID, s.rfqID, gomock.Any()).
			DoAndReturn(func(_ any, _, _ uuid.UUID, in queries.QuoteInput) (*queries.Quote, error) {
				s.Require().Len(in.Lines, 2)
				s.Equal(unit, *in.Lines[0].UnitPrice)
				s.Nil(in.Lines[0].Subtotal)
				s.Equal(sub, *in.Lines[1].Subtotal)
				s.Equal("20", in.DeliveryFee)
				return quote, nil
			})

		rec := performRequest(s.T(), s.router, http.MethodPost, s.quoteURL, reqBody, s.token)

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("145.00", body.Total)
		s.Equal("20.00", body.DeliveryFee)
		s.True(body.Ready)
		s.Equal("50", body.Lines[1].Subtotal)
	})

	s.Run("missing line index returns 400", func() {
		bad := map[string]any{"lines": []map[string]any{{"unit_price": "1"}}}
		rec := performRequest(s.T(), s.router, http.MethodPost, s.quoteURL, bad, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("unknown line returns 400", func() {
		s.mockQuotes.EXPECT().Preview(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("no line 9"), queries.ErrInvalidQuote))
		rec := performRequest(s.T(), s.router, http.MethodPost, s.quoteURL, reqBody, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid quote input")
	})
}

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func timeEqual(a, b time.Time) bool { return a.Equal(b) }
