//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"

	"rfq-offer-service/internal/domain/offer"
	reqdto "rfq-offer-service/internal/handler/dto/request"
	resdto "rfq-offer-service/internal/handler/dto/response"
	"rfq-offer-service/internal/pkg/errs"
	"rfq-offer-service/internal/usecase/commands"
	"rfq-offer-service/tests/common/builder"
	"rfq-offer-service/tests/common/httptest"
	"rfq-offer-service/tests/common/testutil"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func (s *HandlerTestSuite) TestSubmitOffer() {
	r := builder.NewRFQBuilder().WithID(s.rfqID).BuildDomain()
	sub := builder.NewOfferBuilder().ForRFQ(r, "10.00").WithNotes("  bagged  ").BuildSubmission()
	reqBody := reqdto.FromSubmission(sub)

	s.Run("success: returns 201 accepted and forwards the submission", func() {
		s.mockOffers.EXPECT().
			SubmitOffer(gomock.Any(), s.supplierID, s.rfqID, gomock.Any()).
			DoAndReturn(func(_ any, _, _ uuid.UUID, got offer.Submission) (*commands.SubmitOfferResult, error) {
				want := sub
				trimmed := "bagged"
				want.Notes = &trimmed
				if diff := cmp.Diff(want, got, decimalComparer, cmp.Comparer(timeEqual)); diff != "" {
					s.T().Errorf("submission mismatch (-want +got):\n%s", diff)
				}
				return &commands.SubmitOfferResult{OfferID: uuid.New(), VersionNumber: 1}, nil
			})

		rec := performRequest(s.T(), s.router, http.MethodPost, s.offersURL, reqBody, s.token)

		var body resdto.SubmitOfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("accepted", body.Status)
	})

	validation := []testCase{
		{name: "missing line_prices", mutate: testutil.Field("line_prices", nil), expectCode: http.StatusBadRequest},
		{name: "empty line_prices", mutate: testutil.Field("line_prices", []any{}), expectCode: http.StatusBadRequest},
		{name: "missing total_amount", mutate: testutil.Field("total_amount", nil), expectCode: http.StatusBadRequest},
		{name: "missing delivery_fee", mutate: testutil.Field("delivery_fee", nil), expectCode: http.StatusBadRequest},
		{name: "missing window start", mutate: testutil.Field("delivery_window_start", nil), expectCode: http.StatusBadRequest},
		{name: "missing expires_at", mutate: testutil.Field("expires_at", nil), expectCode: http.StatusBadRequest},
		{name: "unknown payment terms", mutate: testutil.Field("payment_terms", "net_90"), expectCode: http.StatusBadRequest},
		{name: "negative line index", mutate: testutil.Field("line_prices", []any{
			map[string]any{"line_index": -1, "unit_price": "1", "total_price": "3"},
		}), expectCode: http.StatusBadRequest},
		{name: "non numeric amount", mutate: testutil.Field("total_amount", "lots"), expectCode: http.StatusBadRequest},
	}
	for _, tc := range validation {
		s.Run("validation: "+tc.name, func() {
			body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
			rec := performRequest(s.T(), s.router, http.MethodPost, s.offersURL, body, s.token)
			s.Equal(tc.expectCode, rec.Code, rec.Body.String())
		})
	}

	rejections := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{name: "rfq not found", err: commands.ErrRFQNotFound, expectCode: http.StatusNotFound, expectMsg: "RFQ not found"},
		{name: "rfq closed", err: commands.ErrRFQClosed, expectCode: http.StatusConflict, expectMsg: "closed"},
		{name: "rfq declined", err: commands.ErrRFQDeclined, expectCode: http.StatusConflict, expectMsg: "declined"},
		{name: "offer final", err: errs.Mark(errors.New("offer accepted"), commands.ErrOfferFinalized), expectCode: http.StatusConflict, expectMsg: "no longer be revised"},
		{name: "version conflict", err: errs.Mark(errors.New("duplicate"), commands.ErrVersionConflict), expectCode: http.StatusConflict, expectMsg: "concurrently"},
		{name: "db failure", err: errs.Mark(errors.New("timeout"), commands.ErrDatabaseOperationFailed), expectCode: http.StatusInternalServerError, expectMsg: "Internal server error"},
	}
	for _, tc := range rejections {
		s.Run("rejected: "+tc.name, func() {
			s.mockOffers.EXPECT().SubmitOffer(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)
			rec := performRequest(s.T(), s.router, http.MethodPost, s.offersURL, reqBody, s.token)
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}

	s.Run("invariant failure returns 422 with the field", func() {
		inv := &offer.InvariantError{Field: "line_prices[1].total_price", Reason: "differs from unit price times quantity"}
		s.mockOffers.EXPECT().SubmitOffer(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(inv, commands.ErrInvalidOffer))

		rec := performRequest(s.T(), s.router, http.MethodPost, s.offersURL, reqBody, s.token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Offer validation failed")
		httptest.AssertErrorDetail(s.T(), rec, "line_prices[1].total_price")
		s.False(strings.Contains(rec.Body.String(), "stack"))
	})
}

func (s *HandlerTestSuite) TestDecline() {
	s.Run("success: 204 with empty body", func() {
		s.mockOffers.EXPECT().DeclineRFQ(gomock.Any(), s.supplierID, s.rfqID).Return(nil)
		rec := performRequest(s.T(), s.router, http.MethodPost, s.declineURL, nil, s.token)
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("accepted offer returns 409", func() {
		s.mockOffers.EXPECT().DeclineRFQ(gomock.Any(), gomock.Any(), gomock.Any()).Return(commands.ErrOfferAccepted)
		rec := performRequest(s.T(), s.router, http.MethodPost, s.declineURL, nil, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "accepted offer")
	})

	s.Run("unknown rfq returns 404", func() {
		s.mockOffers.EXPECT().DeclineRFQ(gomock.Any(), gomock.Any(), gomock.Any()).Return(commands.ErrRFQNotFound)
		rec := performRequest(s.T(), s.router, http.MethodPost, s.declineURL, nil, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "RFQ not found")
	})
}
