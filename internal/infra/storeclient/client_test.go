//go:build unit

package storeclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rfq-offer-service/internal/handler/dto/request"
	"rfq-offer-service/internal/handler/dto/response"
	"rfq-offer-service/internal/infra/storeclient"
	"rfq-offer-service/internal/pkg/config"
	"rfq-offer-service/internal/usecase/queries"
	"rfq-offer-service/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, h http.HandlerFunc) *storeclient.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return storeclient.New(config.StoreConfig{URL: srv.URL + "/", Token: "tok", Timeout: 5 * time.Second}, nil, nil)
}

func TestClient_FetchRFQ(t *testing.T) {
	r := builder.NewRFQBuilder().BuildDomain()
	existing := builder.NewOfferBuilder().WithRFQID(r.ID).WithVersion(2).BuildDomain()
	body, err := response.FromSupplierRFQView(&queries.SupplierRFQView{RFQ: r, CreatedAt: time.Now(), ExistingOffer: existing})
	require.NoError(t, err)

	client := newClient(t, func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, http.MethodGet, req.Method)
		assert.Equal(t, "/api/rfqs/"+r.ID.String(), req.URL.Path)
		assert.Equal(t, "Bearer tok", req.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	})

	snap, err := client.FetchRFQ(context.Background(), r.ID)

	require.NoError(t, err)
	assert.True(t, snap.HasExistingOffer)
	require.NotNil(t, snap.ExistingOffer)
	assert.Equal(t, 2, snap.ExistingOffer.VersionNumber)
	assert.True(t, existing.TotalAmount.Equal(snap.ExistingOffer.TotalAmount))
	require.Len(t, snap.RFQ.Lines, 2)
	assert.True(t, decimal.NewFromInt(3).Equal(snap.RFQ.Lines[0].Quantity))
}

func TestClient_FetchRFQ_MalformedLines(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"open","lines":[{"index":0,"description":"sand","quantity":"0","unit":"bag"}]}`))
	})

	_, err := client.FetchRFQ(context.Background(), builder.NewRFQBuilder().BuildDomain().ID)

	assert.Error(t, err)
}

func TestClient_SubmitOffer(t *testing.T) {
	sub := builder.NewOfferBuilder().BuildSubmission()
	rfqID := builder.NewRFQBuilder().BuildDomain().ID

	client := newClient(t, func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/api/rfqs/"+rfqID.String()+"/offers", req.URL.Path)
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

		var got request.SubmitOfferRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&got))
		assert.True(t, sub.TotalAmount.Equal(*got.TotalAmount))
		assert.Len(t, got.LinePrices, len(sub.LinePrices))
		assert.Equal(t, "net_7", got.PaymentTerms)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"status":"accepted"}`))
	})

	assert.NoError(t, client.SubmitOffer(context.Background(), rfqID, sub))
}

func TestClient_StatusErrors(t *testing.T) {
	rfqID := builder.NewRFQBuilder().BuildDomain().ID

	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{"conflict with message", http.StatusConflict, `{"error":{"message":"offer was revised concurrently"}}`, "offer was revised concurrently"},
		{"server error without body", http.StatusInternalServerError, "", ""},
		{"non json body", http.StatusBadGateway, "<html>bad gateway</html>", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			err := client.SubmitOffer(context.Background(), rfqID, builder.NewOfferBuilder().BuildSubmission())

			var serr *storeclient.StatusError
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, tt.status, serr.StatusCode)
			assert.Equal(t, tt.wantMessage, serr.Message)
			assert.ErrorIs(t, err, storeclient.ErrUnexpectedStatus)
		})
	}
}

func TestClient_DeclineAndHistory(t *testing.T) {
	rfqID := builder.NewRFQBuilder().BuildDomain().ID
	at := time.Now().UTC().Truncate(time.Second)
	v2, err := response.FromOffer(builder.NewOfferBuilder().WithVersion(2).AsSuperseded(at).BuildDomain())
	require.NoError(t, err)
	v1, err := response.FromOffer(builder.NewOfferBuilder().WithVersion(1).AsSuperseded(at.Add(-time.Hour)).BuildDomain())
	require.NoError(t, err)

	client := newClient(t, func(w http.ResponseWriter, req *http.Request) {
		switch req.URL.Path {
		case "/api/rfqs/" + rfqID.String() + "/decline":
			w.WriteHeader(http.StatusNoContent)
		case "/api/rfqs/" + rfqID.String() + "/offers/history":
			_ = json.NewEncoder(w).Encode([]*response.OfferResponse{v2, v1})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	require.NoError(t, client.DeclineRFQ(context.Background(), rfqID))

	h, err := client.FetchOfferHistory(context.Background(), rfqID)
	require.NoError(t, err)
	require.Len(t, h, 2)
	assert.Equal(t, 1, h[0].VersionNumber)
	assert.Equal(t, 2, h[1].VersionNumber)
	require.NotNil(t, h[1].SupersededAt)
	assert.True(t, at.Equal(*h[1].SupersededAt))
}
