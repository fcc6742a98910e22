package storeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"rfq-offer-service/internal/domain/offer"
	"rfq-offer-service/internal/handler/dto/request"
	"rfq-offer-service/internal/handler/dto/response"
	"rfq-offer-service/internal/handler/httperr"
	"rfq-offer-service/internal/pkg/config"
	"rfq-offer-service/internal/pkg/errs"
	"rfq-offer-service/internal/usecase/negotiation"

	"github.com/google/uuid"
)

var ErrUnexpectedStatus = errs.New("unexpected status from offer store")

// StatusError is a non-2xx answer from the store, with the message from
// its error body when there is one.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("offer store returned %d", e.StatusCode)
	}
	return fmt.Sprintf("offer store returned %d: %s", e.StatusCode, e.Message)
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

// Client talks to the offer store HTTP API on behalf of one supplier,
// identified by the bearer token.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *slog.Logger
}

var _ negotiation.OfferStore = (*Client)(nil)

func New(cfg config.StoreConfig, hc *http.Client, logger *slog.Logger) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		token:   cfg.Token,
		http:    hc,
		logger:  logger,
	}
}

func (c *Client) FetchRFQ(ctx context.Context, rfqID uuid.UUID) (*negotiation.RFQSnapshot, error) {
	var body response.RFQResponse
	if err := c.do(ctx, http.MethodGet, c.rfqPath(rfqID, ""), nil, http.StatusOK, &body); err != nil {
		return nil, err
	}
	snap, err := body.ToSnapshot()
	if err != nil {
		return nil, errs.Wrap(err, "malformed rfq from offer store")
	}
	return snap, nil
}

func (c *Client) FetchOfferHistory(ctx context.Context, rfqID uuid.UUID) (offer.History, error) {
	var body []*response.OfferResponse
	if err := c.do(ctx, http.MethodGet, c.rfqPath(rfqID, "/offers/history"), nil, http.StatusOK, &body); err != nil {
		return nil, err
	}
	return response.HistoryToDomain(body), nil
}

func (c *Client) SubmitOffer(ctx context.Context, rfqID uuid.UUID, sub offer.Submission) error {
	return c.do(ctx, http.MethodPost, c.rfqPath(rfqID, "/offers"), request.FromSubmission(sub), http.StatusCreated, nil)
}

func (c *Client) DeclineRFQ(ctx context.Context, rfqID uuid.UUID) error {
	return c.do(ctx, http.MethodPost, c.rfqPath(rfqID, "/decline"), nil, http.StatusNoContent, nil)
}

func (c *Client) rfqPath(rfqID uuid.UUID, suffix string) string {
	return c.baseURL + "/api/rfqs/" + rfqID.String() + suffix
}

func (c *Client) do(ctx context.Context, method, url string, in any, want int, out any) error {
	var reqBody io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return errs.Wrap(err, "failed to encode request")
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return errs.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Wrapf(err, "%s %s", method, url)
	}
	defer resp.Body.Close()

	c.logger.Debug("offer store call",
		"method", method,
		"url", url,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode != want {
		return decodeStatusError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(err, "failed to decode offer store response")
	}
	return nil
}

func decodeStatusError(resp *http.Response) error {
	serr := &StatusError{StatusCode: resp.StatusCode}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || len(raw) == 0 {
		return serr
	}
	var body httperr.Response
	if json.Unmarshal(raw, &body) == nil && body.Error.Message != "" {
		serr.Message = body.Error.Message
	}
	return serr
}
