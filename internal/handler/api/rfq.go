package api

import (
	"net/http"

	reqdto "rfq-offer-service/internal/handler/dto/request"
	resdto "rfq-offer-service/internal/handler/dto/response"
	"rfq-offer-service/internal/handler/httperr"
	"rfq-offer-service/internal/handler/middleware"
	"rfq-offer-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RFQHandler struct {
	rfqs   queries.RFQQueries
	quotes queries.QuoteQueries
}

func NewRFQHandler(rfqs queries.RFQQueries, quotes queries.QuoteQueries) *RFQHandler {
	return &RFQHandler{rfqs: rfqs, quotes: quotes}
}

// @Summary Get RFQ
// @Description Get an RFQ with the calling supplier's canonical offer
// @Tags rfqs
// @Produce json
// @Security BearerAuth
// @Param id path string true "RFQ ID"
// @Success 200 {object} resdto.RFQResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rfqs/{id} [get]
func (h *RFQHandler) Get(c *gin.Context) {
	supplierID, rfqID, ok := supplierAndRFQ(c)
	if !ok {
		return
	}
	view, err := h.rfqs.GetForSupplier(c.Request.Context(), supplierID, rfqID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	resp, err := resdto.FromSupplierRFQView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render RFQ", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Offer history
// @Description List the supplier's superseded offers, oldest version first
// @Tags rfqs
// @Produce json
// @Security BearerAuth
// @Param id path string true "RFQ ID"
// @Success 200 {array} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rfqs/{id}/offers/history [get]
func (h *RFQHandler) History(c *gin.Context) {
	supplierID, rfqID, ok := supplierAndRFQ(c)
	if !ok {
		return
	}
	history, err := h.rfqs.ListOfferHistory(c.Request.Context(), supplierID, rfqID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	resp, err := resdto.FromHistory(history)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render history", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Quote preview
// @Description Price a draft without saving it
// @Tags rfqs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "RFQ ID"
// @Param request body reqdto.QuoteRequest true "Line inputs"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rfqs/{id}/offers/quote [post]
func (h *RFQHandler) Quote(c *gin.Context) {
	supplierID, rfqID, ok := supplierAndRFQ(c)
	if !ok {
		return
	}
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	quote, err := h.quotes.Preview(c.Request.Context(), supplierID, rfqID, req.ToInput())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuote(quote))
}

func supplierAndRFQ(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	supplierID, ok := middleware.GetAccountID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingAccount, "Unauthorized", nil)
		return uuid.Nil, uuid.Nil, false
	}
	rfqID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, uuid.Nil, false
	}
	return supplierID, rfqID, true
}
