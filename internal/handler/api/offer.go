package api

import (
	"net/http"

	reqdto "rfq-offer-service/internal/handler/dto/request"
	resdto "rfq-offer-service/internal/handler/dto/response"
	"rfq-offer-service/internal/handler/httperr"
	"rfq-offer-service/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type OfferHandler struct {
	cmds commands.OfferCommands
}

func NewOfferHandler(cmds commands.OfferCommands) *OfferHandler {
	return &OfferHandler{cmds: cmds}
}

// @Summary Submit offer
// @Description Submit the first offer or revise the canonical one. The version is assigned by the server.
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "RFQ ID"
// @Param request body reqdto.SubmitOfferRequest true "Offer"
// @Success 201 {object} resdto.SubmitOfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /rfqs/{id}/offers [post]
func (h *OfferHandler) Submit(c *gin.Context) {
	supplierID, rfqID, ok := supplierAndRFQ(c)
	if !ok {
		return
	}
	var req reqdto.SubmitOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if _, err := h.cmds.SubmitOffer(c.Request.Context(), supplierID, rfqID, req.ToSubmission()); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.SubmitOfferResponse{Status: "accepted"})
}

// @Summary Decline RFQ
// @Description Record that the supplier will not quote this RFQ
// @Tags offers
// @Security BearerAuth
// @Param id path string true "RFQ ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rfqs/{id}/decline [post]
func (h *OfferHandler) Decline(c *gin.Context) {
	supplierID, rfqID, ok := supplierAndRFQ(c)
	if !ok {
		return
	}
	if err := h.cmds.DeclineRFQ(c.Request.Context(), supplierID, rfqID); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
