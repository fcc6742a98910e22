package api

import (
	"errors"
	"net/http"

	"rfq-offer-service/internal/domain/offer"
	"rfq-offer-service/internal/handler/httperr"
	"rfq-offer-service/internal/usecase/commands"
	"rfq-offer-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type invariantDetail struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

var errMissingAccount = errors.New("account missing from request context")

func abortWithUsecaseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrRFQNotFound), errors.Is(err, queries.ErrRFQNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "RFQ not found", nil)
	case errors.Is(err, commands.ErrRFQClosed):
		httperr.AbortWithError(c, http.StatusConflict, err, "RFQ is closed for offers", nil)
	case errors.Is(err, commands.ErrRFQDeclined):
		httperr.AbortWithError(c, http.StatusConflict, err, "RFQ was declined", nil)
	case errors.Is(err, commands.ErrOfferFinalized):
		httperr.AbortWithError(c, http.StatusConflict, err, "Offer can no longer be revised", nil)
	case errors.Is(err, commands.ErrVersionConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Offer was revised concurrently, reload and retry", nil)
	case errors.Is(err, commands.ErrOfferAccepted):
		httperr.AbortWithError(c, http.StatusConflict, err, "RFQ with an accepted offer cannot be declined", nil)
	case errors.Is(err, commands.ErrInvalidOffer):
		var detail any
		var inv *offer.InvariantError
		if errors.As(err, &inv) {
			detail = invariantDetail{Field: inv.Field, Reason: inv.Reason}
		}
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Offer validation failed", detail)
	case errors.Is(err, queries.ErrInvalidQuote):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid quote input", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
