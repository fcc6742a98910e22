package components

import (
	"rfq-offer-service/internal/handler"
	"rfq-offer-service/internal/handler/api"
	"rfq-offer-service/internal/handler/middleware"
	"rfq-offer-service/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRFQHandler,
		api.NewOfferHandler,
		func(rfq *api.RFQHandler, offer *api.OfferHandler) handler.Handlers {
			return handler.Handlers{RFQ: rfq, Offer: offer}
		},
		func(s *jwt.Service) middleware.TokenValidator { return s },
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
