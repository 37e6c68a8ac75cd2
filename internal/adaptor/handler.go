package adaptor

import (
	"trip-planner/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Planner *PlannerHandler
	Payment *PaymentHandler
	Catalog *CatalogHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Planner: NewPlannerHandler(service.Planner, log),
		Payment: NewPaymentHandler(service.Payment, log),
		Catalog: NewCatalogHandler(service.TransportProvider, service.HotelProvider, log),
	}
}
