package usecase

import (
	"trip-planner/internal/data/entity"
	"trip-planner/internal/data/repository"
	"trip-planner/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	TransportProvider ProviderService
	HotelProvider     ProviderService
	Planner           PlannerService
	Payment           PaymentService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	transport := NewProviderService(entity.OptionKindTransport, repo.TransportCatalog, log)
	hotel := NewProviderService(entity.OptionKindHotel, repo.HotelCatalog, log)

	return &Service{
		TransportProvider: transport,
		HotelProvider:     hotel,
		Planner:           NewPlannerService(transport, hotel, config.Planner, log),
		Payment:           NewPaymentService(config.Payment, log),
	}
}
