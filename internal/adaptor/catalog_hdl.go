package adaptor

import (
	"net/http"

	"trip-planner/internal/dto/response"
	"trip-planner/internal/usecase"
	"trip-planner/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	transport usecase.ProviderService
	hotel     usecase.ProviderService
	log       *zap.Logger
}

func NewCatalogHandler(transport, hotel usecase.ProviderService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		transport: transport,
		hotel:     hotel,
		log:       log.With(zap.String("handler", "catalog")),
	}
}

// GetTransportOptions handles GET /api/destinations/{destination}/transport-options
func (h *CatalogHandler) GetTransportOptions(w http.ResponseWriter, r *http.Request) {
	h.lookup(w, r, h.transport)
}

// GetHotelOptions handles GET /api/destinations/{destination}/hotel-options
func (h *CatalogHandler) GetHotelOptions(w http.ResponseWriter, r *http.Request) {
	h.lookup(w, r, h.hotel)
}

func (h *CatalogHandler) lookup(w http.ResponseWriter, r *http.Request, provider usecase.ProviderService) {
	destination := chi.URLParam(r, "destination")
	if destination == "" {
		utils.ResponseBadRequest(w, "Destination is required", nil)
		return
	}

	options, err := provider.Lookup(r.Context(), destination)
	if err != nil {
		h.log.Error("Failed to lookup options",
			zap.Error(err),
			zap.String("destination", destination),
			zap.String("kind", string(provider.Kind())),
		)
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "success", response.OptionsToResponse(options))
}
