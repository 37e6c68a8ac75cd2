package wire

import (
	"trip-planner/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	r.Route("/api/destinations/{destination}", func(r chi.Router) {
		// GET /api/destinations/{destination}/transport-options
		r.Get("/transport-options", catalogHandler.GetTransportOptions)

		// GET /api/destinations/{destination}/hotel-options
		r.Get("/hotel-options", catalogHandler.GetHotelOptions)
	})
}
