package wire

import (
	"trip-planner/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePlanner(r chi.Router, plannerHandler *adaptor.PlannerHandler) {
	// POST /api/plan - Run a planning session for a trip request
	r.Post("/api/plan", plannerHandler.PlanTrip)

	// GET /api/planner/stats - In-flight session count
	r.Get("/api/planner/stats", plannerHandler.Stats)
}
