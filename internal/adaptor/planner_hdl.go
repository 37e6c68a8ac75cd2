package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"trip-planner/internal/dto/request"
	"trip-planner/internal/usecase"
	"trip-planner/pkg/utils"

	"go.uber.org/zap"
)

type PlannerHandler struct {
	service usecase.PlannerService
	log     *zap.Logger
}

func NewPlannerHandler(service usecase.PlannerService, log *zap.Logger) *PlannerHandler {
	return &PlannerHandler{
		service: service,
		log:     log.With(zap.String("handler", "planner")),
	}
}

// PlanTrip handles POST /api/plan
func (h *PlannerHandler) PlanTrip(w http.ResponseWriter, r *http.Request) {
	var req request.PlanTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}
	if err := req.ValidateDates(); err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	plan, err := h.service.PlanTrip(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "plan trip")
		return
	}

	utils.ResponseSuccess(w, "success", plan)
}

// Stats handles GET /api/planner/stats
func (h *PlannerHandler) Stats(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", map[string]int{
		"active_sessions": h.service.ActiveSessions(),
	})
}

// handleServiceError maps planning failures to HTTP statuses
func (h *PlannerHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrProviderTimeout):
		h.log.Warn(operation+" failed - provider timeout",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseGatewayTimeout(w, err.Error())

	case errors.Is(err, usecase.ErrNoItineraryWithinBudget):
		h.log.Info(operation+" produced no plans within budget",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseUnprocessable(w, err.Error())

	case errors.Is(err, usecase.ErrProviderFailure):
		h.log.Error(operation+" failed - provider failure",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadGateway(w, err.Error())

	case strings.Contains(err.Error(), "validation failed"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
