package adaptor

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"trip-planner/internal/data/entity"
	"trip-planner/internal/data/repository"
	"trip-planner/internal/dto/response"
	"trip-planner/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCatalogRouter() *chi.Mux {
	log := zap.NewNop()
	transport := usecase.NewProviderService(entity.OptionKindTransport, repository.SeedTransportCatalog(), log)
	hotel := usecase.NewProviderService(entity.OptionKindHotel, repository.SeedHotelCatalog(), log)
	handler := NewCatalogHandler(transport, hotel, log)

	r := chi.NewRouter()
	r.Get("/api/destinations/{destination}/transport-options", handler.GetTransportOptions)
	r.Get("/api/destinations/{destination}/hotel-options", handler.GetHotelOptions)
	return r
}

func getOptions(t *testing.T, router *chi.Mux, path string) []response.OptionResponse {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []response.OptionResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Data
}

func TestCatalogHandler_KnownDestination(t *testing.T) {
	router := newCatalogRouter()

	options := getOptions(t, router, "/api/destinations/Paris/transport-options")
	require.Len(t, options, 3)
	for _, opt := range options {
		assert.Equal(t, "transport", opt.Kind)
		assert.Equal(t, "Paris", opt.Destination)
	}
}

func TestCatalogHandler_UnknownDestinationServesDefault(t *testing.T) {
	router := newCatalogRouter()

	options := getOptions(t, router, "/api/destinations/Atlantis/hotel-options")
	require.Len(t, options, 3)
	for _, opt := range options {
		assert.Equal(t, "Default", opt.Destination)
	}
}
