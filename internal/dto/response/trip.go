package response

import (
	"trip-planner/internal/data/entity"
)

type OptionResponse struct {
	Name        string  `json:"name"`
	Kind        string  `json:"kind"`
	UnitCost    float64 `json:"unit_cost"`
	Destination string  `json:"destination"`
}

type ItineraryResponse struct {
	Rank           int     `json:"rank"`
	Destination    string  `json:"destination"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	TransportType  string  `json:"transport_type"`
	TransportCost  float64 `json:"transport_cost"`
	HotelName      string  `json:"hotel_name"`
	HotelTotalCost float64 `json:"hotel_total_cost"`
	Nights         int     `json:"nights"`
	TotalCost      float64 `json:"total_cost"`
}

type TripPlanResponse struct {
	SessionID   string              `json:"session_id"`
	Destination string              `json:"destination"`
	Budget      float64             `json:"budget"`
	Plans       []ItineraryResponse `json:"plans"`
}

// Helper converters

func OptionToResponse(opt entity.Option) OptionResponse {
	return OptionResponse{
		Name:        opt.Name,
		Kind:        string(opt.Kind),
		UnitCost:    opt.UnitCost,
		Destination: opt.Destination,
	}
}

func OptionsToResponse(opts []entity.Option) []OptionResponse {
	responses := make([]OptionResponse, len(opts))
	for i, opt := range opts {
		responses[i] = OptionToResponse(opt)
	}
	return responses
}

func ItineraryToResponse(it entity.Itinerary) ItineraryResponse {
	return ItineraryResponse{
		Rank:           it.Rank,
		Destination:    it.Destination,
		StartDate:      it.StartDate,
		EndDate:        it.EndDate,
		TransportType:  it.TransportType,
		TransportCost:  it.TransportCost,
		HotelName:      it.HotelName,
		HotelTotalCost: it.HotelTotalCost,
		Nights:         it.Nights,
		TotalCost:      it.TotalCost,
	}
}
