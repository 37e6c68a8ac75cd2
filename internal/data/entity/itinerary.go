package entity

// Itinerary is one synthesized (transport, hotel) combination for a trip.
// TotalCost = TransportCost + HotelTotalCost, computed once at synthesis.
// Rank is 0 until the itinerary is selected into the top results.
type Itinerary struct {
	Destination    string
	StartDate      string
	EndDate        string
	TransportType  string
	TransportCost  float64
	HotelName      string
	HotelTotalCost float64
	Nights         int
	TotalCost      float64
	Rank           int
}
