package request

// ItineraryPayload is the plan the requester selected for booking, echoed
// back from a previous planning response.
type ItineraryPayload struct {
	Destination    string  `json:"destination" validate:"required"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	TransportType  string  `json:"transport_type" validate:"required"`
	TransportCost  float64 `json:"transport_cost"`
	HotelName      string  `json:"hotel_name" validate:"required"`
	HotelTotalCost float64 `json:"hotel_total_cost"`
	Nights         int     `json:"nights"`
	TotalCost      float64 `json:"total_cost"`
}

type ProcessPaymentRequest struct {
	Itinerary      *ItineraryPayload `json:"itinerary" validate:"required"`
	Method         string            `json:"method" validate:"required,oneof=CREDIT_CARD DEBIT_CARD PAYPAL BANK_TRANSFER"`
	CardNumber     string            `json:"card_number,omitempty"`
	CardHolderName string            `json:"card_holder_name,omitempty"`
	CVV            string            `json:"cvv,omitempty"`
	ExpiryDate     string            `json:"expiry_date,omitempty"`
	Email          string            `json:"email" validate:"required,email"`
	BillingAddress string            `json:"billing_address,omitempty"`
}
