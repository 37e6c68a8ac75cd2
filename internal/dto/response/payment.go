package response

import (
	"fmt"
	"time"

	"trip-planner/internal/data/entity"
)

type PaymentMethodResponse struct {
	Name         string `json:"name"`
	RequiresCard bool   `json:"requires_card"`
}

type PaymentConfirmationResponse struct {
	PaymentID        string            `json:"payment_id"`
	TransactionID    string            `json:"transaction_id"`
	BookingReference string            `json:"booking_reference"`
	ConfirmationCode string            `json:"confirmation_code"`
	Amount           float64           `json:"amount"`
	Method           string            `json:"method"`
	Status           string            `json:"status"`
	MaskedCard       string            `json:"masked_card,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
	Itinerary        ItineraryResponse `json:"itinerary"`
	Receipt          string            `json:"receipt"`
}

// Helper converters

func PaymentMethodToResponse(m entity.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		Name:         string(m),
		RequiresCard: m.RequiresCard(),
	}
}

func PaymentToResponse(txn *entity.PaymentTransaction) PaymentConfirmationResponse {
	return PaymentConfirmationResponse{
		PaymentID:        txn.PaymentID,
		TransactionID:    txn.TransactionID,
		BookingReference: txn.BookingReference,
		ConfirmationCode: txn.ConfirmationCode,
		Amount:           txn.Amount,
		Method:           string(txn.Method),
		Status:           string(txn.Status),
		MaskedCard:       txn.MaskedCard,
		Timestamp:        txn.CreatedAt,
		Itinerary:        ItineraryToResponse(txn.Itinerary),
		Receipt:          FormatReceipt(txn),
	}
}

// FormatReceipt renders a human-readable confirmation receipt.
func FormatReceipt(txn *entity.PaymentTransaction) string {
	return fmt.Sprintf(
		"Booking confirmed!\n"+
			"Booking Reference: %s\n"+
			"Confirmation Code: %s\n"+
			"Payment ID: %s\n"+
			"Amount Paid: $%.2f\n"+
			"Trip: %s, %s to %s (%s + %s)\n"+
			"Thank you for choosing our service!",
		txn.BookingReference,
		txn.ConfirmationCode,
		txn.PaymentID,
		txn.Amount,
		txn.Itinerary.Destination,
		txn.Itinerary.StartDate,
		txn.Itinerary.EndDate,
		txn.Itinerary.TransportType,
		txn.Itinerary.HotelName,
	)
}
