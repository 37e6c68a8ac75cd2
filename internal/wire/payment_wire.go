package wire

import (
	"trip-planner/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePayment(r chi.Router, paymentHandler *adaptor.PaymentHandler) {
	// POST /api/pay - Process payment for a selected itinerary
	r.Post("/api/pay", paymentHandler.ProcessPayment)

	// GET /api/payment-methods - List accepted payment methods
	r.Get("/api/payment-methods", paymentHandler.GetPaymentMethods)
}
