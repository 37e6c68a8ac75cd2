package entity

import (
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "CREDIT_CARD"
	PaymentMethodDebitCard    PaymentMethod = "DEBIT_CARD"
	PaymentMethodPaypal       PaymentMethod = "PAYPAL"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
)

// AllowedPaymentMethods lists the accepted methods in display order.
func AllowedPaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		PaymentMethodCreditCard,
		PaymentMethodDebitCard,
		PaymentMethodPaypal,
		PaymentMethodBankTransfer,
	}
}

// RequiresCard reports whether the method needs card number and holder name.
func (m PaymentMethod) RequiresCard() bool {
	return m == PaymentMethodCreditCard || m == PaymentMethodDebitCard
}

// PaymentTransaction is the terminal record of one payment attempt.
// Status is assigned exactly once; the record is reported back, not
// persisted.
type PaymentTransaction struct {
	PaymentID        string
	TransactionID    string
	BookingReference string
	ConfirmationCode string
	Amount           float64
	Method           PaymentMethod
	Status           PaymentStatus
	CustomerEmail    string
	MaskedCard       string
	Itinerary        Itinerary
	CreatedAt        time.Time
}
