package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// ==================== UUID ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func GenerateUUIDString() string {
	return uuid.New().String()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// ==================== PAYMENT REFERENCES ====================

// GeneratePaymentID creates a unique payment ID with timestamp
// Format: PAY-<unix millis>-RANDOM
func GeneratePaymentID() string {
	return fmt.Sprintf("PAY-%d-%04d", time.Now().UnixMilli(), 1000+rand.Intn(9000))
}

// GenerateTransactionID creates a gateway transaction ID
func GenerateTransactionID() string {
	return fmt.Sprintf("TXN-%d", time.Now().UnixMilli())
}

// GenerateBookingReference creates a short booking reference
func GenerateBookingReference() string {
	return fmt.Sprintf("BK%05d", 10000+rand.Intn(90000))
}

// GenerateConfirmationCode creates a payment confirmation code
func GenerateConfirmationCode() string {
	return fmt.Sprintf("CONF-%04d", 1000+rand.Intn(9000))
}
