package usecase

import (
	"errors"
)

// Failure taxonomy for the planning and payment services. Callers match
// with errors.Is; the wrapped message carries the detail (which provider
// went silent, the rejected budget, the decline reason).
var (
	// ErrProviderTimeout: one or both providers did not reply within the
	// session deadline. The session terminates, never a partial plan.
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrProviderFailure: a provider lookup failed or paniced. Converted at
	// the session boundary, naming the stage that failed.
	ErrProviderFailure = errors.New("provider failure")

	// ErrNoItineraryWithinBudget: synthesis produced zero candidates.
	ErrNoItineraryWithinBudget = errors.New("no itinerary within budget")

	// ErrInvalidPaymentRequest: payment validation failed; the gateway is
	// never contacted.
	ErrInvalidPaymentRequest = errors.New("invalid payment request")

	// ErrInvalidAmount: itinerary total is not a positive amount.
	ErrInvalidAmount = errors.New("invalid payment amount")

	// ErrPaymentDeclined: the simulated gateway declined the transaction.
	// No partial confirmation is emitted.
	ErrPaymentDeclined = errors.New("payment declined")
)
