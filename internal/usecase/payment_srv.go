package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"trip-planner/internal/data/entity"
	"trip-planner/internal/dto/request"
	"trip-planner/internal/dto/response"
	"trip-planner/pkg/utils"

	"go.uber.org/zap"
)

type PaymentService interface {
	// ProcessPayment drives one payment attempt to its terminal state:
	// validate, simulate the gateway round trip, resolve to a confirmation
	// or a decline. Single attempt, no retries.
	ProcessPayment(ctx context.Context, req *request.ProcessPaymentRequest) (*response.PaymentConfirmationResponse, error)

	// PaymentMethods lists the accepted payment methods.
	PaymentMethods() []response.PaymentMethodResponse
}

type paymentService struct {
	cfg     utils.PaymentConfig
	outcome func() float64 // draws in [0,1); success iff below SuccessRate
	log     *zap.Logger
}

func NewPaymentService(cfg utils.PaymentConfig, log *zap.Logger) PaymentService {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return NewPaymentServiceWithOutcome(cfg, rng.Float64, log)
}

// NewPaymentServiceWithOutcome injects the gateway outcome source so the
// resolve step can be forced deterministic.
func NewPaymentServiceWithOutcome(cfg utils.PaymentConfig, outcome func() float64, log *zap.Logger) PaymentService {
	return &paymentService{
		cfg:     cfg,
		outcome: outcome,
		log:     log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) ProcessPayment(ctx context.Context, req *request.ProcessPaymentRequest) (*response.PaymentConfirmationResponse, error) {
	// Validate request before any gateway contact
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidPaymentRequest, utils.FormatValidationErrors(errs))
	}

	method := entity.PaymentMethod(req.Method)
	if method.RequiresCard() && (req.CardNumber == "" || req.CardHolderName == "") {
		return nil, fmt.Errorf("%w: card number and holder name required for %s", ErrInvalidPaymentRequest, method)
	}

	amount := req.Itinerary.TotalCost
	if amount <= 0 {
		return nil, fmt.Errorf("%w: %.2f", ErrInvalidAmount, amount)
	}

	paymentID := utils.GeneratePaymentID()

	s.log.Info("Contacting payment gateway",
		zap.String("payment_id", paymentID),
		zap.String("method", string(method)),
		zap.Float64("amount", amount),
	)

	// Simulate the gateway round trip; waits on a timer so concurrent
	// payments are not blocked
	if err := s.gatewayDelay(ctx); err != nil {
		return nil, fmt.Errorf("payment cancelled: %w", err)
	}

	if s.outcome() >= s.cfg.SuccessRate {
		s.log.Warn("Payment declined",
			zap.String("payment_id", paymentID),
			zap.Float64("amount", amount),
		)
		return nil, fmt.Errorf("%w: payment gateway declined transaction - insufficient funds", ErrPaymentDeclined)
	}

	txn := &entity.PaymentTransaction{
		PaymentID:        paymentID,
		TransactionID:    utils.GenerateTransactionID(),
		BookingReference: utils.GenerateBookingReference(),
		ConfirmationCode: utils.GenerateConfirmationCode(),
		Amount:           amount,
		Method:           method,
		Status:           entity.PaymentStatusSuccess,
		CustomerEmail:    req.Email,
		Itinerary:        itineraryFromPayload(req.Itinerary),
		CreatedAt:        time.Now(),
	}
	if req.CardNumber != "" {
		txn.MaskedCard = utils.MaskCardNumber(req.CardNumber)
	}

	s.log.Info("Payment successful",
		zap.String("payment_id", txn.PaymentID),
		zap.String("transaction_id", txn.TransactionID),
		zap.String("booking_reference", txn.BookingReference),
		zap.Float64("amount", txn.Amount),
	)

	confirmation := response.PaymentToResponse(txn)
	return &confirmation, nil
}

func (s *paymentService) PaymentMethods() []response.PaymentMethodResponse {
	methods := entity.AllowedPaymentMethods()
	responses := make([]response.PaymentMethodResponse, len(methods))
	for i, m := range methods {
		responses[i] = response.PaymentMethodToResponse(m)
	}
	return responses
}

// gatewayDelay sleeps for a random duration inside the configured window,
// honoring cancellation.
func (s *paymentService) gatewayDelay(ctx context.Context) error {
	delay := s.cfg.GatewayMinDelay
	if window := s.cfg.GatewayMaxDelay - s.cfg.GatewayMinDelay; window > 0 {
		delay += time.Duration(rand.Int63n(int64(window)))
	}
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func itineraryFromPayload(p *request.ItineraryPayload) entity.Itinerary {
	return entity.Itinerary{
		Destination:    p.Destination,
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		TransportType:  p.TransportType,
		TransportCost:  p.TransportCost,
		HotelName:      p.HotelName,
		HotelTotalCost: p.HotelTotalCost,
		Nights:         p.Nights,
		TotalCost:      p.TotalCost,
	}
}
