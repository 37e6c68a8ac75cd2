package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"trip-planner/internal/data/entity"
	"trip-planner/internal/dto/request"
	"trip-planner/internal/dto/response"
	"trip-planner/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PlannerService interface {
	// PlanTrip runs one planning session: fan out to both providers, fan
	// the replies back in under the session deadline, synthesize and rank
	// itineraries within budget.
	PlanTrip(ctx context.Context, req *request.PlanTripRequest) (*response.TripPlanResponse, error)

	// ActiveSessions reports the number of in-flight planning sessions.
	ActiveSessions() int
}

type plannerService struct {
	transport ProviderService
	hotel     ProviderService
	cfg       utils.PlannerConfig
	sessions  sync.Map // session id -> *planningSession
	log       *zap.Logger
}

func NewPlannerService(transport, hotel ProviderService, cfg utils.PlannerConfig, log *zap.Logger) PlannerService {
	return &plannerService{
		transport: transport,
		hotel:     hotel,
		cfg:       cfg,
		log:       log.With(zap.String("service", "planner")),
	}
}

// Session outcomes. A session moves from open to exactly one terminal
// outcome; the CAS in finish makes the both-replies/deadline race safe.
type sessionOutcome int32

const (
	sessionOpen sessionOutcome = iota
	sessionCompleted
	sessionTimedOut
	sessionFailed
)

// planningSession tracks one in-flight request. Only the goroutine running
// PlanTrip mutates it; provider goroutines communicate through the reply
// channel, never by touching the session.
type planningSession struct {
	id      uuid.UUID
	request *request.PlanTripRequest

	transport []entity.Option
	hotel     []entity.Option

	transportReceived bool
	hotelReceived     bool

	outcome atomic.Int32
}

// finish resolves the session to a terminal outcome exactly once. The
// loser of the completion/timeout race gets false and must discard its
// result.
func (s *planningSession) finish(o sessionOutcome) bool {
	return s.outcome.CompareAndSwap(int32(sessionOpen), int32(o))
}

func (s *planningSession) bothReceived() bool {
	return s.transportReceived && s.hotelReceived
}

// missingProviders names the provider(s) that have not replied yet.
func (s *planningSession) missingProviders() string {
	var missing []string
	if !s.transportReceived {
		missing = append(missing, string(entity.OptionKindTransport))
	}
	if !s.hotelReceived {
		missing = append(missing, string(entity.OptionKindHotel))
	}
	return strings.Join(missing, ", ")
}

type providerReply struct {
	kind    entity.OptionKind
	options []entity.Option
	err     error
}

func (s *plannerService) PlanTrip(ctx context.Context, req *request.PlanTripRequest) (*response.TripPlanResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Plan trip validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	if err := req.ValidateDates(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	sess := &planningSession{
		id:      uuid.New(),
		request: req,
	}
	s.sessions.Store(sess.id, sess)
	defer s.sessions.Delete(sess.id)

	s.log.Info("Planning session started",
		zap.String("session_id", sess.id.String()),
		zap.String("destination", req.Destination),
		zap.Float64("budget", req.Budget),
	)

	// Fan out: two independent, concurrent provider queries. The channel
	// is buffered so a reply arriving after the deadline never leaks the
	// goroutine; the completion flag keeps the late result unobservable.
	replies := make(chan providerReply, 2)
	go s.query(ctx, s.transport, req.Destination, replies)
	go s.query(ctx, s.hotel, req.Destination, replies)

	timer := time.NewTimer(s.cfg.ProviderTimeout)
	defer timer.Stop()

	// Fan in: wait for both replies or the deadline, whichever comes first
	for !sess.bothReceived() {
		select {
		case reply := <-replies:
			if reply.err != nil {
				if sess.finish(sessionFailed) {
					s.log.Error("Planning session failed",
						zap.String("session_id", sess.id.String()),
						zap.String("stage", string(reply.kind)+" lookup"),
						zap.Error(reply.err),
					)
					return nil, fmt.Errorf("%w: %s lookup: %v", ErrProviderFailure, reply.kind, reply.err)
				}
				continue
			}
			sess.store(reply)

		case <-timer.C:
			if sess.finish(sessionTimedOut) {
				missing := sess.missingProviders()
				s.log.Warn("Planning session timed out",
					zap.String("session_id", sess.id.String()),
					zap.String("missing", missing),
					zap.Duration("deadline", s.cfg.ProviderTimeout),
				)
				return nil, fmt.Errorf("%w: no reply from %s within %s", ErrProviderTimeout, missing, s.cfg.ProviderTimeout)
			}

		case <-ctx.Done():
			sess.finish(sessionFailed)
			return nil, fmt.Errorf("planning session cancelled: %w", ctx.Err())
		}
	}

	// Both slots filled first: the pending deadline loses the race
	if !sess.finish(sessionCompleted) {
		return nil, fmt.Errorf("%w: no reply from %s within %s", ErrProviderTimeout, sess.missingProviders(), s.cfg.ProviderTimeout)
	}

	plans := synthesizeItineraries(sess.request, sess.transport, sess.hotel, s.cfg.TripNights, s.cfg.MaxPlans)
	if len(plans) == 0 {
		s.log.Info("No itinerary within budget",
			zap.String("session_id", sess.id.String()),
			zap.Float64("budget", req.Budget),
		)
		return nil, fmt.Errorf("%w of $%.2f for %s", ErrNoItineraryWithinBudget, req.Budget, req.Destination)
	}

	s.log.Info("Planning session dispatched",
		zap.String("session_id", sess.id.String()),
		zap.Int("plans", len(plans)),
		zap.Float64("best_total", plans[0].TotalCost),
	)

	planResponses := make([]response.ItineraryResponse, len(plans))
	for i, plan := range plans {
		planResponses[i] = response.ItineraryToResponse(plan)
	}

	return &response.TripPlanResponse{
		SessionID:   sess.id.String(),
		Destination: req.Destination,
		Budget:      req.Budget,
		Plans:       planResponses,
	}, nil
}

func (s *plannerService) ActiveSessions() int {
	count := 0
	s.sessions.Range(func(_, _ any) bool {
		count++
		return true
	})
	return count
}

// store fills the session slot for the reply's provider exactly once.
// Duplicate replies from the same provider are dropped.
func (s *planningSession) store(reply providerReply) {
	switch reply.kind {
	case entity.OptionKindTransport:
		if !s.transportReceived {
			s.transport = reply.options
			s.transportReceived = true
		}
	case entity.OptionKindHotel:
		if !s.hotelReceived {
			s.hotel = reply.options
			s.hotelReceived = true
		}
	}
}

// query runs one provider lookup and delivers the outcome on the reply
// channel. A panic inside a provider is converted to a failed reply so it
// can never take the planner down.
func (s *plannerService) query(ctx context.Context, provider ProviderService, destination string, replies chan<- providerReply) {
	kind := provider.Kind()
	defer func() {
		if r := recover(); r != nil {
			replies <- providerReply{kind: kind, err: fmt.Errorf("panic in %s provider: %v", kind, r)}
		}
	}()

	options, err := provider.Lookup(ctx, destination)
	replies <- providerReply{kind: kind, options: options, err: err}
}

// synthesizeItineraries combines every (transport, hotel) pair within
// budget, sorts ascending by total cost (stable, so input order breaks
// ties), keeps the cheapest maxPlans and assigns 1-based ranks. Pure:
// identical inputs always yield the identical ranked list.
func synthesizeItineraries(req *request.PlanTripRequest, transport, hotel []entity.Option, nights, maxPlans int) []entity.Itinerary {
	var candidates []entity.Itinerary
	for _, t := range transport {
		for _, h := range hotel {
			hotelTotal := h.UnitCost * float64(nights)
			total := t.UnitCost + hotelTotal
			if total > req.Budget {
				continue
			}
			candidates = append(candidates, entity.Itinerary{
				Destination:    req.Destination,
				StartDate:      req.StartDate,
				EndDate:        req.EndDate,
				TransportType:  t.Name,
				TransportCost:  t.UnitCost,
				HotelName:      h.Name,
				HotelTotalCost: hotelTotal,
				Nights:         nights,
				TotalCost:      total,
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].TotalCost < candidates[j].TotalCost
	})

	if len(candidates) > maxPlans {
		candidates = candidates[:maxPlans]
	}
	for i := range candidates {
		candidates[i].Rank = i + 1
	}

	return candidates
}
