package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"trip-planner/internal/data/entity"
	"trip-planner/internal/dto/request"
	"trip-planner/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubProvider is a scriptable ProviderService for planner tests.
type stubProvider struct {
	kind     entity.OptionKind
	options  []entity.Option
	byDest   map[string][]entity.Option
	err      error
	delay    time.Duration
	panicMsg string
}

func (p *stubProvider) Kind() entity.OptionKind { return p.kind }

func (p *stubProvider) Lookup(ctx context.Context, destination string) ([]entity.Option, error) {
	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if p.panicMsg != "" {
		panic(p.panicMsg)
	}
	if p.err != nil {
		return nil, p.err
	}
	if p.byDest != nil {
		return p.byDest[destination], nil
	}
	return p.options, nil
}

func testPlannerConfig() utils.PlannerConfig {
	return utils.PlannerConfig{
		ProviderTimeout: 2 * time.Second,
		TripNights:      3,
		MaxPlans:        3,
	}
}

func parisRequest(budget float64) *request.PlanTripRequest {
	return &request.PlanTripRequest{
		Destination: "Paris",
		StartDate:   "2025-06-01",
		EndDate:     "2025-06-04",
		Budget:      budget,
	}
}

func parisTransport() []entity.Option {
	return []entity.Option{
		{Name: "Bus", Kind: entity.OptionKindTransport, UnitCost: 85, Destination: "Paris"},
		{Name: "Train", Kind: entity.OptionKindTransport, UnitCost: 180, Destination: "Paris"},
		{Name: "Flight", Kind: entity.OptionKindTransport, UnitCost: 350, Destination: "Paris"},
	}
}

func parisHotels() []entity.Option {
	return []entity.Option{
		{Name: "Budget Inn Paris", Kind: entity.OptionKindHotel, UnitCost: 80, Destination: "Paris"},
		{Name: "Mid-Range Paris Hotel", Kind: entity.OptionKindHotel, UnitCost: 120, Destination: "Paris"},
		{Name: "Hotel Luxe Paris", Kind: entity.OptionKindHotel, UnitCost: 180, Destination: "Paris"},
	}
}

func newTestPlanner(transport, hotel ProviderService, cfg utils.PlannerConfig) PlannerService {
	return NewPlannerService(transport, hotel, cfg, zap.NewNop())
}

func TestPlanTrip_ParisWithinBudget(t *testing.T) {
	planner := newTestPlanner(
		&stubProvider{kind: entity.OptionKindTransport, options: parisTransport()},
		&stubProvider{kind: entity.OptionKindHotel, options: parisHotels()},
		testPlannerConfig(),
	)

	plan, err := planner.PlanTrip(context.Background(), parisRequest(400))
	require.NoError(t, err)
	require.NotNil(t, plan)

	// Only Bus + Budget Inn (85 + 80*3 = 325) fits inside 400
	require.Len(t, plan.Plans, 1)
	best := plan.Plans[0]
	assert.Equal(t, 1, best.Rank)
	assert.Equal(t, "Bus", best.TransportType)
	assert.Equal(t, "Budget Inn Paris", best.HotelName)
	assert.Equal(t, 325.0, best.TotalCost)
	assert.Equal(t, 240.0, best.HotelTotalCost)
	assert.Equal(t, 3, best.Nights)
	assert.NotEmpty(t, plan.SessionID)
}

func TestPlanTrip_RankedAscendingCappedAtThree(t *testing.T) {
	planner := newTestPlanner(
		&stubProvider{kind: entity.OptionKindTransport, options: parisTransport()},
		&stubProvider{kind: entity.OptionKindHotel, options: parisHotels()},
		testPlannerConfig(),
	)

	plan, err := planner.PlanTrip(context.Background(), parisRequest(2000))
	require.NoError(t, err)

	// 3x3 pairs all fit, only the cheapest three survive
	require.Len(t, plan.Plans, 3)
	for i, p := range plan.Plans {
		assert.Equal(t, i+1, p.Rank)
		if i > 0 {
			assert.GreaterOrEqual(t, p.TotalCost, plan.Plans[i-1].TotalCost)
		}
	}
	assert.Equal(t, 325.0, plan.Plans[0].TotalCost)
}

func TestPlanTrip_NoItineraryWithinBudget(t *testing.T) {
	planner := newTestPlanner(
		&stubProvider{kind: entity.OptionKindTransport, options: parisTransport()},
		&stubProvider{kind: entity.OptionKindHotel, options: parisHotels()},
		testPlannerConfig(),
	)

	plan, err := planner.PlanTrip(context.Background(), parisRequest(100))
	require.Error(t, err)
	assert.Nil(t, plan)
	assert.ErrorIs(t, err, ErrNoItineraryWithinBudget)
	assert.NotErrorIs(t, err, ErrProviderTimeout)
}

func TestPlanTrip_HotelTimeoutNamesProvider(t *testing.T) {
	cfg := testPlannerConfig()
	cfg.ProviderTimeout = 50 * time.Millisecond

	planner := newTestPlanner(
		&stubProvider{kind: entity.OptionKindTransport, options: parisTransport()},
		&stubProvider{kind: entity.OptionKindHotel, options: parisHotels(), delay: time.Second},
		cfg,
	)

	plan, err := planner.PlanTrip(context.Background(), parisRequest(400))
	require.Error(t, err)
	assert.Nil(t, plan)
	assert.ErrorIs(t, err, ErrProviderTimeout)
	assert.Contains(t, err.Error(), "hotel")
	assert.NotContains(t, err.Error(), "transport")
}

func TestPlanTrip_BothProvidersTimeout(t *testing.T) {
	cfg := testPlannerConfig()
	cfg.ProviderTimeout = 50 * time.Millisecond

	planner := newTestPlanner(
		&stubProvider{kind: entity.OptionKindTransport, options: parisTransport(), delay: time.Second},
		&stubProvider{kind: entity.OptionKindHotel, options: parisHotels(), delay: time.Second},
		cfg,
	)

	_, err := planner.PlanTrip(context.Background(), parisRequest(400))
	require.ErrorIs(t, err, ErrProviderTimeout)
	assert.Contains(t, err.Error(), "transport")
	assert.Contains(t, err.Error(), "hotel")
}

func TestPlanTrip_ProviderPanicIsContained(t *testing.T) {
	planner := newTestPlanner(
		&stubProvider{kind: entity.OptionKindTransport, panicMsg: "corrupt reply"},
		&stubProvider{kind: entity.OptionKindHotel, options: parisHotels()},
		testPlannerConfig(),
	)

	require.NotPanics(t, func() {
		_, err := planner.PlanTrip(context.Background(), parisRequest(400))
		require.ErrorIs(t, err, ErrProviderFailure)
		assert.Contains(t, err.Error(), "transport")
	})
}

func TestPlanTrip_ProviderErrorNamesStage(t *testing.T) {
	planner := newTestPlanner(
		&stubProvider{kind: entity.OptionKindTransport, options: parisTransport()},
		&stubProvider{kind: entity.OptionKindHotel, err: fmt.Errorf("catalog unavailable")},
		testPlannerConfig(),
	)

	_, err := planner.PlanTrip(context.Background(), parisRequest(400))
	require.ErrorIs(t, err, ErrProviderFailure)
	assert.Contains(t, err.Error(), "hotel lookup")
}

func TestPlanTrip_ValidationRejected(t *testing.T) {
	planner := newTestPlanner(
		&stubProvider{kind: entity.OptionKindTransport},
		&stubProvider{kind: entity.OptionKindHotel},
		testPlannerConfig(),
	)

	cases := []struct {
		name string
		req  *request.PlanTripRequest
	}{
		{"empty destination", &request.PlanTripRequest{StartDate: "2025-06-01", EndDate: "2025-06-04", Budget: 400}},
		{"bad date format", &request.PlanTripRequest{Destination: "Paris", StartDate: "01/06/2025", EndDate: "2025-06-04", Budget: 400}},
		{"start after end", &request.PlanTripRequest{Destination: "Paris", StartDate: "2025-06-10", EndDate: "2025-06-04", Budget: 400}},
		{"zero budget", &request.PlanTripRequest{Destination: "Paris", StartDate: "2025-06-01", EndDate: "2025-06-04"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := planner.PlanTrip(context.Background(), tc.req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}

func TestPlanTrip_SingleDispatchUnderDeadlineRace(t *testing.T) {
	// Deadline and replies land close together; each run must resolve to
	// exactly one outcome - plans or a timeout, never both, never a panic.
	cfg := testPlannerConfig()
	cfg.ProviderTimeout = 2 * time.Millisecond

	for i := 0; i < 50; i++ {
		planner := newTestPlanner(
			&stubProvider{kind: entity.OptionKindTransport, options: parisTransport(), delay: time.Duration(i%4) * time.Millisecond},
			&stubProvider{kind: entity.OptionKindHotel, options: parisHotels(), delay: time.Duration((i+1)%4) * time.Millisecond},
			cfg,
		)

		plan, err := planner.PlanTrip(context.Background(), parisRequest(400))
		if err != nil {
			assert.ErrorIs(t, err, ErrProviderTimeout)
			assert.Nil(t, plan)
		} else {
			require.NotNil(t, plan)
			require.Len(t, plan.Plans, 1)
			assert.Equal(t, 325.0, plan.Plans[0].TotalCost)
		}
	}
}

func TestPlanTrip_ConcurrentSessionsDoNotInterfere(t *testing.T) {
	transportByDest := map[string][]entity.Option{}
	hotelByDest := map[string][]entity.Option{}
	for i := 0; i < 10; i++ {
		dest := fmt.Sprintf("City-%d", i)
		transportByDest[dest] = []entity.Option{
			{Name: fmt.Sprintf("Bus-%d", i), Kind: entity.OptionKindTransport, UnitCost: 50, Destination: dest},
		}
		hotelByDest[dest] = []entity.Option{
			{Name: fmt.Sprintf("Hotel-%d", i), Kind: entity.OptionKindHotel, UnitCost: 60, Destination: dest},
		}
	}

	planner := newTestPlanner(
		&stubProvider{kind: entity.OptionKindTransport, byDest: transportByDest, delay: 5 * time.Millisecond},
		&stubProvider{kind: entity.OptionKindHotel, byDest: hotelByDest, delay: 5 * time.Millisecond},
		testPlannerConfig(),
	)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			dest := fmt.Sprintf("City-%d", i)
			plan, err := planner.PlanTrip(context.Background(), &request.PlanTripRequest{
				Destination: dest,
				StartDate:   "2025-06-01",
				EndDate:     "2025-06-04",
				Budget:      500,
			})
			if !assert.NoError(t, err) || !assert.Len(t, plan.Plans, 1) {
				return
			}
			assert.Equal(t, fmt.Sprintf("Bus-%d", i), plan.Plans[0].TransportType)
			assert.Equal(t, fmt.Sprintf("Hotel-%d", i), plan.Plans[0].HotelName)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, planner.ActiveSessions())
}

func TestPlanTrip_SessionsDeregisteredAfterDispatch(t *testing.T) {
	planner := newTestPlanner(
		&stubProvider{kind: entity.OptionKindTransport, options: parisTransport()},
		&stubProvider{kind: entity.OptionKindHotel, options: parisHotels()},
		testPlannerConfig(),
	)

	_, err := planner.PlanTrip(context.Background(), parisRequest(400))
	require.NoError(t, err)
	assert.Equal(t, 0, planner.ActiveSessions())

	_, err = planner.PlanTrip(context.Background(), parisRequest(1))
	require.Error(t, err)
	assert.Equal(t, 0, planner.ActiveSessions())
}

func TestSynthesizeItineraries_Idempotent(t *testing.T) {
	req := parisRequest(2000)

	first := synthesizeItineraries(req, parisTransport(), parisHotels(), 3, 3)
	second := synthesizeItineraries(req, parisTransport(), parisHotels(), 3, 3)

	require.Equal(t, first, second)
}

func TestSynthesizeItineraries_StableTieOrder(t *testing.T) {
	req := parisRequest(1000)
	transport := []entity.Option{
		{Name: "Bus", Kind: entity.OptionKindTransport, UnitCost: 100},
	}
	hotels := []entity.Option{
		{Name: "First Hotel", Kind: entity.OptionKindHotel, UnitCost: 50},
		{Name: "Second Hotel", Kind: entity.OptionKindHotel, UnitCost: 50},
	}

	plans := synthesizeItineraries(req, transport, hotels, 3, 3)
	require.Len(t, plans, 2)

	// Equal totals keep input iteration order
	assert.Equal(t, "First Hotel", plans[0].HotelName)
	assert.Equal(t, "Second Hotel", plans[1].HotelName)
	assert.Equal(t, plans[0].TotalCost, plans[1].TotalCost)
}

func TestSynthesizeItineraries_RankOnlyOnTopResults(t *testing.T) {
	req := parisRequest(5000)
	plans := synthesizeItineraries(req, parisTransport(), parisHotels(), 3, 3)

	require.Len(t, plans, 3)
	for i, p := range plans {
		assert.Equal(t, i+1, p.Rank)
	}
}

func TestSynthesizeItineraries_BoundaryBudgetIncluded(t *testing.T) {
	// total == budget survives the filter
	req := parisRequest(325)
	plans := synthesizeItineraries(req, parisTransport(), parisHotels(), 3, 3)

	require.Len(t, plans, 1)
	assert.Equal(t, 325.0, plans[0].TotalCost)
}
