package budget

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tripforge/tripforge/internal/event_bus"
	"github.com/tripforge/tripforge/pkg/genai"
	"github.com/tripforge/tripforge/pkg/user"
)

var ctx = user.WithUser(context.Background(), "test_user")

func testRequest() TripRequest {
	return TripRequest{
		TripType:    "family",
		Origin:      "Delhi",
		Destination: "Goa",
		StartDate:   time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
		Budget:      50000,
		Adults:      2,
	}
}

func TestAllocationTables(t *testing.T) {
	t.Run("should have percentages summing to 100 for every trip type", func(t *testing.T) {
		for tripType, allocation := range tripTypeAllocations {
			var sum float64
			for _, percentage := range allocation {
				sum += percentage
			}
			assert.InDelta(t, 100, sum, 0.001, "trip type %s", tripType)
		}
	})

	t.Run("should fall back to family allocation for unknown trip type", func(t *testing.T) {
		assert.Equal(t, tripTypeAllocations["family"], allocationFor("spontaneous"))
	})
}

func TestServiceImpl_Allocate(t *testing.T) {
	t.Run("should split the budget into category amounts summing to total", func(t *testing.T) {
		// given
		service := NewService(&genai.StubClient{Err: genai.ErrNotConfigured}, event_bus.NewEventBus())

		// when
		analysis, err := service.Allocate(ctx, testRequest())

		// then
		require.NoError(t, err)
		assert.Equal(t, 50000.0, analysis.Total)
		assert.Len(t, analysis.Breakdown, 5)

		var sum float64
		var percentages float64
		for _, b := range analysis.Breakdown {
			sum += b.Value
			percentages += b.Percentage
		}
		assert.InDelta(t, 50000, sum, 0.01)
		assert.InDelta(t, 100, percentages, 0.001)
	})

	t.Run("should compute per-night and per-day pipeline budgets", func(t *testing.T) {
		// given
		service := NewService(&genai.StubClient{Err: genai.ErrNotConfigured}, event_bus.NewEventBus())

		// when
		analysis, err := service.Allocate(ctx, testRequest())

		// then
		require.NoError(t, err)
		pipeline := analysis.Pipeline
		assert.Equal(t, 4, pipeline.TripDurationDays)
		assert.Equal(t, 4, pipeline.TripDurationNights)
		// family: 30% accommodation of 50000 over 4 nights
		assert.InDelta(t, 3750, pipeline.HotelBudgetPerNight, 0.01)
		assert.InDelta(t, 15000, pipeline.AccommodationBudget, 0.01)
		assert.InDelta(t, 12500, pipeline.TransportBudget, 0.01)
	})

	t.Run("should publish the allocation on the event bus", func(t *testing.T) {
		// given
		bus := event_bus.NewEventBus()
		var received event_bus.BudgetAllocated
		event_bus.SubscribeTyped[event_bus.BudgetAllocated](bus, event_bus.EventBudgetAllocated,
			func(e event_bus.EventT[event_bus.BudgetAllocated]) error {
				received = e.Data
				return nil
			})
		service := NewService(&genai.StubClient{Err: genai.ErrNotConfigured}, bus)

		// when
		_, err := service.Allocate(ctx, testRequest())

		// then
		require.NoError(t, err)
		assert.Equal(t, "test_user", received.UserId)
		assert.Equal(t, 50000.0, received.TotalBudget)
	})

	t.Run("should use model recommendations when the model responds", func(t *testing.T) {
		// given
		service := NewService(&genai.StubClient{Response: "Travel light."}, event_bus.NewEventBus())

		// when
		analysis, err := service.Allocate(ctx, testRequest())

		// then
		require.NoError(t, err)
		assert.Equal(t, "Travel light.", analysis.Recommendations)
	})

	t.Run("should fall back to static recommendations when the model fails", func(t *testing.T) {
		// given
		service := NewService(&genai.StubClient{Err: errors.New("boom")}, event_bus.NewEventBus())

		// when
		analysis, err := service.Allocate(ctx, testRequest())

		// then
		require.NoError(t, err)
		assert.Contains(t, analysis.Recommendations, "Goa")
		tips := strings.Split(analysis.Recommendations, "\n")
		assert.LessOrEqual(t, len(tips), 5)
	})
}

func TestDTOToTripRequest(t *testing.T) {
	t.Run("should reject end date before start date", func(t *testing.T) {
		_, err := DTOToTripRequest(TripRequestDTO{
			StartDate: "2026-10-05",
			EndDate:   "2026-10-01",
			Budget:    1000,
		})
		assert.Error(t, err)
	})

	t.Run("should reject non-positive budget", func(t *testing.T) {
		_, err := DTOToTripRequest(TripRequestDTO{
			StartDate: "2026-10-01",
			EndDate:   "2026-10-05",
			Budget:    0,
		})
		assert.Error(t, err)
	})

	t.Run("should default adults to 2", func(t *testing.T) {
		request, err := DTOToTripRequest(TripRequestDTO{
			StartDate: "2026-10-01",
			EndDate:   "2026-10-05",
			Budget:    1000,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, request.Adults)
	})

	t.Run("should reject malformed dates", func(t *testing.T) {
		_, err := DTOToTripRequest(TripRequestDTO{
			StartDate: "01/10/2026",
			EndDate:   "2026-10-05",
			Budget:    1000,
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "start_date")
	})
}
