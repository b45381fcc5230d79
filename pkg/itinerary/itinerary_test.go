package itinerary

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tripforge/tripforge/internal/event_bus"
	"github.com/tripforge/tripforge/pkg/genai"
	"github.com/tripforge/tripforge/pkg/pipeline"
	"github.com/tripforge/tripforge/pkg/user"
)

var ctx = user.WithUser(context.Background(), "test_user")

func testItineraryRequest() Request {
	return Request{
		Destination:      "Jaipur",
		StartDate:        time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:          time.Date(2026, 10, 4, 0, 0, 0, 0, time.UTC),
		TripType:         "cultural",
		BudgetAllocation: 9000,
	}
}

func newTestService(ai genai.Client) *ServiceImpl {
	return NewService(ai, pipeline.NewCoordinator(event_bus.NewEventBus()))
}

func TestRequest_Days(t *testing.T) {
	t.Run("should count days between dates", func(t *testing.T) {
		assert.Equal(t, 3, testItineraryRequest().Days())
	})

	t.Run("should plan at least one day for same-day trips", func(t *testing.T) {
		request := testItineraryRequest()
		request.EndDate = request.StartDate
		assert.Equal(t, 1, request.Days())
	})
}

func TestFallbackItinerary(t *testing.T) {
	t.Run("should start day one with check-in", func(t *testing.T) {
		// when
		days := fallbackItinerary(testItineraryRequest(), 3)

		// then
		require.Len(t, days, 3)
		assert.Equal(t, "Hotel Check-in & Relaxation", days[0].Activities[0].Name)
		assert.Equal(t, 0.0, days[0].Activities[0].Cost)
	})

	t.Run("should date days sequentially from the start date", func(t *testing.T) {
		days := fallbackItinerary(testItineraryRequest(), 3)

		assert.Equal(t, "2026-10-01", days[0].Date)
		assert.Equal(t, "2026-10-02", days[1].Date)
		assert.Equal(t, "2026-10-03", days[2].Date)
	})

	t.Run("should keep each day's total equal to the sum of its activities", func(t *testing.T) {
		days := fallbackItinerary(testItineraryRequest(), 3)

		for _, day := range days {
			var sum float64
			for _, activity := range day.Activities {
				sum += activity.Cost
			}
			assert.InDelta(t, sum, day.TotalCost, 0.001)
		}
	})

	t.Run("should use family templates for unknown trip types", func(t *testing.T) {
		request := testItineraryRequest()
		request.TripType = "mystery"

		days := fallbackItinerary(request, 1)

		require.NotEmpty(t, days)
		names := make([]string, 0)
		for _, activity := range days[0].Activities {
			names = append(names, activity.Name)
		}
		assert.Contains(t, names, "Local Museum Visit")
	})
}

func TestServiceImpl_Generate(t *testing.T) {
	t.Run("should build the plan from model output", func(t *testing.T) {
		// given
		response := `[
			{"day": 1, "activities": [
				{"name": "Amber Fort", "icon": "🏰", "time": "09:00 AM", "cost": 500, "description": "Hilltop fort tour."},
				{"name": "City Palace", "icon": "🏛️", "time": "02:00 PM", "cost": 700, "description": "Royal residence visit."}
			]},
			{"day": 2, "activities": [
				{"name": "Hawa Mahal", "icon": "🕌", "time": "10:00 AM", "cost": 200, "description": "Palace of winds."}
			]}
		]`
		service := newTestService(&genai.StubClient{Response: response})

		// when
		plan, err := service.Generate(ctx, testItineraryRequest())

		// then
		require.NoError(t, err)
		require.Len(t, plan.Itinerary, 2)
		assert.Equal(t, "2026-10-01", plan.Itinerary[0].Date)
		assert.Equal(t, "2026-10-02", plan.Itinerary[1].Date)
		assert.Equal(t, 1200.0, plan.Itinerary[0].TotalCost)
		assert.Equal(t, 1400.0, plan.TotalActivitiesCost)
	})

	t.Run("should fall back to templates when the model fails", func(t *testing.T) {
		// given
		service := newTestService(&genai.StubClient{Err: errors.New("boom")})

		// when
		plan, err := service.Generate(ctx, testItineraryRequest())

		// then
		require.NoError(t, err)
		assert.Len(t, plan.Itinerary, 3)
		assert.GreaterOrEqual(t, plan.TotalActivitiesCost, 0.0)
		assert.Equal(t, fallbackRecommendations, plan.Recommendations)
	})

	t.Run("should clamp the activities budget to the allocation", func(t *testing.T) {
		// given
		bus := event_bus.NewEventBus()
		coordinator := pipeline.NewCoordinator(bus)
		err := bus.Publish(event_bus.NewEvent(ctx, event_bus.EventBudgetAllocated,
			event_bus.BudgetAllocated{UserId: "test_user", ActivitiesBudget: 3000}))
		require.NoError(t, err)
		ai := &genai.StubClient{Err: genai.ErrNotConfigured}
		service := NewService(ai, coordinator)

		// when
		request := testItineraryRequest()
		request.BudgetAllocation = 90000
		plan, err := service.Generate(ctx, request)

		// then
		require.NoError(t, err)
		// template costs are fractions of the clamped per-day budget
		assert.LessOrEqual(t, plan.TotalActivitiesCost, 3000.0)
	})

	t.Run("should default missing icons and negative costs", func(t *testing.T) {
		// given
		response := `[{"day": 1, "activities": [{"name": "Beach Walk", "time": "06:00 AM", "cost": -10, "description": "Sunrise stroll."}]}]`
		service := newTestService(&genai.StubClient{Response: response})

		// when
		plan, err := service.Generate(ctx, testItineraryRequest())

		// then
		require.NoError(t, err)
		activity := plan.Itinerary[0].Activities[0]
		assert.Equal(t, "📍", activity.Icon)
		assert.Equal(t, 0.0, activity.Cost)
	})
}
