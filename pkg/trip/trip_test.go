package trip

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tripforge/tripforge/internal/event_bus"
	"github.com/tripforge/tripforge/internal/utils"
	"github.com/tripforge/tripforge/pkg/budget"
	"github.com/tripforge/tripforge/pkg/hotel"
	"github.com/tripforge/tripforge/pkg/itinerary"
	"github.com/tripforge/tripforge/pkg/transport"
	"github.com/tripforge/tripforge/pkg/user"
)

var ctx = user.WithUser(context.Background(), "test_user")

var tripRepoStub = NewStubTripRepo()

var service Service

var clock = &utils.MockClock{FixedNow: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}

func setup(t *testing.T) func() {
	service = NewTripService(tripRepoStub, event_bus.NewEventBus(), clock)
	return func() {
		t.Log("Teardown after test")
		tripRepoStub.Cleanup()
	}
}

func testTrip() SavedTrip {
	return SavedTrip{
		TripDetails: budget.TripRequest{
			TripType:    "family",
			Origin:      "Delhi",
			Destination: "Goa",
			StartDate:   time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
			Budget:      50000,
			Adults:      2,
		},
		Budget: &budget.Analysis{
			Total: 50000,
			Breakdown: []budget.Breakdown{
				{Name: "Accommodation", Value: 15000, Percentage: 30},
			},
			Recommendations: "Book early.",
		},
		Hotel: &hotel.Hotel{
			Id:     "hotel_1",
			Name:   "Taj Holiday Village Goa",
			Price:  3500,
			Rating: 4.6,
		},
		Transport: &transport.Mode{
			Mode: "Flight",
			Icon: "✈️",
			Options: []transport.Option{
				{Carrier: "IndiGo", Time: "06:15", Price: 4200, ClassType: "Economy"},
			},
		},
		Itinerary: &itinerary.Plan{
			Itinerary: []itinerary.DayPlan{
				{Day: 1, Date: "2026-10-01", TotalCost: 1200, Activities: []itinerary.Activity{
					{Name: "Beach Day", Icon: "🏖️", Time: "10:00 AM", Cost: 1200, Description: "Relax at Calangute."},
				}},
			},
			TotalActivitiesCost: 1200,
			Recommendations:     "Carry sunscreen.",
		},
	}
}

func TestServiceImpl_Save(t *testing.T) {
	t.Run("should save and read back an identical trip", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		saved, err := service.Save(ctx, testTrip())

		// then
		require.NoError(t, err)
		require.NotEmpty(t, saved.Id)
		assert.Equal(t, clock.FixedNow, saved.CreatedAt)

		loaded, err := service.Get(ctx, saved.Id)
		require.NoError(t, err)
		assert.Equal(t, saved, loaded)
	})

	t.Run("should compute the total estimated cost from the snapshot", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		saved, err := service.Save(ctx, testTrip())

		// then
		require.NoError(t, err)
		// 4 nights * 3500 + 2 travellers * 4200 + 1200 activities
		assert.Equal(t, 4*3500.0+2*4200.0+1200.0, saved.TotalEstimatedCost)
	})

	t.Run("should cost the cheapest transport option regardless of order", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		trip := testTrip()
		trip.Transport.Options = []transport.Option{
			{Carrier: "IndiGo", Time: "06:15", Price: 4200, ClassType: "Economy"},
			{Carrier: "Rajdhani Express", Time: "16:50", Price: 1500, ClassType: "3A"},
		}

		// when
		saved, err := service.Save(ctx, trip)

		// then
		require.NoError(t, err)
		// 4 nights * 3500 + 2 travellers * 1500 + 1200 activities
		assert.Equal(t, 4*3500.0+2*1500.0+1200.0, saved.TotalEstimatedCost)
	})

	t.Run("should publish a trip saved event", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		bus := event_bus.NewEventBus()
		var received event_bus.TripSaved
		event_bus.SubscribeTyped[event_bus.TripSaved](bus, event_bus.EventTripSaved,
			func(e event_bus.EventT[event_bus.TripSaved]) error {
				received = e.Data
				return nil
			})
		service := NewTripService(tripRepoStub, bus, clock)

		// when
		saved, err := service.Save(ctx, testTrip())

		// then
		require.NoError(t, err)
		assert.Equal(t, saved.Id, received.TripId)
		assert.Equal(t, "Goa", received.Destination)
	})

	t.Run("should return error when context has no user", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.Save(context.Background(), testTrip())

		// then
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get current user")
	})
}

func TestServiceImpl_List(t *testing.T) {
	t.Run("should list only the current user's trips", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		_, err := service.Save(ctx, testTrip())
		require.NoError(t, err)
		otherCtx := user.WithUser(context.Background(), "other_user")
		_, err = service.Save(otherCtx, testTrip())
		require.NoError(t, err)

		// when
		trips, err := service.List(ctx)

		// then
		require.NoError(t, err)
		assert.Len(t, trips, 1)
		assert.Equal(t, "test_user", trips[0].UserId)
	})
}

func TestServiceImpl_Update(t *testing.T) {
	t.Run("should preserve creation time and recompute totals", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		saved, err := service.Save(ctx, testTrip())
		require.NoError(t, err)

		clock.SetNow(clock.FixedNow.Add(48 * time.Hour))
		modified := saved
		modified.Hotel = &hotel.Hotel{Id: "hotel_2", Name: "Zostel Goa", Price: 900}

		// when
		updated, err := service.Update(ctx, modified)

		// then
		require.NoError(t, err)
		assert.Equal(t, saved.CreatedAt, updated.CreatedAt)
		assert.Equal(t, clock.FixedNow, updated.UpdatedAt)
		assert.Equal(t, 4*900.0+2*4200.0+1200.0, updated.TotalEstimatedCost)
	})

	t.Run("should return not found for another user's trip", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		saved, err := service.Save(ctx, testTrip())
		require.NoError(t, err)

		// when
		otherCtx := user.WithUser(context.Background(), "other_user")
		_, err = service.Update(otherCtx, saved)

		// then
		assert.ErrorIs(t, err, ErrTripNotFound)
	})
}

func TestServiceImpl_Delete(t *testing.T) {
	t.Run("should delete a saved trip", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		saved, err := service.Save(ctx, testTrip())
		require.NoError(t, err)

		// when
		deleted, err := service.Delete(ctx, saved.Id)

		// then
		require.NoError(t, err)
		assert.True(t, deleted)
		_, err = service.Get(ctx, saved.Id)
		assert.ErrorIs(t, err, ErrTripNotFound)
	})

	t.Run("should report not found for unknown trips", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.Delete(ctx, "missing")

		// then
		assert.ErrorIs(t, err, ErrTripNotFound)
	})
}

func TestSnapshotRoundTrip(t *testing.T) {
	t.Run("should survive DTO conversion unchanged", func(t *testing.T) {
		// given
		original := testTrip()

		// when
		restored, err := DTOToTrip(TripToDTO(original))

		// then
		require.NoError(t, err)
		assert.Equal(t, original, restored)
	})
}
