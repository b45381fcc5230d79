package hotel

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tripforge/tripforge/internal/event_bus"
	"github.com/tripforge/tripforge/pkg/amadeus"
	"github.com/tripforge/tripforge/pkg/pipeline"
	"github.com/tripforge/tripforge/pkg/user"
)

var ctx = user.WithUser(context.Background(), "test_user")

type stubBookingClient struct {
	hotels []Hotel
	err    error
}

func (s *stubBookingClient) SearchHotels(ctx context.Context, request SearchRequest) ([]Hotel, error) {
	return s.hotels, s.err
}

type stubAmadeusClient struct {
	hotels []amadeus.HotelOffer
	err    error
}

func (s *stubAmadeusClient) SearchFlights(ctx context.Context, origin, destination string, departure time.Time, adults int, maxPrice float64, maxResults int) ([]amadeus.FlightOffer, error) {
	return nil, s.err
}

func (s *stubAmadeusClient) SearchHotels(ctx context.Context, cityCode string, checkIn, checkOut time.Time, adults int, maxPrice float64, maxResults int) ([]amadeus.HotelOffer, error) {
	return s.hotels, s.err
}

func testSearchRequest() SearchRequest {
	return SearchRequest{
		Destination: "Goa",
		CheckIn:     time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:    time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
		Adults:      2,
		MaxPrice:    4000,
		TripType:    "family",
	}
}

func TestSearchRequest_Nights(t *testing.T) {
	t.Run("should count nights between dates", func(t *testing.T) {
		assert.Equal(t, 4, testSearchRequest().Nights())
	})

	t.Run("should never report less than one night", func(t *testing.T) {
		request := testSearchRequest()
		request.CheckOut = request.CheckIn
		assert.Equal(t, 1, request.Nights())
	})
}

func TestTagForPrice(t *testing.T) {
	assert.Equal(t, TagLuxuryPick, tagForPrice(9000, false))
	assert.Equal(t, TagBudgetFriendly, tagForPrice(1200, false))
	assert.Equal(t, TagFamilyFriendly, tagForPrice(3000, true))
	assert.Equal(t, TagBestValue, tagForPrice(3000, false))
}

func TestGenerateHotels(t *testing.T) {
	t.Run("should keep generated prices near the ceiling", func(t *testing.T) {
		// given
		rng := rand.New(rand.NewSource(42))

		// when
		hotels := generateHotels(rng, testSearchRequest(), 4000)

		// then
		require.NotEmpty(t, hotels)
		for _, h := range hotels {
			assert.LessOrEqual(t, h.Price, 4000*1.2, "hotel %s", h.Name)
			assert.Greater(t, h.Price, 0.0)
		}
	})

	t.Run("should use destination areas for known cities", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))

		hotels := generateHotels(rng, testSearchRequest(), 4000)

		require.NotEmpty(t, hotels)
		assert.Contains(t, destinationAreas["goa"], hotels[0].Location)
	})

	t.Run("should keep chain prices when no ceiling is set", func(t *testing.T) {
		// given
		rng := rand.New(rand.NewSource(42))
		request := testSearchRequest()
		request.MaxPrice = 0

		// when
		hotels := generateHotels(rng, request, 0)

		// then
		require.NotEmpty(t, hotels)
		for _, h := range hotels {
			assert.Greater(t, h.Price, 0.0, "hotel %s", h.Name)
		}
	})

	t.Run("should fill the full result page", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))

		hotels := generateHotels(rng, testSearchRequest(), 4000)

		assert.Len(t, hotels, maxResults)
	})
}

func TestParseFacilities(t *testing.T) {
	t.Run("should map raw facility keys to display names", func(t *testing.T) {
		amenities := parseFacilities("free_wifi,outdoor_pool,hotel_bar")

		assert.Equal(t, []string{"Free WiFi", "Swimming Pool", "Bar"}, amenities)
	})

	t.Run("should cap the amenity list at five", func(t *testing.T) {
		amenities := parseFacilities("wifi pool gym spa restaurant bar parking")

		assert.Len(t, amenities, 5)
	})

	t.Run("should default when nothing matches", func(t *testing.T) {
		assert.Equal(t, []string{"WiFi", "Air Conditioning", "Room Service"}, parseFacilities(""))
		assert.Equal(t, []string{"WiFi", "Air Conditioning", "Room Service"}, parseFacilities("helipad"))
	})
}

func TestServiceImpl_Search(t *testing.T) {
	t.Run("should prefer live hotels when available", func(t *testing.T) {
		// given
		live := []Hotel{{Id: "b1", Name: "Taj Holiday Village", Price: 3800}}
		service := NewService(
			&stubBookingClient{hotels: live},
			&stubAmadeusClient{err: amadeus.ErrNotConfigured},
			pipeline.NewCoordinator(event_bus.NewEventBus()),
		)

		// when
		result, err := service.Search(ctx, testSearchRequest())

		// then
		require.NoError(t, err)
		assert.Equal(t, live, result.Hotels)
		assert.Equal(t, 1, result.TotalCount)
	})

	t.Run("should generate hotels when no live source works", func(t *testing.T) {
		// given
		service := NewService(
			&stubBookingClient{err: ErrNoAPIKey},
			&stubAmadeusClient{err: amadeus.ErrNotConfigured},
			pipeline.NewCoordinator(event_bus.NewEventBus()),
		)

		// when
		result, err := service.Search(ctx, testSearchRequest())

		// then
		require.NoError(t, err)
		assert.NotEmpty(t, result.Hotels)
		assert.Equal(t, len(result.Hotels), result.TotalCount)
	})

	t.Run("should clamp the price ceiling to the allocated budget", func(t *testing.T) {
		// given
		bus := event_bus.NewEventBus()
		coordinator := pipeline.NewCoordinator(bus)
		err := bus.Publish(event_bus.NewEvent(ctx, event_bus.EventBudgetAllocated,
			event_bus.BudgetAllocated{UserId: "test_user", HotelBudgetPerNight: 2000}))
		require.NoError(t, err)

		booking := &recordingBookingClient{}
		service := NewService(booking, &stubAmadeusClient{err: amadeus.ErrNotConfigured}, coordinator)

		// when
		request := testSearchRequest()
		request.MaxPrice = 10000
		_, err = service.Search(ctx, request)

		// then
		require.NoError(t, err)
		assert.Equal(t, 2000.0, booking.lastRequest.MaxPrice)
	})
}

type recordingBookingClient struct {
	lastRequest SearchRequest
}

func (r *recordingBookingClient) SearchHotels(ctx context.Context, request SearchRequest) ([]Hotel, error) {
	r.lastRequest = request
	return nil, ErrNoAPIKey
}
