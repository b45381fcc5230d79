package hotel

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func testBookingClient(server *httptest.Server) *BookingClientImpl {
	return &BookingClientImpl{
		apiKey:     "test-key",
		baseURL:    server.URL,
		httpClient: server.Client(),
		limiter:    rate.NewLimiter(rate.Inf, 1),
	}
}

func bookingServer(t *testing.T, searchBody string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-RapidAPI-Key"))
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/hotels/locations":
			_, _ = w.Write([]byte(`[{"dest_id": 839, "dest_type": ""}]`))
		case "/hotels/search":
			assert.Equal(t, "839", r.URL.Query().Get("dest_id"))
			assert.Equal(t, "city", r.URL.Query().Get("dest_type"))
			_, _ = w.Write([]byte(searchBody))
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
	}))
}

func TestBookingClientImpl_SearchHotels(t *testing.T) {
	t.Run("should convert gross price to a per-night rate", func(t *testing.T) {
		// given
		server := bookingServer(t, `{"result": [{
			"hotel_id": 42,
			"hotel_name": "Taj Holiday Village",
			"address": "Sinquerim",
			"review_score": 8.4,
			"main_photo_url": "https://example.com/photo.jpg",
			"is_family_friendly": true,
			"hotel_facilities": "free_wifi,outdoor_pool",
			"price_breakdown": {"gross_price": "8000"}
		}]}`)
		defer server.Close()

		// when
		hotels, err := testBookingClient(server).SearchHotels(ctx, testSearchRequest())

		// then
		require.NoError(t, err)
		require.Len(t, hotels, 1)
		// 8000 gross over 4 nights
		assert.Equal(t, 2000.0, hotels[0].Price)
		assert.Equal(t, "real_hotel_42", hotels[0].Id)
		assert.Equal(t, "Taj Holiday Village", hotels[0].Name)
		assert.Equal(t, "Sinquerim", hotels[0].Location)
		assert.Equal(t, 8.4, hotels[0].Rating)
		assert.Equal(t, []string{"Free WiFi", "Swimming Pool"}, hotels[0].Amenities)
		assert.Equal(t, TagFamilyFriendly, hotels[0].Tag)
	})

	t.Run("should default unpriced results to 2000 per night", func(t *testing.T) {
		// given
		server := bookingServer(t, `{"result": [{
			"hotel_id": 7,
			"hotel_name": "Ginger Hotel",
			"price_breakdown": {"gross_price": "0"}
		}]}`)
		defer server.Close()

		// when
		hotels, err := testBookingClient(server).SearchHotels(ctx, testSearchRequest())

		// then
		require.NoError(t, err)
		require.Len(t, hotels, 1)
		assert.Equal(t, 2000.0, hotels[0].Price)
	})

	t.Run("should drop results far over the price ceiling", func(t *testing.T) {
		// given: 40000 gross is 10000/night, over the 4000 ceiling's grace margin
		server := bookingServer(t, `{"result": [
			{"hotel_id": 1, "hotel_name": "The Oberoi", "price_breakdown": {"gross_price": "40000"}},
			{"hotel_id": 2, "hotel_name": "Lemon Tree", "price_breakdown": {"gross_price": "9600"}}
		]}`)
		defer server.Close()

		// when
		hotels, err := testBookingClient(server).SearchHotels(ctx, testSearchRequest())

		// then
		require.NoError(t, err)
		require.Len(t, hotels, 1)
		assert.Equal(t, "real_hotel_2", hotels[0].Id)
	})

	t.Run("should report a missing subscription on 403", func(t *testing.T) {
		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		// when
		_, err := testBookingClient(server).SearchHotels(ctx, testSearchRequest())

		// then
		assert.ErrorContains(t, err, "subscription")
	})

	t.Run("should error when the destination is unknown", func(t *testing.T) {
		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[]`))
		}))
		defer server.Close()

		request := testSearchRequest()
		request.Destination = "Nowhere"
		request.CheckIn = time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

		// when
		_, err := testBookingClient(server).SearchHotels(ctx, request)

		// then
		assert.ErrorContains(t, err, "no location found")
	})
}
