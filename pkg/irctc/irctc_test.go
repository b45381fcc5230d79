package irctc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tripforge/tripforge/internal/config"
	"golang.org/x/time/rate"
)

func TestStationCode(t *testing.T) {
	t.Run("should resolve known cities", func(t *testing.T) {
		assert.Equal(t, "NDLS", StationCode("Delhi"))
		assert.Equal(t, "CSTM", StationCode("Mumbai"))
		assert.Equal(t, "MAO", StationCode("goa"))
		assert.Equal(t, "SBC", StationCode("Bengaluru"))
	})

	t.Run("should ignore case and surrounding whitespace", func(t *testing.T) {
		assert.Equal(t, "NDLS", StationCode("  NEW DELHI "))
	})

	t.Run("should fall back to a four letter code for unknown cities", func(t *testing.T) {
		assert.Equal(t, "MEER", StationCode("Meerut"))
		assert.Equal(t, "PUR", StationCode("pur"))
	})
}

func TestEstimateFares(t *testing.T) {
	t.Run("should price every known class", func(t *testing.T) {
		fares := estimateFares([]string{"1A", "3A", "SL"})

		assert.Equal(t, map[string]float64{"1A": 2500, "3A": 900, "SL": 400}, fares)
	})

	t.Run("should skip classes without a fare table entry", func(t *testing.T) {
		fares := estimateFares([]string{"3A", "GEN"})

		assert.Equal(t, map[string]float64{"3A": 900}, fares)
		assert.NotContains(t, fares, "GEN")
	})
}

func TestClientImpl_SearchTrains(t *testing.T) {
	t.Run("should serve fallback trains without an API key", func(t *testing.T) {
		// given
		client := NewClient(config.RapidAPI{})

		// when
		trains, err := client.SearchTrains(context.Background(), "NDLS", "CSTM", time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC))

		// then
		require.NoError(t, err)
		require.Len(t, trains, 2)
		assert.Equal(t, "Rajdhani Express", trains[0].Name)
		assert.Equal(t, "NDLS", trains[0].FromStation)
		assert.Equal(t, "CSTM", trains[0].ToStation)
		assert.Equal(t, 1200.0, trains[0].Fares["3A"])
	})

	t.Run("should accept a zero travel date", func(t *testing.T) {
		// given
		client := NewClient(config.RapidAPI{})

		// when
		trains, err := client.SearchTrains(context.Background(), "SBC", "MAS", time.Time{})

		// then
		require.NoError(t, err)
		assert.NotEmpty(t, trains)
	})

	t.Run("should parse trains from the API", func(t *testing.T) {
		// given
		server := trainServer(t, `{"data": [{
			"train_number": 12951,
			"train_name": "Mumbai Rajdhani",
			"train_src": "NDLS",
			"train_dstn": "CSTM",
			"from_std": "16:25",
			"to_sta": "08:15",
			"duration": "15h 50m",
			"class_type": ["1A", "2A", "3A", "GEN"],
			"run_days": ""
		}]}`)
		defer server.Close()

		// when
		trains, err := testTrainClient(server).SearchTrains(context.Background(), "NDLS", "CSTM", time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC))

		// then
		require.NoError(t, err)
		require.Len(t, trains, 1)
		assert.Equal(t, "12951", trains[0].Number)
		assert.Equal(t, "Mumbai Rajdhani", trains[0].Name)
		assert.Equal(t, "16:25", trains[0].DepartureTime)
		assert.Equal(t, "15h 50m", trains[0].Duration)
		assert.Equal(t, "Daily", trains[0].RunDays)
		assert.Equal(t, map[string]float64{"1A": 2500, "2A": 1500, "3A": 900}, trains[0].Fares)
	})

	t.Run("should serve repeated route lookups from the cache", func(t *testing.T) {
		// given
		server := trainServer(t, `{"data": [{
			"train_number": 12951,
			"train_name": "Mumbai Rajdhani",
			"train_src": "NDLS",
			"train_dstn": "CSTM",
			"class_type": ["3A"]
		}]}`)
		defer server.Close()
		client := testTrainClient(server)
		date := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

		// when
		first, err := client.SearchTrains(context.Background(), "NDLS", "CSTM", date)
		require.NoError(t, err)
		second, err := client.SearchTrains(context.Background(), "NDLS", "CSTM", date)

		// then
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, 1, server.hits)
	})

	t.Run("should fall back when the API reports errors", func(t *testing.T) {
		// given
		server := trainServer(t, `{"errors": [{"message": "invalid station"}], "data": []}`)
		defer server.Close()

		// when
		trains, err := testTrainClient(server).SearchTrains(context.Background(), "XXXX", "YYYY", time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC))

		// then
		require.NoError(t, err)
		require.Len(t, trains, 2)
		assert.Equal(t, "Rajdhani Express", trains[0].Name)
	})
}

type countingServer struct {
	*httptest.Server
	hits int
}

func trainServer(t *testing.T, body string) *countingServer {
	server := &countingServer{}
	server.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		server.hits++
		assert.Equal(t, "/api/v3/trainBetweenStations", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-RapidAPI-Key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	return server
}

func testTrainClient(server *countingServer) *ClientImpl {
	return &ClientImpl{
		apiKey:     "test-key",
		baseURL:    server.URL,
		httpClient: server.Client(),
		limiter:    rate.NewLimiter(rate.Inf, 1),
		cache:      make(map[string][]Train),
	}
}
