package genai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(server *httptest.Server) *ClientImpl {
	return &ClientImpl{
		apiKey:     "test-key",
		model:      "gemini-2.0-flash",
		baseURL:    server.URL,
		httpClient: server.Client(),
	}
}

func TestClientImpl_GenerateText(t *testing.T) {
	t.Run("should return the first candidate's text", func(t *testing.T) {
		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/models/gemini-2.0-flash:generateContent", r.URL.Path)
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"candidates": [
					{"content": {"parts": [{"text": "[{\"day\": 1}]"}]}},
					{"content": {"parts": [{"text": "ignored"}]}}
				]
			}`))
		}))
		defer server.Close()

		// when
		text, err := testClient(server).GenerateText(context.Background(), "plan a day", GenerateOptions{})

		// then
		require.NoError(t, err)
		assert.Equal(t, "[{\"day\": 1}]", text)
	})

	t.Run("should error on non-OK status", func(t *testing.T) {
		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		// when
		_, err := testClient(server).GenerateText(context.Background(), "plan a day", GenerateOptions{})

		// then
		assert.ErrorContains(t, err, "non-OK status: 429")
	})

	t.Run("should error when the response has no candidates", func(t *testing.T) {
		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"candidates": []}`))
		}))
		defer server.Close()

		// when
		_, err := testClient(server).GenerateText(context.Background(), "plan a day", GenerateOptions{})

		// then
		assert.ErrorContains(t, err, "no candidates")
	})

	t.Run("should not call the API without a key", func(t *testing.T) {
		// given
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
		}))
		defer server.Close()
		client := testClient(server)
		client.apiKey = ""

		// when
		_, err := client.GenerateText(context.Background(), "plan a day", GenerateOptions{})

		// then
		assert.ErrorIs(t, err, ErrNotConfigured)
		assert.Equal(t, 0, calls)
	})
}
