package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turnero/config"
	"turnero/infras/gemini"
	"turnero/infras/otel/mocks"
)

func newClient(endpoint, apiKey string) gemini.Gemini {
	cfg := &config.Config{}
	cfg.External.Gemini.APIKey = apiKey
	cfg.External.Gemini.Model = "gemini-1.5-flash"
	cfg.External.Gemini.Endpoint = endpoint
	cfg.External.Gemini.TimeoutSeconds = 5

	return gemini.New(cfg, mocks.NewOtel())
}

func candidatePayload(text string) map[string]any {
	return map[string]any{
		"candidates": []map[string]any{
			{
				"content": map[string]any{
					"parts": []map[string]any{
						{"text": text},
					},
				},
			},
		},
	}
}

func TestGenerateSchedule(t *testing.T) {
	t.Run("returns the candidate JSON", func(t *testing.T) {
		schedule := `{"slot_duration":30,"days":[]}`

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Contains(t, r.URL.Path, "gemini-1.5-flash")
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))

			w.Header().Set("Content-Type", "application/json")
			require.NoError(t, json.NewEncoder(w).Encode(candidatePayload(schedule)))
		}))
		defer server.Close()

		client := newClient(server.URL, "test-key")

		payload, err := client.GenerateSchedule(context.Background(), "barbershop")

		require.NoError(t, err)
		assert.JSONEq(t, schedule, string(payload))
	})

	t.Run("strips markdown code fences from the candidate", func(t *testing.T) {
		schedule := `{"slot_duration":45,"days":[]}`
		fenced := "```json\n" + schedule + "\n```"

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewEncoder(w).Encode(candidatePayload(fenced)))
		}))
		defer server.Close()

		client := newClient(server.URL, "test-key")

		payload, err := client.GenerateSchedule(context.Background(), "clinic")

		require.NoError(t, err)
		assert.JSONEq(t, schedule, string(payload))
	})

	t.Run("fails with ErrDisabled when no API key is configured", func(t *testing.T) {
		client := newClient("http://localhost:0", "")

		_, err := client.GenerateSchedule(context.Background(), "barbershop")

		assert.ErrorIs(t, err, gemini.ErrDisabled)
	})

	t.Run("fails with ErrUnavailable on non-OK status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := newClient(server.URL, "test-key")

		_, err := client.GenerateSchedule(context.Background(), "barbershop")

		assert.ErrorIs(t, err, gemini.ErrUnavailable)
	})

	t.Run("fails with ErrUnavailable when the API is unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := newClient(server.URL, "test-key")

		_, err := client.GenerateSchedule(context.Background(), "barbershop")

		assert.ErrorIs(t, err, gemini.ErrUnavailable)
	})

	t.Run("fails with ErrBadPayload when the candidate is not JSON", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewEncoder(w).Encode(candidatePayload("sure, here is a schedule")))
		}))
		defer server.Close()

		client := newClient(server.URL, "test-key")

		_, err := client.GenerateSchedule(context.Background(), "barbershop")

		assert.ErrorIs(t, err, gemini.ErrBadPayload)
	})

	t.Run("fails with ErrBadPayload when there are no candidates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}}))
		}))
		defer server.Close()

		client := newClient(server.URL, "test-key")

		_, err := client.GenerateSchedule(context.Background(), "barbershop")

		assert.ErrorIs(t, err, gemini.ErrBadPayload)
	})
}
