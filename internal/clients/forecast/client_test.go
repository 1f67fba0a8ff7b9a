package forecast

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/propex/internal/models"
)

func TestForecast_PostsPayloadAndDecodesRows(t *testing.T) {
	var got models.ForecastRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.ForecastYear{
			{Year: 1, NOI: 12000, CumulativeAppreciations: models.CumulativeAppreciations{MortgagePaydown: 4200}},
			{Year: 2, NOI: 12500},
		})
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	req := models.ForecastRequest{Array: []models.ForecastPayload{{Property: models.Property{UUID: "p1", AvgRent: 2500}}}}

	rows, err := client.Forecast(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 4200.0, rows[0].CumulativeAppreciations.MortgagePaydown)
	assert.Equal(t, "p1", got.UUID())
	assert.Equal(t, 2500.0, got.Array[0].AvgRent)
}

func TestForecast_ErrorsAreCollaboratorUnavailable(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "engine down", http.StatusBadGateway)
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"not":"an array"`))
		}},
		{"empty array", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := NewClient(WithBaseURL(srv.URL))
			_, err := client.Forecast(context.Background(), models.ForecastRequest{})
			require.Error(t, err)
			assert.True(t, errors.Is(err, models.ErrCollaboratorUnavailable), "got %v", err)
		})
	}
}

func TestForecast_APIErrorCarriesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad payload", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	_, err := NewClient(WithBaseURL(srv.URL)).Forecast(context.Background(), models.ForecastRequest{})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "bad payload")
}

func TestForecast_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`[{"year":1}]`))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL), WithTimeout(20*time.Millisecond), WithRateLimit(0))
	_, err := client.Forecast(context.Background(), models.ForecastRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrCollaboratorUnavailable)
}
