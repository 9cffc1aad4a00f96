package ratefeed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchRates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/USD", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"base":"USD","rates":{"USD":1,"TRY":32.5,"EUR":0.91}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 10)
	rates, err := client.FetchRates(context.Background(), "USD")

	require.NoError(t, err)
	assert.Equal(t, 32.5, rates["TRY"])
	assert.Equal(t, 0.91, rates["EUR"])
}

func TestFetchRates_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, 10)
	_, err := client.FetchRates(context.Background(), "USD")

	require.Error(t, err)
}

func TestFetchRates_HungUpstreamAbortsOnDeadline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Hold the response open until the client gives up.
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewClient(server.URL, 10)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := client.FetchRates(ctx, "USD")

	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestFetchRates_EmptySnapshot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"base":"USD","rates":{}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 10)
	_, err := client.FetchRates(context.Background(), "USD")

	require.Error(t, err)
}

func TestCrossRate(t *testing.T) {
	rates := map[string]float64{"USD": 1, "TRY": 32.5, "JPY": 150}

	ratio, err := crossRate(rates, "USD", "TRY")
	require.NoError(t, err)
	assert.True(t, ratio.Equal(decimal.RequireFromString("32.5")))

	// Cross pair not involving the reference currency
	ratio, err = crossRate(rates, "JPY", "TRY")
	require.NoError(t, err)
	expected := decimal.NewFromFloat(32.5).Div(decimal.NewFromFloat(150))
	assert.True(t, ratio.Equal(expected))

	_, err = crossRate(rates, "XXX", "TRY")
	assert.Error(t, err)

	_, err = crossRate(map[string]float64{"USD": 0, "TRY": 32.5}, "USD", "TRY")
	assert.Error(t, err)
}
