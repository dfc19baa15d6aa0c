package insights_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insightagent/internal/domain"
	"insightagent/internal/insights"
)

func TestClient_ForwardDecodesInsights(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if _, err := insights.ValidateRequest(r, body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(domain.Insights{
			RequestID: "req-1",
			SessionID: "s1",
			RiskScore: domain.RiskLow,
		})
	}))
	defer srv.Close()

	rd, err := insights.BuildRequest(srv.URL, cfg, sealed(t), insights.RequestOptions{})
	require.NoError(t, err)

	c := insights.NewClient(srv.Client(), zerolog.Nop())
	got, err := c.Forward(context.Background(), rd)
	require.NoError(t, err)
	assert.Equal(t, "req-1", got.RequestID)
	assert.Equal(t, domain.RiskLow, got.RiskScore)
}

func TestClient_ForwardNoRetryOnFailure(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "upstream sad", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	rd, err := insights.BuildRequest(srv.URL, cfg, sealed(t), insights.RequestOptions{})
	require.NoError(t, err)

	_, err = insights.NewClient(nil, zerolog.Nop()).Forward(context.Background(), rd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), "upstream sad")
	assert.Equal(t, int32(1), hits.Load())
}

func TestClient_ForwardHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	rd, err := insights.BuildRequest(srv.URL, cfg, sealed(t), insights.RequestOptions{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = insights.NewClient(srv.Client(), zerolog.Nop()).Forward(ctx, rd)
	assert.ErrorIs(t, err, context.Canceled)
}
