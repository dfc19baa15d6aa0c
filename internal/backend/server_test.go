package backend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insightagent/internal/backend"
	"insightagent/internal/crypto"
	"insightagent/internal/domain"
	"insightagent/internal/insights"
	"insightagent/internal/services/envelope"
	"insightagent/internal/services/session"
	"insightagent/internal/signals"
)

var cfg = domain.Configuration{
	Environment:       domain.EnvironmentStage,
	SessionIdentifier: "sess-42",
	APIKey:            "k1",
	APISecret:         "sec1",
}

func descriptor(t *testing.T, base string, payload domain.SignalPayload, ip string) domain.RequestDescriptor {
	t.Helper()
	s := envelope.New(cfg)
	defer s.Close()
	env, err := s.Seal(payload)
	require.NoError(t, err)
	rd, err := insights.BuildRequest(base, cfg, env, insights.RequestOptions{ClientIP: ip})
	require.NoError(t, err)
	return rd
}

func forward(t *testing.T, srv *httptest.Server, rd domain.RequestDescriptor) (domain.Insights, error) {
	t.Helper()
	return insights.NewClient(srv.Client(), zerolog.Nop()).Forward(context.Background(), rd)
}

func TestServer_NewThenReturningDevice(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	srv := httptest.NewServer(backend.New(backend.WithClock(func() time.Time { return now })).Handler())
	defer srv.Close()

	payload := domain.SignalPayload{"f": "fp-1", "additionalParams": map[string]any{"sessionId": "sess-42"}}

	first, err := forward(t, srv, descriptor(t, srv.URL, payload, ""))
	require.NoError(t, err)
	assert.True(t, first.NewDevice)
	assert.Equal(t, "fp-1", first.Fingerprint)
	assert.Equal(t, "sess-42", first.SessionID)
	assert.Equal(t, domain.RiskMedium, first.RiskScore)
	assert.Equal(t, 0, first.FirstSeenDays)
	assert.Nil(t, first.IPIntelligence)
	assert.NotEmpty(t, first.RequestID)

	now = now.Add(3*24*time.Hour + time.Hour)
	again, err := forward(t, srv, descriptor(t, srv.URL, payload, ""))
	require.NoError(t, err)
	assert.False(t, again.NewDevice)
	assert.Equal(t, domain.RiskLow, again.RiskScore)
	assert.Equal(t, 3, again.FirstSeenDays)
	assert.Equal(t, now.Unix(), again.CreatedAt)
	assert.NotEqual(t, first.RequestID, again.RequestID)
}

func TestServer_IPIntelligenceOnlyWithForwardedIP(t *testing.T) {
	srv := httptest.NewServer(backend.New().Handler())
	defer srv.Close()

	res, err := forward(t, srv, descriptor(t, srv.URL, domain.SignalPayload{"f": "fp-ip"}, "203.0.113.9"))
	require.NoError(t, err)
	require.NotNil(t, res.IPIntelligence)
	assert.Equal(t, "203.0.113.9", res.IPIntelligence.IP)
}

func TestServer_BotSignalsScoreHigh(t *testing.T) {
	srv := httptest.NewServer(backend.New().Handler())
	defer srv.Close()

	payload := domain.SignalPayload{
		"f": "fp-bot",
		"a": map[string]any{"webdriver": "true"},
	}
	res, err := forward(t, srv, descriptor(t, srv.URL, payload, ""))
	require.NoError(t, err)
	assert.True(t, res.BrowserDetections.IsBotDetected)
	assert.Equal(t, domain.RiskHigh, res.RiskScore)
}

func TestServer_Rejections(t *testing.T) {
	srv := httptest.NewServer(backend.New(backend.WithCredentials(map[string]string{"k1": "sec1"})).Handler())
	defer srv.Close()

	t.Run("no fingerprint", func(t *testing.T) {
		_, err := forward(t, srv, descriptor(t, srv.URL, domain.SignalPayload{"a": 1}, ""))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "422")
	})

	t.Run("unknown credentials", func(t *testing.T) {
		other := cfg
		other.APISecret = "nope"
		s := envelope.New(other)
		env, err := s.Seal(domain.SignalPayload{"f": "x"})
		require.NoError(t, err)
		rd, err := insights.BuildRequest(srv.URL, other, env, insights.RequestOptions{})
		require.NoError(t, err)
		_, err = forward(t, srv, rd)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
	})

	t.Run("wrong key", func(t *testing.T) {
		// Encrypted under a different secret but sent with valid credentials.
		key := crypto.DeriveKey("k1", "other")
		env, err := crypto.Encrypt(key, []byte(`{"f":"x"}`))
		require.NoError(t, err)
		rd, err := insights.BuildRequest(srv.URL, cfg, env, insights.RequestOptions{})
		require.NoError(t, err)
		_, err = forward(t, srv, rd)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "400")
	})

	t.Run("contract", func(t *testing.T) {
		resp, err := srv.Client().Post(srv.URL+insights.Path, "text/plain", strings.NewReader("x"))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Contains(t, body["error"], "query")
	})

	t.Run("method", func(t *testing.T) {
		resp, err := srv.Client().Get(srv.URL + insights.Path + "?" + insights.Query)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})
}

func TestServer_OversizedBody(t *testing.T) {
	rd := descriptor(t, "http://backend.test", domain.SignalPayload{"f": "big"}, "")
	rd.Body = strings.Repeat("A", 1<<20+16)
	req, err := insights.NewHTTPRequest(context.Background(), rd)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	backend.New().Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Contains(t, body["error"], "exceeds")
}

func TestServer_Healthz(t *testing.T) {
	srv := httptest.NewServer(backend.New().Handler())
	defer srv.Close()
	resp, err := srv.Client().Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// TestPipeline drives the whole flow: init, collect, seal, describe, send.
func TestPipeline(t *testing.T) {
	srv := httptest.NewServer(backend.New().Handler())
	defer srv.Close()
	ctx := context.Background()

	agent := session.New(signals.NewHostProbe(insights.SDKVersionName, nil))
	client, err := agent.Init(cfg).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.StateReady, agent.State())

	payload, err := client.Get(ctx).Await(ctx)
	require.NoError(t, err)

	rd := descriptor(t, srv.URL, payload, "198.51.100.7")
	res, err := forward(t, srv, rd)
	require.NoError(t, err)
	assert.Equal(t, payload.Fingerprint(), res.Fingerprint)
	assert.Equal(t, "sess-42", res.SessionID)
	assert.True(t, res.NewDevice)

	// A second collection in the same session keeps its fingerprint.
	payload2, err := client.Get(ctx).Await(ctx)
	require.NoError(t, err)
	res2, err := forward(t, srv, descriptor(t, srv.URL, payload2, ""))
	require.NoError(t, err)
	assert.Equal(t, res.Fingerprint, res2.Fingerprint)
	assert.False(t, res2.NewDevice)
}
