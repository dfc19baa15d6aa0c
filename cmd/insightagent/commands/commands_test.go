package commands

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insightagent/internal/backend"
	"insightagent/internal/crypto"
	"insightagent/internal/domain"
	"insightagent/internal/insights"
)

var creds = []string{"--env", "stage", "--session-id", "cli-1", "--api-key", "k1", "--api-secret", "sec1"}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRoot()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "2.4.1 (20401)\n", out)
}

func TestDeriveKey(t *testing.T) {
	out, _, err := run(t, append([]string{"derive-key"}, creds...)...)
	require.NoError(t, err)
	assert.Equal(t, "b2c925ca3044b14ef1fd7bc4a7e7075e\n", out)
}

func TestDeriveKey_MissingSecret(t *testing.T) {
	_, _, err := run(t, "derive-key", "--env", "stage", "--session-id", "s", "--api-key", "k1")
	var ce *domain.ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "apiSecret", ce.Field)
}

func TestCollect_YAML(t *testing.T) {
	out, _, err := run(t, append([]string{"collect", "--format", "yaml", "--param", "plan=gold"}, creds...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "f: ")
	assert.Contains(t, out, "plan: gold")
}

func TestSeal_FromFileToOut(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "payload.json")
	require.NoError(t, os.WriteFile(in, []byte(`{"f":"abc"}`), 0o600))
	out := filepath.Join(dir, "env.json")

	_, stderr, err := run(t, append([]string{"seal", "--in", in, "--out", out}, creds...)...)
	require.NoError(t, err)
	assert.Contains(t, stderr, "wrote "+out)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	var env domain.Envelope
	require.NoError(t, json.Unmarshal(b, &env))
	assert.Len(t, env.IV, 32)

	pt, err := crypto.Decrypt(crypto.DeriveKey("k1", "sec1"), env)
	require.NoError(t, err)
	assert.JSONEq(t, `{"f":"abc"}`, string(pt))
}

func TestSeal_RequestNeedsURL(t *testing.T) {
	_, _, err := run(t, append([]string{"seal", "--request"}, creds...)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--intelligence-url")
}

func TestSeal_Request(t *testing.T) {
	out, _, err := run(t, append([]string{"seal", "--request", "--intelligence-url", "http://svc.example", "--client-ip", "10.1.2.3"}, creds...)...)
	require.NoError(t, err)

	var rd domain.RequestDescriptor
	require.NoError(t, json.Unmarshal([]byte(out), &rd))
	assert.Equal(t, "POST", rd.Method)
	assert.Equal(t, "http://svc.example"+insights.Path+"?"+insights.Query, rd.URL)
	assert.Equal(t, "10.1.2.3", rd.Header.Get(insights.HeaderClientIP))
	assert.Equal(t, "text/plain", rd.Header.Get(insights.HeaderContentType))
}

func TestSend(t *testing.T) {
	srv := httptest.NewServer(backend.New().Handler())
	defer srv.Close()

	out, stderr, err := run(t, append([]string{"send", "--intelligence-url", srv.URL}, creds...)...)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stderr, "risk "), stderr)
	assert.Contains(t, stderr, "new device")

	var res domain.Insights
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.NewDevice)
	assert.NotEmpty(t, res.Fingerprint)
	assert.Equal(t, "cli-1", res.SessionID)
}

func TestBadFormat(t *testing.T) {
	_, _, err := run(t, "version", "--format", "xml")
	require.Error(t, err)
}
