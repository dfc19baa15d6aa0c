package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insightagent/internal/config"
	"insightagent/internal/domain"
)

func flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("env", "", "")
	fs.String("session-id", "", "")
	fs.String("api-key", "", "")
	fs.String("api-secret", "", "")
	fs.String("intelligence-url", "", "")
	fs.String("client-ip", "", "")
	fs.Duration("timeout", 10*time.Second, "")
	fs.String("log-level", "", "")
	fs.String("format", "json", "")
	return fs
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "insightagent.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	m := config.NewManager()
	require.NoError(t, m.Load(nil, ""))

	got := m.Get()
	assert.Equal(t, config.DefaultConfig(), got)
	assert.Equal(t, 10*time.Second, got.Insights.Timeout)
}

func TestLoad_Layering(t *testing.T) {
	path := writeFile(t, `
agent:
  environment: prod
  session: from-file
  apikey: file-key
  apisecret: file-secret
insights:
  url: http://file.example
  timeout: 3s
log:
  level: warn
`)
	t.Setenv("INSIGHTAGENT_AGENT_SESSION", "from-env")
	t.Setenv("INSIGHTAGENT_LOG_LEVEL", "info")

	fs := flagSet()
	require.NoError(t, fs.Parse([]string{"--api-key", "flag-key", "--client-ip", "10.0.0.1"}))

	m := config.NewManager()
	require.NoError(t, m.Load(fs, path))
	got := m.Get()

	assert.Equal(t, "prod", got.Agent.Environment)
	assert.Equal(t, "from-env", got.Agent.Session)
	assert.Equal(t, "flag-key", got.Agent.APIKey)
	assert.Equal(t, "file-secret", got.Agent.APISecret)
	assert.Equal(t, "http://file.example", got.Insights.URL)
	assert.Equal(t, "10.0.0.1", got.Insights.ClientIP)
	assert.Equal(t, 3*time.Second, got.Insights.Timeout, "unset flag must not override file")
	assert.Equal(t, "info", got.Log.Level)
}

func TestLoad_FlagDurationOverrides(t *testing.T) {
	fs := flagSet()
	require.NoError(t, fs.Parse([]string{"--timeout", "250ms"}))

	m := config.NewManager()
	require.NoError(t, m.Load(fs, ""))
	assert.Equal(t, 250*time.Millisecond, m.Get().Insights.Timeout)
}

func TestLoad_UnmappedFlagsIgnored(t *testing.T) {
	fs := flagSet()
	require.NoError(t, fs.Parse([]string{"--format", "yaml"}))

	m := config.NewManager()
	require.NoError(t, m.Load(fs, ""))
	_, ok := m.Source("format")
	assert.False(t, ok)
}

func TestLoad_MissingFileSkipped(t *testing.T) {
	m := config.NewManager()
	require.NoError(t, m.Load(nil, filepath.Join(t.TempDir(), "absent.yaml")))
	assert.Equal(t, config.DefaultConfig(), m.Get())
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeFile(t, "agent: [unterminated")
	m := config.NewManager()
	err := m.Load(nil, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file:")
}

func TestConfiguration(t *testing.T) {
	c := config.Config{Agent: config.AgentConfig{
		Environment: "PROD",
		Session:     "s1",
		APIKey:      " k ",
		APISecret:   "sec",
	}}
	got := c.Configuration()
	assert.Equal(t, domain.EnvironmentProd, got.Environment)
	assert.Equal(t, domain.SessionIdentifier("s1"), got.SessionIdentifier)
	assert.Equal(t, " k ", got.APIKey)

	assert.Equal(t, "****", c.Redacted().Agent.APISecret)
	assert.Equal(t, "sec", c.Agent.APISecret)
}
