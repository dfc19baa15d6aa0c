package config

import (
	"time"

	"insightagent/internal/domain"
)

// Config is the merged configuration of one insightagent invocation.
type Config struct {
	Agent    AgentConfig    `koanf:"agent" yaml:"agent"`
	Insights InsightsConfig `koanf:"insights" yaml:"insights"`
	Log      LogConfig      `koanf:"log" yaml:"log"`
}

// AgentConfig carries the four fields of a session configuration.
type AgentConfig struct {
	Environment string `koanf:"environment" yaml:"environment"`
	Session     string `koanf:"session" yaml:"session"`
	APIKey      string `koanf:"apikey" yaml:"apikey"`
	APISecret   string `koanf:"apisecret" yaml:"apisecret"`
}

// InsightsConfig describes how to reach the intelligence service.
type InsightsConfig struct {
	URL      string        `koanf:"url" yaml:"url"`
	ClientIP string        `koanf:"clientip" yaml:"clientip"`
	Timeout  time.Duration `koanf:"timeout" yaml:"timeout"`
}

// LogConfig selects the log level.
type LogConfig struct {
	Level string `koanf:"level" yaml:"level"`
}

// DefaultConfig returns the baseline configuration.
func DefaultConfig() Config {
	return Config{
		Agent: AgentConfig{
			Environment: string(domain.EnvironmentStage),
		},
		Insights: InsightsConfig{
			Timeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level: "error",
		},
	}
}

// DefaultConfigAsMap flattens DefaultConfig for confmap.Provider.
func DefaultConfigAsMap() map[string]interface{} {
	def := DefaultConfig()
	return map[string]interface{}{
		"agent.environment": def.Agent.Environment,
		"agent.session":     def.Agent.Session,
		"agent.apikey":      def.Agent.APIKey,
		"agent.apisecret":   def.Agent.APISecret,

		"insights.url":      def.Insights.URL,
		"insights.clientip": def.Insights.ClientIP,
		"insights.timeout":  def.Insights.Timeout,

		"log.level": def.Log.Level,
	}
}

// Configuration converts the agent section into the domain form. No
// validation happens here; the session package owns that.
func (c Config) Configuration() domain.Configuration {
	return domain.Configuration{
		Environment:       domain.Environment(c.Agent.Environment),
		SessionIdentifier: domain.SessionIdentifier(c.Agent.Session),
		APIKey:            c.Agent.APIKey,
		APISecret:         c.Agent.APISecret,
	}
}

// Redacted returns a copy with the API secret masked, safe for display.
func (c Config) Redacted() Config {
	if c.Agent.APISecret != "" {
		c.Agent.APISecret = "****"
	}
	return c
}
