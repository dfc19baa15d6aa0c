package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix prefixes every environment variable the agent reads.
const EnvPrefix = "INSIGHTAGENT_"

// Source loads configuration values into koanf. Sources are applied in
// ascending Priority order, later ones overriding earlier ones.
type Source interface {
	Name() string
	Priority() int
	Load(k *koanf.Koanf) error
}

// DefaultSource loads DefaultConfig.
type DefaultSource struct{}

func (s *DefaultSource) Name() string  { return "defaults" }
func (s *DefaultSource) Priority() int { return 10 }

func (s *DefaultSource) Load(k *koanf.Koanf) error {
	if err := k.Load(confmap.Provider(DefaultConfigAsMap(), "."), nil); err != nil {
		return fmt.Errorf("error loading defaults: %w", err)
	}
	return nil
}

// FileSource loads a YAML file. An empty or missing path is skipped.
type FileSource struct {
	Path string
}

func (s *FileSource) Name() string  { return "file:" + s.Path }
func (s *FileSource) Priority() int { return 20 }

func (s *FileSource) Load(k *koanf.Koanf) error {
	if s.Path == "" {
		return nil
	}
	if _, err := os.Stat(s.Path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("error checking config file %s: %w", s.Path, err)
	}
	if err := k.Load(file.Provider(s.Path), yaml.Parser()); err != nil {
		return fmt.Errorf("error loading config file %s: %w", s.Path, err)
	}
	return nil
}

// EnvSource loads prefixed environment variables:
//
//	INSIGHTAGENT_AGENT_APIKEY -> agent.apikey
//	INSIGHTAGENT_LOG_LEVEL    -> log.level
type EnvSource struct {
	Prefix string // defaults to EnvPrefix
}

func (s *EnvSource) Name() string  { return "env" }
func (s *EnvSource) Priority() int { return 30 }

func (s *EnvSource) Load(k *koanf.Koanf) error {
	prefix := s.Prefix
	if prefix == "" {
		prefix = EnvPrefix
	}
	if err := k.Load(env.Provider(prefix, ".", func(key string) string {
		return strings.ReplaceAll(strings.ToLower(
			strings.TrimPrefix(key, prefix)), "_", ".")
	}), nil); err != nil {
		return fmt.Errorf("error loading environment variables: %w", err)
	}
	return nil
}

// FlagKeys maps CLI flag names to configuration keys.
var FlagKeys = map[string]string{
	"env":              "agent.environment",
	"session-id":       "agent.session",
	"api-key":          "agent.apikey",
	"api-secret":       "agent.apisecret",
	"intelligence-url": "insights.url",
	"client-ip":        "insights.clientip",
	"timeout":          "insights.timeout",
	"log-level":        "log.level",
}

// FlagSource loads the flags listed in FlagKeys. Flags left at their
// default do not override keys already present.
type FlagSource struct {
	Flags *pflag.FlagSet
}

func (s *FlagSource) Name() string  { return "flags" }
func (s *FlagSource) Priority() int { return 40 }

func (s *FlagSource) Load(k *koanf.Koanf) error {
	if s.Flags == nil {
		return nil
	}
	provider := posflag.ProviderWithFlag(s.Flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		key, ok := FlagKeys[f.Name]
		if !ok {
			return "", nil
		}
		return key, f.Value.String()
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("error loading command-line flags: %w", err)
	}
	return nil
}

// DefaultSources returns defaults -> file -> env -> flags.
func DefaultSources(configPath string, flags *pflag.FlagSet) []Source {
	return []Source{
		&DefaultSource{},
		&FileSource{Path: configPath},
		&EnvSource{Prefix: EnvPrefix},
		&FlagSource{Flags: flags},
	}
}
