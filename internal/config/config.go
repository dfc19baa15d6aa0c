package config

import (
	"fmt"
	"sort"
	"sync"

	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Manager loads and holds the merged configuration.
type Manager struct {
	mu      sync.RWMutex
	k       *koanf.Koanf
	current Config
}

// NewManager returns a Manager with an empty koanf instance.
func NewManager() *Manager {
	return &Manager{k: koanf.New(".")}
}

// Load applies DefaultSources for configPath and flags.
func (m *Manager) Load(flags *pflag.FlagSet, configPath string) error {
	return m.LoadFrom(DefaultSources(configPath, flags)...)
}

// LoadFrom applies sources in priority order and unmarshals the result.
func (m *Manager) LoadFrom(sources ...Source) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ordered := append([]Source(nil), sources...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority() < ordered[j].Priority()
	})

	k := koanf.New(".")
	for _, src := range ordered {
		if err := src.Load(k); err != nil {
			return fmt.Errorf("config source %s: %w", src.Name(), err)
		}
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return fmt.Errorf("error unmarshaling final config: %w", err)
	}
	m.k = k
	m.current = cfg
	return nil
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Source reports the raw value loaded for key, for diagnostics.
func (m *Manager) Source(key string) (interface{}, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.k.Exists(key) {
		return nil, false
	}
	return m.k.Get(key), true
}
