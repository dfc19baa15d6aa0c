package signals

import (
	"context"
	"fmt"
	"net"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/google/uuid"

	"insightagent/internal/crypto"
	"insightagent/internal/domain"
)

// HostProbe is a SignalSource backed by the local runtime environment.
// It holds no mutable state and is safe for concurrent use.
type HostProbe struct {
	version string
	params  map[string]any

	now        func() time.Time
	hostname   func() (string, error)
	interfaces func() ([]net.Interface, error)
	requestID  func() string
}

// NewHostProbe returns a probe reporting version under "v" and merging params
// into "additionalParams" on every payload. params is copied. The sessionId,
// requestId and ts entries are always set by the probe.
func NewHostProbe(version string, params map[string]any) *HostProbe {
	cp := make(map[string]any, len(params))
	for k, v := range params {
		cp[k] = v
	}
	return &HostProbe{
		version:    version,
		params:     cp,
		now:        time.Now,
		hostname:   os.Hostname,
		interfaces: net.Interfaces,
		requestID:  func() string { return uuid.NewString() },
	}
}

// Name implements domain.SignalSource.
func (p *HostProbe) Name() string { return "host" }

// Collect implements domain.SignalSource.
func (p *HostProbe) Collect(ctx context.Context, session domain.SessionIdentifier) (domain.SignalPayload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	host, err := p.hostname()
	if err != nil {
		return nil, fmt.Errorf("hostname: %w", err)
	}
	ifaces, err := p.interfaces()
	if err != nil {
		return nil, fmt.Errorf("network interfaces: %w", err)
	}

	now := p.now()
	_, offset := now.Zone()

	attrs := map[string]any{
		"os":        runtime.GOOS,
		"arch":      runtime.GOARCH,
		"cpus":      runtime.NumCPU(),
		"hostname":  host,
		"runtime":   runtime.Version(),
		"lang":      firstEnv("LC_ALL", "LC_MESSAGES", "LANG"),
		"zoneName":  now.Location().String(),
		"userAgent": "insightagent/" + p.version,
	}

	params := make(map[string]any, len(p.params)+3)
	for k, v := range p.params {
		params[k] = v
	}
	params["sessionId"] = session.String()
	params["requestId"] = p.requestID()
	params["ts"] = now.UnixMilli()

	return domain.SignalPayload{
		domain.KeyFingerprint: crypto.Fingerprint(
			session.String(),
			runtime.GOOS,
			runtime.GOARCH,
			host,
			strconv.Itoa(runtime.NumCPU()),
		),
		domain.KeyAttributes:   attrs,
		domain.KeyCapabilities: capabilities(ifaces),
		// Same sign convention as a browser's getTimezoneOffset: minutes
		// behind UTC.
		domain.KeyTimezone:         -offset / 60,
		domain.KeyVersion:          p.version,
		domain.KeyPlatform:         runtime.GOOS + "/" + runtime.GOARCH,
		domain.KeyAdditionalParams: params,
	}, nil
}

func capabilities(ifaces []net.Interface) map[string]any {
	var up, loopback int
	for _, ifc := range ifaces {
		if ifc.Flags&net.FlagUp == 0 {
			continue
		}
		up++
		if ifc.Flags&net.FlagLoopback != 0 {
			loopback++
		}
	}
	return map[string]any{
		"interfaces":   up,
		"loopbackOnly": up > 0 && up == loopback,
		"cookies":      false,
		"storage":      false,
	}
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

var _ domain.SignalSource = (*HostProbe)(nil)
