package types

import "github.com/spf13/cast"

// Well-known short keys of a SignalPayload. The schema behind each key is
// owned by the backend.
const (
	KeyFingerprint      = "f"
	KeyAttributes       = "a"
	KeyCapabilities     = "c"
	KeyTimezone         = "ze"
	KeyVersion          = "v"
	KeyPlatform         = "p"
	KeyAdditionalParams = "additionalParams"
)

// SignalPayload is an opaque, backend-defined mapping produced by a SignalSource.
type SignalPayload map[string]any

// Fingerprint returns the "f" entry coerced to a string, or "" if absent.
func (p SignalPayload) Fingerprint() string {
	return cast.ToString(p[KeyFingerprint])
}

// AdditionalParams returns the "additionalParams" entry as a map. A missing or
// differently shaped entry yields an empty map.
func (p SignalPayload) AdditionalParams() map[string]any {
	m, err := cast.ToStringMapE(p[KeyAdditionalParams])
	if err != nil || m == nil {
		return map[string]any{}
	}
	return m
}
