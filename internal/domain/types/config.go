package types

// Configuration is the caller-supplied session configuration.
//
// APIKey doubles as the key-derivation salt and APISecret as the passphrase;
// the backend derives the same key from the same pair, so the roles must never
// be swapped.
type Configuration struct {
	Environment       Environment       `json:"environment"`
	SessionIdentifier SessionIdentifier `json:"sessionIdentifier"`
	APIKey            string            `json:"apiKey"`
	APISecret         string            `json:"apiSecret"`
}

// Redacted returns a copy safe to log or print.
func (c Configuration) Redacted() Configuration {
	out := c
	if out.APIKey != "" {
		out.APIKey = redact(out.APIKey)
	}
	if out.APISecret != "" {
		out.APISecret = "****"
	}
	return out
}

func redact(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + "****"
}
