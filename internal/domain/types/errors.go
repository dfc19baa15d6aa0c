package types

import "fmt"

// ConfigurationError reports the first missing or invalid configuration field.
// It is not retryable until the caller fixes the input.
type ConfigurationError struct {
	Field  string // environment, sessionIdentifier, apiKey or apiSecret
	Reason string // empty when the field is missing
}

func (e *ConfigurationError) Error() string {
	if e.Reason == "" {
		return "Something missing from required fields: " + e.Field
	}
	return fmt.Sprintf("invalid value for field %s: %s", e.Field, e.Reason)
}

// CollectionError reports a failed signal collection cycle. The caller may
// retry Get since a failed cycle has nothing to undo.
type CollectionError struct {
	Source string
	Err    error
}

func (e *CollectionError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("signal collection failed: %v", e.Err)
	}
	return fmt.Sprintf("signal collection failed (%s): %v", e.Source, e.Err)
}

func (e *CollectionError) Unwrap() error { return e.Err }

// CryptoUnavailableError reports that a cryptographic primitive could not be
// used (no secure randomness, cipher construction failed). Fatal for the call.
type CryptoUnavailableError struct {
	Op  string
	Err error
}

func (e *CryptoUnavailableError) Error() string {
	return fmt.Sprintf("crypto unavailable: %s: %v", e.Op, e.Err)
}

func (e *CryptoUnavailableError) Unwrap() error { return e.Err }

// EncodingError reports a payload that could not be serialised to bytes.
// It indicates a SignalSource contract violation and is never retried.
type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("payload encoding failed: %v", e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }
