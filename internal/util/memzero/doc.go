// Package memzero clears sensitive byte slices (derived keys, serialised
// payloads) once they are no longer needed.
package memzero
