package types

import "strings"

// Environment selects the backend deployment a session reports to.
type Environment string

const (
	EnvironmentProd  Environment = "PROD"
	EnvironmentStage Environment = "STAGE"
)

// String returns the string form of the environment.
func (e Environment) String() string { return string(e) }

// Valid reports whether e is one of the enumerated environments.
func (e Environment) Valid() bool {
	return e == EnvironmentProd || e == EnvironmentStage
}

// ParseEnvironment upper-cases and trims s. The result may still be invalid.
func ParseEnvironment(s string) Environment {
	return Environment(strings.ToUpper(strings.TrimSpace(s)))
}

// SessionIdentifier is the caller-assigned, per-user-session identifier.
type SessionIdentifier string

// String returns the string form of the session identifier.
func (id SessionIdentifier) String() string { return string(id) }
