package domain

import (
	interfaces "insightagent/internal/domain/interfaces"
	types "insightagent/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Environment            = types.Environment
	SessionIdentifier      = types.SessionIdentifier
	Configuration          = types.Configuration
	SignalPayload          = types.SignalPayload
	SymmetricKey           = types.SymmetricKey
	Envelope               = types.Envelope
	RequestDescriptor      = types.RequestDescriptor
	Insights               = types.Insights
	RiskScore              = types.RiskScore
	IPIntelligence         = types.IPIntelligence
	BrowserDetections      = types.BrowserDetections
	ConfigurationError     = types.ConfigurationError
	CollectionError        = types.CollectionError
	CryptoUnavailableError = types.CryptoUnavailableError
	EncodingError          = types.EncodingError
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	SignalSource      = interfaces.SignalSource
	InsightsForwarder = interfaces.InsightsForwarder
)

// Re-exported constants so callers need only import domain.
const (
	EnvironmentProd  = types.EnvironmentProd
	EnvironmentStage = types.EnvironmentStage

	RiskLow    = types.RiskLow
	RiskMedium = types.RiskMedium
	RiskHigh   = types.RiskHigh

	KeyFingerprint      = types.KeyFingerprint
	KeyAttributes       = types.KeyAttributes
	KeyCapabilities     = types.KeyCapabilities
	KeyTimezone         = types.KeyTimezone
	KeyVersion          = types.KeyVersion
	KeyPlatform         = types.KeyPlatform
	KeyAdditionalParams = types.KeyAdditionalParams
)

// ParseEnvironment trims and upper-cases s; see types.ParseEnvironment.
func ParseEnvironment(s string) Environment { return types.ParseEnvironment(s) }
