package types

// RiskScore is the backend's categorical assessment.
type RiskScore string

const (
	RiskLow    RiskScore = "Low"
	RiskMedium RiskScore = "Medium"
	RiskHigh   RiskScore = "High"
)

// String returns the string form of the risk score.
func (r RiskScore) String() string { return string(r) }

// Insights is the response document returned by the intelligence service.
type Insights struct {
	RequestID         string            `json:"requestId" yaml:"requestId"`
	NewDevice         bool              `json:"newDevice" yaml:"newDevice"`
	Fingerprint       string            `json:"fingerprint" yaml:"fingerprint"`
	SessionID         string            `json:"sessionId" yaml:"sessionId"`
	CreatedAt         int64             `json:"createdAt" yaml:"createdAt"` // epoch seconds
	RiskScore         RiskScore         `json:"riskScore" yaml:"riskScore"`
	FirstSeenDays     int               `json:"firstSeenDays" yaml:"firstSeenDays"`
	IPIntelligence    *IPIntelligence   `json:"ipIntelligence,omitempty" yaml:"ipIntelligence,omitempty"`
	BrowserDetections BrowserDetections `json:"browserDetections" yaml:"browserDetections"`
}

// IPIntelligence is absent when no client-ip-forwarded header was sent.
type IPIntelligence struct {
	City      string  `json:"city" yaml:"city"`
	Region    string  `json:"region" yaml:"region"`
	Country   string  `json:"country" yaml:"country"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
	IsVPN     bool    `json:"isVPN" yaml:"isVPN"`
	IsTor     bool    `json:"isTor" yaml:"isTor"`
	IsProxy   bool    `json:"isProxy" yaml:"isProxy"`
	IP        string  `json:"ip" yaml:"ip"`
}

// BrowserDetections carries the backend's browser-level verdicts.
type BrowserDetections struct {
	IsIncognito        bool `json:"isIncognito" yaml:"isIncognito"`
	IsPrivacyFocused   bool `json:"isPrivacyFocused" yaml:"isPrivacyFocused"`
	IsBotDetected      bool `json:"isBotDetected" yaml:"isBotDetected"`
	IsAdBlockerEnabled bool `json:"isAdBlockerEnabled" yaml:"isAdBlockerEnabled"`
	IsUserAgentSpoofed bool `json:"isUserAgentSpoofed" yaml:"isUserAgentSpoofed"`
}
