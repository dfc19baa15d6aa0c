package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cast"

	"insightagent/internal/crypto"
	"insightagent/internal/domain"
	"insightagent/internal/insights"
)

// maxBody caps the accepted request body.
const maxBody = 1 << 20

// Server is the development intelligence service.
type Server struct {
	log zerolog.Logger
	now func() time.Time

	// credentials maps apiKey to apiSecret; empty accepts any pair.
	credentials map[string]string

	mu        sync.Mutex
	firstSeen map[string]time.Time
}

// Option customises a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(l zerolog.Logger) Option { return func(s *Server) { s.log = l } }

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option { return func(s *Server) { s.now = now } }

// WithCredentials restricts accepted apiKey/apiSecret pairs.
func WithCredentials(creds map[string]string) Option {
	return func(s *Server) {
		s.credentials = make(map[string]string, len(creds))
		for k, v := range creds {
			s.credentials[k] = v
		}
	}
}

// New returns an empty Server.
func New(opts ...Option) *Server {
	s := &Server{
		log:       zerolog.Nop(),
		now:       time.Now,
		firstSeen: make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the HTTP routes of the service.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(insights.Path, s.handleInsights)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return s.accessLog(mux)
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("body exceeds %d bytes", tooLarge.Limit))
			return
		}
		writeError(w, http.StatusBadRequest, "read body: "+err.Error())
		return
	}

	in, err := insights.ValidateRequest(r, body)
	if err != nil {
		status := http.StatusBadRequest
		var ce *insights.ContractError
		if errors.As(err, &ce) && ce.Field == "method" {
			status = http.StatusMethodNotAllowed
		}
		writeError(w, status, err.Error())
		return
	}
	if !s.authorised(in.APIKey, in.APISecret) {
		writeError(w, http.StatusUnauthorized, "unknown credentials")
		return
	}

	key := crypto.DeriveKey(in.APIKey, in.APISecret)
	defer crypto.WipeKey(&key)
	plaintext, err := crypto.Decrypt(key, in.Envelope)
	if err != nil {
		writeError(w, http.StatusBadRequest, "envelope does not decrypt: "+err.Error())
		return
	}
	defer crypto.Wipe(plaintext)

	var payload domain.SignalPayload
	if err := json.Unmarshal(plaintext, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "payload is not a JSON object")
		return
	}

	res, err := s.assess(payload, in)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.log.Info().
		Str("tenant", in.Envelope.IV).
		Str("fingerprint", res.Fingerprint).
		Str("risk", res.RiskScore.String()).
		Bool("newDevice", res.NewDevice).
		Msg("insights served")

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(res)
}

func (s *Server) authorised(key, secret string) bool {
	if len(s.credentials) == 0 {
		return true
	}
	want, ok := s.credentials[key]
	return ok && want == secret
}

// errNoFingerprint is returned for payloads lacking the "f" entry.
var errNoFingerprint = errors.New("payload has no fingerprint")

func (s *Server) assess(payload domain.SignalPayload, in insights.Inbound) (domain.Insights, error) {
	fp := payload.Fingerprint()
	if fp == "" {
		return domain.Insights{}, errNoFingerprint
	}

	now := s.now()
	s.mu.Lock()
	first, seen := s.firstSeen[fp]
	if !seen {
		first = now
		s.firstSeen[fp] = now
	}
	s.mu.Unlock()

	params := payload.AdditionalParams()
	attrs, _ := cast.ToStringMapE(payload[domain.KeyAttributes])
	detections := domain.BrowserDetections{
		IsIncognito:        cast.ToBool(params["incognito"]),
		IsPrivacyFocused:   cast.ToBool(params["privacyFocused"]),
		IsBotDetected:      cast.ToBool(params["automation"]) || cast.ToBool(attrs["webdriver"]),
		IsAdBlockerEnabled: cast.ToBool(params["adBlocker"]),
		IsUserAgentSpoofed: cast.ToString(params["expectedUserAgent"]) != "" &&
			cast.ToString(params["expectedUserAgent"]) != cast.ToString(attrs["userAgent"]),
	}

	risk := domain.RiskLow
	switch {
	case detections.IsBotDetected || detections.IsUserAgentSpoofed:
		risk = domain.RiskHigh
	case !seen || detections.IsIncognito:
		risk = domain.RiskMedium
	}

	res := domain.Insights{
		RequestID:         uuid.NewString(),
		NewDevice:         !seen,
		Fingerprint:       fp,
		SessionID:         cast.ToString(params["sessionId"]),
		CreatedAt:         now.Unix(),
		RiskScore:         risk,
		FirstSeenDays:     int(now.Sub(first) / (24 * time.Hour)),
		BrowserDetections: detections,
	}
	if in.ClientIP != "" {
		res.IPIntelligence = &domain.IPIntelligence{IP: in.ClientIP}
	}
	return res, nil
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
