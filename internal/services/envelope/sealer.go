package envelope

import (
	"crypto/rand"
	"encoding/json"
	"io"

	"github.com/rs/zerolog"

	"insightagent/internal/crypto"
	"insightagent/internal/domain"
)

// Sealer encrypts payloads under one derived key. It is safe for concurrent
// use; every Seal draws its own IV.
type Sealer struct {
	key  domain.SymmetricKey
	rand io.Reader
	log  zerolog.Logger
}

// Option customises a Sealer.
type Option func(*Sealer)

// WithRand replaces crypto/rand as the IV source.
func WithRand(r io.Reader) Option {
	return func(s *Sealer) { s.rand = r }
}

// WithLogger sets the Sealer's logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Sealer) { s.log = l }
}

// New derives the key for cfg and returns a Sealer using it.
func New(cfg domain.Configuration, opts ...Option) *Sealer {
	s := &Sealer{
		key:  crypto.DeriveKey(cfg.APIKey, cfg.APISecret),
		rand: rand.Reader,
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seal serialises payload as JSON and encrypts it.
func (s *Sealer) Seal(payload domain.SignalPayload) (domain.Envelope, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return domain.Envelope{}, &domain.EncodingError{Err: err}
	}
	return s.seal(raw)
}

// SealBytes encrypts an already serialised payload. raw is left untouched;
// the working copy is wiped afterwards.
func (s *Sealer) SealBytes(raw []byte) (domain.Envelope, error) {
	return s.seal(append([]byte(nil), raw...))
}

// seal encrypts raw and wipes it.
func (s *Sealer) seal(raw []byte) (domain.Envelope, error) {
	defer crypto.Wipe(raw)

	env, err := crypto.EncryptWithRand(s.rand, s.key, raw)
	if err != nil {
		s.log.Error().Err(err).Msg("envelope encryption failed")
		return domain.Envelope{}, err
	}
	s.log.Debug().
		Str("iv", env.IV).
		Int("bytes", len(raw)).
		Msg("payload sealed")
	return env, nil
}

// Close wipes the derived key. The Sealer must not be used afterwards.
func (s *Sealer) Close() {
	crypto.WipeKey(&s.key)
}
