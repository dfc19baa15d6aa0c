package session

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"insightagent/internal/async"
	"insightagent/internal/domain"
)

// State is the lifecycle position of an Agent.
type State int32

const (
	StateUninitialized State = iota
	StateInitializing
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrNoSignalSource is returned when an Agent was built without a source.
var ErrNoSignalSource = errors.New("no signal source configured")

// Option customises an Agent.
type Option func(*Agent)

// WithLogger sets the logger used by the Agent and its Client.
func WithLogger(l zerolog.Logger) Option {
	return func(a *Agent) { a.log = l }
}

// Agent owns one initialisation attempt. Build one per configuration.
type Agent struct {
	source domain.SignalSource
	log    zerolog.Logger

	state     atomic.Int32
	once      sync.Once
	requested domain.Configuration
	result    *async.Result[*Client]
}

// New returns an uninitialised Agent collecting from source.
func New(source domain.SignalSource, opts ...Option) *Agent {
	a := &Agent{
		source: source,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// State reports the current lifecycle state.
func (a *Agent) State() State { return State(a.state.Load()) }

// Init validates cfg and resolves to a ready *Client or to the validation
// error. It runs at most once: later calls return the first Result
// unchanged, whatever configuration they pass.
func (a *Agent) Init(cfg domain.Configuration) *async.Result[*Client] {
	first := false
	a.once.Do(func() {
		first = true
		a.requested = cfg
		a.state.Store(int32(StateInitializing))
		a.result = async.Go(func() (*Client, error) { return a.initialize(cfg) })
	})
	if !first && a.requested != cfg {
		a.log.Warn().
			Str("state", a.State().String()).
			Interface("ignored", cfg.Redacted()).
			Msg("agent already initialised; ignoring new configuration")
	}
	return a.result
}

func (a *Agent) initialize(cfg domain.Configuration) (client *Client, err error) {
	defer func() {
		if client == nil {
			a.state.Store(int32(StateFailed))
		}
	}()

	valid, err := ValidateConfiguration(cfg)
	if err != nil {
		a.log.Error().Err(err).Msg("initialisation failed")
		return nil, err
	}
	if a.source == nil {
		a.log.Error().Err(ErrNoSignalSource).Msg("initialisation failed")
		return nil, ErrNoSignalSource
	}

	client = &Client{
		cfg:    valid,
		source: a.source,
		log: a.log.With().
			Str("session", valid.SessionIdentifier.String()).
			Str("environment", valid.Environment.String()).
			Logger(),
	}
	a.state.Store(int32(StateReady))
	client.log.Info().Str("source", a.source.Name()).Msg("agent ready")
	return client, nil
}
