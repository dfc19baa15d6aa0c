package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"insightagent/internal/domain"
	"insightagent/internal/insights"
	"insightagent/internal/logging"
	"insightagent/internal/services/envelope"
	"insightagent/internal/services/session"
	"insightagent/internal/signals"
)

// ErrNoIntelligenceURL is returned by Send when insights.url is unset.
var ErrNoIntelligenceURL = errors.New("intelligence service URL not configured")

// Wire bundles the services and clients used by the CLI.
type Wire struct {
	Config   Config
	Log      zerolog.Logger
	Source   domain.SignalSource
	Agent    *session.Agent
	Insights *insights.Client
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	level := logging.ParseLevel(cfg.Settings.Log.Level)
	var log zerolog.Logger
	if cfg.LogOut != nil {
		log = logging.NewLoggerWithWriter("insightagent", level, cfg.LogOut)
	} else {
		log = logging.NewLogger("insightagent", level)
	}

	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Settings.Insights.Timeout}
	}

	src := signals.NewHostProbe(insights.SDKVersionName, cfg.Params)

	return &Wire{
		Config:   cfg,
		Log:      log,
		Source:   src,
		Agent:    session.New(src, session.WithLogger(log)),
		Insights: insights.NewClient(httpClient, log.With().Str("component", "insights").Logger()),
	}, nil
}

// Session initialises the agent with the configured settings and waits
// for it to become ready.
func (w *Wire) Session(ctx context.Context) (*session.Client, error) {
	return w.Agent.Init(w.Config.Settings.Configuration()).Await(ctx)
}

// Collect runs one collection on a ready session.
func (w *Wire) Collect(ctx context.Context) (*session.Client, domain.SignalPayload, error) {
	client, err := w.Session(ctx)
	if err != nil {
		return nil, nil, err
	}
	payload, err := client.Get(ctx).Await(ctx)
	if err != nil {
		return client, nil, err
	}
	return client, payload, nil
}

// Seal encrypts payload under the key of the session's configuration.
func (w *Wire) Seal(client *session.Client, payload domain.SignalPayload) (domain.Envelope, error) {
	s := envelope.New(client.Configuration(), envelope.WithLogger(w.Log))
	defer s.Close()
	return s.Seal(payload)
}

// Describe builds the request descriptor for env.
func (w *Wire) Describe(client *session.Client, env domain.Envelope) (domain.RequestDescriptor, error) {
	base := w.Config.Settings.Insights.URL
	if base == "" {
		return domain.RequestDescriptor{}, ErrNoIntelligenceURL
	}
	return insights.BuildRequest(base, client.Configuration(), env, insights.RequestOptions{
		ClientIP: w.Config.Settings.Insights.ClientIP,
	})
}

// Send collects, seals, describes and forwards one payload.
func (w *Wire) Send(ctx context.Context) (domain.Insights, error) {
	client, payload, err := w.Collect(ctx)
	if err != nil {
		return domain.Insights{}, err
	}
	env, err := w.Seal(client, payload)
	if err != nil {
		return domain.Insights{}, err
	}
	rd, err := w.Describe(client, env)
	if err != nil {
		return domain.Insights{}, err
	}
	return w.Insights.Forward(ctx, rd)
}
