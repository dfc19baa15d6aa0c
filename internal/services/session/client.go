package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"insightagent/internal/async"
	"insightagent/internal/domain"
)

// ErrEmptyPayload is wrapped in a CollectionError when a source returns
// neither a payload nor an error.
var ErrEmptyPayload = errors.New("signal source returned no payload")

// Client is a ready session. It is safe for concurrent use.
type Client struct {
	cfg    domain.Configuration
	source domain.SignalSource
	log    zerolog.Logger
}

// Configuration returns a copy of the validated configuration.
func (c *Client) Configuration() domain.Configuration { return c.cfg }

// Get starts one collection cycle and returns its pending outcome.
// It never blocks the caller.
func (c *Client) Get(ctx context.Context) *async.Result[domain.SignalPayload] {
	return async.Go(func() (domain.SignalPayload, error) {
		return c.collect(ctx)
	})
}

func (c *Client) collect(ctx context.Context) (payload domain.SignalPayload, err error) {
	name := c.source.Name()
	start := time.Now()

	defer func() {
		if p := recover(); p != nil {
			payload, err = nil, &domain.CollectionError{Source: name, Err: &async.PanicError{Value: p}}
		}
		ev := c.log.Debug()
		if err != nil {
			ev = c.log.Warn().Err(err)
		}
		ev.Str("source", name).Dur("took", time.Since(start)).Msg("collection finished")
	}()

	payload, err = c.source.Collect(ctx, c.cfg.SessionIdentifier)
	if err != nil {
		return nil, &domain.CollectionError{Source: name, Err: err}
	}
	if payload == nil {
		return nil, &domain.CollectionError{Source: name, Err: ErrEmptyPayload}
	}
	return payload, nil
}

// String identifies the client in logs without exposing credentials.
func (c *Client) String() string {
	return fmt.Sprintf("session.Client{%s/%s}", c.cfg.Environment, c.cfg.SessionIdentifier)
}
