package signals

import (
	"context"

	"insightagent/internal/domain"
)

// SourceFunc adapts a function into a domain.SignalSource named "func".
type SourceFunc func(ctx context.Context, session domain.SessionIdentifier) (domain.SignalPayload, error)

// Name implements domain.SignalSource.
func (f SourceFunc) Name() string { return "func" }

// Collect implements domain.SignalSource.
func (f SourceFunc) Collect(ctx context.Context, session domain.SessionIdentifier) (domain.SignalPayload, error) {
	return f(ctx, session)
}

var _ domain.SignalSource = SourceFunc(nil)
