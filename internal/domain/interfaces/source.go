package interfaces

import (
	"context"

	domaintypes "insightagent/internal/domain/types"
)

// SignalSource produces one raw signal payload per call. Implementations must
// be safe for concurrent use and free of side effects visible to the agent.
type SignalSource interface {
	// Name identifies the source in logs and CollectionError values.
	Name() string

	// Collect runs one collection cycle for the given session.
	Collect(
		ctx context.Context,
		session domaintypes.SessionIdentifier,
	) (domaintypes.SignalPayload, error)
}
