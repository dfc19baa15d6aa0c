package interfaces

import (
	"context"

	domaintypes "insightagent/internal/domain/types"
)

// InsightsForwarder is how the integrating application ships a
// RequestDescriptor to the intelligence service. One attempt per call.
type InsightsForwarder interface {
	Forward(
		ctx context.Context,
		request domaintypes.RequestDescriptor,
	) (domaintypes.Insights, error)
}
