package domain

import (
	"context"

	"github.com/smallbiznis/incidentbilling/internal/period"
)

// ChannelCounts aggregates incidents per reporting channel. Channels
// outside the billable set are ignored, not counted.
type ChannelCounts struct {
	Web    int
	Mobile int
	Email  int
}

// Aggregator filters and counts a client's incidents for one billing
// period.
type Aggregator interface {
	ListForPeriod(ctx context.Context, clientID string, p period.Period) ([]Incident, error)
	CountForPeriod(ctx context.Context, clientID string, p period.Period) (ChannelCounts, error)
}
