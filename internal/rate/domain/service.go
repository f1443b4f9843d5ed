package domain

import (
	"context"

	clientdomain "github.com/smallbiznis/incidentbilling/internal/client/domain"
)

type Service interface {
	// Resolve returns the client's rate for its current plan, creating
	// and persisting one from the plan schedule when none exists yet.
	// An existing rate is returned as-is even if the schedule has since
	// changed.
	Resolve(ctx context.Context, client clientdomain.Client) (Rate, error)

	// GetByID fetches a rate by identifier, or nil when absent.
	GetByID(ctx context.Context, id string) (*Rate, error)
}
