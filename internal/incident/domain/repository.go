package domain

import "context"

type Repository interface {
	// ListByClient returns every incident recorded for the client. The
	// upstream cannot filter by date, so period filtering happens on the
	// caller's side. An unknown client yields an empty slice, not an
	// error.
	ListByClient(ctx context.Context, clientID string) ([]Incident, error)
}
