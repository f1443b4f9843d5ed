package domain

import "context"

type Repository interface {
	// Get returns the client with the given id, or nil when the upstream
	// reports it unknown.
	Get(ctx context.Context, clientID string) (*Client, error)
}
