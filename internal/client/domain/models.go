// Package domain describes the client entity owned by the client
// directory service. Clients are read-only to this service.
package domain

import "errors"

type Client struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Plan string `json:"plan"`
}

var ErrNotFound = errors.New("client_not_found")
