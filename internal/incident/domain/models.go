// Package domain describes incidents as served by the incident query
// service. Incidents are read-only to this service; only the channel and
// the first history entry's date matter for billing.
package domain

import (
	"errors"
	"time"
)

// Channel is the medium an incident was reported through.
type Channel string

const (
	ChannelWeb    Channel = "web"
	ChannelMobile Channel = "mobile"
	ChannelEmail  Channel = "email"
)

// Action is a lifecycle event type on an incident's history.
type Action string

const (
	ActionCreated   Action = "created"
	ActionEscalated Action = "escalated"
	ActionClosed    Action = "closed"
)

// HistoryEntry is one lifecycle record. The entry with seq 0 is the
// incident's creation record.
type HistoryEntry struct {
	Seq         int       `json:"seq"`
	Date        time.Time `json:"date"`
	Action      Action    `json:"action"`
	Description string    `json:"description"`
}

type Incident struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Channel    Channel        `json:"channel"`
	ReportedBy string         `json:"reported_by"`
	CreatedBy  string         `json:"created_by"`
	AssignedTo string         `json:"assigned_to"`
	History    []HistoryEntry `json:"history"`
}

// CreatedAt returns the date of the first history entry. Every incident
// is expected to carry at least one entry; an empty history is an
// upstream contract violation and reported as ErrMissingHistory rather
// than skipped.
func (i Incident) CreatedAt() (time.Time, error) {
	if len(i.History) == 0 {
		return time.Time{}, ErrMissingHistory
	}
	return i.History[0].Date, nil
}

var (
	// ErrSourceUnavailable marks transport or server failures of the
	// incident query service. Not retried here.
	ErrSourceUnavailable = errors.New("incident_source_unavailable")

	// ErrMissingHistory marks an incident served without any history
	// entries.
	ErrMissingHistory = errors.New("incident_history_missing")
)
