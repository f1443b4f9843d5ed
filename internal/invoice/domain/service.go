package domain

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/smallbiznis/incidentbilling/internal/identity"
	"github.com/smallbiznis/incidentbilling/internal/period"
)

// ChannelCounts mirrors the per-channel incident totals on a statement.
type ChannelCounts struct {
	Web    int `json:"web"`
	Mobile int `json:"mobile"`
	Email  int `json:"email"`
}

// ChannelAmounts carries one monetary amount per channel.
type ChannelAmounts struct {
	Web    decimal.Decimal `json:"web"`
	Mobile decimal.Decimal `json:"mobile"`
	Email  decimal.Decimal `json:"email"`
}

// Statement is the rendered billing summary returned to the caller.
type Statement struct {
	BillingMonth         period.Month    `json:"billing_month"`
	BillingYear          int             `json:"billing_year"`
	ClientID             string          `json:"client_id"`
	ClientName           string          `json:"client_name"`
	ClientPlan           string          `json:"client_plan"`
	DueDate              string          `json:"due_date"`
	TotalCost            decimal.Decimal `json:"total_cost"`
	FixedCost            decimal.Decimal `json:"fixed_cost"`
	TotalIncidents       ChannelCounts   `json:"total_incidents"`
	UnitCostPerIncident  ChannelAmounts  `json:"unit_cost_per_incident"`
	TotalCostPerIncident ChannelAmounts  `json:"total_cost_per_incident"`
}

type Service interface {
	// MonthlyStatement resolves (creating when absent) the rate and the
	// invoice for the identity's client and the previous calendar month,
	// and renders the billing statement. Requires the admin role.
	MonthlyStatement(ctx context.Context, id identity.Identity) (Statement, error)

	// ResetInvoices deletes every stored invoice. Administrative bulk
	// reset only.
	ResetInvoices(ctx context.Context) error
}

var (
	// ErrRateUndetermined is the terminal fallback when no rate could be
	// found or created for the invoice being billed.
	ErrRateUndetermined = errors.New("rate_undetermined")
)
