// Package plan defines the closed set of subscription tiers and the unit
// costs charged for each of them.
package plan

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Tier identifies a client's subscribed service tier.
type Tier string

const (
	TierEmprendedor    Tier = "emprendedor"
	TierEmpresario     Tier = "empresario"
	TierEmpresarioPlus Tier = "empresario_plus"
)

// Tiers lists every supported tier.
func Tiers() []Tier {
	return []Tier{TierEmprendedor, TierEmpresario, TierEmpresarioPlus}
}

var ErrUnknownPlan = errors.New("unknown_plan")

// Costs is the unit-cost table for a single tier.
type Costs struct {
	FixedCost          decimal.Decimal
	WebIncidentCost    decimal.Decimal
	MobileIncidentCost decimal.Decimal
	EmailIncidentCost  decimal.Decimal
}

// Schedule maps each tier to its unit costs. It is built once at boot and
// never mutated afterwards.
type Schedule map[Tier]Costs

// DefaultSchedule returns the compiled-in rate table.
func DefaultSchedule() Schedule {
	return Schedule{
		TierEmprendedor: {
			FixedCost:          decimal.RequireFromString("5.00"),
			WebIncidentCost:    decimal.RequireFromString("0.15"),
			MobileIncidentCost: decimal.RequireFromString("0.10"),
			EmailIncidentCost:  decimal.RequireFromString("0.08"),
		},
		TierEmpresario: {
			FixedCost:          decimal.RequireFromString("6.00"),
			WebIncidentCost:    decimal.RequireFromString("0.13"),
			MobileIncidentCost: decimal.RequireFromString("0.08"),
			EmailIncidentCost:  decimal.RequireFromString("0.06"),
		},
		TierEmpresarioPlus: {
			FixedCost:          decimal.RequireFromString("8.00"),
			WebIncidentCost:    decimal.RequireFromString("0.10"),
			MobileIncidentCost: decimal.RequireFromString("0.06"),
			EmailIncidentCost:  decimal.RequireFromString("0.04"),
		},
	}
}

// Costs looks up the unit costs for a plan identifier. Matching is
// case-insensitive; identifiers outside the closed tier set fail with
// ErrUnknownPlan.
func (s Schedule) Costs(name string) (Costs, error) {
	tier := Tier(strings.ToLower(strings.TrimSpace(name)))
	costs, ok := s[tier]
	if !ok {
		return Costs{}, fmt.Errorf("%w: %q", ErrUnknownPlan, name)
	}
	return costs, nil
}
