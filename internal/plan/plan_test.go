package plan

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCostsKnownTiers(t *testing.T) {
	schedule := DefaultSchedule()

	tests := []struct {
		name  string
		fixed string
	}{
		{"emprendedor", "5.00"},
		{"empresario", "6.00"},
		{"empresario_plus", "8.00"},
	}

	for _, tt := range tests {
		costs, err := schedule.Costs(tt.name)
		assert.NoError(t, err, tt.name)
		assert.True(t, costs.FixedCost.Equal(decimal.RequireFromString(tt.fixed)), tt.name)
	}
}

func TestCostsCaseInsensitive(t *testing.T) {
	schedule := DefaultSchedule()

	lower, err := schedule.Costs("emprendedor")
	assert.NoError(t, err)
	upper, err := schedule.Costs("EMPRENDEDOR")
	assert.NoError(t, err)

	assert.True(t, lower.WebIncidentCost.Equal(upper.WebIncidentCost))
}

func TestCostsUnknownPlan(t *testing.T) {
	schedule := DefaultSchedule()

	_, err := schedule.Costs("gold")
	assert.ErrorIs(t, err, ErrUnknownPlan)
}

func TestTiersClosedSet(t *testing.T) {
	assert.Len(t, Tiers(), 3)
	assert.Len(t, DefaultSchedule(), 3)
}
