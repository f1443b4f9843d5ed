package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/smallbiznis/incidentbilling/internal/plan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRatesFile(t *testing.T, contents string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rates.yml"), []byte(contents), 0o644))
	t.Chdir(dir)
}

func TestLoadPlanScheduleDefaultsWhenNoFile(t *testing.T) {
	t.Chdir(t.TempDir())

	schedule, err := LoadPlanSchedule()
	require.NoError(t, err)
	assert.Equal(t, plan.DefaultSchedule(), schedule)
}

func TestLoadPlanScheduleOverridesTier(t *testing.T) {
	writeRatesFile(t, `
plans:
  emprendedor:
    fixedCost: 7.50
    webIncidentCost: 0.20
    mobileIncidentCost: 0.11
    emailIncidentCost: 0.09
`)

	schedule, err := LoadPlanSchedule()
	require.NoError(t, err)

	overridden, err := schedule.Costs("emprendedor")
	require.NoError(t, err)
	assert.True(t, overridden.FixedCost.Equal(decimal.RequireFromString("7.5")))
	assert.True(t, overridden.WebIncidentCost.Equal(decimal.RequireFromString("0.2")))

	// Tiers absent from the file keep their compiled-in costs.
	untouched, err := schedule.Costs("empresario")
	require.NoError(t, err)
	assert.True(t, untouched.FixedCost.Equal(decimal.RequireFromString("6.00")))
}

func TestLoadPlanScheduleRejectsUnknownTier(t *testing.T) {
	writeRatesFile(t, `
plans:
  platinum:
    fixedCost: 1.00
`)

	_, err := LoadPlanSchedule()
	assert.ErrorIs(t, err, plan.ErrUnknownPlan)
}

func TestLoadPlanScheduleRejectsNegativeCost(t *testing.T) {
	writeRatesFile(t, `
plans:
  emprendedor:
    fixedCost: -1.00
`)

	_, err := LoadPlanSchedule()
	assert.Error(t, err)
}
