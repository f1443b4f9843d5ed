package config

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/smallbiznis/incidentbilling/internal/plan"
	"github.com/spf13/viper"
)

type scheduleEntry struct {
	FixedCost          float64 `mapstructure:"fixedCost"`
	WebIncidentCost    float64 `mapstructure:"webIncidentCost"`
	MobileIncidentCost float64 `mapstructure:"mobileIncidentCost"`
	EmailIncidentCost  float64 `mapstructure:"emailIncidentCost"`
}

// LoadPlanSchedule builds the plan rate table. The compiled-in schedule is
// the source of truth; a `rates.yml` config file may override individual
// tiers. The file is read once at boot; the schedule is immutable at
// runtime, so there is no watch/reload.
func LoadPlanSchedule() (plan.Schedule, error) {
	v := viper.New()

	v.SetConfigName("rates")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/incidentbilling")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		return plan.DefaultSchedule(), nil
	}

	var entries map[string]scheduleEntry
	if err := v.UnmarshalKey("plans", &entries); err != nil {
		return nil, err
	}

	schedule := plan.DefaultSchedule()
	for name, entry := range entries {
		tier := plan.Tier(strings.ToLower(strings.TrimSpace(name)))
		costs, ok := schedule[tier]
		if !ok {
			return nil, fmt.Errorf("rates config: %w: %q", plan.ErrUnknownPlan, name)
		}
		if entry.FixedCost < 0 || entry.WebIncidentCost < 0 || entry.MobileIncidentCost < 0 || entry.EmailIncidentCost < 0 {
			return nil, fmt.Errorf("rates config: negative cost for plan %q", name)
		}
		costs.FixedCost = decimal.NewFromFloat(entry.FixedCost)
		costs.WebIncidentCost = decimal.NewFromFloat(entry.WebIncidentCost)
		costs.MobileIncidentCost = decimal.NewFromFloat(entry.MobileIncidentCost)
		costs.EmailIncidentCost = decimal.NewFromFloat(entry.EmailIncidentCost)
		schedule[tier] = costs
	}

	return schedule, nil
}
