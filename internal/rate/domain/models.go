// Package domain contains the persisted billing rate: a frozen snapshot
// of a client's unit costs taken when the client was first billed on a
// plan. Rates are reused by later invoices and never recomputed.
package domain

import "github.com/shopspring/decimal"

type Rate struct {
	ID                    string          `gorm:"primaryKey" json:"id"`
	Plan                  string          `gorm:"type:text;not null;index" json:"plan"`
	ClientID              string          `gorm:"type:text;not null;index" json:"client_id"`
	FixedCost             decimal.Decimal `gorm:"type:numeric;not null" json:"fixed_cost"`
	CostPerIncidentWeb    decimal.Decimal `gorm:"type:numeric;not null" json:"cost_per_incident_web"`
	CostPerIncidentMobile decimal.Decimal `gorm:"type:numeric;not null" json:"cost_per_incident_mobile"`
	CostPerIncidentEmail  decimal.Decimal `gorm:"type:numeric;not null" json:"cost_per_incident_email"`
}

// TableName sets the database table name.
//
// No unique index on (client_id, plan): concurrent first-billing requests
// may both insert, and the read path resolves the ambiguity instead (see
// Repository.FindByClientAndPlan).
func (Rate) TableName() string { return "rates" }
