// Package domain contains the persisted invoice and the rendered billing
// statement.
package domain

import (
	"time"

	"github.com/smallbiznis/incidentbilling/internal/period"
)

// Invoice is one client's bill for one billing period. The rate_id pins
// the unit costs that were active when the invoice was generated; later
// reads must bill against that rate, not the client's current one.
type Invoice struct {
	ID                   string       `gorm:"primaryKey" json:"id"`
	ClientID             string       `gorm:"type:text;not null;index" json:"client_id"`
	RateID               string       `gorm:"type:text;not null" json:"rate_id"`
	GenerationDate       time.Time    `gorm:"not null" json:"generation_date"`
	BillingMonth         period.Month `gorm:"type:text;not null" json:"billing_month"`
	BillingYear          int          `gorm:"not null" json:"billing_year"`
	PaymentDueDate       time.Time    `gorm:"not null" json:"payment_due_date"`
	TotalIncidentsWeb    int          `gorm:"not null;default:0" json:"total_incidents_web"`
	TotalIncidentsMobile int          `gorm:"not null;default:0" json:"total_incidents_mobile"`
	TotalIncidentsEmail  int          `gorm:"not null;default:0" json:"total_incidents_email"`
}

// TableName sets the database table name.
//
// No unique index on (client_id, billing_month, billing_year): the
// check-then-create flow accepts first-writer-wins under concurrency, and
// the read path treats multi-row results as not found instead.
func (Invoice) TableName() string { return "invoices" }
