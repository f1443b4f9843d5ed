// Package migration keeps the schema in sync at boot. Two tables only,
// so gorm AutoMigrate is enough; no versioned migration files.
package migration

import (
	invoicedomain "github.com/smallbiznis/incidentbilling/internal/invoice/domain"
	ratedomain "github.com/smallbiznis/incidentbilling/internal/rate/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migration",
	fx.Invoke(AutoMigrate),
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&ratedomain.Rate{},
		&invoicedomain.Invoice{},
	)
}
