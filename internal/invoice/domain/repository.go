package domain

import (
	"context"

	"github.com/smallbiznis/incidentbilling/internal/period"
	"gorm.io/gorm"
)

type Repository interface {
	FindByID(ctx context.Context, db *gorm.DB, id string) (*Invoice, error)

	// FindByClientAndMonth returns the invoice for the client and period,
	// or nil when none exists. More than one row for the triple is a
	// data-integrity anomaly: logged and reported as not found, never
	// resolved by an arbitrary pick.
	FindByClientAndMonth(ctx context.Context, db *gorm.DB, clientID string, p period.Period) (*Invoice, error)

	Insert(ctx context.Context, db *gorm.DB, invoice *Invoice) error
	Update(ctx context.Context, db *gorm.DB, invoice *Invoice) error
	ListAll(ctx context.Context, db *gorm.DB) ([]Invoice, error)
	DeleteAll(ctx context.Context, db *gorm.DB) error
}
