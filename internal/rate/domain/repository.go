package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindByID(ctx context.Context, db *gorm.DB, id string) (*Rate, error)

	// FindByClientAndPlan returns the rate for (clientID, plan), or nil
	// when none exists. Finding more than one row is a data-integrity
	// anomaly: it is logged and reported as not found, never resolved by
	// an arbitrary pick.
	FindByClientAndPlan(ctx context.Context, db *gorm.DB, clientID, plan string) (*Rate, error)

	Insert(ctx context.Context, db *gorm.DB, rate *Rate) error
	Update(ctx context.Context, db *gorm.DB, rate *Rate) error
	DeleteAll(ctx context.Context, db *gorm.DB) error
}
