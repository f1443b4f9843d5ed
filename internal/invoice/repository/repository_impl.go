package repository

import (
	"context"
	"errors"

	"github.com/smallbiznis/incidentbilling/internal/invoice/domain"
	"github.com/smallbiznis/incidentbilling/internal/period"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type repo struct {
	log *zap.Logger
}

func Provide(log *zap.Logger) domain.Repository {
	return &repo{log: log.Named("invoice.repository")}
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id string) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := db.WithContext(ctx).First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *repo) FindByClientAndMonth(ctx context.Context, db *gorm.DB, clientID string, p period.Period) (*domain.Invoice, error) {
	var invoices []domain.Invoice
	err := db.WithContext(ctx).
		Where("client_id = ? AND billing_month = ? AND billing_year = ?", clientID, string(p.Month), p.Year).
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}

	switch len(invoices) {
	case 0:
		return nil, nil
	case 1:
		return &invoices[0], nil
	default:
		r.log.Error("multiple invoices found for client and period",
			zap.String("client_id", clientID),
			zap.String("billing_month", string(p.Month)),
			zap.Int("billing_year", p.Year),
			zap.Int("count", len(invoices)),
		)
		return nil, nil
	}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, invoice *domain.Invoice) error {
	return db.WithContext(ctx).Create(invoice).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, invoice *domain.Invoice) error {
	return db.WithContext(ctx).Save(invoice).Error
}

func (r *repo) ListAll(ctx context.Context, db *gorm.DB) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	if err := db.WithContext(ctx).Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *repo) DeleteAll(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Exec(`DELETE FROM invoices`).Error
}
