package repository

import (
	"context"
	"errors"

	"github.com/smallbiznis/incidentbilling/internal/rate/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type repo struct {
	log *zap.Logger
}

func Provide(log *zap.Logger) domain.Repository {
	return &repo{log: log.Named("rate.repository")}
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id string) (*domain.Rate, error) {
	var rate domain.Rate
	err := db.WithContext(ctx).First(&rate, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

func (r *repo) FindByClientAndPlan(ctx context.Context, db *gorm.DB, clientID, plan string) (*domain.Rate, error) {
	var rates []domain.Rate
	err := db.WithContext(ctx).
		Where("client_id = ? AND plan = ?", clientID, plan).
		Find(&rates).Error
	if err != nil {
		return nil, err
	}

	switch len(rates) {
	case 0:
		return nil, nil
	case 1:
		return &rates[0], nil
	default:
		r.log.Error("multiple rates found for client and plan",
			zap.String("client_id", clientID),
			zap.String("plan", plan),
			zap.Int("count", len(rates)),
		)
		return nil, nil
	}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, rate *domain.Rate) error {
	return db.WithContext(ctx).Create(rate).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, rate *domain.Rate) error {
	return db.WithContext(ctx).Save(rate).Error
}

func (r *repo) DeleteAll(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Exec(`DELETE FROM rates`).Error
}
