package service

import (
	"context"

	"github.com/google/uuid"
	clientdomain "github.com/smallbiznis/incidentbilling/internal/client/domain"
	"github.com/smallbiznis/incidentbilling/internal/plan"
	"github.com/smallbiznis/incidentbilling/internal/rate/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	Schedule plan.Schedule
	Repo     domain.Repository
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	schedule plan.Schedule
	repo     domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("rate.service"),
		schedule: p.Schedule,
		repo:     p.Repo,
	}
}

func (s *Service) Resolve(ctx context.Context, client clientdomain.Client) (domain.Rate, error) {
	existing, err := s.repo.FindByClientAndPlan(ctx, s.db, client.ID, client.Plan)
	if err != nil {
		return domain.Rate{}, err
	}
	if existing != nil {
		return *existing, nil
	}

	costs, err := s.schedule.Costs(client.Plan)
	if err != nil {
		return domain.Rate{}, err
	}

	rate := domain.Rate{
		ID:                    uuid.NewString(),
		Plan:                  client.Plan,
		ClientID:              client.ID,
		FixedCost:             costs.FixedCost,
		CostPerIncidentWeb:    costs.WebIncidentCost,
		CostPerIncidentMobile: costs.MobileIncidentCost,
		CostPerIncidentEmail:  costs.EmailIncidentCost,
	}

	if err := s.repo.Insert(ctx, s.db, &rate); err != nil {
		return domain.Rate{}, err
	}

	s.log.Info("rate created",
		zap.String("rate_id", rate.ID),
		zap.String("client_id", client.ID),
		zap.String("plan", client.Plan),
	)

	return rate, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Rate, error) {
	return s.repo.FindByID(ctx, s.db, id)
}
