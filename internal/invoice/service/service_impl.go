package service

import (
	"context"

	"github.com/google/uuid"
	clientdomain "github.com/smallbiznis/incidentbilling/internal/client/domain"
	"github.com/smallbiznis/incidentbilling/internal/clock"
	"github.com/smallbiznis/incidentbilling/internal/identity"
	incidentdomain "github.com/smallbiznis/incidentbilling/internal/incident/domain"
	"github.com/smallbiznis/incidentbilling/internal/invoice/domain"
	"github.com/smallbiznis/incidentbilling/internal/period"
	ratedomain "github.com/smallbiznis/incidentbilling/internal/rate/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	Clock     clock.Clock
	Repo      domain.Repository
	Clients   clientdomain.Repository
	Rates     ratedomain.Service
	Incidents incidentdomain.Aggregator
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	clock     clock.Clock
	repo      domain.Repository
	clients   clientdomain.Repository
	rates     ratedomain.Service
	incidents incidentdomain.Aggregator
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("invoice.service"),
		clock:     p.Clock,
		repo:      p.Repo,
		clients:   p.Clients,
		rates:     p.Rates,
		incidents: p.Incidents,
	}
}

func (s *Service) MonthlyStatement(ctx context.Context, id identity.Identity) (domain.Statement, error) {
	// Role gate comes first: a non-admin request must fail before any
	// storage or upstream access happens.
	if id.Role != identity.RoleAdmin {
		return domain.Statement{}, identity.ErrForbidden
	}

	client, err := s.clients.Get(ctx, id.ClientID)
	if err != nil {
		return domain.Statement{}, err
	}
	if client == nil {
		return domain.Statement{}, clientdomain.ErrNotFound
	}

	billingPeriod := period.Previous(s.clock.Now())

	rate, err := s.rates.Resolve(ctx, *client)
	if err != nil {
		return domain.Statement{}, err
	}

	invoice, err := s.repo.FindByClientAndMonth(ctx, s.db, client.ID, billingPeriod)
	if err != nil {
		return domain.Statement{}, err
	}

	if invoice != nil {
		// A previously generated invoice keeps the rate that was active
		// when it was generated, not the client's current rate.
		historical, err := s.rates.GetByID(ctx, invoice.RateID)
		if err != nil {
			return domain.Statement{}, err
		}
		if historical == nil {
			return domain.Statement{}, domain.ErrRateUndetermined
		}
		rate = *historical
	} else {
		created, err := s.createInvoice(ctx, client.ID, billingPeriod, rate)
		if err != nil {
			return domain.Statement{}, err
		}
		invoice = created
	}

	return BuildStatement(*invoice, rate, *client), nil
}

func (s *Service) createInvoice(ctx context.Context, clientID string, p period.Period, rate ratedomain.Rate) (*domain.Invoice, error) {
	counts, err := s.incidents.CountForPeriod(ctx, clientID, p)
	if err != nil {
		return nil, err
	}

	invoice := domain.Invoice{
		ID:                   uuid.NewString(),
		ClientID:             clientID,
		RateID:               rate.ID,
		GenerationDate:       s.clock.Now(),
		BillingMonth:         p.Month,
		BillingYear:          p.Year,
		PaymentDueDate:       p.DueDate(),
		TotalIncidentsWeb:    counts.Web,
		TotalIncidentsMobile: counts.Mobile,
		TotalIncidentsEmail:  counts.Email,
	}

	if err := s.repo.Insert(ctx, s.db, &invoice); err != nil {
		return nil, err
	}

	s.log.Info("invoice created",
		zap.String("invoice_id", invoice.ID),
		zap.String("client_id", clientID),
		zap.String("billing_month", string(p.Month)),
		zap.Int("billing_year", p.Year),
	)

	return &invoice, nil
}

func (s *Service) ResetInvoices(ctx context.Context) error {
	return s.repo.DeleteAll(ctx, s.db)
}
