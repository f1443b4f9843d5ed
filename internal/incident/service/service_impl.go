package service

import (
	"context"

	"github.com/smallbiznis/incidentbilling/internal/incident/domain"
	"github.com/smallbiznis/incidentbilling/internal/period"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Aggregator {
	return &Service{
		log:  p.Log.Named("incident.service"),
		repo: p.Repo,
	}
}

// ListForPeriod fetches every incident for the client and keeps those
// whose creation record falls inside the billing period. Order follows
// the upstream response.
func (s *Service) ListForPeriod(ctx context.Context, clientID string, p period.Period) ([]domain.Incident, error) {
	incidents, err := s.repo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.Incident, 0, len(incidents))
	for _, incident := range incidents {
		createdAt, err := incident.CreatedAt()
		if err != nil {
			s.log.Error("incident served without history",
				zap.String("incident_id", incident.ID),
				zap.String("client_id", clientID),
			)
			return nil, err
		}
		if p.Contains(createdAt) {
			filtered = append(filtered, incident)
		}
	}
	return filtered, nil
}

func (s *Service) CountForPeriod(ctx context.Context, clientID string, p period.Period) (domain.ChannelCounts, error) {
	incidents, err := s.ListForPeriod(ctx, clientID, p)
	if err != nil {
		return domain.ChannelCounts{}, err
	}

	var counts domain.ChannelCounts
	for _, incident := range incidents {
		switch incident.Channel {
		case domain.ChannelWeb:
			counts.Web++
		case domain.ChannelMobile:
			counts.Mobile++
		case domain.ChannelEmail:
			counts.Email++
		}
	}
	return counts, nil
}
