package incident

import (
	"github.com/smallbiznis/incidentbilling/internal/config"
	"github.com/smallbiznis/incidentbilling/internal/incident/domain"
	"github.com/smallbiznis/incidentbilling/internal/incident/repository"
	"github.com/smallbiznis/incidentbilling/internal/incident/service"
	"github.com/smallbiznis/incidentbilling/internal/upstream"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("incident",
	fx.Provide(provideRepository),
	fx.Provide(service.New),
)

func provideRepository(cfg config.Config, log *zap.Logger) domain.Repository {
	return repository.NewREST(
		cfg.IncidentSvcURL,
		upstream.ProviderFor(cfg.IncidentSvcToken),
		cfg.UpstreamTimeout,
		log,
	)
}
