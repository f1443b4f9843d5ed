package client

import (
	"github.com/smallbiznis/incidentbilling/internal/client/domain"
	"github.com/smallbiznis/incidentbilling/internal/client/repository"
	"github.com/smallbiznis/incidentbilling/internal/config"
	"github.com/smallbiznis/incidentbilling/internal/upstream"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("client",
	fx.Provide(provideRepository),
)

func provideRepository(cfg config.Config, log *zap.Logger) domain.Repository {
	return repository.NewREST(
		cfg.ClientSvcURL,
		upstream.ProviderFor(cfg.ClientSvcToken),
		cfg.UpstreamTimeout,
		log,
	)
}
