package rate

import (
	"github.com/smallbiznis/incidentbilling/internal/rate/repository"
	"github.com/smallbiznis/incidentbilling/internal/rate/service"
	"go.uber.org/fx"
)

var Module = fx.Module("rate",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
