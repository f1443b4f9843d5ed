package invoice

import (
	"github.com/smallbiznis/incidentbilling/internal/invoice/repository"
	"github.com/smallbiznis/incidentbilling/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
