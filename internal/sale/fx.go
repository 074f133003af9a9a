package sale

import (
	"github.com/tillworks/backdesk/internal/sale/repository"
	"github.com/tillworks/backdesk/internal/sale/service"
	"go.uber.org/fx"
)

var Module = fx.Module("sale.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
