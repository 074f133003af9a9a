package customer

import (
	"github.com/tillworks/backdesk/internal/customer/repository"
	"github.com/tillworks/backdesk/internal/customer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("customer.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
