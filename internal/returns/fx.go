package returns

import (
	"github.com/tillworks/backdesk/internal/returns/repository"
	"github.com/tillworks/backdesk/internal/returns/service"
	"go.uber.org/fx"
)

var Module = fx.Module("returns.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
