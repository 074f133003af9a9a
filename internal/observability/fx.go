package observability

import (
	"github.com/tillworks/backdesk/internal/observability/metrics"
	"go.uber.org/fx"
)

var Module = fx.Module("observability",
	fx.Provide(
		metrics.NewHTTPMetrics,
	),
)
