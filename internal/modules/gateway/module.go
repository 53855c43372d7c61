package gateway

import (
	"go.uber.org/fx"

	"mt5_bridge/internal/modules/config"
	"mt5_bridge/internal/modules/gateway/service"
	"mt5_bridge/internal/terminal"
)

// Module выбирает адаптер терминала: боевой websocket-клиент или Noop,
// если на этой платформе терминала нет.
func Module() fx.Option {
	return fx.Module("gateway",
		fx.Provide(
			func(cfg *config.Config) terminal.Terminal {
				if !cfg.Terminal.Enabled {
					return terminal.NewNoop()
				}
				return service.NewClient(cfg)
			},
		),
	)
}
