package bridge

import "go.uber.org/fx"

func Module() fx.Option {
	return fx.Module("bridge",
		fx.Provide(
			New, // *Bridge
		),
	)
}
