package main

import (
	"context"
	"log"

	"go.uber.org/fx"

	"mt5_bridge/internal/bridge"
	"mt5_bridge/internal/modules/api"
	"mt5_bridge/internal/modules/config"
	"mt5_bridge/internal/modules/gateway"
	"mt5_bridge/internal/notify"
	"mt5_bridge/pkg/logger"
	"mt5_bridge/pkg/tracing"
)

const serviceName = "mt5-bridge"

func main() {
	if err := logger.Init(serviceName); err != nil {
		log.Fatal(err)
	}

	app := fx.New(
		config.Module(),
		gateway.Module(),
		bridge.Module(),
		api.Module(),
		fx.Provide(
			// Notifier: если TELEGRAM_* нет — используем stdout
			func(cfg *config.Config) notify.Notifier {
				if cfg.Telegram.Token != "" && cfg.Telegram.ChatID != 0 {
					if tg, err := notify.NewTelegram(cfg.Telegram.Token, cfg.Telegram.ChatID); err == nil {
						return tg
					}
				}
				return notify.NewStdout()
			},
		),
		fx.Invoke(
			func(lc fx.Lifecycle, cfg *config.Config) {
				if cfg.Jaeger.Host == "" {
					return
				}
				tracing.SetServiceName(serviceName)
				_, closeTracer, err := tracing.InitTracer(tracing.Config{
					Host: cfg.Jaeger.Host,
					Port: cfg.Jaeger.Port,
				})
				if err != nil {
					logger.Error("init tracer: %v", err)
					return
				}
				lc.Append(fx.Hook{
					OnStop: func(context.Context) error {
						closeTracer()
						return nil
					},
				})
			},
		),
	)

	app.Run()
}
