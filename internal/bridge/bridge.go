// Package bridge — стержень сервиса: превращает HTTP-намерения в
// терминальные заявки и обратно. Вся работа с терминалом идёт под одним
// мьютексом — MT5 API не безопасен для конкурентных вызовов.
package bridge

import (
	"context"
	"fmt"
	"sync"

	"mt5_bridge/internal/models"
	"mt5_bridge/internal/modules/config"
	"mt5_bridge/internal/notify"
	"mt5_bridge/internal/terminal"
)

const msgTerminalUnavailable = "MT5 terminal not available on this platform"

type Bridge struct {
	mu   sync.Mutex // критическая секция: соединение + все вызовы запроса
	term terminal.Terminal

	notifier       notify.Notifier
	magic          int64
	defaultComment string

	// креды последнего /connect; единственное долговечное состояние моста
	credMu sync.Mutex
	creds  *credentials
}

func New(cfg *config.Config, term terminal.Terminal, n notify.Notifier) *Bridge {
	return &Bridge{
		term:           term,
		notifier:       n,
		magic:          cfg.Trade.Magic,
		defaultComment: cfg.Trade.DefaultComment,
	}
}

func fail(text string) models.TradeOutcome {
	return models.TradeOutcome{Success: false, Error: text}
}

// classifyResult — единая классификация результата order_send.
// nil-результат — отдельная внутренняя ошибка с кодом последней
// диагностики терминала; одинаково для открытия и закрытия.
func (b *Bridge) classifyResult(ctx context.Context, result *models.TradeResult) models.TradeOutcome {
	if result == nil {
		code, _ := b.term.LastError(ctx)
		return fail(fmt.Sprintf("Order send returned no result (code %d)", code))
	}
	if result.Retcode != models.TradeRetcodeDone {
		out := fail(fmt.Sprintf("Trade failed (Code %d): %s", result.Retcode, result.Comment))
		out.Retcode = result.Retcode
		return out
	}
	return models.TradeOutcome{Success: true, Ticket: result.Order}
}
