package bridge

import (
	"context"

	"mt5_bridge/internal/models"
)

// ClosePosition отправляет обратную сделку против открытой позиции.
func (b *Bridge) ClosePosition(ctx context.Context, ticket int64) models.TradeOutcome {
	b.mu.Lock()
	outcome := b.closeLocked(ctx, ticket)
	b.mu.Unlock()

	if outcome.Success {
		b.notifier.Sendf("Position %d closed, deal ticket %d", ticket, outcome.Ticket)
	}
	return outcome
}

func (b *Bridge) closeLocked(ctx context.Context, ticket int64) models.TradeOutcome {
	if !b.term.Available() {
		return fail(msgTerminalUnavailable)
	}
	if !b.ensureConnected(ctx) {
		return fail("Bridge not initialized / no credentials")
	}

	var pos *models.Position
	for _, p := range b.term.PositionsGet(ctx) {
		if p.Ticket == ticket {
			pos = &p
			break
		}
	}
	if pos == nil {
		return fail("Position not found")
	}

	tick := b.term.SymbolInfoTick(ctx, pos.Symbol)
	if tick == nil {
		return fail("No tick available for " + pos.Symbol)
	}

	// Закрытие — противоположная сторона: лонг закрываем SELL по bid,
	// шорт — BUY по ask. То же bid/ask-правило, что и при открытии.
	closeType := models.OrderTypeBuy
	price := tick.Ask
	if pos.Type == models.OrderTypeBuy {
		closeType = models.OrderTypeSell
		price = tick.Bid
	}

	request := &models.TradeRequest{
		Action:   models.TradeActionDeal,
		Symbol:   pos.Symbol,
		Volume:   pos.Volume,
		Type:     closeType,
		Price:    price,
		Magic:    b.magic,
		Comment:  "Close Position",
		TypeTime: models.OrderTimeGTC,
		// закрытию всегда IOC, без переговоров
		TypeFilling: models.OrderFillingIOC,
		// нетто против существующей позиции, не новая экспозиция
		Position: ticket,
	}

	return b.classifyResult(ctx, b.term.OrderSend(ctx, request))
}
