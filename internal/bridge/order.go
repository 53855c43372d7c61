package bridge

import (
	"context"

	"mt5_bridge/internal/models"
)

// PlaceOrder проводит рыночную заявку по шагам, каждый — точка отказа.
// Ретраев нет: любой сбой финален для запроса, повторяет пусть вызывающий.
func (b *Bridge) PlaceOrder(ctx context.Context, order models.OrderRequest) models.TradeOutcome {
	b.mu.Lock()
	outcome := b.placeLocked(ctx, order)
	b.mu.Unlock()

	if outcome.Success {
		b.notifier.Sendf("Order filled: %s %s %.2f lot, ticket %d",
			order.Type, order.Symbol, order.Volume, outcome.Ticket)
	}
	return outcome
}

func (b *Bridge) placeLocked(ctx context.Context, order models.OrderRequest) models.TradeOutcome {
	if !b.term.Available() {
		return fail(msgTerminalUnavailable)
	}
	if !b.ensureConnected(ctx) {
		return fail("Bridge not initialized / no credentials")
	}

	info, err := b.resolveSymbol(ctx, order.Symbol)
	if err != nil {
		return fail(err.Error())
	}

	tick := b.term.SymbolInfoTick(ctx, info.Name)
	if tick == nil {
		return fail("No tick available for " + info.Name)
	}

	// BUY исполняется по ask, SELL по bid — правило жёсткое.
	orderType := models.OrderTypeSell
	price := tick.Bid
	if order.Type == "BUY" {
		orderType = models.OrderTypeBuy
		price = tick.Ask
	}

	comment := order.Comment
	if comment == "" {
		comment = b.defaultComment
	}

	request := &models.TradeRequest{
		Action:      models.TradeActionDeal,
		Symbol:      info.Name,
		Volume:      order.Volume,
		Type:        orderType,
		Price:       price,
		SL:          deref(order.SL), // 0 — терминальное "без стопа"
		TP:          deref(order.TP),
		Magic:       b.magic,
		Comment:     comment,
		TypeTime:    models.OrderTimeGTC,
		TypeFilling: negotiateFilling(info.FillingMode),
	}

	return b.classifyResult(ctx, b.term.OrderSend(ctx, request))
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
