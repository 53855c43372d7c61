package bridge

import (
	"context"

	"mt5_bridge/internal/models"
)

// Читающие операции деградируют мягко: нет связи — пустой результат,
// не ошибка. Позиции и история не кэшируются, терминал — источник истины.

func (b *Bridge) Account(ctx context.Context) (*models.AccountInfo, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.term.Available() || !b.ensureConnected(ctx) {
		return nil, false
	}
	acc := b.term.AccountInfo(ctx)
	if acc == nil {
		return nil, false
	}
	return acc, true
}

func (b *Bridge) Positions(ctx context.Context) []models.PositionSummary {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]models.PositionSummary, 0)
	if !b.term.Available() || !b.ensureConnected(ctx) {
		return out
	}
	for _, p := range b.term.PositionsGet(ctx) {
		out = append(out, models.PositionSummary{
			Ticket:    p.Ticket,
			Symbol:    p.Symbol,
			Volume:    p.Volume,
			Type:      models.SideName(p.Type),
			Profit:    p.Profit,
			PriceOpen: p.PriceOpen,
		})
	}
	return out
}

func (b *Bridge) History(ctx context.Context) []models.DealSummary {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]models.DealSummary, 0)
	if !b.term.Available() || !b.ensureConnected(ctx) {
		return out
	}
	for _, d := range b.term.HistoryDealsGet(ctx, "*") {
		out = append(out, models.DealSummary{
			Ticket:    d.Ticket,
			Symbol:    d.Symbol,
			Volume:    d.Volume,
			Type:      models.SideName(d.Type),
			Profit:    d.Profit,
			OpenPrice: d.Price,
			CloseTime: d.Time * 1000, // ms epoch наружу
		})
	}
	return out
}
