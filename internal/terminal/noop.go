package terminal

import (
	"context"

	"mt5_bridge/internal/models"
)

// Noop — заглушка для платформ без MT5. Все торговые вызовы отвечают
// "нет данных", чтобы эндпоинты деградировали, а не падали.
type Noop struct{}

func NewNoop() *Noop { return &Noop{} }

func (Noop) Available() bool                                       { return false }
func (Noop) Initialize(context.Context) bool                       { return false }
func (Noop) Login(context.Context, int64, string, string) bool     { return false }
func (Noop) IsConnected(context.Context) bool                      { return false }
func (Noop) AccountInfo(context.Context) *models.AccountInfo       { return nil }
func (Noop) SymbolInfo(context.Context, string) *models.SymbolInfo { return nil }
func (Noop) SymbolSelect(context.Context, string) bool             { return false }
func (Noop) SymbolInfoTick(context.Context, string) *models.Tick   { return nil }
func (Noop) OrderSend(context.Context, *models.TradeRequest) *models.TradeResult {
	return nil
}
func (Noop) PositionsGet(context.Context) []models.Position        { return nil }
func (Noop) HistoryDealsGet(context.Context, string) []models.Deal { return nil }
func (Noop) LastError(context.Context) (int, string)               { return 0, "" }
