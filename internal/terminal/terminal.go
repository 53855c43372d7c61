// Package terminal определяет узкий интерфейс возможностей MT5-терминала,
// от которого зависит мост. Реализации: websocket-клиент к gateway-советнику
// (internal/modules/gateway) и Noop для платформ без терминала.
package terminal

import (
	"context"

	"mt5_bridge/internal/models"
)

// Terminal — минимальный набор вызовов терминала.
//
// nil-результат повторяет конвенцию терминала "нет данных": адаптеры сами
// логируют транспортные ошибки и переводят их в nil/false.
type Terminal interface {
	// Available — доступна ли торговая библиотека вообще (runtime-флаг
	// вместо compile-time проверки оригинала).
	Available() bool

	Initialize(ctx context.Context) bool
	Login(ctx context.Context, login int64, password, server string) bool
	IsConnected(ctx context.Context) bool

	AccountInfo(ctx context.Context) *models.AccountInfo
	SymbolInfo(ctx context.Context, symbol string) *models.SymbolInfo
	SymbolSelect(ctx context.Context, symbol string) bool
	SymbolInfoTick(ctx context.Context, symbol string) *models.Tick

	OrderSend(ctx context.Context, req *models.TradeRequest) *models.TradeResult
	PositionsGet(ctx context.Context) []models.Position
	HistoryDealsGet(ctx context.Context, group string) []models.Deal

	LastError(ctx context.Context) (int, string)
}
