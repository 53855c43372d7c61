package service

import (
	"context"

	"mt5_bridge/internal/models"
	"mt5_bridge/pkg/logger"
)

// SymbolInfo — метаданные инструмента; nil, если брокер такого не знает.
func (c *Client) SymbolInfo(ctx context.Context, symbol string) *models.SymbolInfo {
	var info *models.SymbolInfo
	if err := c.call(ctx, "symbol_info", map[string]string{"symbol": symbol}, &info); err != nil {
		logger.Error("gateway symbol_info %s: %v", symbol, err)
		return nil
	}
	return info
}

// SymbolSelect добавляет инструмент в Market Watch.
func (c *Client) SymbolSelect(ctx context.Context, symbol string) bool {
	return c.callBool(ctx, "symbol_select", map[string]any{
		"symbol": symbol,
		"enable": true,
	})
}

func (c *Client) SymbolInfoTick(ctx context.Context, symbol string) *models.Tick {
	var tick *models.Tick
	if err := c.call(ctx, "symbol_info_tick", map[string]string{"symbol": symbol}, &tick); err != nil {
		logger.Error("gateway symbol_info_tick %s: %v", symbol, err)
		return nil
	}
	return tick
}
