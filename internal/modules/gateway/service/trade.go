package service

import (
	"context"

	"mt5_bridge/internal/models"
	"mt5_bridge/pkg/logger"
)

// OrderSend отправляет торговую заявку. nil — терминал не вернул результата
// вовсе (транспорт или внутренняя ошибка терминала); код причины мост
// добирает через LastError.
func (c *Client) OrderSend(ctx context.Context, req *models.TradeRequest) *models.TradeResult {
	var result *models.TradeResult
	if err := c.call(ctx, "order_send", req, &result); err != nil {
		logger.Error("gateway order_send %s: %v", req.Symbol, err)
		return nil
	}
	return result
}

func (c *Client) PositionsGet(ctx context.Context) []models.Position {
	var positions []models.Position
	if err := c.call(ctx, "positions_get", nil, &positions); err != nil {
		logger.Error("gateway positions_get: %v", err)
		return nil
	}
	return positions
}

// HistoryDealsGet — закрытые сделки по фильтру групп символов ("*" — все).
func (c *Client) HistoryDealsGet(ctx context.Context, group string) []models.Deal {
	var deals []models.Deal
	if err := c.call(ctx, "history_deals_get", map[string]string{"group": group}, &deals); err != nil {
		logger.Error("gateway history_deals_get: %v", err)
		return nil
	}
	return deals
}
