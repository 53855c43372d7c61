package service

import (
	"context"

	"mt5_bridge/internal/models"
	"mt5_bridge/pkg/logger"
)

// Initialize — подключение без кредов: терминал может быть уже залогинен
// интерактивно.
func (c *Client) Initialize(ctx context.Context) bool {
	return c.callBool(ctx, "initialize", nil)
}

func (c *Client) Login(ctx context.Context, login int64, password, server string) bool {
	return c.callBool(ctx, "login", map[string]any{
		"login":    login,
		"password": password,
		"server":   server,
	})
}

func (c *Client) IsConnected(ctx context.Context) bool {
	var info struct {
		Connected bool `json:"connected"`
	}
	if err := c.call(ctx, "terminal_info", nil, &info); err != nil {
		logger.Error("gateway terminal_info: %v", err)
		return false
	}
	return info.Connected
}

func (c *Client) AccountInfo(ctx context.Context) *models.AccountInfo {
	var acc *models.AccountInfo
	if err := c.call(ctx, "account_info", nil, &acc); err != nil {
		logger.Error("gateway account_info: %v", err)
		return nil
	}
	return acc
}

func (c *Client) LastError(ctx context.Context) (int, string) {
	var le struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := c.call(ctx, "last_error", nil, &le); err != nil {
		logger.Error("gateway last_error: %v", err)
		return 0, ""
	}
	return le.Code, le.Message
}
