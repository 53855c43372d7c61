// Package service — websocket-клиент к gateway-советнику в терминале MT5.
// Все вызовы терминала идут через один сокет и один мьютекс: сам терминал
// не рассчитан на конкурентный доступ.
package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"mt5_bridge/internal/modules/config"
	"mt5_bridge/pkg/logger"
)

type Client struct {
	url    string
	dialer *websocket.Dialer

	mu     sync.Mutex // сериализует dial + write + read одного вызова
	conn   *websocket.Conn
	nextID uint64
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		url:    cfg.Terminal.GatewayURL,
		dialer: websocket.DefaultDialer,
	}
}

func (c *Client) Available() bool { return true }

type callFrame struct {
	ID     uint64 `json:"id"`
	Method string `json:"method"`
	Params any    `json:"params,omitempty"`
}

type replyFrame struct {
	ID     uint64          `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// call делает один round trip к gateway. Коннект ленивый; на обрыве
// переподключаемся один раз и повторяем кадр, дальше отдаём ошибку —
// ретраи не наша забота.
func (c *Client) call(ctx context.Context, method string, params any, out any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if c.conn == nil {
			conn, _, err := c.dialer.DialContext(ctx, c.url, nil)
			if err != nil {
				return errors.Wrapf(err, "gateway dial %s", c.url)
			}
			c.conn = conn
		}

		c.nextID++
		frame := callFrame{ID: c.nextID, Method: method, Params: params}
		payload, err := sonic.Marshal(frame)
		if err != nil {
			return errors.Wrapf(err, "gateway marshal %s", method)
		}

		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			lastErr = errors.Wrapf(err, "gateway write %s", method)
			c.reset()
			continue
		}

		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			lastErr = errors.Wrapf(err, "gateway read %s", method)
			c.reset()
			continue
		}

		var reply replyFrame
		if err := json.Unmarshal(msg, &reply); err != nil {
			return errors.Wrapf(err, "gateway decode %s: %s", method, string(msg))
		}
		// кадр от прошлого полуотвалившегося вызова — не наш ответ;
		// считаем чтение неудачным и переподключаемся
		if reply.ID != frame.ID {
			lastErr = errors.Errorf("gateway %s: stale reply id %d (want %d)", method, reply.ID, frame.ID)
			c.reset()
			continue
		}
		if reply.Error != nil {
			return errors.Errorf("gateway %s: code=%d msg=%s", method, reply.Error.Code, reply.Error.Message)
		}
		if out != nil && len(reply.Result) > 0 {
			if err := json.Unmarshal(reply.Result, out); err != nil {
				return errors.Wrapf(err, "gateway result %s", method)
			}
		}
		return nil
	}
	return lastErr
}

func (c *Client) reset() {
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
}

// callBool — для методов, отвечающих просто true/false.
func (c *Client) callBool(ctx context.Context, method string, params any) bool {
	var ok bool
	if err := c.call(ctx, method, params, &ok); err != nil {
		logger.Error("gateway %s: %v", method, err)
		return false
	}
	return ok
}
