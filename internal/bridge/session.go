package bridge

import (
	"context"
	"fmt"

	"mt5_bridge/internal/models"
)

type credentials struct {
	login    int64
	password string
	server   string
}

func (b *Bridge) storedCredentials() *credentials {
	b.credMu.Lock()
	defer b.credMu.Unlock()
	return b.creds
}

// ensureConnected — "терминал пригоден прямо сейчас?". Вызывается только
// под b.mu. Порядок жёсткий: живое соединение → логин по сохранённым
// кредам → дефолтный Initialize (терминал мог быть залогинен руками).
// false = "операция сейчас недоступна", не авария.
func (b *Bridge) ensureConnected(ctx context.Context) bool {
	if b.term.IsConnected(ctx) {
		return true
	}
	if creds := b.storedCredentials(); creds != nil {
		return b.term.Login(ctx, creds.login, creds.password, creds.server)
	}
	return b.term.Initialize(ctx)
}

// Connect — явное подключение с кредами. Сохраняем тройку ДО попытки:
// даже неудачный логин оставляет креды для следующего ensureConnected.
func (b *Bridge) Connect(ctx context.Context, login int64, password, server string) (bool, string) {
	b.credMu.Lock()
	b.creds = &credentials{login: login, password: password, server: server}
	b.credMu.Unlock()

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.term.Available() {
		return false, msgTerminalUnavailable
	}
	if b.term.Login(ctx, login, password, server) {
		return true, ""
	}
	code, msg := b.term.LastError(ctx)
	if msg == "" {
		return false, fmt.Sprintf("Connection failed (code %d)", code)
	}
	return false, fmt.Sprintf("Connection failed (code %d): %s", code, msg)
}

// AutoConnect — /autoconnect: дефолтное подключение и срез аккаунта.
func (b *Bridge) AutoConnect(ctx context.Context) models.ConnectReport {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.term.Available() {
		return models.ConnectReport{Success: false, Error: msgTerminalUnavailable}
	}
	if !b.term.Initialize(ctx) {
		return models.ConnectReport{Success: false, Error: "MT5 Not initialized"}
	}
	acc := b.term.AccountInfo(ctx)
	if acc == nil {
		return models.ConnectReport{Success: false}
	}
	return models.ConnectReport{
		Success:  true,
		Login:    acc.Login,
		Balance:  acc.Balance,
		Currency: acc.Currency,
	}
}
