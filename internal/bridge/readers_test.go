package bridge

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mt5_bridge/internal/models"
)

func TestPositionsProjection(t *testing.T) {
	term := newFakeTerminal()
	term.positions = []models.Position{
		{Ticket: 1, Symbol: "EURUSD", Volume: 0.1, Type: 0, Profit: 5.5, PriceOpen: 1.09},
		{Ticket: 2, Symbol: "XAUUSD", Volume: 0.2, Type: 1, Profit: -2.1, PriceOpen: 2300},
	}
	b, _ := newTestBridge(term)

	got := b.Positions(context.Background())
	require.Len(t, got, 2)
	assert.Equal(t, "BUY", got[0].Type)
	assert.Equal(t, "SELL", got[1].Type)
	assert.Equal(t, int64(1), got[0].Ticket)
	assert.Equal(t, 1.09, got[0].PriceOpen)
}

func TestPositionsEmptyNotNil(t *testing.T) {
	term := newFakeTerminal()
	term.positions = nil
	b, _ := newTestBridge(term)

	got := b.Positions(context.Background())
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPositionsDegradeWhenDisconnected(t *testing.T) {
	term := newFakeTerminal()
	term.connected = false
	term.initOK = false
	term.positions = []models.Position{{Ticket: 1}}
	b, _ := newTestBridge(term)

	got := b.Positions(context.Background())
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestHistoryProjection(t *testing.T) {
	term := newFakeTerminal()
	term.deals = []models.Deal{
		{Ticket: 10, Symbol: "EURUSD", Volume: 0.1, Type: 1, Profit: 7.7, Price: 1.095, Time: 1700000000},
	}
	b, _ := newTestBridge(term)

	got := b.History(context.Background())
	require.Len(t, got, 1)
	assert.Equal(t, "SELL", got[0].Type)
	assert.Equal(t, 1.095, got[0].OpenPrice)
	assert.Equal(t, int64(1700000000000), got[0].CloseTime, "close time reported in ms epoch")
}

func TestHistoryEmptyNotNil(t *testing.T) {
	term := newFakeTerminal()
	b, _ := newTestBridge(term)

	got := b.History(context.Background())
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAccountDisconnected(t *testing.T) {
	term := newFakeTerminal()
	term.connected = false
	term.initOK = false
	b, _ := newTestBridge(term)

	acc, connected := b.Account(context.Background())
	assert.False(t, connected)
	assert.Nil(t, acc)
}

func TestAccountSnapshot(t *testing.T) {
	term := newFakeTerminal()
	term.account = &models.AccountInfo{Login: 7, Balance: 100, Equity: 99.5, Currency: "USD"}
	b, _ := newTestBridge(term)

	acc, connected := b.Account(context.Background())
	require.True(t, connected)
	assert.Equal(t, int64(7), acc.Login)
	assert.Equal(t, 99.5, acc.Equity)
}
