package bridge

import (
	"context"
	"fmt"
	"sync"

	"mt5_bridge/internal/models"
	"mt5_bridge/internal/modules/config"
)

// fakeTerminal — терминал в памяти для тестов моста: канонические данные
// плюс запись всех обращений.
type fakeTerminal struct {
	available bool
	connected bool
	initOK    bool
	loginOK   bool

	account  *models.AccountInfo
	symbols  map[string]*models.SymbolInfo
	selectOK bool
	ticks    map[string]*models.Tick
	result   *models.TradeResult

	positions []models.Position
	deals     []models.Deal

	lastErrCode int
	lastErrMsg  string

	symbolCalls []string
	selectCalls []string
	initCalls   int
	loginCalls  []credentials
	sent        []*models.TradeRequest
}

func newFakeTerminal() *fakeTerminal {
	return &fakeTerminal{
		available: true,
		connected: true,
		selectOK:  true,
		symbols:   map[string]*models.SymbolInfo{},
		ticks:     map[string]*models.Tick{},
	}
}

func (f *fakeTerminal) Available() bool                 { return f.available }
func (f *fakeTerminal) Initialize(context.Context) bool { f.initCalls++; return f.initOK }

func (f *fakeTerminal) Login(_ context.Context, login int64, password, server string) bool {
	f.loginCalls = append(f.loginCalls, credentials{login: login, password: password, server: server})
	return f.loginOK
}

func (f *fakeTerminal) IsConnected(context.Context) bool { return f.connected }

func (f *fakeTerminal) AccountInfo(context.Context) *models.AccountInfo { return f.account }

func (f *fakeTerminal) SymbolInfo(_ context.Context, symbol string) *models.SymbolInfo {
	f.symbolCalls = append(f.symbolCalls, symbol)
	return f.symbols[symbol]
}

func (f *fakeTerminal) SymbolSelect(_ context.Context, symbol string) bool {
	f.selectCalls = append(f.selectCalls, symbol)
	return f.selectOK
}

func (f *fakeTerminal) SymbolInfoTick(_ context.Context, symbol string) *models.Tick {
	return f.ticks[symbol]
}

func (f *fakeTerminal) OrderSend(_ context.Context, req *models.TradeRequest) *models.TradeResult {
	f.sent = append(f.sent, req)
	return f.result
}

func (f *fakeTerminal) PositionsGet(context.Context) []models.Position { return f.positions }

func (f *fakeTerminal) HistoryDealsGet(context.Context, string) []models.Deal { return f.deals }

func (f *fakeTerminal) LastError(context.Context) (int, string) {
	return f.lastErrCode, f.lastErrMsg
}

// silentNotifier собирает уведомления в память; мост шлёт их уже вне
// своего мьютекса, поэтому здесь нужен свой.
type silentNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *silentNotifier) Send(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, msg)
}

func (n *silentNotifier) Sendf(format string, args ...any) {
	n.Send(fmt.Sprintf(format, args...))
}

func (n *silentNotifier) all() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.messages))
	copy(out, n.messages)
	return out
}

func newTestBridge(term *fakeTerminal) (*Bridge, *silentNotifier) {
	cfg := &config.Config{}
	cfg.Trade.Magic = 123456
	cfg.Trade.DefaultComment = "GainZAlgo Signal"
	n := &silentNotifier{}
	return New(cfg, term, n), n
}
