package models

// Константы протокола MT5 — значения совпадают с терминальными.
const (
	OrderTypeBuy  = 0
	OrderTypeSell = 1

	TradeActionDeal = 1

	OrderTimeGTC = 0

	OrderFillingFOK    = 0
	OrderFillingIOC    = 1
	OrderFillingReturn = 2

	// Биты SYMBOL_FILLING_MODE у инструмента.
	SymbolFillingFOK = 1
	SymbolFillingIOC = 2

	TradeRetcodeDone = 10009
)

// BridgeMagic помечает ордера, отправленные через этот мост.
const BridgeMagic int64 = 123456

type AccountInfo struct {
	Login    int64   `json:"login"`
	Balance  float64 `json:"balance"`
	Equity   float64 `json:"equity"`
	Currency string  `json:"currency"`
}

type SymbolInfo struct {
	Name        string `json:"name"`
	Visible     bool   `json:"visible"`
	FillingMode int    `json:"filling_mode"`
}

// Tick — срез bid/ask по инструменту.
type Tick struct {
	Bid float64 `json:"bid"`
	Ask float64 `json:"ask"`
}

// TradeRequest — терминальная заявка (одна сделка по рынку).
type TradeRequest struct {
	Action      int     `json:"action"`
	Symbol      string  `json:"symbol"`
	Volume      float64 `json:"volume"`
	Type        int     `json:"type"`
	Price       float64 `json:"price"`
	SL          float64 `json:"sl"`
	TP          float64 `json:"tp"`
	Magic       int64   `json:"magic"`
	Comment     string  `json:"comment"`
	TypeTime    int     `json:"type_time"`
	TypeFilling int     `json:"type_filling"`
	// Position != 0 — закрытие против существующей позиции.
	Position int64 `json:"position,omitempty"`
}

type TradeResult struct {
	Retcode int    `json:"retcode"`
	Order   int64  `json:"order"`
	Comment string `json:"comment"`
}

type Position struct {
	Ticket    int64   `json:"ticket"`
	Symbol    string  `json:"symbol"`
	Volume    float64 `json:"volume"`
	Type      int     `json:"type"` // 0 = BUY, иначе SELL
	Profit    float64 `json:"profit"`
	PriceOpen float64 `json:"price_open"`
}

// Deal — закрытая сделка из истории терминала.
type Deal struct {
	Ticket int64   `json:"ticket"`
	Symbol string  `json:"symbol"`
	Volume float64 `json:"volume"`
	Type   int     `json:"type"`
	Profit float64 `json:"profit"`
	Price  float64 `json:"price"`
	Time   int64   `json:"time"` // unix seconds
}
