package models

// Входящие тела запросов HTTP-слоя. Имена полей фиксированы
// внешним контрактом, менять нельзя.

type ConnectRequest struct {
	Login    int64  `json:"login"`
	Password string `json:"password"`
	Server   string `json:"server"`
}

type OrderRequest struct {
	Symbol  string   `json:"symbol"`
	Type    string   `json:"type"` // BUY/SELL
	Volume  float64  `json:"volume"`
	SL      *float64 `json:"sl,omitempty"`
	TP      *float64 `json:"tp,omitempty"`
	Comment string   `json:"comment,omitempty"`
}

type CloseRequest struct {
	Ticket int64 `json:"ticket"`
}

// TradeOutcome — итог торговой операции для отдачи наружу.
type TradeOutcome struct {
	Success bool   `json:"success"`
	Ticket  int64  `json:"ticket,omitempty"`
	Error   string `json:"error,omitempty"`
	Retcode int    `json:"retcode,omitempty"`
}

// PositionSummary — открытая позиция в формате ответа /positions.
type PositionSummary struct {
	Ticket    int64   `json:"ticket"`
	Symbol    string  `json:"symbol"`
	Volume    float64 `json:"volume"`
	Type      string  `json:"type"`
	Profit    float64 `json:"profit"`
	PriceOpen float64 `json:"price_open"`
}

// DealSummary — закрытая сделка в формате ответа /history.
type DealSummary struct {
	Ticket    int64   `json:"ticket"`
	Symbol    string  `json:"symbol"`
	Volume    float64 `json:"volume"`
	Type      string  `json:"type"`
	Profit    float64 `json:"profit"`
	OpenPrice float64 `json:"openPrice"`
	CloseTime int64   `json:"closeTime"` // ms epoch
}

// ConnectReport — результат /autoconnect.
type ConnectReport struct {
	Success  bool    `json:"success"`
	Login    int64   `json:"login,omitempty"`
	Balance  float64 `json:"balance,omitempty"`
	Currency string  `json:"currency,omitempty"`
	Error    string  `json:"error,omitempty"`
}

// SideName переводит числовой тип терминала в BUY/SELL.
func SideName(t int) string {
	if t == OrderTypeBuy {
		return "BUY"
	}
	return "SELL"
}
