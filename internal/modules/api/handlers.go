package api

import (
	"encoding/json"
	"net/http"

	"github.com/bytedance/sonic"

	"mt5_bridge/internal/bridge"
	"mt5_bridge/internal/models"
	"mt5_bridge/pkg/logger"
)

// NewMux собирает HTTP-поверхность моста. Имена полей ответов — внешний
// контракт, совместимость drop-in.
func NewMux(b *bridge.Bridge) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		// "/" у ServeMux ловит всё подряд; чужие пути — это 404
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "API Working"})
	})

	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("/autoconnect", func(w http.ResponseWriter, r *http.Request) {
		if !requireMethod(w, r, http.MethodGet) {
			return
		}
		writeJSON(w, http.StatusOK, b.AutoConnect(r.Context()))
	})

	mux.HandleFunc("/connect", func(w http.ResponseWriter, r *http.Request) {
		if !requireMethod(w, r, http.MethodPost) {
			return
		}
		var req models.ConnectRequest
		if !decodeBody(w, r, &req) {
			return
		}
		ok, errText := b.Connect(r.Context(), req.Login, req.Password, req.Server)
		if !ok {
			writeJSON(w, http.StatusOK, map[string]any{"success": false, "error": errText})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	})

	mux.HandleFunc("/account", func(w http.ResponseWriter, r *http.Request) {
		if !requireMethod(w, r, http.MethodGet) {
			return
		}
		acc, connected := b.Account(r.Context())
		if !connected {
			writeJSON(w, http.StatusOK, map[string]any{"isConnected": false})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"login":       acc.Login,
			"balance":     acc.Balance,
			"equity":      acc.Equity,
			"currency":    acc.Currency,
			"isConnected": true,
		})
	})

	mux.HandleFunc("/order", func(w http.ResponseWriter, r *http.Request) {
		if !requireMethod(w, r, http.MethodPost) {
			return
		}
		var req models.OrderRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Volume <= 0 {
			writeJSON(w, http.StatusBadRequest, models.TradeOutcome{
				Success: false, Error: "Volume must be positive",
			})
			return
		}
		writeJSON(w, http.StatusOK, b.PlaceOrder(r.Context(), req))
	})

	mux.HandleFunc("/close", func(w http.ResponseWriter, r *http.Request) {
		if !requireMethod(w, r, http.MethodPost) {
			return
		}
		var req models.CloseRequest
		if !decodeBody(w, r, &req) {
			return
		}
		writeJSON(w, http.StatusOK, b.ClosePosition(r.Context(), req.Ticket))
	})

	mux.HandleFunc("/positions", func(w http.ResponseWriter, r *http.Request) {
		if !requireMethod(w, r, http.MethodGet) {
			return
		}
		writeJSON(w, http.StatusOK, b.Positions(r.Context()))
	})

	mux.HandleFunc("/history", func(w http.ResponseWriter, r *http.Request) {
		if !requireMethod(w, r, http.MethodGet) {
			return
		}
		writeJSON(w, http.StatusOK, b.History(r.Context()))
	})

	return mux
}

func requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "Invalid request body",
		})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	payload, err := sonic.Marshal(v)
	if err != nil {
		logger.Error("writeJSON marshal: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}
