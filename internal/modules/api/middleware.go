package api

import (
	"net/http"

	"github.com/opentracing/opentracing-go"
)

// withCORS — разрешаем всё, как и оригинальная поверхность моста:
// вызывающие сидят на чужих origin (TradingView-вебхуки, дашборды).
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "*")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withTracing — спан на каждый запрос через глобальный трейсер
// (no-op, пока jaeger не сконфигурирован).
func withTracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		span := opentracing.GlobalTracer().StartSpan(r.Method + " " + r.URL.Path)
		defer span.Finish()
		next.ServeHTTP(w, r.WithContext(
			opentracing.ContextWithSpan(r.Context(), span),
		))
	})
}
