// Package middleware HTTP middleware роутера
package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/bronsport/unisport-gateway/internal/api/handlers"
	"github.com/bronsport/unisport-gateway/pkg/metrics"
)

const msgMissingToken = "требуется авторизация"

// Auth требует bearer токен в заголовке Authorization.
// Шлюз не проверяет токен сам, только передает его платформе.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handlers.BearerToken(r) == "" {
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusRecorder запоминает статус-код ответа
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// MetricsMiddleware собирает метрики HTTP запросов
func MetricsMiddleware(m *metrics.Metrics, serviceName string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			route := r.URL.Path
			if cur := mux.CurrentRoute(r); cur != nil {
				if tpl, err := cur.GetPathTemplate(); err == nil {
					route = tpl
				}
			}
			m.ObserveHTTP(route, r.Method, rec.status, time.Since(start))
		})
	}
}
