package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// RequestObserver — приёмник метрик запроса (реализуется *metrics.Metrics).
type RequestObserver interface {
	ObserveRequest(route, method string, code int, dur time.Duration)
}

// Metrics учитывает запрос по шаблону маршрута chi (а не по сырому пути),
// чтобы идентификаторы из пути не раздували кардинальность.
func Metrics(obs RequestObserver) Middleware {
	return func(next http.Handler) http.Handler {
		if obs == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := newStatusWriter(w)
			start := time.Now()

			next.ServeHTTP(sw, r)

			route := "unmatched"
			if rc := chi.RouteContext(r.Context()); rc != nil {
				if p := rc.RoutePattern(); p != "" {
					route = p
				}
			}

			obs.ObserveRequest(route, r.Method, sw.code(), time.Since(start))
		})
	}
}
