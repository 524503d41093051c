package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout ограничивает обработку запроса сроком d.
// Если у контекста уже есть более ранний дедлайн, действует он.
// По истечении срока запросы к БД отменяются, и хендлер отвечает 503 timeout.
// d <= 0 отключает ограничение.
func Timeout(d time.Duration) Middleware {
	if d <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
