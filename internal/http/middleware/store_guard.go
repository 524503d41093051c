package middleware

import (
	"log/slog"
	"net/http"

	apierrors "github.com/pribylovaa/go-classifieds/internal/errors"
	logctx "github.com/pribylovaa/go-classifieds/internal/pkg/log"
	"github.com/pribylovaa/go-classifieds/internal/service"
)

// Availability — источник состояния соединения с БД (реализуется *status.State).
type Availability interface {
	Up() bool
}

// StoreGuard отвечает 503 без обращения к сервису, пока БД недоступна.
// Вешается только на маршруты, которым нужны данные.
func StoreGuard(a Availability) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.Up() {
				logctx.From(r.Context()).Warn("store_guard_reject",
					slog.String("path", r.URL.Path),
				)
				apierrors.WriteError(w, r, service.ErrUnavailable)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
